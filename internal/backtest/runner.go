package backtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/newthinker/overlay/internal/core"
	"github.com/newthinker/overlay/internal/storage/archive"
)

// Runner produces a result bundle for a backtest configuration.
// The option-pricing simulator lives behind this interface.
type Runner interface {
	Run(ctx context.Context, cfg Config) (*ResultBundle, error)
}

// ArchiveRunner serves bundles the external engine has already written to
// archive storage.
type ArchiveRunner struct {
	store archive.Storage
}

// NewArchiveRunner creates a runner reading from store.
func NewArchiveRunner(store archive.Storage) *ArchiveRunner {
	return &ArchiveRunner{store: store}
}

// BundleKey returns the storage path of the bundle for cfg.
func BundleKey(cfg Config) string {
	key := fmt.Sprintf("%s/%s/delta-%s", cfg.Symbol, cfg.HoldingType,
		strconv.FormatFloat(cfg.Delta, 'f', -1, 64))
	if cfg.StartDate != nil || cfg.EndDate != nil {
		start, end := "begin", "end"
		if cfg.StartDate != nil {
			start = DateKey(*cfg.StartDate)
		}
		if cfg.EndDate != nil {
			end = DateKey(*cfg.EndDate)
		}
		key += "_" + start + "_" + end
	}
	return key + ".json"
}

// Run loads and decodes the stored bundle for cfg.
func (r *ArchiveRunner) Run(ctx context.Context, cfg Config) (*ResultBundle, error) {
	key := BundleKey(cfg)

	ok, err := r.store.Exists(ctx, key)
	if err != nil {
		return nil, core.WrapError(core.ErrUpstreamFailed, err)
	}
	if !ok {
		return nil, core.WrapError(core.ErrBundleNotFound, fmt.Errorf("key %s", key))
	}

	data, err := r.store.Read(ctx, key)
	if err != nil {
		return nil, core.WrapError(core.ErrUpstreamFailed, err)
	}

	return Decode(data)
}

// Decode parses a JSON-encoded bundle.
func Decode(data []byte) (*ResultBundle, error) {
	var b ResultBundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, core.WrapError(core.ErrBundleInvalid, err)
	}
	return &b, nil
}

// Encode serializes a bundle for storage.
func Encode(b *ResultBundle) ([]byte, error) {
	return json.Marshal(b)
}
