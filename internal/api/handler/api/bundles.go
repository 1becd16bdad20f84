// internal/api/handler/api/bundles.go
package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/newthinker/overlay/internal/api/response"
	"github.com/newthinker/overlay/internal/config"
	"github.com/newthinker/overlay/internal/core"
	"github.com/newthinker/overlay/internal/storage/archive"
)

// BundlesHandler lists the result bundles available to /run_backtest.
type BundlesHandler struct {
	store   archive.Storage
	options config.Options
}

// NewBundlesHandler creates a new bundles handler.
func NewBundlesHandler(store archive.Storage, options config.Options) *BundlesHandler {
	return &BundlesHandler{store: store, options: options.Clone()}
}

// List returns stored bundle keys, optionally narrowed by ?symbol=.
func (h *BundlesHandler) List(w http.ResponseWriter, r *http.Request) {
	prefix := ""
	if symbol := strings.TrimSpace(r.URL.Query().Get("symbol")); symbol != "" {
		if !h.options.HasInstrument(symbol) {
			response.Error(w, 0, core.WrapError(core.ErrRequestInvalid,
				fmt.Errorf("unknown symbol %q", symbol)))
			return
		}
		prefix = symbol + "/"
	}

	keys, err := h.store.List(r.Context(), prefix)
	if err != nil {
		response.Error(w, 0, core.WrapError(core.ErrUpstreamFailed, err))
		return
	}

	response.List(w, keys)
}
