// internal/api/handler/api/report.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newthinker/overlay/internal/backtest"
	"github.com/newthinker/overlay/internal/config"
	"github.com/newthinker/overlay/internal/core"
	"github.com/newthinker/overlay/internal/metrics"
	"github.com/newthinker/overlay/internal/report"
	"go.uber.org/zap"
)

// Messages returned in the error payload.
const (
	msgUpstreamFailed = "回测执行失败"
	msgBundleInvalid  = "回测结果数据异常"
)

// ReportHandler runs a backtest through the configured runner and renders
// its report.
type ReportHandler struct {
	runner  backtest.Runner
	options config.Options
	metrics *metrics.Registry
	logger  *zap.Logger
}

// NewReportHandler creates a new report handler. reg may be nil.
func NewReportHandler(runner backtest.Runner, options config.Options, reg *metrics.Registry, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		runner:  runner,
		options: options,
		metrics: reg,
		logger:  logger,
	}
}

// Run handles POST /run_backtest.
func (h *ReportHandler) Run(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.parseRequest(r)
	if err != nil {
		h.logger.Debug("report request rejected", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, report.ErrorPayload{Error: requestMessage(err)})
		return
	}

	start := time.Now()
	log := h.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("symbol", cfg.Symbol),
		zap.Float64("delta", cfg.Delta),
		zap.String("holding_type", string(cfg.HoldingType)),
	)

	payload, trades, err := h.render(r, cfg)
	if err != nil {
		status, label, msg := classify(err)
		if label == metrics.ReportInvalid {
			log.Error("report failed", zap.String("outcome", label), zap.Error(err))
		} else {
			log.Warn("report failed", zap.String("outcome", label), zap.Error(err))
		}
		h.record(label, start)
		writeJSON(w, status, report.ErrorPayload{Error: msg})
		return
	}

	h.record(metrics.ReportOK, start)
	if h.metrics != nil {
		h.metrics.ObserveTrades(trades)
	}
	log.Info("report rendered",
		zap.Int("trades", trades),
		zap.Duration("elapsed", time.Since(start)),
	)

	writeJSON(w, http.StatusOK, payload)
}

func (h *ReportHandler) render(r *http.Request, cfg backtest.Config) (*report.Payload, int, error) {
	bundle, err := h.runner.Run(r.Context(), cfg)
	if err != nil {
		return nil, 0, err
	}

	rep, err := report.Build(bundle)
	if err != nil {
		return nil, 0, err
	}

	payload, err := report.Encode(rep, report.HTMLRenderer{})
	if err != nil {
		return nil, 0, core.WrapError(core.ErrBundleInvalid, err)
	}

	return payload, len(rep.TradeRecords.Rows), nil
}

func (h *ReportHandler) record(label string, start time.Time) {
	if h.metrics != nil {
		h.metrics.RecordReport(label, time.Since(start).Seconds())
	}
}

// classify maps a run or build failure to its response. A bundle that breaks
// its invariants is a server fault; anything else is reported the way the
// page expects an engine failure, with a 200 and an error payload.
func classify(err error) (int, string, string) {
	if errors.Is(err, core.ErrBundleInvalid) || errors.Is(err, core.ErrDateNotFound) {
		return http.StatusInternalServerError, metrics.ReportInvalid, msgBundleInvalid
	}
	return http.StatusOK, metrics.ReportUpstreamFailure, msgUpstreamFailed
}

func (h *ReportHandler) parseRequest(r *http.Request) (backtest.Config, error) {
	var cfg backtest.Config

	if err := r.ParseForm(); err != nil {
		return cfg, invalidRequest("invalid form: %w", err)
	}

	cfg.Symbol = strings.TrimSpace(r.FormValue("etf_code"))
	if cfg.Symbol == "" {
		return cfg, invalidRequest("etf_code is required")
	}
	if !h.options.HasInstrument(cfg.Symbol) {
		return cfg, invalidRequest("unknown etf_code %q", cfg.Symbol)
	}

	rawDelta := strings.TrimSpace(r.FormValue("delta"))
	if rawDelta == "" {
		return cfg, invalidRequest("delta is required")
	}
	delta, err := strconv.ParseFloat(rawDelta, 64)
	if err != nil {
		return cfg, invalidRequest("invalid delta %q", rawDelta)
	}
	if delta <= 0 || delta >= 1 {
		return cfg, invalidRequest("delta must be between 0 and 1, got %s", rawDelta)
	}
	cfg.Delta = delta

	holding := strings.TrimSpace(r.FormValue("holding_type"))
	if holding == "" {
		holding = string(backtest.HoldingPhysical)
	}
	if !h.options.HasHoldingType(holding) {
		return cfg, invalidRequest("unknown holding_type %q", holding)
	}
	cfg.HoldingType = backtest.HoldingType(holding)

	if cfg.StartDate, err = parseDate(r.FormValue("start_date")); err != nil {
		return cfg, invalidRequest("invalid start_date: %w", err)
	}
	if cfg.EndDate, err = parseDate(r.FormValue("end_date")); err != nil {
		return cfg, invalidRequest("invalid end_date: %w", err)
	}
	if cfg.StartDate != nil && cfg.EndDate != nil && cfg.EndDate.Before(*cfg.StartDate) {
		return cfg, invalidRequest("end_date is before start_date")
	}

	return cfg, nil
}

func invalidRequest(format string, args ...any) error {
	return core.WrapError(core.ErrRequestInvalid, fmt.Errorf(format, args...))
}

// requestMessage is the client-facing text of a request error: the cause
// without the code prefix.
func requestMessage(err error) string {
	var coreErr *core.Error
	if errors.As(err, &coreErr) && coreErr.Cause != nil {
		return coreErr.Cause.Error()
	}
	return err.Error()
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(backtest.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
