// Package report turns a backtest result bundle into the chart and tables of
// the results page. Every function here is a pure function of its inputs.
package report

import (
	"fmt"

	"github.com/newthinker/overlay/internal/backtest"
)

// Report is the structured, markup-free result of one report pass.
type Report struct {
	Symbol             string
	Chart              *ChartSpec
	TradeRecords       Table
	TradeSummary       Table
	DailyPnL           Table
	StrategyComparison Table
}

// Build validates b and derives every report fragment from it. Either the
// whole report is returned or an error; nothing partial.
func Build(b *backtest.ResultBundle) (*Report, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	chart, err := BuildChart(b)
	if err != nil {
		return nil, fmt.Errorf("building chart: %w", err)
	}

	return &Report{
		Symbol:             b.Symbol,
		Chart:              chart,
		TradeRecords:       FormatTrades(b.UniqueTrades()),
		TradeSummary:       AggregateSummary(b.Statistics, b.FinalClose()),
		DailyPnL:           FormatDailyPnL(b.Portfolio),
		StrategyComparison: BuildComparison(ComparisonInputFrom(b)),
	}, nil
}
