package backtest

import (
	"errors"
	"testing"

	"github.com/newthinker/overlay/internal/core"
	"github.com/stretchr/testify/assert"
)

func validBundle() *ResultBundle {
	b := &ResultBundle{Symbol: "510300"}
	for i := 0; i < 3; i++ {
		b.Portfolio = append(b.Portfolio, PortfolioPoint{Date: day(i), PortfolioValue: 100})
		b.Benchmark = append(b.Benchmark, BenchmarkPoint{Date: day(i)})
		b.Bars = append(b.Bars, Bar{Date: day(i), Open: 4, Close: 4})
	}
	b.Trades = []DatedTrade{{Date: day(1), Detail: TradeDetail{Premium: 10, TransactionCost: 1}}}
	b.PutTrades = []DatedTrade{{Date: day(1)}}
	b.MaxDrawdown = &DrawdownWindow{Start: day(0), End: day(2)}
	return b
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validBundle().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *ResultBundle)
		want   *core.Error
	}{
		{"empty portfolio", func(b *ResultBundle) { b.Portfolio = nil }, core.ErrUpstreamFailed},
		{"duplicate date", func(b *ResultBundle) { b.Portfolio[2].Date = day(1) }, core.ErrBundleInvalid},
		{"decreasing date", func(b *ResultBundle) { b.Portfolio[0].Date = day(5) }, core.ErrBundleInvalid},
		{"short benchmark", func(b *ResultBundle) { b.Benchmark = b.Benchmark[:2] }, core.ErrBundleInvalid},
		{"shifted bars", func(b *ResultBundle) { b.Bars[1].Date = day(9) }, core.ErrBundleInvalid},
		{"no bars", func(b *ResultBundle) { b.Bars = nil }, core.ErrBundleInvalid},
		{"unknown trade date", func(b *ResultBundle) { b.Trades[0].Date = day(7) }, core.ErrDateNotFound},
		{"unknown call date", func(b *ResultBundle) {
			b.CallTrades = []DatedTrade{{Date: day(8)}}
		}, core.ErrDateNotFound},
		{"negative premium", func(b *ResultBundle) { b.Trades[0].Detail.Premium = -1 }, core.ErrBundleInvalid},
		{"negative cost", func(b *ResultBundle) { b.Trades[0].Detail.TransactionCost = -0.5 }, core.ErrBundleInvalid},
		{"inverted window", func(b *ResultBundle) {
			b.MaxDrawdown = &DrawdownWindow{Start: day(2), End: day(0)}
		}, core.ErrBundleInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBundle()
			tt.mutate(b)

			err := b.Validate()

			assert.True(t, errors.Is(err, tt.want), "got %v, want %s", err, tt.want.Code)
		})
	}
}
