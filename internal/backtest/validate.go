package backtest

import (
	"fmt"
	"time"

	"github.com/newthinker/overlay/internal/core"
)

// Validate checks the structural invariants every consumer of the bundle
// relies on. It never modifies the bundle.
func (b *ResultBundle) Validate() error {
	if b.IsEmpty() {
		return core.WrapError(core.ErrUpstreamFailed, nil)
	}

	portfolioDates := make([]time.Time, len(b.Portfolio))
	for i, p := range b.Portfolio {
		portfolioDates[i] = p.Date
	}
	if err := checkIncreasing("portfolio_series", portfolioDates); err != nil {
		return err
	}

	benchmarkDates := make([]time.Time, len(b.Benchmark))
	for i, p := range b.Benchmark {
		benchmarkDates[i] = p.Date
	}
	if err := checkSameDomain("benchmark_series", portfolioDates, benchmarkDates); err != nil {
		return err
	}

	barDates := make([]time.Time, len(b.Bars))
	for i, bar := range b.Bars {
		barDates[i] = bar.Date
	}
	if err := checkSameDomain("underlying_daily_bars", portfolioDates, barDates); err != nil {
		return err
	}

	known := make(map[string]struct{}, len(portfolioDates))
	for _, d := range portfolioDates {
		known[DateKey(d)] = struct{}{}
	}
	for name, trades := range map[string][]DatedTrade{
		"trades":      b.Trades,
		"put_trades":  b.PutTrades,
		"call_trades": b.CallTrades,
	} {
		for _, t := range trades {
			if _, ok := known[DateKey(t.Date)]; !ok {
				return core.WrapError(core.ErrDateNotFound,
					fmt.Errorf("%s: %s not in portfolio_series", name, DateKey(t.Date)))
			}
			if t.Detail.Premium < 0 || t.Detail.TransactionCost < 0 {
				return core.WrapError(core.ErrBundleInvalid,
					fmt.Errorf("%s: negative premium or cost on %s", name, DateKey(t.Date)))
			}
		}
	}

	if w := b.MaxDrawdown; w != nil && w.End.Before(w.Start) {
		return core.WrapError(core.ErrBundleInvalid,
			fmt.Errorf("max drawdown window ends %s before it starts %s",
				DateKey(w.End), DateKey(w.Start)))
	}

	return nil
}

func checkIncreasing(name string, dates []time.Time) error {
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return core.WrapError(core.ErrBundleInvalid,
				fmt.Errorf("%s: dates not strictly increasing at %s", name, DateKey(dates[i])))
		}
	}
	return nil
}

func checkSameDomain(name string, want, got []time.Time) error {
	if len(want) != len(got) {
		return core.WrapError(core.ErrBundleInvalid,
			fmt.Errorf("%s: %d rows, portfolio_series has %d", name, len(got), len(want)))
	}
	for i := range want {
		if DateKey(want[i]) != DateKey(got[i]) {
			return core.WrapError(core.ErrBundleInvalid,
				fmt.Errorf("%s: date %s does not match portfolio_series %s",
					name, DateKey(got[i]), DateKey(want[i])))
		}
	}
	return nil
}
