package report

import (
	"fmt"
	"slices"

	"github.com/newthinker/overlay/internal/backtest"
)

// ETFPnL holds the ETF profit figures derived from the simulator counters.
type ETFPnL struct {
	Trading      float64
	CurrentValue float64
	// Unrealized is the raw mark-to-market value of the largest holding; it
	// is not netted against cost basis. Downstream pages depend on this figure.
	Unrealized float64
	Exercise   float64
}

// DeriveETFPnL computes the ETF profit figures at the final close price.
func DeriveETFPnL(stats backtest.Statistics, finalClose float64) ETFPnL {
	trading := stats.ETFSellIncome - stats.ETFBuyCost
	current := stats.MaxETFHeld * finalClose
	return ETFPnL{
		Trading:      trading,
		CurrentValue: current,
		Unrealized:   current,
		Exercise:     trading + current,
	}
}

// AggregateSummary renders the fourteen-row trade summary.
func AggregateSummary(stats backtest.Statistics, finalClose float64) Table {
	pnl := DeriveETFPnL(stats, finalClose)

	count := func(n int) string { return fmt.Sprintf("%d%s", n, countUnit) }
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	pairs := [][2]string{
		{labelCallSold, count(stats.CallSold)},
		{labelCallExercised, count(stats.CallExercised)},
		{labelCallExpired, count(stats.CallExpired)},
		{labelCallPremium, money(stats.TotalCallPremium)},
		{labelPutSold, count(stats.PutSold)},
		{labelPutExercised, count(stats.PutExercised)},
		{labelPutExpired, count(stats.PutExpired)},
		{labelPutPremium, money(stats.TotalPutPremium)},
		{labelTotalPremium, money(stats.TotalPutPremium + stats.TotalCallPremium)},
		{labelETFTradingPnL, money(pnl.Trading)},
		{labelETFCurrentValue, money(pnl.CurrentValue)},
		{labelETFUnrealizedPnL, money(pnl.Unrealized)},
		{labelETFExercisePnL, money(pnl.Exercise)},
		{labelTransactionCost, money(stats.TotalTransactionCost)},
	}

	rows := make([][]Cell, len(pairs))
	for i, p := range pairs {
		rows[i] = []Cell{plain(p[0]), plain(p[1])}
	}

	return Table{Headers: slices.Clone(summaryHeaders), Rows: rows}
}
