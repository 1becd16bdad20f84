package report

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/newthinker/overlay/internal/backtest"
)

// metricPair is one head-to-head row of the comparison table.
type metricPair struct {
	label     string
	strategy  float64
	benchmark float64
	dir       Direction
	suffix    string
	// text overrides the default "%.2f<suffix>" rendering of each side.
	text func(v float64, strategySide bool) string
}

// ComparisonInput gathers what the strategy comparison reads from a bundle.
type ComparisonInput struct {
	PortfolioMetrics backtest.Metrics
	ETFMetrics       backtest.Metrics
	Portfolio        []backtest.PortfolioPoint
	Benchmark        []backtest.BenchmarkPoint
	Bars             []backtest.Bar
	MaxDrawdown      *backtest.DrawdownWindow
}

// ComparisonInputFrom selects the comparison inputs from b.
func ComparisonInputFrom(b *backtest.ResultBundle) ComparisonInput {
	return ComparisonInput{
		PortfolioMetrics: b.PortfolioMetrics,
		ETFMetrics:       b.ETFMetrics,
		Portfolio:        b.Portfolio,
		Benchmark:        b.Benchmark,
		Bars:             b.Bars,
		MaxDrawdown:      b.MaxDrawdown,
	}
}

// BuildComparison renders the six-row strategy vs buy-and-hold table. Fractional
// metrics are shown in percent; the Sharpe ratio is unitless.
func BuildComparison(in ComparisonInput) Table {
	pm, em := in.PortfolioMetrics, in.ETFMetrics

	var benchmarkCumulative float64
	if n := len(in.Benchmark); n > 0 {
		benchmarkCumulative = in.Benchmark[n-1].CumulativeReturnPct
	}

	portfolioLoss := PortfolioWorstDay(in.Portfolio)
	benchmarkLoss := BenchmarkWorstDay(in.Bars)
	lossText := func(v float64, strategySide bool) string {
		d := benchmarkLoss.Date
		if strategySide {
			d = portfolioLoss.Date
		}
		return fmt.Sprintf("%.2f%% (%s)", v, dateText(d))
	}

	portfolioDrawdown := math.Abs(pm.MaxDrawdown * 100)
	if in.MaxDrawdown != nil {
		portfolioDrawdown = math.Abs(in.MaxDrawdown.MagnitudePct)
	}

	pairs := []metricPair{
		{label: labelCumulativeReturn, strategy: pm.TotalReturn * 100, benchmark: benchmarkCumulative, dir: HigherIsBetter, suffix: "%"},
		{label: labelAnnualReturn, strategy: pm.AnnualReturn * 100, benchmark: em.AnnualReturn * 100, dir: HigherIsBetter, suffix: "%"},
		{label: labelMaxDailyLoss, strategy: portfolioLoss.LossPct, benchmark: benchmarkLoss.LossPct, dir: LowerIsBetter, text: lossText},
		{label: labelMaxDrawdown, strategy: portfolioDrawdown, benchmark: math.Abs(em.MaxDrawdown * 100), dir: LowerIsBetter, suffix: "%"},
		{label: labelAnnualVolatility, strategy: pm.AnnualVolatility * 100, benchmark: em.AnnualVolatility * 100, dir: LowerIsBetter, suffix: "%"},
		{label: labelSharpeRatio, strategy: pm.SharpeRatio, benchmark: em.SharpeRatio, dir: HigherIsBetter},
	}

	rows := make([][]Cell, len(pairs))
	for i, p := range pairs {
		sStyle, bStyle := Compare(p.strategy, p.benchmark, p.dir)
		rows[i] = []Cell{
			plain(p.label),
			styled(p.format(p.strategy, true), sStyle),
			styled(p.format(p.benchmark, false), bStyle),
		}
	}

	return Table{Headers: slices.Clone(comparisonHeaders), Rows: rows, Markup: true}
}

func (p metricPair) format(v float64, strategySide bool) string {
	if p.text != nil {
		return p.text(v, strategySide)
	}
	return fmt.Sprintf("%.2f%s", v, p.suffix)
}

func dateText(d time.Time) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format(backtest.DateLayout)
}
