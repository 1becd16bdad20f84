package report

import (
	"math"
	"time"

	"github.com/newthinker/overlay/internal/backtest"
	"gonum.org/v1/gonum/floats"
)

// DrawdownRegion is the portfolio curve over the maximum drawdown window
// together with its running peak, for shading on the chart.
type DrawdownRegion struct {
	Dates        []time.Time
	Peak         []float64
	Values       []float64
	Drawdown     []float64 // Peak - Values
	MagnitudePct float64
}

// LocateDrawdown derives the shaded region for window w. The running peak is
// the expanding maximum of the cumulative return from the start of the series,
// so a peak set before the window still bounds the region. It returns nil when
// no window is supplied or no point falls inside it.
func LocateDrawdown(series []backtest.PortfolioPoint, w *backtest.DrawdownWindow) *DrawdownRegion {
	if w == nil || len(series) == 0 {
		return nil
	}

	start, end := backtest.DateKey(w.Start), backtest.DateKey(w.End)
	region := &DrawdownRegion{MagnitudePct: math.Abs(w.MagnitudePct)}

	peak := math.Inf(-1)
	for _, p := range series {
		key := backtest.DateKey(p.Date)
		if key > end {
			break
		}
		peak = math.Max(peak, p.CumulativeReturn)
		if key < start {
			continue
		}
		region.Dates = append(region.Dates, p.Date)
		region.Peak = append(region.Peak, peak)
		region.Values = append(region.Values, p.CumulativeReturn)
		region.Drawdown = append(region.Drawdown, peak-p.CumulativeReturn)
	}

	if len(region.Dates) == 0 {
		return nil
	}
	return region
}

// DailyLoss is the worst single-day loss of a series, in percent, and the
// first date on which the worst change occurred.
type DailyLoss struct {
	LossPct float64
	Date    time.Time
}

// PortfolioWorstDay measures close-to-close changes of the portfolio value.
func PortfolioWorstDay(series []backtest.PortfolioPoint) DailyLoss {
	if len(series) < 2 {
		return DailyLoss{}
	}

	dates := make([]time.Time, 0, len(series)-1)
	changes := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		prev := series[i-1].PortfolioValue
		dates = append(dates, series[i].Date)
		changes = append(changes, (series[i].PortfolioValue-prev)/prev*100)
	}
	return worstDay(dates, changes)
}

// BenchmarkWorstDay measures intraday open-to-close changes of the underlying.
func BenchmarkWorstDay(bars []backtest.Bar) DailyLoss {
	dates := make([]time.Time, len(bars))
	changes := make([]float64, len(bars))
	for i, b := range bars {
		dates[i] = b.Date
		changes[i] = (b.Close - b.Open) / b.Open * 100
	}
	return worstDay(dates, changes)
}

// worstDay finds the minimum finite change, taking the earliest date on ties.
// Non-finite changes (zero denominators) are skipped.
func worstDay(dates []time.Time, changes []float64) DailyLoss {
	kept := make([]int, 0, len(changes))
	values := make([]float64, 0, len(changes))
	for i, c := range changes {
		if finite(c) {
			kept = append(kept, i)
			values = append(values, c)
		}
	}
	if len(values) == 0 {
		return DailyLoss{}
	}

	idx := floats.MinIdx(values)
	return DailyLoss{
		LossPct: math.Abs(math.Min(0, values[idx])),
		Date:    dates[kept[idx]],
	}
}
