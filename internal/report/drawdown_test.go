package report

import (
	"testing"

	"github.com/newthinker/overlay/internal/backtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateDrawdown_NoWindow(t *testing.T) {
	assert.Nil(t, LocateDrawdown(sampleBundle().Portfolio, nil))
}

func TestLocateDrawdown_PeakBeforeWindow(t *testing.T) {
	series := []backtest.PortfolioPoint{
		{Date: day(0), CumulativeReturn: 5},
		{Date: day(1), CumulativeReturn: 3},
		{Date: day(2), CumulativeReturn: 1},
		{Date: day(3), CumulativeReturn: 4},
		{Date: day(4), CumulativeReturn: 9},
	}
	w := &backtest.DrawdownWindow{Start: day(1), End: day(3), MagnitudePct: -4}

	r := LocateDrawdown(series, w)
	require.NotNil(t, r)

	assert.Equal(t, []float64{5, 5, 5}, r.Peak)
	assert.Equal(t, []float64{3, 1, 4}, r.Values)
	assert.Equal(t, []float64{2, 4, 1}, r.Drawdown)
	assert.Len(t, r.Dates, 3)
	assert.True(t, r.Dates[0].Equal(day(1)))
	assert.Equal(t, 4.0, r.MagnitudePct)
}

func TestLocateDrawdown_WindowOutsideSeries(t *testing.T) {
	w := &backtest.DrawdownWindow{Start: day(10), End: day(12)}
	assert.Nil(t, LocateDrawdown(sampleBundle().Portfolio, w))
}

func TestBenchmarkWorstDay_IntradayDrop(t *testing.T) {
	bars := []backtest.Bar{
		{Date: day(0), Open: 100, Close: 90},
		{Date: day(1), Open: 90, Close: 95},
	}

	loss := BenchmarkWorstDay(bars)

	assert.InDelta(t, 10.0, loss.LossPct, 1e-9)
	assert.True(t, loss.Date.Equal(day(0)))
}

func TestPortfolioWorstDay_FirstMatchOnTie(t *testing.T) {
	series := []backtest.PortfolioPoint{
		{Date: day(0), PortfolioValue: 100},
		{Date: day(1), PortfolioValue: 90},
		{Date: day(2), PortfolioValue: 100},
		{Date: day(3), PortfolioValue: 90},
	}

	loss := PortfolioWorstDay(series)

	assert.InDelta(t, 10.0, loss.LossPct, 1e-9)
	assert.True(t, loss.Date.Equal(day(1)), "earliest date of the tied minimum")
}

func TestPortfolioWorstDay_NoLoss(t *testing.T) {
	series := []backtest.PortfolioPoint{
		{Date: day(0), PortfolioValue: 100},
		{Date: day(1), PortfolioValue: 110},
		{Date: day(2), PortfolioValue: 111},
	}

	loss := PortfolioWorstDay(series)

	assert.Equal(t, 0.0, loss.LossPct)
	assert.True(t, loss.Date.Equal(day(2)), "date of the smallest change")
}

func TestPortfolioWorstDay_SinglePoint(t *testing.T) {
	loss := PortfolioWorstDay([]backtest.PortfolioPoint{{Date: day(0), PortfolioValue: 100}})
	assert.Equal(t, DailyLoss{}, loss)
}

func TestBenchmarkWorstDay_SkipsZeroOpen(t *testing.T) {
	bars := []backtest.Bar{
		{Date: day(0), Open: 0, Close: 5},
		{Date: day(1), Open: 10, Close: 9.5},
	}

	loss := BenchmarkWorstDay(bars)

	assert.InDelta(t, 5.0, loss.LossPct, 1e-9)
	assert.True(t, loss.Date.Equal(day(1)))
}
