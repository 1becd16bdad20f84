package report

import (
	"testing"

	"github.com/newthinker/overlay/internal/backtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDailyPnL_PreservesOrder(t *testing.T) {
	b := sampleBundle()

	table := FormatDailyPnL(b.Portfolio)

	assert.Len(t, table.Headers, 6)
	require.Len(t, table.Rows, len(b.Portfolio))
	for i, p := range b.Portfolio {
		assert.Equal(t, backtest.DateKey(p.Date), table.Rows[i][0].Text)
	}
	assert.Equal(t, []string{"2024-01-04", "50000.00", "49000.00", "-20.00", "98980.00", "-2.00%"}, texts(table.Rows[2]))
}

func TestFormatDailyPnL_ReturnStyles(t *testing.T) {
	table := FormatDailyPnL(sampleBundle().Portfolio)

	assert.Equal(t, StyleNormal, table.Rows[0][5].Style)
	assert.Equal(t, StylePositive, table.Rows[1][5].Style)
	assert.Equal(t, StyleNegative, table.Rows[2][5].Style)
	for _, row := range table.Rows {
		for _, c := range row[:5] {
			assert.Equal(t, StyleNormal, c.Style)
		}
	}
}

func TestFormatDailyPnL_ZeroReturnHasNoMarkup(t *testing.T) {
	table := FormatDailyPnL([]backtest.PortfolioPoint{{Date: day(0), PortfolioValue: 100}})

	got := HTMLRenderer{}.Render(table.Rows[0][5])

	assert.Equal(t, "0.00%", got)
	assert.NotContains(t, got, "<span")
}
