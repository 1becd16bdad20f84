package report

import (
	"fmt"
	"slices"

	"github.com/newthinker/overlay/internal/backtest"
)

// FormatDailyPnL renders the portfolio series in its own order. The return
// column is styled by sign.
func FormatDailyPnL(series []backtest.PortfolioPoint) Table {
	rows := make([][]Cell, 0, len(series))
	for _, p := range series {
		rows = append(rows, []Cell{
			plain(backtest.DateKey(p.Date)),
			plain(fmt.Sprintf("%.2f", p.Cash)),
			plain(fmt.Sprintf("%.2f", p.ETFValue)),
			plain(fmt.Sprintf("%.2f", p.OptionValue)),
			plain(fmt.Sprintf("%.2f", p.PortfolioValue)),
			styled(fmt.Sprintf("%.2f%%", p.DailyReturn), signStyle(p.DailyReturn)),
		})
	}

	return Table{Headers: slices.Clone(dailyPnLHeaders), Rows: rows}
}

func signStyle(v float64) Style {
	switch {
	case v > 0:
		return StylePositive
	case v < 0:
		return StyleNegative
	default:
		return StyleNormal
	}
}
