package report

import (
	"fmt"
	"slices"

	"github.com/newthinker/overlay/internal/backtest"
)

// FormatTrades renders one row per trade date, ordered by the row contents
// (the date column first, so effectively by date).
func FormatTrades(trades []backtest.DatedTrade) Table {
	rows := make([][]Cell, 0, len(trades))
	for _, t := range trades {
		d := t.Detail
		rows = append(rows, []Cell{
			plain(backtest.DateKey(t.Date)),
			plain(d.Type),
			plain(fmt.Sprintf("%.2f", d.ExpiryUnderlyingPrice)),
			plain(fmt.Sprintf("%.2f", d.Strike)),
			plain(fmt.Sprintf("%.4f", d.OptionPrice)),
			plain(fmt.Sprintf("%.0f%s", d.ContractCount, contractUnit)),
			plain(fmt.Sprintf("%.2f", d.Premium)),
			plain(fmt.Sprintf("%.2f", d.TransactionCost)),
			plain(fmt.Sprintf("%.2f", d.Delta)),
		})
	}
	slices.SortStableFunc(rows, compareRows)

	return Table{Headers: slices.Clone(tradeRecordHeaders), Rows: rows}
}
