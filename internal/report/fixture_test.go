package report

import (
	"time"

	"github.com/newthinker/overlay/internal/backtest"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// sampleBundle is a four-day run: a put sold on day 0, a call on day 2 and a
// drawdown from day 1 to day 2.
func sampleBundle() *backtest.ResultBundle {
	return &backtest.ResultBundle{
		Symbol: "510050",
		Portfolio: []backtest.PortfolioPoint{
			{Date: day(0), Cash: 50000, ETFValue: 50000, PortfolioValue: 100000, DailyReturn: 0, CumulativeReturn: 0},
			{Date: day(1), Cash: 50000, ETFValue: 51000, PortfolioValue: 101000, DailyReturn: 1.0, CumulativeReturn: 1.0},
			{Date: day(2), Cash: 50000, ETFValue: 49000, OptionValue: -20, PortfolioValue: 98980, DailyReturn: -2.0, CumulativeReturn: -1.02},
			{Date: day(3), Cash: 50000, ETFValue: 49970, PortfolioValue: 99970, DailyReturn: 1.0, CumulativeReturn: -0.03},
		},
		Benchmark: []backtest.BenchmarkPoint{
			{Date: day(0), CumulativeReturnPct: 0},
			{Date: day(1), CumulativeReturnPct: 0.5},
			{Date: day(2), CumulativeReturnPct: -1.5},
			{Date: day(3), CumulativeReturnPct: 2.0},
		},
		Bars: []backtest.Bar{
			{Date: day(0), Open: 10, Close: 10.05},
			{Date: day(1), Open: 10.05, Close: 10.1},
			{Date: day(2), Open: 10.1, Close: 9.9},
			{Date: day(3), Open: 9.9, Close: 10.2},
		},
		PutTrades:  []backtest.DatedTrade{{Date: day(0), Detail: backtest.TradeDetail{Type: "卖出PUT"}}},
		CallTrades: []backtest.DatedTrade{{Date: day(2), Detail: backtest.TradeDetail{Type: "卖出CALL"}}},
		Trades: []backtest.DatedTrade{
			{Date: day(2), Detail: backtest.TradeDetail{
				Type: "卖出CALL", ExpiryUnderlyingPrice: 9.9, Strike: 10.5, OptionPrice: 0.0123,
				ContractCount: 5, Premium: 615, TransactionCost: 9.5, Delta: 0.3,
			}},
			{Date: day(0), Detail: backtest.TradeDetail{
				Type: "卖出PUT", ExpiryUnderlyingPrice: 10, Strike: 9.5, OptionPrice: 0.0456,
				ContractCount: 3, Premium: 1368, TransactionCost: 5.7, Delta: -0.3,
			}},
		},
		Statistics: backtest.Statistics{
			CallSold: 1, PutSold: 1, PutExpired: 1,
			TotalCallPremium: 615, TotalPutPremium: 1368, TotalTransactionCost: 15.2,
			ETFBuyCost: 300, ETFSellIncome: 500, MaxETFHeld: 10,
		},
		PortfolioMetrics: backtest.Metrics{TotalReturn: -0.0003, AnnualReturn: 0.1, AnnualVolatility: 0.12, SharpeRatio: 1.2, MaxDrawdown: 0.0202},
		ETFMetrics:       backtest.Metrics{TotalReturn: 0.02, AnnualReturn: 0.1, AnnualVolatility: 0.2, SharpeRatio: 0.8, MaxDrawdown: 0.03},
		MaxDrawdown:      &backtest.DrawdownWindow{Start: day(1), End: day(2), MagnitudePct: 2.02},
	}
}

func texts(row []Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Text
	}
	return out
}
