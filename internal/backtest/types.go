package backtest

import (
	"time"
)

// DateLayout is the calendar-date format used for keys and display.
const DateLayout = "2006-01-02"

// HoldingType selects how the underlying exposure is held by the simulator.
type HoldingType string

const (
	HoldingPhysical  HoldingType = "physical"
	HoldingSynthetic HoldingType = "synthetic"
)

// Config describes one backtest run requested from the external engine.
type Config struct {
	Symbol      string
	Delta       float64
	HoldingType HoldingType
	StartDate   *time.Time
	EndDate     *time.Time
}

// ResultBundle is the complete output of one backtest run.
// It is treated as read-only by everything downstream of the engine.
type ResultBundle struct {
	Symbol           string           `json:"symbol"`
	Portfolio        []PortfolioPoint `json:"portfolio_series"`
	Benchmark        []BenchmarkPoint `json:"benchmark_series"`
	PutTrades        []DatedTrade     `json:"put_trades"`
	CallTrades       []DatedTrade     `json:"call_trades"`
	Trades           []DatedTrade     `json:"trades"`
	Statistics       Statistics       `json:"statistics"`
	PortfolioMetrics Metrics          `json:"portfolio_metrics"`
	ETFMetrics       Metrics          `json:"etf_metrics"`
	Bars             []Bar            `json:"underlying_daily_bars"`
	MaxDrawdown      *DrawdownWindow  `json:"max_drawdown_window,omitempty"`
}

// PortfolioPoint is one day of the strategy portfolio.
// DailyReturn and CumulativeReturn are in percent.
type PortfolioPoint struct {
	Date             time.Time `json:"date"`
	Cash             float64   `json:"cash"`
	ETFValue         float64   `json:"etf_value"`
	OptionValue      float64   `json:"option_value"`
	PortfolioValue   float64   `json:"portfolio_value"`
	DailyReturn      float64   `json:"daily_return"`
	CumulativeReturn float64   `json:"cumulative_return"`
}

// BenchmarkPoint is one day of the buy-and-hold reference curve.
type BenchmarkPoint struct {
	Date                time.Time `json:"date"`
	CumulativeReturnPct float64   `json:"cumulative_return_pct"`
}

// TradeDetail describes one option sale. Absent fields decode to their zero value.
type TradeDetail struct {
	Type                  string  `json:"type"`
	ExpiryUnderlyingPrice float64 `json:"expiry_underlying_price"`
	Strike                float64 `json:"strike"`
	OptionPrice           float64 `json:"option_price"`
	ContractCount         float64 `json:"contract_count"`
	Premium               float64 `json:"premium"`
	TransactionCost       float64 `json:"transaction_cost"`
	Delta                 float64 `json:"delta"`
}

// DatedTrade pairs a trade date with its detail.
type DatedTrade struct {
	Date   time.Time   `json:"date"`
	Detail TradeDetail `json:"detail"`
}

// Statistics holds the simulator's cumulative counters.
type Statistics struct {
	CallSold             int     `json:"call_sold"`
	CallExercised        int     `json:"call_exercised"`
	CallExpired          int     `json:"call_expired"`
	PutSold              int     `json:"put_sold"`
	PutExercised         int     `json:"put_exercised"`
	PutExpired           int     `json:"put_expired"`
	TotalCallPremium     float64 `json:"total_call_premium"`
	TotalPutPremium      float64 `json:"total_put_premium"`
	TotalTransactionCost float64 `json:"total_transaction_cost"`
	ETFBuyCost           float64 `json:"etf_buy_cost"`
	ETFSellIncome        float64 `json:"etf_sell_income"`
	MaxETFHeld           float64 `json:"max_etf_held"`
}

// Metrics holds scalar performance figures as fractions (0.12 == 12%).
type Metrics struct {
	TotalReturn      float64 `json:"total_return"`
	AnnualReturn     float64 `json:"annual_return"`
	AnnualVolatility float64 `json:"annual_volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	MaxDrawdown      float64 `json:"max_drawdown"`
}

// Bar is a daily price bar of the underlying.
type Bar struct {
	Date  time.Time `json:"date"`
	Open  float64   `json:"open"`
	High  float64   `json:"high,omitempty"`
	Low   float64   `json:"low,omitempty"`
	Close float64   `json:"close"`
}

// DrawdownWindow is the portfolio's maximum drawdown period.
type DrawdownWindow struct {
	Start        time.Time `json:"start_date"`
	End          time.Time `json:"end_date"`
	MagnitudePct float64   `json:"magnitude_pct"`
}

// DateKey returns the calendar-date key of t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// IsEmpty reports whether the engine produced nothing usable.
func (b *ResultBundle) IsEmpty() bool {
	return b == nil || len(b.Portfolio) == 0
}

// FinalClose returns the close of the last underlying bar.
func (b *ResultBundle) FinalClose() float64 {
	if len(b.Bars) == 0 {
		return 0
	}
	return b.Bars[len(b.Bars)-1].Close
}

// BenchmarkIndex maps each benchmark date key to its cumulative return.
func (b *ResultBundle) BenchmarkIndex() map[string]float64 {
	idx := make(map[string]float64, len(b.Benchmark))
	for _, p := range b.Benchmark {
		idx[DateKey(p.Date)] = p.CumulativeReturnPct
	}
	return idx
}

// UniqueTrades collapses Trades to one entry per date, keeping the latest
// entry for a repeated date. Order of first appearance is preserved.
func (b *ResultBundle) UniqueTrades() []DatedTrade {
	pos := make(map[string]int, len(b.Trades))
	out := make([]DatedTrade, 0, len(b.Trades))
	for _, t := range b.Trades {
		key := DateKey(t.Date)
		if i, ok := pos[key]; ok {
			out[i] = t
			continue
		}
		pos[key] = len(out)
		out = append(out, t)
	}
	return out
}
