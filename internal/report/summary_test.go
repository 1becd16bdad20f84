package report

import (
	"testing"

	"github.com/newthinker/overlay/internal/backtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveETFPnL_NotNettedAgainstCost(t *testing.T) {
	stats := backtest.Statistics{ETFSellIncome: 500, ETFBuyCost: 300, MaxETFHeld: 10}

	pnl := DeriveETFPnL(stats, 50)

	assert.Equal(t, 200.0, pnl.Trading)
	assert.Equal(t, 500.0, pnl.CurrentValue)
	assert.Equal(t, 500.0, pnl.Unrealized)
	assert.Equal(t, 700.0, pnl.Exercise)
}

func TestAggregateSummary_Rows(t *testing.T) {
	b := sampleBundle()

	table := AggregateSummary(b.Statistics, 50)

	assert.Equal(t, []string{"统计项", "数值"}, table.Headers)
	require.Len(t, table.Rows, 14)

	got := map[string]string{}
	for _, row := range table.Rows {
		require.Len(t, row, 2)
		got[row[0].Text] = row[1].Text
	}
	assert.Equal(t, "1次", got["卖出CALL总次数"])
	assert.Equal(t, "0次", got["CALL行权次数"])
	assert.Equal(t, "1次", got["PUT作废次数"])
	assert.Equal(t, "615.00", got["CALL权利金总计"])
	assert.Equal(t, "1368.00", got["PUT权利金总计"])
	assert.Equal(t, "1983.00", got["收取权利金总计"])
	assert.Equal(t, "200.00", got["ETF交易已实现盈亏"])
	assert.Equal(t, "500.00", got["ETF持仓市值"])
	assert.Equal(t, "500.00", got["ETF持仓未实现盈亏"])
	assert.Equal(t, "700.00", got["ETF交易总盈亏"])
	assert.Equal(t, "15.20", got["总交易成本"])
}

func TestAggregateSummary_ZeroStatistics(t *testing.T) {
	table := AggregateSummary(backtest.Statistics{}, 0)

	require.Len(t, table.Rows, 14)
	assert.Equal(t, "0次", table.Rows[0][1].Text)
	assert.Equal(t, "0.00", table.Rows[len(table.Rows)-1][1].Text)
}
