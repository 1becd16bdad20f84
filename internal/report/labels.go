package report

// Headers and labels shown by the report page.
var (
	tradeRecordHeaders = []string{"日期", "交易类型", "ETF价格", "行权价", "期权价格", "合约数量", "权利金", "交易成本", "Delta"}
	dailyPnLHeaders    = []string{"日期", "现金", "ETF市值", "期权市值", "总市值", "当日收益率"}
	summaryHeaders     = []string{"统计项", "数值"}
	comparisonHeaders  = []string{"指标", "期权策略", "持有ETF"}
)

const (
	contractUnit = "张"
	countUnit    = "次"
)

const (
	labelCallSold         = "卖出CALL总次数"
	labelCallExercised    = "CALL行权次数"
	labelCallExpired      = "CALL作废次数"
	labelCallPremium      = "CALL权利金总计"
	labelPutSold          = "卖出PUT总次数"
	labelPutExercised     = "PUT行权次数"
	labelPutExpired       = "PUT作废次数"
	labelPutPremium       = "PUT权利金总计"
	labelTotalPremium     = "收取权利金总计"
	labelETFTradingPnL    = "ETF交易已实现盈亏"
	labelETFCurrentValue  = "ETF持仓市值"
	labelETFUnrealizedPnL = "ETF持仓未实现盈亏"
	labelETFExercisePnL   = "ETF交易总盈亏"
	labelTransactionCost  = "总交易成本"
)

const (
	labelCumulativeReturn = "累计收益率"
	labelAnnualReturn     = "年化收益率"
	labelMaxDailyLoss     = "单日最大亏损"
	labelMaxDrawdown      = "最大回撤"
	labelAnnualVolatility = "年化波动率"
	labelSharpeRatio      = "夏普比率"
)

const (
	chartTitleFormat    = "期权策略 vs 持有%sETF收益率对比"
	traceStrategyName   = "期权策略收益率"
	traceBenchmarkName  = "持有%sETF收益率"
	tracePutName        = "卖出PUT"
	traceCallName       = "卖出CALL"
	traceDrawdownFormat = "最大回撤 (%.2f%%)"
	axisDateTitle       = "日期"
	axisReturnTitle     = "累计收益率 (%)"
)
