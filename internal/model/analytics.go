package model

// DailyAggregation is the per-calendar-date rollup of trade statistics.
// It is derived data, never stored directly; days without trades are never emitted.
type DailyAggregation struct {
	Date          string   `json:"date"` // YYYY-MM-DD
	TotalPnl      float64  `json:"totalPnl"`
	TradeCount    int      `json:"tradeCount"`
	AvgRiskReward float64  `json:"avgRiskReward"`
	Tags          []string `json:"tags"`   // deduplicated union, first-seen order
	Trades        []Trade  `json:"trades"` // contributing trades, input order
}

// DayPnl identifies a calendar date together with its summed P&L.
type DayPnl struct {
	Date string  `json:"date"`
	Pnl  float64 `json:"pnl"`
}

// WeeklySummary is a single rollup over a caller-supplied date range.
// The range is echoed back verbatim; nothing requires it to span an actual
// calendar week.
//
// BestDay and WorstDay are nil when TotalTrades is zero. Callers must check
// TotalTrades before relying on them.
type WeeklySummary struct {
	WeekStart   string  `json:"weekStart"`
	WeekEnd     string  `json:"weekEnd"`
	TotalPnl    float64 `json:"totalPnl"`
	WinRate     float64 `json:"winRate"` // percentage 0-100; 0 when no trades
	BestDay     *DayPnl `json:"bestDay"`
	WorstDay    *DayPnl `json:"worstDay"`
	TotalTrades int     `json:"totalTrades"`
	TopTag      string  `json:"topTag"` // "None" when no trade carries tags
}

// DailySummaryRow is one materialized per-day rollup in the summary cache
// table. It carries the cheap scalar fields of a DailyAggregation so the
// dashboard fast path can skip loading trades.
type DailySummaryRow struct {
	Date          string  `json:"date"`
	TotalPnl      float64 `json:"totalPnl"`
	TradeCount    int     `json:"tradeCount"`
	AvgRiskReward float64 `json:"avgRiskReward"`
	CalculatedAt  string  `json:"calculatedAt,omitempty"`
}
