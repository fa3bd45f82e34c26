package analytics

import (
	"sort"

	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// AggregateDaily groups an already-filtered trade sequence by calendar date
// and reduces each group into a DailyAggregation. Only dates with at least one
// trade are emitted; there is no zero-padding of gap days. The result is
// sorted ascending by date string.
func AggregateDaily(trades []model.Trade) []model.DailyAggregation {
	byDay := make(map[string][]model.Trade)
	for _, t := range trades {
		key := t.DayKey()
		byDay[key] = append(byDay[key], t)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]model.DailyAggregation, 0, len(days))
	for _, day := range days {
		result = append(result, reduceDay(day, byDay[day]))
	}
	return result
}

// reduceDay computes the derived fields for one date's trades.
// The average risk/reward is an unweighted arithmetic mean; dayTrades is
// never empty because AggregateDaily only buckets dates that have trades.
func reduceDay(day string, dayTrades []model.Trade) model.DailyAggregation {
	agg := model.DailyAggregation{
		Date:   day,
		Trades: dayTrades,
		Tags:   []string{},
	}

	seen := make(map[string]bool)
	var rrSum float64
	for _, t := range dayTrades {
		agg.TotalPnl += t.Pnl
		rrSum += t.RiskReward
		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				agg.Tags = append(agg.Tags, tag)
			}
		}
	}
	agg.TradeCount = len(dayTrades)
	agg.AvgRiskReward = rrSum / float64(len(dayTrades))

	return agg
}
