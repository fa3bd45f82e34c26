package analytics

import "github.com/tradevault/Trade-Journal-Backend/internal/model"

// NoTopTag is reported when no matched trade carries any tag.
const NoTopTag = "None"

// SummarizeRange filters trades to the [weekStart, weekEnd] range (plus any
// additional filter dimensions) and reduces the matches to a single
// WeeklySummary. The boundaries are echoed back verbatim; nothing validates
// that they align to a calendar week or span seven days.
//
// With zero matching trades the summary degrades to zeros: WinRate 0 (never
// NaN), BestDay and WorstDay nil. Callers must check TotalTrades before
// reading BestDay/WorstDay.
func SummarizeRange(trades []model.Trade, weekStart, weekEnd string, f Filter) model.WeeklySummary {
	f.Start = weekStart
	f.End = weekEnd
	matched := Apply(trades, f)

	summary := model.WeeklySummary{
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		TotalTrades: len(matched),
		TopTag:      NoTopTag,
	}

	var wins int
	pnlByDay := make(map[string]float64)
	dayOrder := []string{}
	tagCounts := make(map[string]int)
	tagOrder := []string{}

	for _, t := range matched {
		summary.TotalPnl += t.Pnl
		if t.Pnl > 0 {
			wins++
		}

		day := t.DayKey()
		if _, ok := pnlByDay[day]; !ok {
			dayOrder = append(dayOrder, day)
		}
		pnlByDay[day] += t.Pnl

		for _, tag := range t.Tags {
			if _, ok := tagCounts[tag]; !ok {
				tagOrder = append(tagOrder, tag)
			}
			tagCounts[tag]++
		}
	}

	if len(matched) > 0 {
		summary.WinRate = float64(wins) / float64(len(matched)) * 100
	}

	// Best/worst day over the per-date sums. Ties keep the first-encountered
	// date so repeated runs over the same input are deterministic.
	for _, day := range dayOrder {
		pnl := pnlByDay[day]
		if summary.BestDay == nil || pnl > summary.BestDay.Pnl {
			summary.BestDay = &model.DayPnl{Date: day, Pnl: pnl}
		}
		if summary.WorstDay == nil || pnl < summary.WorstDay.Pnl {
			summary.WorstDay = &model.DayPnl{Date: day, Pnl: pnl}
		}
	}

	// Top tag by occurrence count, first-seen-wins on ties.
	best := 0
	for _, tag := range tagOrder {
		if tagCounts[tag] > best {
			best = tagCounts[tag]
			summary.TopTag = tag
		}
	}

	return summary
}
