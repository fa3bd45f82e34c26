// Package analytics contains the pure trade-journal computation core:
// predicate filtering, daily aggregation, and range summarization. Every
// function is a deterministic, side-effect-free transform over trades the
// caller has already loaded and scoped to the right owner.
package analytics

import "github.com/tradevault/Trade-Journal-Backend/internal/model"

// Filter is a predicate specification over a trade collection. Dimensions are
// combined with AND; values within a dimension are combined with OR.
//
// For the slice dimensions (Symbols, Sides, Tags) a nil slice means the
// dimension is absent and matches everything, while a non-nil empty slice
// means the dimension is present but matches nothing. Callers building
// filters from query strings must preserve that distinction.
type Filter struct {
	Start string // inclusive lower day bound (YYYY-MM-DD), empty = unbounded
	End   string // inclusive upper day bound (YYYY-MM-DD), empty = unbounded

	Symbols       []string
	Sides         []model.Side
	Tags          []string // trade matches if it carries at least one of these
	JournaledOnly bool
}

// Apply returns the trades satisfying every dimension of the filter,
// preserving input order. It never errors and never mutates its input.
func Apply(trades []model.Trade, f Filter) []model.Trade {
	matched := []model.Trade{}
	for _, t := range trades {
		if f.matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

func (f Filter) matches(t model.Trade) bool {
	day := t.DayKey()
	if f.Start != "" && day < f.Start {
		return false
	}
	if f.End != "" && day > f.End {
		return false
	}
	if f.Symbols != nil && !containsString(f.Symbols, t.Symbol) {
		return false
	}
	if f.Sides != nil && !containsSide(f.Sides, t.Side) {
		return false
	}
	if f.Tags != nil && !hasAnyTag(t.Tags, f.Tags) {
		return false
	}
	if f.JournaledOnly && !t.Journaled() {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsSide(set []model.Side, v model.Side) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func hasAnyTag(tradeTags, wanted []string) bool {
	for _, tag := range tradeTags {
		if containsString(wanted, tag) {
			return true
		}
	}
	return false
}
