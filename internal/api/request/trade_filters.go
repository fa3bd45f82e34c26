package request

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tradevault/Trade-Journal-Backend/internal/analytics"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// ParseTradeFilters extracts trade filters from query parameters.
//
// Parameters are comma-separated strings (symbols, sides, tags) or single
// values, all optional:
//   - start_date / end_date: YYYY-MM-DD (validated, normalized to day keys)
//   - symbols: comma-separated symbol list
//   - sides:   comma-separated, each must be LONG or SHORT (case-insensitive)
//   - tags:    comma-separated tag list
//   - journaled_only: "true" to keep only trades linked to a journal entry
//
// A key that is present but empty (e.g. "symbols=") produces a present-but-
// empty filter dimension, which matches nothing. An absent key leaves the
// dimension nil, which matches everything. The analytics filter relies on
// that distinction, so this parser must never collapse empty into nil.
//
// Returns an error if any parameter fails validation.
func ParseTradeFilters(query url.Values) (analytics.Filter, error) {
	f := analytics.Filter{}

	if start := query.Get("start_date"); start != "" {
		day, err := parseDayKey(start)
		if err != nil {
			return f, fmt.Errorf("invalid start_date format: %w", err)
		}
		f.Start = day
	}

	if end := query.Get("end_date"); end != "" {
		day, err := parseDayKey(end)
		if err != nil {
			return f, fmt.Errorf("invalid end_date format: %w", err)
		}
		f.End = day
	}

	if f.Start != "" && f.End != "" && f.Start > f.End {
		return f, fmt.Errorf("invalid date range: start_date is after end_date")
	}

	if query.Has("symbols") {
		f.Symbols = splitParam(query.Get("symbols"))
	}

	if query.Has("sides") {
		f.Sides = []model.Side{}
		for _, raw := range splitParam(query.Get("sides")) {
			side := model.Side(strings.ToUpper(raw))
			if !side.Valid() {
				return f, fmt.Errorf("invalid side: %s", raw)
			}
			f.Sides = append(f.Sides, side)
		}
	}

	if query.Has("tags") {
		f.Tags = splitParam(query.Get("tags"))
	}

	if strings.EqualFold(query.Get("journaled_only"), "true") {
		f.JournaledOnly = true
	}

	return f, nil
}

// splitParam splits a comma-separated parameter, dropping blank elements.
// Always returns a non-nil slice so empty parameters stay "present".
func splitParam(param string) []string {
	values := []string{}
	for _, v := range strings.Split(param, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

// parseDayKey validates a date parameter and normalizes it to YYYY-MM-DD.
func parseDayKey(str string) (string, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("cannot parse %q as a date", str)
}
