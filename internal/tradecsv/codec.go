// Package tradecsv implements the trade journal's CSV interchange format.
//
// The format predates this service and is consumed by external tooling, so the
// header line and field order are a wire contract. It is deliberately not
// RFC 4180: every field is wrapped in double quotes on export but embedded
// quotes and commas inside field values are NOT escaped, and import strips
// quotes positionally rather than unescaping. encoding/csv would quietly
// repair both behaviors, which is exactly why it is not used here.
package tradecsv

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// Header is the fixed first line of every export. Changing it is a breaking
// change to the interchange format.
const Header = "Date,Symbol,Side,Size,R:R,P&L,Tags,Notes"

const tagSeparator = ";"

// Export serializes trades to the journal CSV format. Each field is wrapped in
// double quotes; tags are joined with ";" before quoting. Field values
// containing quotes or commas are written as-is.
func Export(trades []model.Trade) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")

	for _, t := range trades {
		fields := []string{
			t.Date.UTC().Format(time.RFC3339),
			t.Symbol,
			string(t.Side),
			formatFloat(t.Size),
			formatFloat(t.RiskReward),
			formatFloat(t.Pnl),
			strings.Join(t.Tags, tagSeparator),
			t.Notes,
		}
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"`)
			b.WriteString(f)
			b.WriteString(`"`)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Import parses a journal CSV blob back into trades. The first non-blank line
// is discarded as the header without being validated. Each remaining line is
// split on commas outside quotes and mapped positionally; lines with fewer
// than 6 fields are silently skipped, as are lines whose date cannot be
// parsed. Numeric fields parse permissively: malformed values become 0 rather
// than errors, matching the format's historical behavior.
//
// Imported trades are always new records: each gets a freshly generated ID and
// no journal linkage, regardless of what the source file carried.
func Import(data string) []model.Trade {
	lines := []string{}
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 1 {
		return []model.Trade{}
	}

	trades := []model.Trade{}
	for _, line := range lines[1:] {
		fields := splitLine(line)
		if len(fields) < 6 {
			continue
		}

		date, err := parseDate(fields[0])
		if err != nil {
			continue
		}

		t := model.Trade{
			ID:         uuid.New().String(),
			Date:       date,
			Symbol:     fields[1],
			Side:       model.Side(fields[2]),
			Size:       parseFloat(fields[3]),
			RiskReward: parseFloat(fields[4]),
			Pnl:        parseFloat(fields[5]),
			Tags:       []string{},
		}
		if len(fields) > 6 {
			t.Tags = parseTags(fields[6])
		}
		if len(fields) > 7 {
			t.Notes = fields[7]
		}

		trades = append(trades, t)
	}

	return trades
}

// splitLine splits on commas that are outside double quotes and strips the
// surrounding quotes from each field.
func splitLine(line string) []string {
	fields := []string{}
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())

	return fields
}

func parseTags(field string) []string {
	tags := []string{}
	for _, tag := range strings.Split(field, tagSeparator) {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseDate(field string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, field); err == nil {
			return t.UTC(), nil
		}
	}
	_, err := time.Parse(time.RFC3339, field)
	return time.Time{}, err
}

// parseFloat is deliberately permissive: malformed numerics become 0.
func parseFloat(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
