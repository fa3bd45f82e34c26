// Package validation checks incoming API payloads before they reach the
// service layer. Each Validate* function inspects a full request and reports
// every failing field at once, so a client can correct a trade or journal
// payload in a single round trip.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error collects per-field validation failures for one request payload.
type Error struct {
	Fields map[string]string
}

// Error renders the field messages in field-name order so the message is
// stable across calls on the same payload.
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, field := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}
