package model

import "time"

// Side identifies the direction of a trade.
type Side string

// Allowed trade sides.
const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Valid reports whether s is one of the allowed trade sides.
func (s Side) Valid() bool {
	return s == SideLong || s == SideShort
}

// Trade represents one recorded position in the trade journal.
// Validation of field values is the API layer's responsibility; the analytics
// core accepts any structurally complete Trade.
type Trade struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Symbol     string    `json:"symbol"`
	Side       Side      `json:"side"`
	Size       float64   `json:"size"`
	RiskReward float64   `json:"riskReward"`
	Pnl        float64   `json:"pnl"`
	Tags       []string  `json:"tags"`
	JournalID  string    `json:"journalId,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// DayKey returns the calendar-date grouping key for the trade (YYYY-MM-DD, UTC).
func (t Trade) DayKey() string {
	return t.Date.UTC().Format("2006-01-02")
}

// Journaled reports whether the trade is linked to a journal entry.
// Presence of the back-reference is the sole criterion.
func (t Trade) Journaled() bool {
	return t.JournalID != ""
}
