package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	// Simple creation with defaults
//	trade := testutil.NewTrade().Build(t, db)
//
//	// Customized trade
//	trade := testutil.NewTrade().
//	    WithDate("2024-01-15").
//	    WithPnl(-75).
//	    WithTags("breakout", "news").
//	    Build(t, db)
type TradeBuilder struct {
	ID         string
	Date       time.Time
	Symbol     string
	Side       model.Side
	Size       float64
	RiskReward float64
	Pnl        float64
	Tags       []string
	JournalID  string
	Notes      string
	CreatedAt  time.Time
}

// NewTrade creates a TradeBuilder with sensible defaults.
func NewTrade() *TradeBuilder {
	return &TradeBuilder{
		ID:         MakeID(),
		Date:       time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		Symbol:     "EUR/USD",
		Side:       model.SideLong,
		Size:       1.0,
		RiskReward: 2.0,
		Pnl:        150.0,
		Tags:       []string{},
		CreatedAt:  time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *TradeBuilder) WithID(id string) *TradeBuilder {
	b.ID = id
	return b
}

// WithDate sets the execution date from a YYYY-MM-DD string.
func (b *TradeBuilder) WithDate(day string) *TradeBuilder {
	d, err := time.Parse("2006-01-02", day)
	if err == nil {
		b.Date = d
	}
	return b
}

// WithTimestamp sets the full execution timestamp.
func (b *TradeBuilder) WithTimestamp(ts time.Time) *TradeBuilder {
	b.Date = ts
	return b
}

// WithSymbol sets a custom symbol.
func (b *TradeBuilder) WithSymbol(symbol string) *TradeBuilder {
	b.Symbol = symbol
	return b
}

// WithSide sets the trade side.
func (b *TradeBuilder) WithSide(side model.Side) *TradeBuilder {
	b.Side = side
	return b
}

// WithSize sets the position size.
func (b *TradeBuilder) WithSize(size float64) *TradeBuilder {
	b.Size = size
	return b
}

// WithRiskReward sets the risk/reward ratio.
func (b *TradeBuilder) WithRiskReward(rr float64) *TradeBuilder {
	b.RiskReward = rr
	return b
}

// WithPnl sets the realized P&L.
func (b *TradeBuilder) WithPnl(pnl float64) *TradeBuilder {
	b.Pnl = pnl
	return b
}

// WithTags sets the tag list.
func (b *TradeBuilder) WithTags(tags ...string) *TradeBuilder {
	b.Tags = tags
	return b
}

// WithJournalID links the trade to a journal entry.
func (b *TradeBuilder) WithJournalID(journalID string) *TradeBuilder {
	b.JournalID = journalID
	return b
}

// WithNotes sets the free-text notes.
func (b *TradeBuilder) WithNotes(notes string) *TradeBuilder {
	b.Notes = notes
	return b
}

// Build creates the trade in the database and returns it.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	query := `
		INSERT INTO trade (id, date, symbol, side, size, risk_reward, pnl, tags, journal_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var journalID, notes any
	if b.JournalID != "" {
		journalID = b.JournalID
	}
	if b.Notes != "" {
		notes = b.Notes
	}

	_, err := db.Exec(query,
		b.ID,
		b.Date.UTC().Format(time.RFC3339),
		b.Symbol,
		string(b.Side),
		b.Size,
		b.RiskReward,
		b.Pnl,
		strings.Join(b.Tags, ";"),
		journalID,
		notes,
		b.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	return model.Trade{
		ID:         b.ID,
		Date:       b.Date.UTC(),
		Symbol:     b.Symbol,
		Side:       b.Side,
		Size:       b.Size,
		RiskReward: b.RiskReward,
		Pnl:        b.Pnl,
		Tags:       b.Tags,
		JournalID:  b.JournalID,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt.UTC(),
	}
}

// JournalEntryBuilder provides a fluent interface for creating test journal entries.
type JournalEntryBuilder struct {
	ID        string
	Title     string
	Content   string
	Mood      string
	CreatedAt time.Time
}

// NewJournalEntry creates a JournalEntryBuilder with sensible defaults.
func NewJournalEntry() *JournalEntryBuilder {
	return &JournalEntryBuilder{
		ID:        MakeID(),
		Title:     "Test entry",
		Content:   "Test content",
		CreatedAt: time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *JournalEntryBuilder) WithID(id string) *JournalEntryBuilder {
	b.ID = id
	return b
}

// WithTitle sets a custom title.
func (b *JournalEntryBuilder) WithTitle(title string) *JournalEntryBuilder {
	b.Title = title
	return b
}

// WithContent sets a custom content body.
func (b *JournalEntryBuilder) WithContent(content string) *JournalEntryBuilder {
	b.Content = content
	return b
}

// WithMood sets the mood label.
func (b *JournalEntryBuilder) WithMood(mood string) *JournalEntryBuilder {
	b.Mood = mood
	return b
}

// Build creates the journal entry in the database and returns it.
func (b *JournalEntryBuilder) Build(t *testing.T, db *sql.DB) model.JournalEntry {
	t.Helper()

	query := `
		INSERT INTO journal_entry (id, title, content, mood, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	var mood any
	if b.Mood != "" {
		mood = b.Mood
	}

	_, err := db.Exec(query, b.ID, b.Title, b.Content, mood, b.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test journal entry: %v", err)
	}

	return model.JournalEntry{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Mood:      b.Mood,
		CreatedAt: b.CreatedAt.UTC(),
	}
}
