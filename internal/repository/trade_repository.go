package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// tagSeparator joins a trade's tags into the single TEXT column they are
// stored in. Must match the CSV codec's tag separator so exports and storage
// agree on what a tag can't contain.
const tagSeparator = ";"

// TradeRepository provides data access methods for the trade table.
// Filtering and aggregation happen in the analytics package; this layer only
// loads and mutates rows.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// List retrieves all trades ordered by execution date ascending. That order is
// the canonical input order the analytics core's tie-break rules depend on.
func (r *TradeRepository) List() ([]model.Trade, error) {
	query := `
		SELECT id, date, symbol, side, size, risk_reward, pnl, tags, journal_id, notes, created_at
		FROM trade
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	trades := []model.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return trades, nil
}

// Get retrieves a single trade by ID.
// Returns apperrors.ErrTradeNotFound if no row exists.
func (r *TradeRepository) Get(id string) (model.Trade, error) {
	query := `
		SELECT id, date, symbol, side, size, risk_reward, pnl, tags, journal_id, notes, created_at
		FROM trade
		WHERE id = ?
	`

	row := r.db.QueryRow(query, id)
	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return model.Trade{}, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return model.Trade{}, err
	}

	return t, nil
}

// Insert stores a new trade. The caller is responsible for assigning the ID.
func (r *TradeRepository) Insert(ctx context.Context, t *model.Trade) error {
	query := `
		INSERT INTO trade (id, date, symbol, side, size, risk_reward, pnl, tags, journal_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Date.UTC().Format("2006-01-02T15:04:05Z07:00"),
		t.Symbol,
		string(t.Side),
		t.Size,
		t.RiskReward,
		t.Pnl,
		strings.Join(t.Tags, tagSeparator),
		nullableString(t.JournalID),
		nullableString(t.Notes),
		t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}

	return nil
}

// Update replaces every mutable field of the trade row identified by t.ID.
// The ID itself is immutable. Returns apperrors.ErrTradeNotFound if no row matched.
func (r *TradeRepository) Update(ctx context.Context, t *model.Trade) error {
	query := `
		UPDATE trade
		SET date = ?, symbol = ?, side = ?, size = ?, risk_reward = ?, pnl = ?, tags = ?, journal_id = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.Date.UTC().Format("2006-01-02T15:04:05Z07:00"),
		t.Symbol,
		string(t.Side),
		t.Size,
		t.RiskReward,
		t.Pnl,
		strings.Join(t.Tags, tagSeparator),
		nullableString(t.JournalID),
		nullableString(t.Notes),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// Delete removes a trade by ID.
// Returns apperrors.ErrTradeNotFound if no row matched.
func (r *TradeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trade WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// ClearJournalRefs nulls the journal_id of every trade referencing the given
// journal entry. Used when the entry itself is deleted.
func (r *TradeRepository) ClearJournalRefs(ctx context.Context, journalID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE trade SET journal_id = NULL WHERE journal_id = ?`, journalID)
	if err != nil {
		return fmt.Errorf("failed to clear journal references: %w", err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (model.Trade, error) {
	var t model.Trade
	var dateStr, createdAtStr string
	var tagsStr string
	var journalID, notes sql.NullString

	err := row.Scan(
		&t.ID,
		&dateStr,
		&t.Symbol,
		(*string)(&t.Side),
		&t.Size,
		&t.RiskReward,
		&t.Pnl,
		&tagsStr,
		&journalID,
		&notes,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Trade{}, err
	}
	if err != nil {
		return model.Trade{}, fmt.Errorf("failed to scan trade row: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Trade{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Trade{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.Tags = splitTags(tagsStr)
	if journalID.Valid {
		t.JournalID = journalID.String
	}
	if notes.Valid {
		t.Notes = notes.String
	}

	return t, nil
}

func splitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, tagSeparator) {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
