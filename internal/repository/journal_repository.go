package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// JournalEntryRepository provides data access methods for the journal_entry table.
type JournalEntryRepository struct {
	db *sql.DB
}

// NewJournalEntryRepository creates a new JournalEntryRepository with the provided database connection.
func NewJournalEntryRepository(db *sql.DB) *JournalEntryRepository {
	return &JournalEntryRepository{db: db}
}

// List retrieves all journal entries, newest first.
func (r *JournalEntryRepository) List() ([]model.JournalEntry, error) {
	query := `
		SELECT id, title, content, mood, created_at
		FROM journal_entry
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal_entry table: %w", err)
	}
	defer rows.Close()

	entries := []model.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal_entry table: %w", err)
	}

	return entries, nil
}

// Get retrieves a single journal entry by ID.
// Returns apperrors.ErrJournalEntryNotFound if no row exists.
func (r *JournalEntryRepository) Get(id string) (model.JournalEntry, error) {
	query := `
		SELECT id, title, content, mood, created_at
		FROM journal_entry
		WHERE id = ?
	`

	e, err := scanJournalEntry(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return model.JournalEntry{}, apperrors.ErrJournalEntryNotFound
	}
	if err != nil {
		return model.JournalEntry{}, err
	}

	return e, nil
}

// Insert stores a new journal entry. The caller assigns the ID.
func (r *JournalEntryRepository) Insert(ctx context.Context, e *model.JournalEntry) error {
	query := `
		INSERT INTO journal_entry (id, title, content, mood, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Content,
		nullableString(e.Mood),
		e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

// Update replaces the mutable fields of a journal entry.
// Returns apperrors.ErrJournalEntryNotFound if no row matched.
func (r *JournalEntryRepository) Update(ctx context.Context, e *model.JournalEntry) error {
	query := `
		UPDATE journal_entry
		SET title = ?, content = ?, mood = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, e.Title, e.Content, nullableString(e.Mood), e.ID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrJournalEntryNotFound
	}

	return nil
}

// Delete removes a journal entry by ID.
// Returns apperrors.ErrJournalEntryNotFound if no row matched.
func (r *JournalEntryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM journal_entry WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrJournalEntryNotFound
	}

	return nil
}

func scanJournalEntry(row scanner) (model.JournalEntry, error) {
	var e model.JournalEntry
	var createdAtStr string
	var mood sql.NullString

	err := row.Scan(&e.ID, &e.Title, &e.Content, &mood, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.JournalEntry{}, err
	}
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("failed to scan journal_entry row: %w", err)
	}

	e.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || e.CreatedAt.IsZero() {
		return model.JournalEntry{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if mood.Valid {
		e.Mood = mood.String
	}

	return e, nil
}
