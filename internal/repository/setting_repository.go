package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
)

// SettingRepository provides data access methods for the setting key/value table.
// Secrets (like the API key) are encrypted by the service layer before they
// reach this repository; it stores values opaquely.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves the value stored under key.
// Returns apperrors.ErrSettingNotFound if the key has never been set.
func (r *SettingRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM setting WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting table: %w", err)
	}
	return value, nil
}

// Set stores or replaces the value under key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO setting (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
