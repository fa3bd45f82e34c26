package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// SummaryCacheRepository provides data access methods for the
// daily_summary_cache table: pre-calculated per-day rollups that serve the
// dashboard fast path instead of recomputing aggregations from raw trades on
// every request. The cache is derived data and can always be rebuilt.
type SummaryCacheRepository struct {
	db *sql.DB
}

// NewSummaryCacheRepository creates a new repository instance.
func NewSummaryCacheRepository(db *sql.DB) *SummaryCacheRepository {
	return &SummaryCacheRepository{db: db}
}

// GetRange retrieves cached daily rollups within the inclusive day-key range,
// sorted ascending by date. Returns an empty slice when the cache holds
// nothing for the range.
func (r *SummaryCacheRepository) GetRange(startDay, endDay string) ([]model.DailySummaryRow, error) {
	query := `
		SELECT date, total_pnl, trade_count, avg_risk_reward, calculated_at
		FROM daily_summary_cache
		WHERE date >= ?
		AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_summary_cache table: %w", err)
	}
	defer rows.Close()

	summaries := []model.DailySummaryRow{}
	for rows.Next() {
		var s model.DailySummaryRow
		if err := rows.Scan(&s.Date, &s.TotalPnl, &s.TradeCount, &s.AvgRiskReward, &s.CalculatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan daily_summary_cache row: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily_summary_cache table: %w", err)
	}

	return summaries, nil
}

// ReplaceAll atomically swaps the cache contents for the given rows.
// Rebuilds run inside a transaction so readers never observe a half-built cache.
func (r *SummaryCacheRepository) ReplaceAll(ctx context.Context, rows []model.DailySummaryRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cache rebuild: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_summary_cache`); err != nil {
		return fmt.Errorf("failed to clear daily_summary_cache: %w", err)
	}

	calculatedAt := time.Now().UTC().Format("2006-01-02T15:04:05Z07:00")
	insert := `
		INSERT INTO daily_summary_cache (date, total_pnl, trade_count, avg_risk_reward, calculated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, insert, row.Date, row.TotalPnl, row.TradeCount, row.AvgRiskReward, calculatedAt); err != nil {
			return fmt.Errorf("failed to insert daily_summary_cache row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache rebuild: %w", err)
	}

	return nil
}
