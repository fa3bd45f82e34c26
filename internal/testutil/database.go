package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the goose migrations in internal/database.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Trade table
		CREATE TABLE IF NOT EXISTS trade (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			date DATETIME NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			side VARCHAR(5) NOT NULL,
			size FLOAT NOT NULL,
			risk_reward FLOAT NOT NULL,
			pnl FLOAT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			journal_id VARCHAR(36),
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_trade_date ON trade(date);

		-- Journal entry table
		CREATE TABLE IF NOT EXISTS journal_entry (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			content TEXT NOT NULL,
			mood VARCHAR(20),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Setting table
		CREATE TABLE IF NOT EXISTS setting (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);

		-- Daily summary cache table. The date column is a YYYY-MM-DD day key;
		-- a DATE declaration would make the driver convert it on scan.
		CREATE TABLE IF NOT EXISTS daily_summary_cache (
			date TEXT NOT NULL PRIMARY KEY,
			total_pnl FLOAT NOT NULL,
			trade_count INTEGER NOT NULL,
			avg_risk_reward FLOAT NOT NULL,
			calculated_at DATETIME NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
