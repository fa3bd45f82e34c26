package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
)

// MakeID returns a fresh UUID string for test fixtures.
func MakeID() string {
	return uuid.New().String()
}

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)

	return service.NewTradeService(tradeRepo)
}

func NewTestJournalService(t *testing.T, db *sql.DB) *service.JournalService {
	t.Helper()

	journalRepo := repository.NewJournalEntryRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	return service.NewJournalService(journalRepo, tradeRepo)
}

func NewTestAnalyticsService(t *testing.T, db *sql.DB) *service.AnalyticsService {
	t.Helper()

	return service.NewAnalyticsService(NewTestTradeService(t, db))
}

func NewTestSummaryCacheService(t *testing.T, db *sql.DB) *service.SummaryCacheService {
	t.Helper()

	cacheRepo := repository.NewSummaryCacheRepository(db)

	return service.NewSummaryCacheService(cacheRepo, NewTestTradeService(t, db))
}

func NewTestImportExportService(t *testing.T, db *sql.DB) *service.ImportExportService {
	t.Helper()

	return service.NewImportExportService(NewTestTradeService(t, db))
}

// NewTestSystemService creates a SystemService without a fernet key, so API
// keys are stored in plaintext. Tests covering encryption pass a key instead.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	settingRepo := repository.NewSettingRepository(db)
	systemService, err := service.NewSystemService(db, settingRepo, "")
	if err != nil {
		t.Fatalf("Failed to create system service: %v", err)
	}
	return systemService
}
