package service_test

import (
	"context"
	"testing"

	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
	"github.com/tradevault/Trade-Journal-Backend/internal/testutil"
)

func TestSummaryCacheService_Refresh(t *testing.T) {
	t.Run("materializes one row per trading day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryCacheService(t, db)

		testutil.NewTrade().WithDate("2024-01-15").WithPnl(100).WithRiskReward(2).Build(t, db)
		testutil.NewTrade().WithDate("2024-01-15").WithPnl(-25).WithRiskReward(1).Build(t, db)
		testutil.NewTrade().WithDate("2024-01-16").WithPnl(320).Build(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		rows, err := svc.GetDailySummaries("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("GetDailySummaries() returned unexpected error: %v", err)
		}

		if len(rows) != 2 {
			t.Fatalf("Expected 2 cached rows, got %d", len(rows))
		}
		if rows[0].Date != "2024-01-15" || rows[1].Date != "2024-01-16" {
			t.Errorf("Expected ascending dates, got %s then %s", rows[0].Date, rows[1].Date)
		}
		if rows[0].TotalPnl != 75 {
			t.Errorf("Expected totalPnl 75, got %f", rows[0].TotalPnl)
		}
		if rows[0].TradeCount != 2 {
			t.Errorf("Expected tradeCount 2, got %d", rows[0].TradeCount)
		}
		if rows[0].AvgRiskReward != 1.5 {
			t.Errorf("Expected avgRiskReward 1.5, got %f", rows[0].AvgRiskReward)
		}
		if rows[0].CalculatedAt == "" {
			t.Error("Expected calculatedAt to be set on cached rows")
		}
	})

	t.Run("replaces stale rows on rebuild", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryCacheService(t, db)
		ts := testutil.NewTestTradeService(t, db)

		tr := testutil.NewTrade().WithDate("2024-01-15").WithPnl(100).Build(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		if err := ts.DeleteTrade(context.Background(), tr.ID); err != nil {
			t.Fatalf("DeleteTrade() returned unexpected error: %v", err)
		}
		testutil.NewTrade().WithDate("2024-01-20").WithPnl(50).Build(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		rows, err := svc.GetDailySummaries("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("GetDailySummaries() returned unexpected error: %v", err)
		}

		if len(rows) != 1 {
			t.Fatalf("Expected 1 cached row after rebuild, got %d", len(rows))
		}
		if rows[0].Date != "2024-01-20" {
			t.Errorf("Expected 2024-01-20, got %s", rows[0].Date)
		}
	})

	t.Run("refresh of an empty trade table clears the cache", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryCacheService(t, db)
		ts := testutil.NewTestTradeService(t, db)

		tr := testutil.NewTrade().WithDate("2024-01-15").Build(t, db)
		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		if err := ts.DeleteTrade(context.Background(), tr.ID); err != nil {
			t.Fatalf("DeleteTrade() returned unexpected error: %v", err)
		}
		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		rows, err := svc.GetDailySummaries("2024-01-01", "2024-12-31")
		if err != nil {
			t.Fatalf("GetDailySummaries() returned unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("Expected empty cache, got %d rows", len(rows))
		}
	})
}

func TestSummaryCacheService_GetDailySummaries(t *testing.T) {
	t.Run("falls back to on-demand aggregation when the cache is cold", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryCacheService(t, db)

		testutil.NewTrade().WithDate("2024-01-15").WithPnl(100).Build(t, db)

		rows, err := svc.GetDailySummaries("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("GetDailySummaries() returned unexpected error: %v", err)
		}

		if len(rows) != 1 {
			t.Fatalf("Expected 1 row from fallback, got %d", len(rows))
		}
		if rows[0].Date != "2024-01-15" || rows[0].TotalPnl != 100 {
			t.Errorf("Expected 2024-01-15 with pnl 100, got %+v", rows[0])
		}
		// Fallback rows are computed, not cached.
		if rows[0].CalculatedAt != "" {
			t.Errorf("Expected no calculation timestamp on fallback rows, got %q", rows[0].CalculatedAt)
		}
	})

	t.Run("returns day keys exactly as stored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		cacheRepo := repository.NewSummaryCacheRepository(db)

		stored := model.DailySummaryRow{Date: "2024-01-15", TotalPnl: 75, TradeCount: 2, AvgRiskReward: 1.5}
		if err := cacheRepo.ReplaceAll(context.Background(), []model.DailySummaryRow{stored}); err != nil {
			t.Fatalf("ReplaceAll() returned unexpected error: %v", err)
		}

		rows, err := cacheRepo.GetRange("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("GetRange() returned unexpected error: %v", err)
		}

		if len(rows) != 1 {
			t.Fatalf("Expected 1 row, got %d", len(rows))
		}
		// The column must round-trip the YYYY-MM-DD key verbatim, without the
		// driver expanding it into a timestamp.
		if rows[0].Date != "2024-01-15" {
			t.Errorf("Expected day key 2024-01-15, got %q", rows[0].Date)
		}
	})

	t.Run("respects the requested day range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSummaryCacheService(t, db)

		testutil.NewTrade().WithDate("2024-01-15").Build(t, db)
		testutil.NewTrade().WithDate("2024-02-15").Build(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		rows, err := svc.GetDailySummaries("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("GetDailySummaries() returned unexpected error: %v", err)
		}

		if len(rows) != 1 {
			t.Fatalf("Expected 1 row in January, got %d", len(rows))
		}
		if rows[0].Date != "2024-01-15" {
			t.Errorf("Expected 2024-01-15, got %s", rows[0].Date)
		}
	})
}
