package service

import (
	"context"
	"fmt"
	"log"

	"github.com/tradevault/Trade-Journal-Backend/internal/analytics"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
)

// SummaryCacheService maintains the materialized per-day rollups.
// The cron scheduler calls Refresh on a fixed schedule; reads fall back to
// on-demand aggregation when the cache has nothing for the requested range,
// so a cold or stale cache never changes results, only latency.
type SummaryCacheService struct {
	cacheRepo    *repository.SummaryCacheRepository
	tradeService *TradeService
}

// NewSummaryCacheService creates a new SummaryCacheService with the provided dependencies.
func NewSummaryCacheService(
	cacheRepo *repository.SummaryCacheRepository,
	tradeService *TradeService,
) *SummaryCacheService {
	return &SummaryCacheService{
		cacheRepo:    cacheRepo,
		tradeService: tradeService,
	}
}

// Refresh rebuilds the whole cache from the trade table.
func (s *SummaryCacheService) Refresh(ctx context.Context) error {
	trades, err := s.tradeService.ListTrades(analytics.Filter{})
	if err != nil {
		return fmt.Errorf("failed to load trades for cache rebuild: %w", err)
	}

	daily := analytics.AggregateDaily(trades)
	rows := make([]model.DailySummaryRow, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, model.DailySummaryRow{
			Date:          d.Date,
			TotalPnl:      d.TotalPnl,
			TradeCount:    d.TradeCount,
			AvgRiskReward: d.AvgRiskReward,
		})
	}

	return s.cacheRepo.ReplaceAll(ctx, rows)
}

// RefreshJob is the cron entrypoint; it logs failures instead of returning
// them because the scheduler has no caller to report to.
func (s *SummaryCacheService) RefreshJob() {
	if err := s.Refresh(context.Background()); err != nil {
		log.Printf("summary cache refresh failed: %v", err)
		return
	}
	log.Printf("summary cache refreshed")
}

// GetDailySummaries returns cached rollups for the inclusive day range,
// computing them on demand when the cache holds nothing for the range.
func (s *SummaryCacheService) GetDailySummaries(startDay, endDay string) ([]model.DailySummaryRow, error) {
	cached, err := s.cacheRepo.GetRange(startDay, endDay)
	if err != nil {
		return nil, err
	}
	if len(cached) > 0 {
		return cached, nil
	}

	trades, err := s.tradeService.ListTrades(analytics.Filter{Start: startDay, End: endDay})
	if err != nil {
		return nil, err
	}

	rows := []model.DailySummaryRow{}
	for _, d := range analytics.AggregateDaily(trades) {
		rows = append(rows, model.DailySummaryRow{
			Date:          d.Date,
			TotalPnl:      d.TotalPnl,
			TradeCount:    d.TradeCount,
			AvgRiskReward: d.AvgRiskReward,
		})
	}
	return rows, nil
}
