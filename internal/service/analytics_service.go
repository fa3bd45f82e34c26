package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tradevault/Trade-Journal-Backend/internal/analytics"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
)

// AnalyticsService exposes the pure aggregation core over persisted trades.
// It loads trades through the TradeService and hands them to the analytics
// package; no aggregation logic lives here.
type AnalyticsService struct {
	tradeService *TradeService
}

// NewAnalyticsService creates a new AnalyticsService with the provided service dependency.
func NewAnalyticsService(tradeService *TradeService) *AnalyticsService {
	return &AnalyticsService{
		tradeService: tradeService,
	}
}

// Overview bundles the two derived views the dashboard renders together.
type Overview struct {
	Daily  []model.DailyAggregation `json:"daily"`
	Weekly model.WeeklySummary      `json:"weekly"`
}

// GetDaily returns per-day rollups for trades matching the filter,
// sorted ascending by date. Days without trades are not emitted.
func (s *AnalyticsService) GetDaily(f analytics.Filter) ([]model.DailyAggregation, error) {
	trades, err := s.tradeService.ListTrades(f)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateDaily(trades), nil
}

// GetWeekly returns a single rollup over the [weekStart, weekEnd] range.
// The boundaries are echoed back verbatim, per the interchange contract.
func (s *AnalyticsService) GetWeekly(weekStart, weekEnd string, f analytics.Filter) (model.WeeklySummary, error) {
	trades, err := s.tradeService.ListTrades(analytics.Filter{})
	if err != nil {
		return model.WeeklySummary{}, err
	}
	return analytics.SummarizeRange(trades, weekStart, weekEnd, f), nil
}

// GetOverview computes the daily and weekly views for the same range
// concurrently. Both reads are independent snapshots of the trade table.
func (s *AnalyticsService) GetOverview(ctx context.Context, start, end string, f analytics.Filter) (*Overview, error) {
	overview := &Overview{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		dailyFilter := f
		dailyFilter.Start = start
		dailyFilter.End = end
		daily, err := s.GetDaily(dailyFilter)
		if err != nil {
			return err
		}
		overview.Daily = daily
		return nil
	})

	g.Go(func() error {
		weekly, err := s.GetWeekly(start, end, f)
		if err != nil {
			return err
		}
		overview.Weekly = weekly
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}
