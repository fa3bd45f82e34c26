package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tradevault/Trade-Journal-Backend/internal/analytics"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/tradecsv"
)

// ImportExportService bridges the CSV codec and persistence: exports render
// the current (optionally filtered) trade set, imports persist each parsed
// trade as a brand-new record.
type ImportExportService struct {
	tradeService *TradeService
}

// NewImportExportService creates a new ImportExportService with the provided service dependency.
func NewImportExportService(tradeService *TradeService) *ImportExportService {
	return &ImportExportService{
		tradeService: tradeService,
	}
}

// ExportCSV serializes the trades matching the filter to the journal CSV format.
func (s *ImportExportService) ExportCSV(f analytics.Filter) (string, error) {
	trades, err := s.tradeService.ListTrades(f)
	if err != nil {
		return "", err
	}
	return tradecsv.Export(trades), nil
}

// ImportCSV parses a CSV blob and persists every well-formed line as a new
// trade. Malformed lines are skipped by the codec without diagnostics, so the
// returned slice is the authoritative record of what was imported.
func (s *ImportExportService) ImportCSV(ctx context.Context, data string) ([]model.Trade, error) {
	trades := tradecsv.Import(data)

	now := time.Now()
	for i := range trades {
		trades[i].CreatedAt = now
		if err := s.tradeService.tradeRepo.Insert(ctx, &trades[i]); err != nil {
			return nil, fmt.Errorf("failed to persist imported trade: %w", err)
		}
	}

	return trades, nil
}
