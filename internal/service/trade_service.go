package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tradevault/Trade-Journal-Backend/internal/analytics"
	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
)

// TradeService handles trade CRUD and filtered listing. The filter semantics
// live in the analytics package; this service only loads rows and delegates.
type TradeService struct {
	tradeRepo *repository.TradeRepository
}

// NewTradeService creates a new TradeService with the provided repository dependency.
func NewTradeService(tradeRepo *repository.TradeRepository) *TradeService {
	return &TradeService{
		tradeRepo: tradeRepo,
	}
}

// ListTrades retrieves all trades matching the filter, in execution-date order.
// An empty filter returns every trade.
func (s *TradeService) ListTrades(f analytics.Filter) ([]model.Trade, error) {
	trades, err := s.tradeRepo.List()
	if err != nil {
		return nil, err
	}
	return analytics.Apply(trades, f), nil
}

// GetTrade retrieves a single trade by its ID.
// Returns apperrors.ErrTradeNotFound when the ID is unknown.
func (s *TradeService) GetTrade(tradeID string) (model.Trade, error) {
	return s.tradeRepo.Get(tradeID)
}

// CreateTrade assigns a fresh ID and stores the trade described by the request.
// The request is assumed to be validated by the handler.
func (s *TradeService) CreateTrade(ctx context.Context, req request.CreateTradeRequest) (*model.Trade, error) {
	tradeDate, err := repository.ParseTime(req.Date)
	if err != nil {
		return nil, err
	}

	trade := &model.Trade{
		ID:         uuid.New().String(),
		Date:       tradeDate,
		Symbol:     req.Symbol,
		Side:       model.Side(req.Side),
		Size:       req.Size,
		RiskReward: req.RiskReward,
		Pnl:        req.Pnl,
		Tags:       req.Tags,
		JournalID:  req.JournalID,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
	}
	if trade.Tags == nil {
		trade.Tags = []string{}
	}

	if err := s.tradeRepo.Insert(ctx, trade); err != nil {
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	return trade, nil
}

// UpdateTrade applies a partial update to an existing trade. Only fields
// present in the request change; the ID is immutable.
// Returns apperrors.ErrTradeNotFound when the ID is unknown.
func (s *TradeService) UpdateTrade(ctx context.Context, tradeID string, req request.UpdateTradeRequest) (*model.Trade, error) {
	trade, err := s.tradeRepo.Get(tradeID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		tradeDate, err := repository.ParseTime(*req.Date)
		if err != nil {
			return nil, err
		}
		trade.Date = tradeDate
	}
	if req.Symbol != nil {
		trade.Symbol = *req.Symbol
	}
	if req.Side != nil {
		trade.Side = model.Side(*req.Side)
	}
	if req.Size != nil {
		trade.Size = *req.Size
	}
	if req.RiskReward != nil {
		trade.RiskReward = *req.RiskReward
	}
	if req.Pnl != nil {
		trade.Pnl = *req.Pnl
	}
	if req.Tags != nil {
		trade.Tags = *req.Tags
	}
	if req.JournalID != nil {
		trade.JournalID = *req.JournalID
	}
	if req.Notes != nil {
		trade.Notes = *req.Notes
	}

	if err := s.tradeRepo.Update(ctx, &trade); err != nil {
		return nil, err
	}

	return &trade, nil
}

// DeleteTrade removes a trade by ID.
// Returns apperrors.ErrTradeNotFound when the ID is unknown.
func (s *TradeService) DeleteTrade(ctx context.Context, tradeID string) error {
	return s.tradeRepo.Delete(ctx, tradeID)
}
