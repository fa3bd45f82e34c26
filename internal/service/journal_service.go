package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
)

// JournalService handles journal entry CRUD. Trades reference entries through
// journal_id without a foreign key; deleting an entry clears those references
// so the "journaled only" filter stays truthful.
type JournalService struct {
	journalRepo *repository.JournalEntryRepository
	tradeRepo   *repository.TradeRepository
}

// NewJournalService creates a new JournalService with the provided repository dependencies.
func NewJournalService(
	journalRepo *repository.JournalEntryRepository,
	tradeRepo *repository.TradeRepository,
) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		tradeRepo:   tradeRepo,
	}
}

// ListEntries retrieves all journal entries, newest first.
func (s *JournalService) ListEntries() ([]model.JournalEntry, error) {
	return s.journalRepo.List()
}

// GetEntry retrieves a single journal entry by ID.
// Returns apperrors.ErrJournalEntryNotFound when the ID is unknown.
func (s *JournalService) GetEntry(entryID string) (model.JournalEntry, error) {
	return s.journalRepo.Get(entryID)
}

// CreateEntry assigns a fresh ID and stores the journal entry.
func (s *JournalService) CreateEntry(ctx context.Context, req request.CreateJournalEntryRequest) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		CreatedAt: time.Now(),
	}

	if err := s.journalRepo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	return entry, nil
}

// UpdateEntry applies a partial update to an existing journal entry.
// Returns apperrors.ErrJournalEntryNotFound when the ID is unknown.
func (s *JournalService) UpdateEntry(ctx context.Context, entryID string, req request.UpdateJournalEntryRequest) (*model.JournalEntry, error) {
	entry, err := s.journalRepo.Get(entryID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}

	if err := s.journalRepo.Update(ctx, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// DeleteEntry removes a journal entry and clears the journal_id of every
// trade that referenced it.
// Returns apperrors.ErrJournalEntryNotFound when the ID is unknown.
func (s *JournalService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.journalRepo.Delete(ctx, entryID); err != nil {
		return err
	}
	return s.tradeRepo.ClearJournalRefs(ctx, entryID)
}
