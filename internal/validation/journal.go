package validation

import (
	"strings"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
)

// ValidateCreateJournalEntry validates a journal entry creation request.
// Title and content are required; mood is free-form and optional.
func ValidateCreateJournalEntry(req request.CreateJournalEntryRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Title) == "" {
		errors["title"] = "title is required"
	}
	if strings.TrimSpace(req.Content) == "" {
		errors["content"] = "content is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateJournalEntry validates a journal entry update request.
// Fields are optional but must be non-blank when provided.
func ValidateUpdateJournalEntry(req request.UpdateJournalEntryRequest) error {
	errors := make(map[string]string)

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errors["title"] = "title is required"
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errors["content"] = "content is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
