package validation

import (
	"fmt"
	"strings"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
	"github.com/tradevault/Trade-Journal-Backend/internal/model"
	"github.com/tradevault/Trade-Journal-Backend/internal/repository"
)

// ValidateCreateTrade validates a trade creation request.
//
// Required fields:
//   - date: YYYY-MM-DD or RFC3339
//   - symbol: non-empty
//   - side: LONG or SHORT
//   - size: positive
//
// riskReward and pnl may be any real number, including negative and zero.
// journalId, when present, must be a valid UUID.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTrade(req request.CreateTradeRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := repository.ParseTime(req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if !model.Side(req.Side).Valid() {
		errors["side"] = fmt.Sprintf("invalid side: %s", req.Side)
	}

	if req.Size <= 0.0 {
		errors["size"] = "size must be positive"
	}

	if req.JournalID != "" {
		if err := ValidateUUID(req.JournalID); err != nil {
			errors["journalId"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateTrade validates a trade update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUpdateTrade(req request.UpdateTradeRequest) error {
	errors := make(map[string]string)

	if req.Date != nil {
		if strings.TrimSpace(*req.Date) == "" {
			errors["date"] = "date is required"
		} else if _, err := repository.ParseTime(*req.Date); err != nil {
			errors["date"] = err.Error()
		}
	}
	if req.Symbol != nil {
		if strings.TrimSpace(*req.Symbol) == "" {
			errors["symbol"] = "symbol is required"
		}
	}
	if req.Side != nil {
		if !model.Side(*req.Side).Valid() {
			errors["side"] = fmt.Sprintf("invalid side: %s", *req.Side)
		}
	}
	if req.Size != nil {
		if *req.Size <= 0.0 {
			errors["size"] = "size must be positive"
		}
	}
	if req.JournalID != nil && *req.JournalID != "" {
		if err := ValidateUUID(*req.JournalID); err != nil {
			errors["journalId"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
