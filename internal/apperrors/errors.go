package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrJournalEntryNotFound indicates that a journal entry with the given ID does not exist.
	ErrJournalEntryNotFound = errors.New("journal entry not found")

	// ErrSettingNotFound indicates that a setting with the given key has not been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidSide indicates a trade side outside the LONG/SHORT set.
	ErrInvalidSide = errors.New("invalid trade side")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveTrades  = errors.New("failed to retrieve trades")
	ErrFailedToRetrieveTrade   = errors.New("failed to retrieve trade")
	ErrFailedToCreateTrade     = errors.New("failed to create trade")
	ErrFailedToUpdateTrade     = errors.New("failed to update trade")
	ErrFailedToDeleteTrade     = errors.New("failed to delete trade")
	ErrFailedToImportTrades    = errors.New("failed to import trades")
	ErrFailedToExportTrades    = errors.New("failed to export trades")
	ErrFailedToRetrieveJournal = errors.New("failed to retrieve journal entries")
	ErrFailedToCreateJournal   = errors.New("failed to create journal entry")
	ErrFailedToUpdateJournal   = errors.New("failed to update journal entry")
	ErrFailedToDeleteJournal   = errors.New("failed to delete journal entry")
	ErrFailedToGetDaily        = errors.New("failed to compute daily aggregation")
	ErrFailedToGetWeekly       = errors.New("failed to compute weekly summary")
	ErrFailedToGetOverview     = errors.New("failed to compute analytics overview")
	ErrFailedToRefreshCache    = errors.New("failed to refresh summary cache")
	ErrFailedToSetAPIKey       = errors.New("failed to set API key")
	ErrFailedToGetVersionInfo  = errors.New("failed to get version information")
)
