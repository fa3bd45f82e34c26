package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
	"github.com/tradevault/Trade-Journal-Backend/internal/api/response"
	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
	"github.com/tradevault/Trade-Journal-Backend/internal/validation"
)

// TradeHandler handles HTTP requests for trade endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the tradeService.
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler with the provided service dependency.
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// ListTrades handles GET requests to retrieve trades, optionally filtered.
//
// Endpoint: GET /api/trade?start_date&end_date&symbols&sides&tags&journaled_only
// Response: 200 OK with array of Trade
// Error: 400 Bad Request if a filter parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseTradeFilters(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	trades, err := h.tradeService.ListTrades(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// GetTrade handles GET requests to retrieve a single trade by ID.
//
// Endpoint: GET /api/trade/{uuid}
// Response: 200 OK with Trade
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TradeHandler) GetTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	trade, err := h.tradeService.GetTrade(tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// CreateTrade handles POST requests to create a new trade.
// Validates the request body and stores the trade with a freshly assigned ID.
//
// Endpoint: POST /api/trade
// Request Body: CreateTradeRequest (date, symbol, side, size, riskReward, pnl, tags, journalId, notes)
// Response: 201 Created with Trade
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *TradeHandler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateTrade(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToCreateTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// UpdateTrade handles PUT requests to update an existing trade.
// All body fields are optional; the trade ID is immutable.
//
// Endpoint: PUT /api/trade/{uuid}
// Request Body: UpdateTradeRequest (all fields optional)
// Response: 200 OK with updated Trade
// Error: 400 Bad Request if trade ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if update fails
func (h *TradeHandler) UpdateTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.UpdateTrade(r.Context(), tradeID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trade)
}

// DeleteTrade handles DELETE requests to remove a trade.
//
// Endpoint: DELETE /api/trade/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if trade ID is invalid (validated by middleware)
// Error: 404 Not Found if trade not found
// Error: 500 Internal Server Error if deletion fails
func (h *TradeHandler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	err := h.tradeService.DeleteTrade(r.Context(), tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteTrade.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
