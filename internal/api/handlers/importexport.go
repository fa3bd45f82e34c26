package handlers

import (
	"io"
	"net/http"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
	"github.com/tradevault/Trade-Journal-Backend/internal/api/response"
	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
)

// ImportExportHandler handles CSV import and export of trades.
type ImportExportHandler struct {
	importExportService *service.ImportExportService
}

// NewImportExportHandler creates a new ImportExportHandler with the provided service dependency.
func NewImportExportHandler(importExportService *service.ImportExportService) *ImportExportHandler {
	return &ImportExportHandler{
		importExportService: importExportService,
	}
}

// ExportTrades handles GET requests to download trades as CSV.
// The same filter parameters as the trade list endpoint apply.
//
// Endpoint: GET /api/trade/export?start_date&end_date&symbols&sides&tags&journaled_only
// Response: 200 OK, text/csv attachment
// Error: 400 Bad Request if a filter parameter is malformed
// Error: 500 Internal Server Error if export fails
func (h *ImportExportHandler) ExportTrades(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseTradeFilters(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	csv, err := h.importExportService.ExportCSV(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExportTrades.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trades.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}

// ImportTrades handles POST requests to import trades from a CSV body.
// Every well-formed line becomes a new trade with a fresh ID; malformed lines
// are skipped silently, matching the interchange format's contract.
//
// Endpoint: POST /api/trade/import (body: CSV text)
// Response: 201 Created with array of imported Trade
// Error: 400 Bad Request if the body cannot be read
// Error: 500 Internal Server Error if persistence fails
func (h *ImportExportHandler) ImportTrades(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	trades, err := h.importExportService.ImportCSV(r.Context(), string(body))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trades)
}
