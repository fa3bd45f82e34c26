package handlers

import (
	"net/http"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/request"
	"github.com/tradevault/Trade-Journal-Backend/internal/api/response"
	"github.com/tradevault/Trade-Journal-Backend/internal/apperrors"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
)

// AnalyticsHandler handles HTTP requests for derived trade analytics.
type AnalyticsHandler struct {
	analyticsService    *service.AnalyticsService
	summaryCacheService *service.SummaryCacheService
}

// NewAnalyticsHandler creates a new AnalyticsHandler with the provided service dependencies.
func NewAnalyticsHandler(
	analyticsService *service.AnalyticsService,
	summaryCacheService *service.SummaryCacheService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService:    analyticsService,
		summaryCacheService: summaryCacheService,
	}
}

// Daily handles GET requests for per-day rollups.
//
// Endpoint: GET /api/analytics/daily?start_date&end_date&symbols&sides&tags&journaled_only
// Response: 200 OK with array of DailyAggregation (ascending by date)
// Error: 400 Bad Request if a filter parameter is malformed
// Error: 500 Internal Server Error if aggregation fails
func (h *AnalyticsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseTradeFilters(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	daily, err := h.analyticsService.GetDaily(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDaily.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, daily)
}

// Weekly handles GET requests for a single range rollup.
// week_start and week_end are required and echoed back verbatim in the
// summary; nothing checks that they span an actual calendar week.
//
// Endpoint: GET /api/analytics/weekly?week_start&week_end&symbols&sides&tags&journaled_only
// Response: 200 OK with WeeklySummary
// Error: 400 Bad Request if parameters are missing or malformed
// Error: 500 Internal Server Error if summarization fails
func (h *AnalyticsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")
	weekEnd := r.URL.Query().Get("week_end")
	if weekStart == "" || weekEnd == "" {
		response.RespondError(w, http.StatusBadRequest, "week_start and week_end are required", "")
		return
	}

	filter, err := request.ParseTradeFilters(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	summary, err := h.analyticsService.GetWeekly(weekStart, weekEnd, filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetWeekly.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Overview handles GET requests for the combined dashboard view: daily
// rollups and the range summary for the same window, computed concurrently.
//
// Endpoint: GET /api/analytics/overview?start_date&end_date&...filters
// Response: 200 OK with {daily, weekly}
// Error: 400 Bad Request if parameters are missing or malformed
// Error: 500 Internal Server Error if either computation fails
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		response.RespondError(w, http.StatusBadRequest, "start_date and end_date are required", "")
		return
	}

	filter, err := request.ParseTradeFilters(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	overview, err := h.analyticsService.GetOverview(r.Context(), filter.Start, filter.End, filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}

// DailySummaries handles GET requests for the cached scalar per-day rollups
// backing the dashboard calendar. Falls back to on-demand aggregation when
// the cache is cold.
//
// Endpoint: GET /api/analytics/summaries?start_date&end_date
// Response: 200 OK with array of DailySummaryRow
// Error: 400 Bad Request if parameters are missing or malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *AnalyticsHandler) DailySummaries(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseTradeFilters(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}
	if filter.Start == "" || filter.End == "" {
		response.RespondError(w, http.StatusBadRequest, "start_date and end_date are required", "")
		return
	}

	summaries, err := h.summaryCacheService.GetDailySummaries(filter.Start, filter.End)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetDaily.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}
