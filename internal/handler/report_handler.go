package handler

import (
	"net/http"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/avelis/spendtrack-backend/internal/middleware"
	"github.com/avelis/spendtrack-backend/internal/query"
	"github.com/avelis/spendtrack-backend/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler handles the aggregated spending views
type ReportHandler struct {
	reportService *service.ReportService
	queryBuilder  *query.Builder
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService, queryBuilder *query.Builder) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		queryBuilder:  queryBuilder,
	}
}

// CategorySummaryResponse is one per-category summary row
type CategorySummaryResponse struct {
	Category    string `json:"category"`
	TotalAmount string `json:"totalAmount"`
	Count       int    `json:"count"`
}

// MonthlySummaryResponse is one monthly trend row
type MonthlySummaryResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	TotalAmount string `json:"totalAmount"`
}

// MonthlyBreakdownResponse is one month-by-category row
type MonthlyBreakdownResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Category    string `json:"category"`
	TotalAmount string `json:"totalAmount"`
}

// TopCategoryResponse is one top-categories row
type TopCategoryResponse struct {
	Category    string `json:"category"`
	TotalAmount string `json:"totalAmount"`
}

// TotalResponse carries the sum over the filtered records
type TotalResponse struct {
	Total string `json:"total"`
}

// GetSummary godoc
// @Summary Per-category spending summary
// @Description Sum and count expenses per category over an optional date range, highest total first
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} CategorySummaryResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/summary [get]
func (h *ReportHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filter, err := h.queryBuilder.ParseFilter(c.QueryParams())
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	rows, err := h.reportService.CategorySummary(c.Request().Context(), userID, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build category summary")
		return NewInternalError(c, "Failed to build summary")
	}

	responses := make([]CategorySummaryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, CategorySummaryResponse{
			Category:    row.Category,
			TotalAmount: row.TotalAmount.StringFixed(2),
			Count:       row.Count,
		})
	}
	return c.JSON(http.StatusOK, responses)
}

// GetMonthly godoc
// @Summary Monthly spending trend
// @Description Sum expenses per calendar month (UTC), chronologically ascending
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} MonthlySummaryResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/monthly [get]
func (h *ReportHandler) GetMonthly(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	rows, err := h.reportService.MonthlyTrend(c.Request().Context(), userID, &domain.ExpenseFilter{})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build monthly trend")
		return NewInternalError(c, "Failed to build monthly trend")
	}

	responses := make([]MonthlySummaryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, MonthlySummaryResponse{
			Year:        row.Year,
			Month:       row.Month,
			TotalAmount: row.TotalAmount.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, responses)
}

// GetMonthlyBreakdown godoc
// @Summary Month-by-category breakdown
// @Description Sum expenses per month and category over optional range and category filters
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Param category query string false "Exact category match"
// @Success 200 {array} MonthlyBreakdownResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/monthly-breakdown [get]
func (h *ReportHandler) GetMonthlyBreakdown(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filter, err := h.queryBuilder.ParseFilter(c.QueryParams())
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	rows, err := h.reportService.MonthlyBreakdown(c.Request().Context(), userID, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build monthly breakdown")
		return NewInternalError(c, "Failed to build monthly breakdown")
	}

	responses := make([]MonthlyBreakdownResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, MonthlyBreakdownResponse{
			Year:        row.Year,
			Month:       row.Month,
			Category:    row.Category,
			TotalAmount: row.TotalAmount.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, responses)
}

// GetTopCategories godoc
// @Summary Top spending categories
// @Description The N categories with the highest summed spending over an optional date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Row limit (default 5)"
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} TopCategoryResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/top-categories [get]
func (h *ReportHandler) GetTopCategories(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filter, err := h.queryBuilder.ParseFilter(c.QueryParams())
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	limit, err := h.queryBuilder.ParseLimit(c.QueryParams(), domain.DefaultTopCategoriesLimit)
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	rows, err := h.reportService.TopCategories(c.Request().Context(), userID, filter, limit)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to build top categories")
		return NewInternalError(c, "Failed to build top categories")
	}

	responses := make([]TopCategoryResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, TopCategoryResponse{
			Category:    row.Category,
			TotalAmount: row.TotalAmount.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, responses)
}

// GetTotal godoc
// @Summary Total spending
// @Description Sum all expenses over an optional date range; zero when nothing matches
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} TotalResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses/total [get]
func (h *ReportHandler) GetTotal(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filter, err := h.queryBuilder.ParseFilter(c.QueryParams())
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	total, err := h.reportService.Total(c.Request().Context(), userID, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to compute total")
		return NewInternalError(c, "Failed to compute total")
	}

	return c.JSON(http.StatusOK, TotalResponse{Total: total.StringFixed(2)})
}
