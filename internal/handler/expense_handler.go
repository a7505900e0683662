package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/avelis/spendtrack-backend/internal/middleware"
	"github.com/avelis/spendtrack-backend/internal/query"
	"github.com/avelis/spendtrack-backend/internal/service"
	"github.com/avelis/spendtrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense CRUD HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
	queryBuilder   *query.Builder
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService, queryBuilder *query.Builder) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		queryBuilder:   queryBuilder,
	}
}

// CreateExpenseRequest represents the create expense request body. Amounts
// travel as decimal strings to avoid float drift.
type CreateExpenseRequest struct {
	Description string  `json:"description"`
	Amount      *string `json:"amount"`
	Category    string  `json:"category"`
	Date        *string `json:"date"`
}

// UpdateExpenseRequest represents the partial update request body. A nil
// field was absent from the payload; a present field is applied verbatim,
// including "0" amounts and empty descriptions.
type UpdateExpenseRequest struct {
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Category:    e.Category,
		Date:        e.ExpenseDate.UTC().Format(util.DateLayout),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateExpense godoc
// @Summary Create an expense
// @Description Record a new expense for the authenticated user
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "Expense creation request"
// @Success 201 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	input := service.CreateExpenseInput{
		Description: req.Description,
		Category:    req.Category,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Amount must be a valid decimal number")
		}
		input.Amount = &amount
	}

	if req.Date != nil {
		date, err := util.ParseDate(*req.Date)
		if err != nil {
			return NewValidationError(c, "Date must be in YYYY-MM-DD format")
		}
		input.ExpenseDate = &date
	}

	expense, err := h.expenseService.CreateExpense(c.Request().Context(), userID, input)
	if err != nil {
		if message, ok := validationMessage(err); ok {
			return NewValidationError(c, message)
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	log.Info().Str("user_id", userID.String()).Str("expense_id", expense.ID.String()).Str("category", expense.Category).Msg("Expense created")

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses godoc
// @Summary List expenses
// @Description List the authenticated user's expenses, newest first, with an optional inclusive date range
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (YYYY-MM-DD)"
// @Param endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} ExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filter, err := h.queryBuilder.ParseFilter(c.QueryParams())
	if err != nil {
		return NewValidationError(c, err.Error())
	}

	expenses, err := h.expenseService.ListExpenses(c.Request().Context(), userID, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list expenses")
		return NewInternalError(c, "Failed to list expenses")
	}

	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, toExpenseResponse(expense))
	}
	return c.JSON(http.StatusOK, responses)
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Partially update an owned expense; omitted fields keep their value
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body UpdateExpenseRequest true "Expense update request"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id reads the same as a missing record.
		return NewNotFoundError(c, "Expense not found")
	}

	var req UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body")
	}

	data := &domain.UpdateExpenseData{
		Description: req.Description,
		Category:    req.Category,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Amount must be a valid decimal number")
		}
		data.Amount = &amount
	}

	if req.Date != nil {
		date, err := util.ParseDate(*req.Date)
		if err != nil {
			return NewValidationError(c, "Date must be in YYYY-MM-DD format")
		}
		data.ExpenseDate = &date
	}

	expense, err := h.expenseService.UpdateExpense(c.Request().Context(), userID, id, data)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		if message, ok := validationMessage(err); ok {
			return NewValidationError(c, message)
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Failed to update expense")
		return NewInternalError(c, "Failed to update expense")
	}

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Description Delete an owned expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewNotFoundError(c, "Expense not found")
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}

	log.Info().Str("user_id", userID.String()).Str("expense_id", id.String()).Msg("Expense deleted")

	return c.JSON(http.StatusOK, map[string]string{"message": "Expense deleted"})
}

// validationMessage maps domain validation errors to client-safe messages.
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrDescriptionRequired):
		return "Description is required", true
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return "Description must be 255 characters or less", true
	case errors.Is(err, domain.ErrCategoryRequired):
		return "Category is required", true
	case errors.Is(err, domain.ErrCategoryTooLong):
		return "Category must be 100 characters or less", true
	case errors.Is(err, domain.ErrAmountRequired):
		return "Amount is required", true
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be a non-negative decimal", true
	case errors.Is(err, domain.ErrDateRequired):
		return "Date is required", true
	case errors.Is(err, domain.ErrInvalidDate):
		return "Date must be in YYYY-MM-DD format", true
	}
	return "", false
}
