package service

import (
	"context"
	"strings"
	"time"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense CRUD business logic
type ExpenseService struct {
	expenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput holds the input for creating an expense. Pointer fields
// distinguish "absent from the payload" from zero values.
type CreateExpenseInput struct {
	Description string
	Amount      *decimal.Decimal
	Category    string
	ExpenseDate *time.Time
}

// CreateExpense validates required fields and persists a new expense.
// Description, amount, category and date are all mandatory on create; a zero
// amount is accepted, a negative one is not.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, input CreateExpenseInput) (*domain.Expense, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrDescriptionTooLong
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	if len(category) > domain.MaxCategoryLength {
		return nil, domain.ErrCategoryTooLong
	}

	if input.Amount == nil {
		return nil, domain.ErrAmountRequired
	}
	if input.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if input.ExpenseDate == nil {
		return nil, domain.ErrDateRequired
	}

	expense := &domain.Expense{
		UserID:      userID,
		Description: description,
		Amount:      *input.Amount,
		Category:    category,
		ExpenseDate: *input.ExpenseDate,
	}

	return s.expenseRepo.Create(ctx, expense)
}

// ListExpenses retrieves an owner's expenses with optional filters, newest
// first.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) ([]*domain.Expense, error) {
	expenses, err := s.expenseRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []*domain.Expense{}
	}
	return expenses, nil
}

// UpdateExpense applies a partial update. Fields absent from the payload
// keep their stored value; present fields are trimmed like on create and
// overwrite, including a zero amount or an empty description. A payload with
// no fields is a no-op that returns the current record.
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, id uuid.UUID, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	if data == nil {
		data = &domain.UpdateExpenseData{}
	} else {
		copied := *data
		data = &copied
	}

	if data.Description != nil {
		description := strings.TrimSpace(*data.Description)
		if len(description) > domain.MaxDescriptionLength {
			return nil, domain.ErrDescriptionTooLong
		}
		data.Description = &description
	}
	if data.Category != nil {
		category := strings.TrimSpace(*data.Category)
		if len(category) > domain.MaxCategoryLength {
			return nil, domain.ErrCategoryTooLong
		}
		data.Category = &category
	}
	if data.Amount != nil && data.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	return s.expenseRepo.Update(ctx, userID, id, data)
}

// DeleteExpense removes an owner's expense. Deleting a missing or foreign
// record returns domain.ErrExpenseNotFound.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, userID, id)
}
