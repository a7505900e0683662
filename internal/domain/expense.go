package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by exactly one user.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expenseDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ExpenseFilter narrows expense queries. The date range is inclusive on both
// ends and only active when both bounds are set.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

// HasDateRange reports whether both range bounds are present.
func (f *ExpenseFilter) HasDateRange() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}

// UpdateExpenseData carries a partial update. A nil field means "leave the
// stored value untouched"; a non-nil field is an explicit new value, so a
// zero amount or empty-string update is applied rather than skipped.
type UpdateExpenseData struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	ExpenseDate *time.Time
}

// ExpenseRepository is the persistence contract for expense records.
//
// ListByOwner returns records ordered by expense date descending with
// creation time descending as tie-break; callers depend on that ordering.
// Update and Delete match on both id and owner in a single conditional
// statement and return ErrExpenseNotFound when nothing matched, so a record
// owned by someone else is indistinguishable from a missing one.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) (*Expense, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, filter *ExpenseFilter) ([]*Expense, error)
	Update(ctx context.Context, userID, id uuid.UUID, data *UpdateExpenseData) (*Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
