package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/google/uuid"
)

// MockExpenseRepository is an in-memory implementation of
// domain.ExpenseRepository. It enforces the same ownership-opaque not-found
// policy and result ordering as the real store.
type MockExpenseRepository struct {
	Expenses map[uuid.UUID]*domain.Expense
	// ListErr forces ListByOwner to fail, for store-failure paths.
	ListErr error
	now     time.Time
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[uuid.UUID]*domain.Expense),
		now:      time.Now().UTC(),
	}
}

// Create inserts a new expense with a fresh ID
func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	stored := *expense
	stored.ID = uuid.New()
	stored.CreatedAt = m.tick()
	stored.UpdatedAt = stored.CreatedAt
	m.Expenses[stored.ID] = &stored
	return &stored, nil
}

// GetByID retrieves an owned expense
func (m *MockExpenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error) {
	expense, ok := m.Expenses[id]
	if !ok || expense.UserID != userID {
		return nil, domain.ErrExpenseNotFound
	}
	return expense, nil
}

// ListByOwner retrieves an owner's expenses with filters applied, newest
// expense date first and creation time descending as tie-break
func (m *MockExpenseRepository) ListByOwner(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) ([]*domain.Expense, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	var expenses []*domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID != userID {
			continue
		}
		if filter.HasDateRange() {
			if expense.ExpenseDate.Before(*filter.StartDate) || expense.ExpenseDate.After(*filter.EndDate) {
				continue
			}
		}
		if filter != nil && filter.Category != nil && expense.Category != *filter.Category {
			continue
		}
		expenses = append(expenses, expense)
	}

	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].ExpenseDate.Equal(expenses[j].ExpenseDate) {
			return expenses[i].ExpenseDate.After(expenses[j].ExpenseDate)
		}
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	return expenses, nil
}

// Update applies a partial update under the ownership-opaque policy
func (m *MockExpenseRepository) Update(ctx context.Context, userID, id uuid.UUID, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	expense, ok := m.Expenses[id]
	if !ok || expense.UserID != userID {
		return nil, domain.ErrExpenseNotFound
	}

	if data.Description != nil {
		expense.Description = *data.Description
	}
	if data.Amount != nil {
		expense.Amount = *data.Amount
	}
	if data.Category != nil {
		expense.Category = *data.Category
	}
	if data.ExpenseDate != nil {
		expense.ExpenseDate = *data.ExpenseDate
	}
	expense.UpdatedAt = m.tick()
	return expense, nil
}

// Delete removes an owned expense
func (m *MockExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	expense, ok := m.Expenses[id]
	if !ok || expense.UserID != userID {
		return domain.ErrExpenseNotFound
	}
	delete(m.Expenses, id)
	return nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = m.tick()
	}
	m.Expenses[expense.ID] = expense
}

// tick returns strictly increasing timestamps so creation-order tie-breaks
// are deterministic in tests.
func (m *MockExpenseRepository) tick() time.Time {
	m.now = m.now.Add(time.Millisecond)
	return m.now
}

// MockUserRepository is an in-memory implementation of domain.UserRepository
type MockUserRepository struct {
	ByAuth0ID map[string]*domain.User
	ByID      map[uuid.UUID]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByAuth0ID: make(map[string]*domain.User),
		ByID:      make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 subject
func (m *MockUserRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error) {
	if user, ok := m.ByAuth0ID[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetByAuth0ID upserts a user keyed by Auth0 subject
func (m *MockUserRepository) CreateOrGetByAuth0ID(ctx context.Context, auth0ID, email string, name *string) (*domain.User, error) {
	if user, ok := m.ByAuth0ID[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:        uuid.New(),
		Auth0ID:   auth0ID,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	m.ByAuth0ID[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByAuth0ID[user.Auth0ID] = user
	m.ByID[user.ID] = user
}
