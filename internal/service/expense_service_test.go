package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/avelis/spendtrack-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createInput(description, amount, category string, day time.Time) CreateExpenseInput {
	a := decimal.RequireFromString(amount)
	return CreateExpenseInput{
		Description: description,
		Amount:      &a,
		Category:    category,
		ExpenseDate: &day,
	}
}

func TestCreateExpense_Success(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	expense, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if expense.Description != "Lunch" {
		t.Errorf("Expected description 'Lunch', got %s", expense.Description)
	}
	if expense.UserID != userID {
		t.Errorf("Expected owner %s, got %s", userID, expense.UserID)
	}
	if expense.Amount.StringFixed(2) != "12.50" {
		t.Errorf("Expected amount 12.50, got %s", expense.Amount)
	}
}

func TestCreateExpense_TrimsFields(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)

	expense, err := svc.CreateExpense(context.Background(), uuid.New(), createInput("  Lunch  ", "5", "  food ", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if expense.Description != "Lunch" {
		t.Errorf("Expected trimmed description, got %q", expense.Description)
	}
	if expense.Category != "food" {
		t.Errorf("Expected trimmed category, got %q", expense.Category)
	}
}

func TestCreateExpense_MissingFields(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()
	day := date(2024, 1, 5)
	amount := decimal.NewFromInt(10)

	cases := []struct {
		name  string
		input CreateExpenseInput
		want  error
	}{
		{"missing description", CreateExpenseInput{Amount: &amount, Category: "food", ExpenseDate: &day}, domain.ErrDescriptionRequired},
		{"whitespace description", CreateExpenseInput{Description: "   ", Amount: &amount, Category: "food", ExpenseDate: &day}, domain.ErrDescriptionRequired},
		{"missing category", CreateExpenseInput{Description: "Lunch", Amount: &amount, ExpenseDate: &day}, domain.ErrCategoryRequired},
		{"missing amount", CreateExpenseInput{Description: "Lunch", Category: "food", ExpenseDate: &day}, domain.ErrAmountRequired},
		{"missing date", CreateExpenseInput{Description: "Lunch", Amount: &amount, Category: "food"}, domain.ErrDateRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateExpense(context.Background(), userID, tc.input)
			if err != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateExpense_NegativeAmount(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)

	_, err := svc.CreateExpense(context.Background(), uuid.New(), createInput("Refund", "-5", "food", date(2024, 1, 5)))
	if err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateExpense_ZeroAmountAllowed(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)

	expense, err := svc.CreateExpense(context.Background(), uuid.New(), createInput("Free sample", "0", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !expense.Amount.IsZero() {
		t.Errorf("Expected zero amount, got %s", expense.Amount)
	}
}

func TestCreateExpense_DescriptionTooLong(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)

	_, err := svc.CreateExpense(context.Background(), uuid.New(), createInput(strings.Repeat("a", 256), "5", "food", date(2024, 1, 5)))
	if err != domain.ErrDescriptionTooLong {
		t.Errorf("Expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestListExpenses_OrderedByDateDescending(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	for _, d := range []time.Time{date(2024, 1, 5), date(2024, 3, 1), date(2024, 2, 10)} {
		if _, err := svc.CreateExpense(context.Background(), userID, createInput("x", "1", "misc", d)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	expenses, err := svc.ListExpenses(context.Background(), userID, &domain.ExpenseFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("Expected 3 expenses, got %d", len(expenses))
	}
	for i := 1; i < len(expenses); i++ {
		if expenses[i].ExpenseDate.After(expenses[i-1].ExpenseDate) {
			t.Errorf("Expected descending dates, got %v before %v", expenses[i-1].ExpenseDate, expenses[i].ExpenseDate)
		}
	}
}

func TestListExpenses_EmptyIsNotNil(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)

	expenses, err := svc.ListExpenses(context.Background(), uuid.New(), &domain.ExpenseFilter{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if expenses == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(expenses) != 0 {
		t.Errorf("Expected no expenses, got %d", len(expenses))
	}
}

func TestUpdateExpense_PartialKeepsOtherFields(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	created, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newCategory := "restaurants"
	updated, err := svc.UpdateExpense(context.Background(), userID, created.ID, &domain.UpdateExpenseData{Category: &newCategory})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Category != "restaurants" {
		t.Errorf("Expected updated category, got %s", updated.Category)
	}
	if updated.Description != "Lunch" {
		t.Errorf("Expected description untouched, got %s", updated.Description)
	}
	if updated.Amount.StringFixed(2) != "12.50" {
		t.Errorf("Expected amount untouched, got %s", updated.Amount)
	}
}

func TestUpdateExpense_ZeroAmountIsExplicit(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	created, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	zero := decimal.Zero
	updated, err := svc.UpdateExpense(context.Background(), userID, created.ID, &domain.UpdateExpenseData{Amount: &zero})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !updated.Amount.IsZero() {
		t.Errorf("Expected amount updated to zero, got %s", updated.Amount)
	}
}

func TestUpdateExpense_TrimsPresentFields(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	created, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	description := "  Dinner  "
	category := " restaurants "
	updated, err := svc.UpdateExpense(context.Background(), userID, created.ID, &domain.UpdateExpenseData{
		Description: &description,
		Category:    &category,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Description != "Dinner" {
		t.Errorf("Expected trimmed description, got %q", updated.Description)
	}
	if updated.Category != "restaurants" {
		t.Errorf("Expected trimmed category, got %q", updated.Category)
	}

	// A whitespace-only value trims to the same explicit empty string that
	// an empty payload value carries.
	blank := "   "
	updated, err = svc.UpdateExpense(context.Background(), userID, created.ID, &domain.UpdateExpenseData{Description: &blank})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Description != "" {
		t.Errorf("Expected whitespace description trimmed to empty, got %q", updated.Description)
	}
}

func TestUpdateExpense_EmptyDescriptionIsExplicit(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	created, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	empty := ""
	updated, err := svc.UpdateExpense(context.Background(), userID, created.ID, &domain.UpdateExpenseData{Description: &empty})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Description != "" {
		t.Errorf("Expected empty description applied, got %q", updated.Description)
	}
}

func TestUpdateExpense_NegativeAmountRejected(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	created, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	negative := decimal.NewFromInt(-1)
	_, err = svc.UpdateExpense(context.Background(), userID, created.ID, &domain.UpdateExpenseData{Amount: &negative})
	if err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestUpdateExpense_OtherOwnerReadsAsNotFound(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	ownerA := uuid.New()
	ownerB := uuid.New()

	created, err := svc.CreateExpense(context.Background(), ownerA, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newDescription := "hijacked"
	_, err = svc.UpdateExpense(context.Background(), ownerB, created.ID, &domain.UpdateExpenseData{Description: &newDescription})
	if err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound for foreign owner, got %v", err)
	}
}

func TestDeleteExpense_Idempotent(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	userID := uuid.New()

	created, err := svc.CreateExpense(context.Background(), userID, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.DeleteExpense(context.Background(), userID, created.ID); err != nil {
		t.Fatalf("Expected first delete to succeed, got %v", err)
	}

	// Repeated and never-existed deletes both report not found, never crash.
	if err := svc.DeleteExpense(context.Background(), userID, created.ID); err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound on second delete, got %v", err)
	}
	if err := svc.DeleteExpense(context.Background(), userID, uuid.New()); err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound for unknown id, got %v", err)
	}
}

func TestDeleteExpense_OtherOwnerReadsAsNotFound(t *testing.T) {
	repo := testutil.NewMockExpenseRepository()
	svc := NewExpenseService(repo)
	ownerA := uuid.New()
	ownerB := uuid.New()

	created, err := svc.CreateExpense(context.Background(), ownerA, createInput("Lunch", "12.50", "food", date(2024, 1, 5)))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.DeleteExpense(context.Background(), ownerB, created.ID); err != domain.ErrExpenseNotFound {
		t.Errorf("Expected ErrExpenseNotFound for foreign owner, got %v", err)
	}

	// Record must survive the foreign delete attempt.
	if _, err := repo.GetByID(context.Background(), ownerA, created.ID); err != nil {
		t.Errorf("Expected record to survive, got %v", err)
	}
}
