package postgres

import (
	"context"
	"fmt"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = "id, user_id, description, amount, category, expense_date, created_at, updated_at"

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create inserts a new expense record
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var expenseDate pgtype.Date
	expenseDate.Time = expense.ExpenseDate
	expenseDate.Valid = true

	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, description, amount, category, expense_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+expenseColumns,
		pgUUID(expense.UserID), expense.Description, amount, expense.Category, expenseDate,
	)
	return scanExpense(row)
}

// GetByID retrieves an expense by id scoped to its owner. A record owned by
// a different user reads as not found.
func (r *ExpenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id = $1 AND user_id = $2`,
		pgUUID(id), pgUUID(userID),
	)
	expense, err := scanExpense(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// listExpensesQuery builds the filtered list statement. Range bounds bind as
// dates, not timestamps: a date column compared against a timestamptz casts
// at midnight in the session timezone, which shifts the inclusive bounds by a
// day on non-UTC servers. Date-to-date comparison is timezone-free.
func listExpensesQuery(userID uuid.UUID, filter *domain.ExpenseFilter) (string, []any) {
	sql := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1`
	args := []any{pgUUID(userID)}

	if filter != nil {
		if filter.HasDateRange() {
			var start, end pgtype.Date
			start.Time = filter.StartDate.UTC()
			start.Valid = true
			end.Time = filter.EndDate.UTC()
			end.Valid = true
			sql += fmt.Sprintf(" AND expense_date >= $%d AND expense_date <= $%d", len(args)+1, len(args)+2)
			args = append(args, start, end)
		}

		if filter.Category != nil {
			sql += fmt.Sprintf(" AND category = $%d", len(args)+1)
			args = append(args, *filter.Category)
		}
	}

	sql += " ORDER BY expense_date DESC, created_at DESC"
	return sql, args
}

// ListByOwner retrieves an owner's expenses with optional range and category
// filters, newest expense date first with creation time as tie-break.
func (r *ExpenseRepository) ListByOwner(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) ([]*domain.Expense, error) {
	sql, args := listExpensesQuery(userID, filter)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// Update applies a partial update in a single conditional statement so the
// ownership check and the mutation cannot race. Absent fields arrive as SQL
// NULL and COALESCE keeps the stored value; a present zero amount overwrites.
func (r *ExpenseRepository) Update(ctx context.Context, userID, id uuid.UUID, data *domain.UpdateExpenseData) (*domain.Expense, error) {
	var description, category pgtype.Text
	if data.Description != nil {
		description.String = *data.Description
		description.Valid = true
	}
	if data.Category != nil {
		category.String = *data.Category
		category.Valid = true
	}

	var amount pgtype.Numeric
	if data.Amount != nil {
		converted, err := decimalToPgNumeric(*data.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount: %w", err)
		}
		amount = converted
	}

	var expenseDate pgtype.Date
	if data.ExpenseDate != nil {
		expenseDate.Time = *data.ExpenseDate
		expenseDate.Valid = true
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE expenses
		SET description  = COALESCE($3, description),
		    amount       = COALESCE($4, amount),
		    category     = COALESCE($5, category),
		    expense_date = COALESCE($6, expense_date),
		    updated_at   = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+expenseColumns,
		pgUUID(id), pgUUID(userID), description, amount, category, expenseDate,
	)
	expense, err := scanExpense(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense in a single conditional statement. Deleting a
// missing or foreign record reports not found.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, pgUUID(id), pgUUID(userID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		id          pgtype.UUID
		userID      pgtype.UUID
		description string
		amount      pgtype.Numeric
		category    string
		expenseDate pgtype.Date
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &userID, &description, &amount, &category, &expenseDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &domain.Expense{
		ID:          uuid.UUID(id.Bytes),
		UserID:      uuid.UUID(userID.Bytes),
		Description: description,
		Amount:      pgNumericToDecimal(amount),
		Category:    category,
		ExpenseDate: expenseDate.Time,
		CreatedAt:   createdAt.Time,
		UpdatedAt:   updatedAt.Time,
	}, nil
}
