package service

import (
	"context"
	"sort"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/avelis/spendtrack-backend/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService builds the aggregated spending views. Every view runs the
// same pipeline over the owner's filtered records: extract a grouping key,
// sum amounts per key, sort with a view-specific comparator, optionally cut
// to a limit. Only the key shape and the comparator differ between views.
type ReportService struct {
	expenseRepo domain.ExpenseRepository
}

// NewReportService creates a new ReportService
func NewReportService(expenseRepo domain.ExpenseRepository) *ReportService {
	return &ReportService{expenseRepo: expenseRepo}
}

// groupKey is the union of all grouping shapes. Unused parts stay zero for
// narrower keys (e.g. the category summary leaves Year/Month at zero).
type groupKey struct {
	Year     int
	Month    int
	Category string
}

type bucket struct {
	key   groupKey
	total decimal.Decimal
	count int
}

func (s *ReportService) aggregate(
	ctx context.Context,
	userID uuid.UUID,
	filter *domain.ExpenseFilter,
	keyOf func(*domain.Expense) groupKey,
	less func(a, b *bucket) bool,
	limit int,
) ([]*bucket, error) {
	expenses, err := s.expenseRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	grouped := make(map[groupKey]*bucket)
	for _, expense := range expenses {
		key := keyOf(expense)
		b, ok := grouped[key]
		if !ok {
			b = &bucket{key: key, total: decimal.Zero}
			grouped[key] = b
		}
		b.total = b.total.Add(expense.Amount)
		b.count++
	}

	buckets := make([]*bucket, 0, len(grouped))
	for _, b := range grouped {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return less(buckets[i], buckets[j]) })

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets, nil
}

func categoryKey(e *domain.Expense) groupKey {
	return groupKey{Category: e.Category}
}

func monthKey(e *domain.Expense) groupKey {
	year, month := util.YearMonth(e.ExpenseDate)
	return groupKey{Year: year, Month: month}
}

func monthCategoryKey(e *domain.Expense) groupKey {
	year, month := util.YearMonth(e.ExpenseDate)
	return groupKey{Year: year, Month: month, Category: e.Category}
}

// byTotalDesc orders highest total first; ties break on ascending category
// so equal totals always come back in the same order.
func byTotalDesc(a, b *bucket) bool {
	if !a.total.Equal(b.total) {
		return a.total.GreaterThan(b.total)
	}
	return a.key.Category < b.key.Category
}

func byMonthAsc(a, b *bucket) bool {
	if a.key.Year != b.key.Year {
		return a.key.Year < b.key.Year
	}
	if a.key.Month != b.key.Month {
		return a.key.Month < b.key.Month
	}
	return a.key.Category < b.key.Category
}

// CategorySummary sums and counts the filtered records per category, highest
// total first.
func (s *ReportService) CategorySummary(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) ([]domain.CategorySummaryRow, error) {
	buckets, err := s.aggregate(ctx, userID, filter, categoryKey, byTotalDesc, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CategorySummaryRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.CategorySummaryRow{
			Category:    b.key.Category,
			TotalAmount: b.total,
			Count:       b.count,
		})
	}
	return rows, nil
}

// MonthlyTrend sums the filtered records per calendar month (UTC),
// chronologically ascending.
func (s *ReportService) MonthlyTrend(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) ([]domain.MonthlySummaryRow, error) {
	buckets, err := s.aggregate(ctx, userID, filter, monthKey, byMonthAsc, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.MonthlySummaryRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.MonthlySummaryRow{
			Year:        b.key.Year,
			Month:       b.key.Month,
			TotalAmount: b.total,
		})
	}
	return rows, nil
}

// MonthlyBreakdown sums the filtered records per month and category, ordered
// by year, month, then category.
func (s *ReportService) MonthlyBreakdown(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) ([]domain.MonthlyCategoryRow, error) {
	buckets, err := s.aggregate(ctx, userID, filter, monthCategoryKey, byMonthAsc, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.MonthlyCategoryRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.MonthlyCategoryRow{
			Year:        b.key.Year,
			Month:       b.key.Month,
			Category:    b.key.Category,
			TotalAmount: b.total,
		})
	}
	return rows, nil
}

// TopCategories returns the limit highest-spending categories over the
// filtered records. A non-positive limit falls back to the default.
func (s *ReportService) TopCategories(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter, limit int) ([]domain.TopCategoryRow, error) {
	if limit <= 0 {
		limit = domain.DefaultTopCategoriesLimit
	}

	buckets, err := s.aggregate(ctx, userID, filter, categoryKey, byTotalDesc, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TopCategoryRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, domain.TopCategoryRow{
			Category:    b.key.Category,
			TotalAmount: b.total,
		})
	}
	return rows, nil
}

// Total sums every filtered record regardless of category. An empty result
// set yields decimal zero, never an absent value.
func (s *ReportService) Total(ctx context.Context, userID uuid.UUID, filter *domain.ExpenseFilter) (decimal.Decimal, error) {
	expenses, err := s.expenseRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total, nil
}
