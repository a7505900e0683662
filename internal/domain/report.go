package domain

import "github.com/shopspring/decimal"

// DefaultTopCategoriesLimit is applied when the top-categories view is
// requested without a usable limit parameter.
const DefaultTopCategoriesLimit = 5

// CategorySummaryRow is one row of the per-category summary, ordered by
// total descending with category ascending as tie-break.
type CategorySummaryRow struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Count       int             `json:"count"`
}

// MonthlySummaryRow is one row of the monthly trend, keyed by calendar year
// and 1-indexed month in UTC, ordered chronologically ascending.
type MonthlySummaryRow struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// MonthlyCategoryRow is one row of the month-by-category breakdown, ordered
// by year, month, then category ascending.
type MonthlyCategoryRow struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// TopCategoryRow is one row of the top-N categories view.
type TopCategoryRow struct {
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
