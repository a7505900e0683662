package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrExpenseNotFound = errors.New("expense not found")

	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrCategoryRequired    = errors.New("category is required")
	ErrCategoryTooLong     = errors.New("category exceeds maximum length")
	ErrAmountRequired      = errors.New("amount is required")
	ErrInvalidAmount       = errors.New("amount must be a non-negative decimal")
	ErrDateRequired        = errors.New("date is required")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")

	ErrInvalidDateRange = errors.New("both startDate and endDate must be valid YYYY-MM-DD dates")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
)

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxCategoryLength    = 100
)
