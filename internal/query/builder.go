// Package query translates raw request parameters into validated expense
// filters. The permissive mode reproduces the historical behavior where a
// malformed or half-specified date range silently disables filtering; the
// strict mode rejects such input instead. The mode is a deployment choice,
// not a per-request one.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/avelis/spendtrack-backend/internal/domain"
	"github.com/avelis/spendtrack-backend/internal/util"
)

// Mode selects how malformed query parameters are treated.
type Mode int

const (
	// Permissive ignores malformed or partial range/limit parameters and
	// falls back to unfiltered results or defaults.
	Permissive Mode = iota
	// Strict rejects malformed or partial range/limit parameters with a
	// validation error.
	Strict
)

// Builder parses request parameters into domain filters.
type Builder struct {
	mode Mode
}

// NewBuilder creates a Builder with the given mode.
func NewBuilder(mode Mode) *Builder {
	return &Builder{mode: mode}
}

// ParseFilter builds an ExpenseFilter from query parameters.
//
// The date range activates only when both startDate and endDate are present
// and parseable; a single bound is treated as absent. In Strict mode any
// present-but-unusable range input returns domain.ErrInvalidDateRange.
func (b *Builder) ParseFilter(values url.Values) (*domain.ExpenseFilter, error) {
	filter := &domain.ExpenseFilter{}

	startRaw := strings.TrimSpace(values.Get("startDate"))
	endRaw := strings.TrimSpace(values.Get("endDate"))

	if startRaw != "" || endRaw != "" {
		start, startErr := util.ParseDate(startRaw)
		end, endErr := util.ParseDate(endRaw)
		if startErr == nil && endErr == nil {
			endInclusive := util.EndOfDay(end)
			filter.StartDate = &start
			filter.EndDate = &endInclusive
		} else if b.mode == Strict {
			return nil, domain.ErrInvalidDateRange
		}
	}

	if category := strings.TrimSpace(values.Get("category")); category != "" {
		filter.Category = &category
	}

	return filter, nil
}

// ParseLimit reads a positive integer limit, falling back to fallback when
// the parameter is missing. A present but non-numeric or non-positive value
// falls back in Permissive mode and returns domain.ErrInvalidLimit in
// Strict mode.
func (b *Builder) ParseLimit(values url.Values, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get("limit"))
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		if b.mode == Strict {
			return 0, domain.ErrInvalidLimit
		}
		return fallback, nil
	}
	return limit, nil
}
