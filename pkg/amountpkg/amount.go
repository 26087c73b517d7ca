// Package amountpkg converts client supplied amounts into whole minor units.
package amountpkg

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissing indicates an absent or null amount.
	ErrMissing = errors.New("amount is required")
	// ErrNotWhole indicates an amount with a fractional part.
	ErrNotWhole = errors.New("amount must be a whole number of minor units")
	// ErrOutOfRange indicates an amount that does not fit into int64.
	ErrOutOfRange = errors.New("amount is out of range")
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Parse returns the whole amount held by d. Sign is preserved, positivity is checked by the caller.
func Parse(d decimal.NullDecimal) (int64, error) {
	if !d.Valid {
		return 0, ErrMissing
	}

	if !d.Decimal.Equal(d.Decimal.Truncate(0)) {
		return 0, ErrNotWhole
	}

	if d.Decimal.GreaterThan(maxAmount) || d.Decimal.LessThan(minAmount) {
		return 0, ErrOutOfRange
	}

	return d.Decimal.IntPart(), nil
}
