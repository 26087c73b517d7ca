package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrMissingAmount indicates an absent amount. It is an ErrInvalidAmount.
	ErrMissingAmount = fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	// ErrAmountOverflow indicates a sum above the maximum representable amount. It is an ErrInvalidAmount.
	ErrAmountOverflow = fmt.Errorf("%w: amount exceeds maximum of %d", ErrInvalidAmount, int64(math.MaxInt64))
	// ErrInsufficientMagnitude indicates subtraction of a greater amount.
	ErrInsufficientMagnitude = errors.New("amount to subtract must not be greater than amount")
)

// Money is an immutable non-negative amount in minor units.
//
// The zero value is the canonical zero amount.
type Money struct {
	amount int64
}

// NewMoney returns Money for the given amount or an error if it is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, &InvalidAmountError{Amount: amount, Reason: "must not be negative"}
	}

	return Money{amount: amount}, nil
}

// NewMoneyFromPtr is NewMoney for optional input. A nil amount is invalid.
func NewMoneyFromPtr(amount *int64) (Money, error) {
	if amount == nil {
		return Money{}, ErrMissingAmount
	}

	return NewMoney(*amount)
}

// NewPositiveMoney returns Money for a strictly positive amount.
func NewPositiveMoney(amount int64) (Money, error) {
	if amount <= 0 {
		return Money{}, &InvalidAmountError{Amount: amount, Reason: "must be positive"}
	}

	return Money{amount: amount}, nil
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether m is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns m + other. It fails with ErrAmountOverflow instead of wrapping around.
func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, ErrAmountOverflow
	}

	return Money{amount: m.amount + other.amount}, nil
}

// Subtract returns m - other or ErrInsufficientMagnitude if other is greater than m.
func (m Money) Subtract(other Money) (Money, error) {
	if m.amount < other.amount {
		return Money{}, fmt.Errorf("%w: %d - %d", ErrInsufficientMagnitude, m.amount, other.amount)
	}

	return Money{amount: m.amount - other.amount}, nil
}

// IsLessThan reports whether m is strictly less than other.
func (m Money) IsLessThan(other Money) bool {
	return m.amount < other.amount
}

func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}

// MarshalJSON encodes Money as a JSON integer.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.amount, 10)), nil
}

// UnmarshalJSON decodes a JSON integer and rejects negative values.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount int64
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}

	v, err := NewMoney(amount)
	if err != nil {
		return err
	}

	*m = v

	return nil
}
