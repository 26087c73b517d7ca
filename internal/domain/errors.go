// Package domain provides definitions of all entities and their errors.
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Entity names used in lookup and identity errors.
const (
	EntityLedger = "ledger"
	EntityUser   = "user"
)

var (
	// ErrInvalidAmount indicates a negative, missing or non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds indicates that a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrEntityNotFound indicates that the referenced ledger or user does not exist.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrAlreadyExists indicates an identity collision on creation.
	ErrAlreadyExists = errors.New("entity already exists")
)

// InvalidAmountError carries the rejected amount.
type InvalidAmountError struct {
	Amount int64
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %d: %s", e.Amount, e.Reason)
}

// Is reports whether target is ErrInvalidAmount.
func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// InsufficientFundsError carries the balance and the requested amount of a rejected withdrawal.
type InsufficientFundsError struct {
	Balance Money
	Amount  Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, withdraw amount %d", e.Balance.Amount(), e.Amount.Amount())
}

// Is reports whether target is ErrInsufficientFunds.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// EntityNotFoundError names the entity kind and identity that was not found.
type EntityNotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %s", e.Entity, e.ID)
}

// Is reports whether target is ErrEntityNotFound.
func (e *EntityNotFoundError) Is(target error) bool {
	return target == ErrEntityNotFound
}

// AlreadyExistsError names the entity kind and identity that collided.
type AlreadyExistsError struct {
	Entity string
	ID     uuid.UUID
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists with id: %s", e.Entity, e.ID)
}

// Is reports whether target is ErrAlreadyExists.
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewLedgerNotFound returns a not found error for the ledger id.
func NewLedgerNotFound(id uuid.UUID) error {
	return &EntityNotFoundError{Entity: EntityLedger, ID: id}
}

// NewUserNotFound returns a not found error for the user id.
func NewUserNotFound(id uuid.UUID) error {
	return &EntityNotFoundError{Entity: EntityUser, ID: id}
}
