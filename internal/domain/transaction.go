package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransactionType indicates a transaction type other than DEPOSIT or WITHDRAW.
var ErrInvalidTransactionType = errors.New("invalid transaction type")

// TransactionType is the kind of a posted transaction.
type TransactionType string

// Supported transaction types.
const (
	Deposit  TransactionType = "DEPOSIT"
	Withdraw TransactionType = "WITHDRAW"
)

// IsValid reports whether t is a supported transaction type.
func (t TransactionType) IsValid() bool {
	return t == Deposit || t == Withdraw
}

// Transaction is an immutable record of one amount posted to a ledger.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	LedgerID   uuid.UUID       `json:"ledger_id"`
	Type       TransactionType `json:"type"`
	Amount     Money           `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Balance is the current balance of a ledger.
type Balance struct {
	LedgerID uuid.UUID `json:"ledger_id"`
	Balance  Money     `json:"balance"`
}
