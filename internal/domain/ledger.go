package domain

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger is an account aggregate holding one owner's balance and transaction history.
//
// Deposit and Withdraw are serialized by a lock scoped to the ledger, so operations on
// different ledgers never contend. Balance always equals the net sum of the recorded
// transactions and is never negative.
type Ledger struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	name      string
	createdAt time.Time
	now       func() time.Time

	mu           sync.RWMutex
	balance      Money
	transactions []Transaction
}

// NewLedger returns a ledger with a fresh identity, zero balance and empty history.
func NewLedger(name string, ownerID uuid.UUID) *Ledger {
	return newLedger(name, ownerID, time.Now)
}

func newLedger(name string, ownerID uuid.UUID, now func() time.Time) *Ledger {
	return &Ledger{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      name,
		createdAt: now(),
		now:       now,
	}
}

// ID returns the ledger identity.
func (l *Ledger) ID() uuid.UUID { return l.id }

// OwnerID returns the identity of the owning user.
func (l *Ledger) OwnerID() uuid.UUID { return l.ownerID }

// Name returns the display label.
func (l *Ledger) Name() string { return l.name }

// CreatedAt returns the creation time.
func (l *Ledger) CreatedAt() time.Time { return l.createdAt }

// Deposit adds amount to the balance and records a DEPOSIT transaction.
func (l *Ledger) Deposit(amount Money) (Transaction, error) {
	if amount.IsZero() {
		return Transaction{}, &InvalidAmountError{Amount: 0, Reason: "must be positive"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.balance.Add(amount)
	if err != nil {
		return Transaction{}, err
	}

	l.balance = balance

	return l.record(Deposit, amount), nil
}

// Withdraw subtracts amount from the balance and records a WITHDRAW transaction.
// It fails with *InsufficientFundsError when amount exceeds the balance.
func (l *Ledger) Withdraw(amount Money) (Transaction, error) {
	if amount.IsZero() {
		return Transaction{}, &InvalidAmountError{Amount: 0, Reason: "must be positive"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balance.IsLessThan(amount) {
		return Transaction{}, &InsufficientFundsError{Balance: l.balance, Amount: amount}
	}

	balance, err := l.balance.Subtract(amount)
	if err != nil {
		return Transaction{}, err
	}

	l.balance = balance

	return l.record(Withdraw, amount), nil
}

// record appends a transaction. l.mu must be held for writing.
func (l *Ledger) record(t TransactionType, amount Money) Transaction {
	tx := Transaction{
		ID:         uuid.New(),
		LedgerID:   l.id,
		Type:       t,
		Amount:     amount,
		OccurredAt: l.now(),
	}

	l.transactions = append(l.transactions, tx)

	return tx
}

// Balance returns the current balance.
func (l *Ledger) Balance() Money {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balance
}

// Transactions returns a copy of the history ordered by OccurredAt.
// Transactions with equal timestamps keep their insertion order.
func (l *Ledger) Transactions() []Transaction {
	_, txs := l.Snapshot()
	return txs
}

// Snapshot returns the balance together with the history it was computed from.
func (l *Ledger) Snapshot() (Money, []Transaction) {
	l.mu.RLock()
	balance := l.balance
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	l.mu.RUnlock()

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].OccurredAt.Before(txs[j].OccurredAt)
	})

	return balance, txs
}
