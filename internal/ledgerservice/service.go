// Package ledgerservice manages business logic layer of ledgers.
package ledgerservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Save(ctx context.Context, l *domain.Ledger) (*domain.Ledger, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Ledger, bool)
	List(ctx context.Context) []*domain.Ledger
	ListByOwner(ctx context.Context, ownerID uuid.UUID) []*domain.Ledger
}

// OwnerResolver resolves the user a ledger is created for.
type OwnerResolver interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Publisher receives transactions after they have been recorded.
type Publisher interface {
	Publish(ctx context.Context, tx domain.Transaction) error
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo      Repo
	owners    OwnerResolver
	publisher Publisher
}

// New returns ledger service struct to manage ledger business logic.
func New(lr Repo, owners OwnerResolver, p Publisher) *Service {
	return &Service{
		repo:      lr,
		owners:    owners,
		publisher: p,
	}
}

// Create creates a ledger named name for an existing owner.
func (s *Service) Create(ctx context.Context, name string, ownerID uuid.UUID) (*domain.Ledger, error) {
	l := zerolog.Ctx(ctx)

	owner, err := s.owners.Get(ctx, ownerID)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	ledger, err := s.repo.Save(ctx, domain.NewLedger(name, owner.ID))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	l.Info().
		Str("ledger_id", ledger.ID().String()).
		Str("owner_id", owner.ID.String()).
		Msg("ledger created")

	return ledger, nil
}

// Get returns the ledger with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Ledger, error) {
	ledger, ok := s.repo.Get(ctx, id)
	if !ok {
		err := domain.NewLedgerNotFound(id)
		zerolog.Ctx(ctx).Info().Err(err).Send()

		return nil, err
	}

	return ledger, nil
}

// List returns the ledgers of the given owner, or all ledgers when ownerID is not set.
func (s *Service) List(ctx context.Context, ownerID uuid.NullUUID) []*domain.Ledger {
	if !ownerID.Valid {
		return s.repo.List(ctx)
	}

	return s.repo.ListByOwner(ctx, ownerID.UUID)
}

// PostTransaction records a deposit or withdrawal of a strictly positive amount.
func (s *Service) PostTransaction(ctx context.Context, ledgerID uuid.UUID, amount int64, txType domain.TransactionType) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	ledger, err := s.Get(ctx, ledgerID)
	if err != nil {
		return domain.Transaction{}, err
	}

	money, err := domain.NewPositiveMoney(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Transaction{}, err
	}

	var tx domain.Transaction

	switch txType {
	case domain.Deposit:
		tx, err = ledger.Deposit(money)
	case domain.Withdraw:
		tx, err = ledger.Withdraw(money)
	default:
		err = domain.ErrInvalidTransactionType
	}

	if err != nil {
		l.Info().Err(err).Str("ledger_id", ledgerID.String()).Send()
		return domain.Transaction{}, err
	}

	l.Info().
		Str("ledger_id", ledgerID.String()).
		Str("transaction_id", tx.ID.String()).
		Str("type", string(tx.Type)).
		Int64("amount", tx.Amount.Amount()).
		Msg("transaction posted")

	if err := s.publisher.Publish(ctx, tx); err != nil {
		l.Warn().Err(err).Str("transaction_id", tx.ID.String()).Msg("cannot publish transaction event")
	}

	return tx, nil
}

// Transactions returns the history of the ledger ordered by occurrence.
func (s *Service) Transactions(ctx context.Context, ledgerID uuid.UUID) ([]domain.Transaction, error) {
	ledger, err := s.Get(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	return ledger.Transactions(), nil
}

// Balance returns the current balance of the ledger.
func (s *Service) Balance(ctx context.Context, ledgerID uuid.UUID) (domain.Balance, error) {
	ledger, err := s.Get(ctx, ledgerID)
	if err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{LedgerID: ledger.ID(), Balance: ledger.Balance()}, nil
}
