// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New return user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

// Create registers a user under a fresh identity and returns it.
func (s *Service) Create(ctx context.Context, firstName, lastName, email string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.repo.Create(ctx, domain.NewUser(firstName, lastName, email))
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, err
	}

	l.Info().Str("user_id", user.ID.String()).Msg("user created")

	return user, nil
}

// Get resolves the user with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			zerolog.Ctx(ctx).Info().Err(err).Send()
		} else {
			zerolog.Ctx(ctx).Error().Err(err).Send()
		}

		return domain.User{}, err
	}

	return user, nil
}
