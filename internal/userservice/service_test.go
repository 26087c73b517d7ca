package userservice

import (
	"context"
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/test"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

type eqNewUserMatcher struct {
	want domain.User
}

func (e eqNewUserMatcher) Matches(x interface{}) bool {
	got, ok := x.(domain.User)
	if !ok {
		return false
	}

	if got.ID == uuid.Nil || got.CreatedAt.IsZero() {
		return false
	}

	return got.FirstName == e.want.FirstName &&
		got.LastName == e.want.LastName &&
		got.Email == e.want.Email
}

func (e eqNewUserMatcher) String() string {
	return fmt.Sprintf("matches new user %s %s <%s>", e.want.FirstName, e.want.LastName, e.want.Email)
}

// EqNewUser matches a freshly built user with the names and email of want.
func EqNewUser(want domain.User) gomock.Matcher {
	return eqNewUserMatcher{want}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	user := test.RandomUser()

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), EqNewUser(user)).
					Times(1).
					Return(user, nil)
			},
		},
		{
			name: "AlreadyExists",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), EqNewUser(user)).
					Times(1).
					Return(domain.User{}, &domain.AlreadyExistsError{Entity: domain.EntityUser, ID: user.ID})
			},
			wantErr: domain.ErrAlreadyExists,
		},
		{
			name: "InternalErr",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo)

			got, err := s.Create(context.Background(), user.FirstName, user.LastName, user.Email)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(user, got); diff != "" {
				t.Errorf("s.Create() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	user := test.RandomUser()

	testCases := []struct {
		name       string
		id         uuid.UUID
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name: "OK",
			id:   user.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
			},
		},
		{
			name: "NotFound",
			id:   user.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).
					Return(domain.User{}, domain.NewUserNotFound(user.ID))
			},
			wantErr: domain.ErrEntityNotFound,
		},
		{
			name: "InternalErr",
			id:   user.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := New(repo).Get(context.Background(), tc.id)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, user, got)
		})
	}
}
