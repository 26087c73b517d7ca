package userdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/test"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			fmt.Fprintf(os.Stderr, "v.RegisterValidation(notblank) returned error: %v\n", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

type requestBody struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

func TestCreateAPI(t *testing.T) {
	t.Parallel()

	user := test.RandomUser()
	validBody := requestBody{FirstName: user.FirstName, LastName: user.LastName, Email: user.Email}

	testCases := []struct {
		name           string
		body           requestBody
		buildStubs     func(s *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: validBody,
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Create(gomock.Any(), gomock.Eq(user.FirstName), gomock.Eq(user.LastName), gomock.Eq(user.Email)).
					Times(1).
					Return(user, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "FirstNameRequired",
			body: requestBody{LastName: user.LastName, Email: user.Email},
			buildStubs: func(s *MockService) {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "FirstName field is required",
		},
		{
			name: "BlankLastName",
			body: requestBody{FirstName: user.FirstName, LastName: "  ", Email: user.Email},
			buildStubs: func(s *MockService) {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "LastName must not be blank",
		},
		{
			name: "InvalidEmail",
			body: requestBody{FirstName: user.FirstName, LastName: user.LastName, Email: "invalid"},
			buildStubs: func(s *MockService) {
				s.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Email must be a valid email",
		},
		{
			name: "AlreadyExists",
			body: validBody,
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, &domain.AlreadyExistsError{Entity: domain.EntityUser, ID: user.ID})
			},
			wantStatusCode: http.StatusConflict,
			wantError:      (&domain.AlreadyExistsError{Entity: domain.EntityUser, ID: user.ID}).Error(),
		},
		{
			name: "InternalServerError",
			body: validBody,
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockService(ctrl)
			tc.buildStubs(s)

			h := NewHandler(s)
			server := gin.New()
			server.POST("/users", h.Create)

			body, err := json.Marshal(tc.body)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var data userData

			res := web.Response{Data: &data}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatusCode == http.StatusCreated {
				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(user, data.User, compareCreatedAt); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestGetAPI(t *testing.T) {
	t.Parallel()

	user := test.RandomUser()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(s *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			id:   user.ID.String(),
			buildStubs: func(s *MockService) {
				s.EXPECT().Get(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InvalidID",
			id:   "123",
			buildStubs: func(s *MockService) {
				s.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID must be a valid uuid",
		},
		{
			name: "NotFound",
			id:   user.ID.String(),
			buildStubs: func(s *MockService) {
				s.EXPECT().
					Get(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).
					Return(domain.User{}, domain.NewUserNotFound(user.ID))
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "user not found with id: " + user.ID.String(),
		},
		{
			name: "InternalServerError",
			id:   uuid.NewString(),
			buildStubs: func(s *MockService) {
				s.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := NewMockService(ctrl)
			tc.buildStubs(s)

			h := NewHandler(s)
			server := gin.New()
			server.GET("/users/:id", h.Get)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/"+tc.id, nil))

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var data userData

			res := web.Response{Data: &data}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatusCode == http.StatusOK {
				require.Equal(t, user.ID, data.User.ID)
				require.Equal(t, user.Email, data.User.Email)
			}
		})
	}
}
