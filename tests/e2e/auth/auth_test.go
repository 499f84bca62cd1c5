//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"ticketgate/internal/domain/user"
	"ticketgate/internal/handler/dto/request"
	"ticketgate/internal/handler/dto/response"
	"ticketgate/tests/common/authtest"
	"ticketgate/tests/common/httptest"
	"ticketgate/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegisterAndLogin() {
	s.Run("register, login and fetch the profile", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Grace",
			Email:    "grace@example.com",
			Password: "s3cret-pass",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.UserResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "grace@example.com", created.Email)
		require.Equal(t, string(user.RoleUser), created.Role)

		token := authtest.LoginUser(t, s.Router, "grace@example.com", "s3cret-pass")

		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, mw.Code)
		var me response.UserResponse
		httptest.DecodeResponseBody(t, mw.Body, &me)
		require.Equal(t, created.ID, me.ID)
	})

	s.Run("duplicate registration is rejected", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Name:     "Grace",
			Email:    "grace@example.com",
			Password: "s3cret-pass",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqBody, "")
		require.Equal(t, http.StatusBadRequest, w2.Code, w2.Body.String())
	})

	s.Run("wrong password and unknown account both fail the same way", func() {
		t := s.T()

		authtest.CreateAndLogin(t, s.DB, s.Router, "henry@example.com", string(user.RoleUser))

		for _, attempt := range []request.LoginRequest{
			{Email: "henry@example.com", Password: "wrong-password"},
			{Email: "nobody@example.com", Password: "password123"},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", attempt, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
		}
	})

	s.Run("expired session tokens are rejected", func() {
		t := s.T()

		helper := authtest.NewSessionHelper(s.Config.JWT)
		stale := helper.CreateExpiredToken(t, uuid.New(), user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, stale)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
