//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"ticketgate/internal/domain/user"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type SessionHelper struct {
	cfg config.JWTConfig
}

func NewSessionHelper(cfg config.JWTConfig) *SessionHelper {
	return &SessionHelper{cfg: cfg}
}

func (h *SessionHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := token.NewSessionService(h.cfg.Secret, duration)
	tok, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return tok
}

func (h *SessionHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := token.NewSessionService(h.cfg.Secret, 1*time.Millisecond)
	tok, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return tok
}
