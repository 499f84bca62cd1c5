package usecase

import (
	domuser "ticketgate/internal/domain/user"
	"ticketgate/internal/pkg/token"

	"github.com/google/uuid"
)

// TokenValidator is what the auth middleware consumes: it turns a bearer
// token into an authenticated identity without pulling in the full session
// service surface.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, domuser.Role, error)
}

type tokenValidatorImpl struct {
	sessions *token.SessionService
}

func NewTokenValidator(sessions *token.SessionService) TokenValidator {
	return &tokenValidatorImpl{sessions: sessions}
}

func (v *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, domuser.Role, error) {
	claims, err := v.sessions.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := domuser.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", token.ErrInvalidToken
	}
	return claims.UserID, role, nil
}
