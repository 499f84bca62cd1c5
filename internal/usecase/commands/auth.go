package commands

import (
	"context"

	domuser "ticketgate/internal/domain/user"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/pkg/password"
	"ticketgate/internal/pkg/token"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *domuser.User) error
	FindByEmail(ctx context.Context, email domuser.Email) (*domuser.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domuser.User, error)
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *queries.UserView
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*queries.UserView, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	users    UserRepository
	sessions *token.SessionService
}

func NewAuthUseCase(users UserRepository, sessions *token.SessionService) AuthCommands {
	return &authUseCaseImpl{users: users, sessions: sessions}
}

func (uc *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*queries.UserView, error) {
	name, err := domuser.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := domuser.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pw, err := domuser.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := domuser.NewUser(name, email, hash, domuser.RoleUser)
	if err := uc.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return userView(u), nil
}

func (uc *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	addr, err := domuser.NewEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	u, err := uc.users.FindByEmail(ctx, addr)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	sessionToken, err := uc.sessions.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate session token")
	}

	return &LoginResult{Token: sessionToken, User: userView(u)}, nil
}

func userView(u *domuser.User) *queries.UserView {
	return &queries.UserView{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}
