package repository

import (
	"context"
	"errors"
	"time"

	"ticketgate/internal/domain/user"
	"ticketgate/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const stmt = `
INSERT INTO users (id, name, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, stmt, u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "email already registered", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create user", err)
	}
	return nil
}

// FindByEmail also returns the stored password hash; the hash never leaves
// the auth command that compares it.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	return r.findOne(ctx, `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE email = $1`, email.Value())
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, `
SELECT id, name, email, password_hash, role, created_at
FROM users
WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		id                              uuid.UUID
		name, emailValue, hash, roleStr string
		createdAt                       time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &name, &emailValue, &hash, &roleStr, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}

	nameVO, err := user.NewName(name)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored user name invalid", err)
	}
	emailVO, err := user.NewEmail(emailValue)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored user email invalid", err)
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored user role invalid", err)
	}

	return user.ReconstructUser(id, nameVO, emailVO, hash, role, createdAt), nil
}
