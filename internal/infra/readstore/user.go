package readstore

import (
	"context"
	"errors"

	"ticketgate/internal/infra"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `SELECT id, name, email, role, created_at FROM users WHERE id = $1`

	var v queries.UserView
	err := s.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get user", err)
	}
	return &v, nil
}
