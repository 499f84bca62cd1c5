//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"ticketgate/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext used for every fixture account.
const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword(TestPassword)
	require.NoError(t, err, "failed to hash fixture password")

	id := uuid.New()
	_, err = db.Exec(context.Background(),
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5)`,
		id, "Fixture User", email, hash, role)
	require.NoError(t, err, "failed to insert fixture user")

	return id
}

func CreateTestEvent(t *testing.T, db DBLike, title string, capacity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO events (id, title, venue, category, date, seat_capacity) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, title, "Main Hall", "concert", time.Now().Add(30*24*time.Hour), capacity)
	require.NoError(t, err, "failed to insert fixture event")

	return id
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE bookings, events, users CASCADE`)
	return err
}
