package repository

import (
	"context"
	"errors"
	"time"

	"ticketgate/internal/domain/booking"
	"ticketgate/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const stmt = `
INSERT INTO bookings (id, user_id, event_id, quantity, status, artifact_ref)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt, b.ID(), b.UserID(), b.EventID(), b.Quantity(), b.Status().String(), b.ArtifactRef())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "booking already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateArtifact(ctx context.Context, id uuid.UUID, status booking.Status, artifactRef string) error {
	const stmt = `
UPDATE bookings
SET status = $2, artifact_ref = $3
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id, status.String(), artifactRef)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking artifact", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

// MarkConsumed flips the consumption flag exactly once. The conditional
// UPDATE makes the first-scan-wins decision atomic: of two racing gate
// scans, exactly one sees a row updated.
func (r *BookingRepository) MarkConsumed(ctx context.Context, id uuid.UUID, at time.Time) error {
	const stmt = `
UPDATE bookings
SET consumed_at = $2
WHERE id = $1 AND consumed_at IS NULL`

	tag, err := r.pool.Exec(ctx, stmt, id, at)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark booking consumed", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to check booking existence", err)
	}
	if !exists {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return infra.WrapRepoErr(infra.KindAlreadyUpdated, "booking already consumed", nil)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
SELECT id, user_id, event_id, quantity, status, artifact_ref, consumed_at, created_at
FROM bookings
WHERE id = $1`

	var (
		bookingID, userID, eventID uuid.UUID
		quantity                   int
		status, artifactRef        string
		consumedAt                 *time.Time
		createdAt                  time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&bookingID, &userID, &eventID, &quantity, &status, &artifactRef, &consumedAt, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	return booking.ReconstructBooking(bookingID, userID, eventID, quantity, booking.Status(status), artifactRef, consumedAt, createdAt), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
