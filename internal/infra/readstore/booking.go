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

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewQuery = `
SELECT b.id, b.user_id, b.event_id, e.title, e.venue, e.date,
       b.quantity, b.status, b.artifact_ref, b.consumed_at, b.created_at
FROM bookings b
JOIN events e ON e.id = b.event_id`

func (s *BookingReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, bookingViewQuery+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return views, nil
}

func (s *BookingReadStore) GetScanSummary(ctx context.Context, id uuid.UUID) (*queries.ScanSummary, error) {
	const query = `
SELECT e.title, u.name, b.quantity, b.created_at
FROM bookings b
JOIN events e ON e.id = b.event_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

	var summary queries.ScanSummary
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&summary.EventTitle, &summary.HolderName, &summary.Quantity, &summary.BookedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get scan summary", err)
	}
	return &summary, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(&v.ID, &v.UserID, &v.EventID, &v.EventTitle, &v.EventVenue, &v.EventDate,
		&v.Quantity, &v.Status, &v.ArtifactRef, &v.ConsumedAt, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
