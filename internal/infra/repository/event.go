package repository

import (
	"context"
	"errors"
	"time"

	"ticketgate/internal/domain/event"
	"ticketgate/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository owns the events table, including the seat ledger: the
// authoritative booked-seats counter. All seat mutation happens through
// TryReserve/Release so the capacity invariant has a single enforcement
// point, backed by the row-level atomicity of a conditional UPDATE.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// TryReserve grants quantity seats iff booked_seats + quantity still fits
// the capacity at the instant the row is updated. The check and the
// increment are one statement, so two racing calls can never both observe
// the pre-increment value. Reservations on different events touch
// different rows and proceed independently.
func (r *EventRepository) TryReserve(ctx context.Context, eventID uuid.UUID, quantity int) error {
	const stmt = `
UPDATE events
SET booked_seats = booked_seats + $2, updated_at = NOW()
WHERE id = $1 AND booked_seats + $2 <= seat_capacity`

	tag, err := r.pool.Exec(ctx, stmt, eventID, quantity)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to reserve seats", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.exists(ctx, eventID)
	if err != nil {
		return err
	}
	if !exists {
		return infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
	}
	return infra.WrapRepoErr(infra.KindNoSeats, "insufficient seats", nil)
}

// Release is the compensating action for a reservation whose booking record
// could not be persisted. Floored at zero so a duplicate release can never
// push the counter negative.
func (r *EventRepository) Release(ctx context.Context, eventID uuid.UUID, quantity int) error {
	const stmt = `
UPDATE events
SET booked_seats = GREATEST(booked_seats - $2, 0), updated_at = NOW()
WHERE id = $1`

	if _, err := r.pool.Exec(ctx, stmt, eventID, quantity); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to release seats", err)
	}
	return nil
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	const stmt = `
INSERT INTO events (id, title, venue, category, date, seat_capacity, booked_seats)
VALUES ($1, $2, $3, $4, $5, $6, 0)`

	_, err := r.pool.Exec(ctx, stmt, e.ID(), e.Title(), e.Venue(), e.Category(), e.Date(), e.SeatCapacity())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create event", err)
	}
	return nil
}

// Update rewrites the catalog fields. The WHERE clause re-checks the
// capacity floor so a stale caller-side validation cannot shrink capacity
// under seats that were booked in the meantime.
func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, title, venue, category string, date time.Time, seatCapacity int) error {
	const stmt = `
UPDATE events
SET title = $2, venue = $3, category = $4, date = $5, seat_capacity = $6, updated_at = NOW()
WHERE id = $1 AND booked_seats <= $6`

	tag, err := r.pool.Exec(ctx, stmt, id, title, venue, category, date, seatCapacity)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update event", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
	}
	return infra.WrapRepoErr(infra.KindCheckViolated, "capacity below booked seats", nil)
}

// Delete removes an event only when nothing has been booked against it.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const stmt = `
DELETE FROM events
WHERE id = $1 AND NOT EXISTS (SELECT 1 FROM bookings WHERE event_id = $1)`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete event", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
	}
	return infra.WrapRepoErr(infra.KindCheckViolated, "event has bookings", nil)
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	const query = `
SELECT id, title, venue, category, date, seat_capacity, booked_seats, created_at, updated_at
FROM events
WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var (
		eventID                    uuid.UUID
		title, venue, category     string
		date, createdAt, updatedAt time.Time
		seatCapacity, bookedSeats  int
	)
	err := row.Scan(&eventID, &title, &venue, &category, &date, &seatCapacity, &bookedSeats, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find event", err)
	}

	return event.ReconstructEvent(eventID, title, venue, category, date, seatCapacity, bookedSeats, createdAt, updatedAt), nil
}

func (r *EventRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check event existence", err)
	}
	return exists, nil
}
