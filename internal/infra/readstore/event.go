package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketgate/internal/infra"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) *EventReadStore {
	return &EventReadStore{pool: pool}
}

const eventColumns = `id, title, venue, category, date, seat_capacity, booked_seats, created_at, updated_at`

func (s *EventReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)

	view, err := scanEventView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get event", err)
	}
	return view, nil
}

func (s *EventReadStore) List(ctx context.Context, filter queries.EventFilter) ([]*queries.EventView, error) {
	query := `SELECT ` + eventColumns + ` FROM events`

	var (
		conds []string
		args  []any
	)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Venue != nil {
		args = append(args, *filter.Venue)
		conds = append(conds, fmt.Sprintf("venue = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, fmt.Sprintf("date >= date_trunc('day', $%d::timestamptz) AND date < date_trunc('day', $%d::timestamptz) + interval '1 day'", len(args), len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list events", err)
	}
	defer rows.Close()

	var views []*queries.EventView
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan event", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate events", err)
	}
	return views, nil
}

func scanEventView(row pgx.Row) (*queries.EventView, error) {
	var v queries.EventView
	err := row.Scan(&v.ID, &v.Title, &v.Venue, &v.Category, &v.Date, &v.SeatCapacity, &v.BookedSeats, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.AvailableSeats = v.SeatCapacity - v.BookedSeats
	return &v, nil
}
