package queries

import (
	"context"
	"time"

	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/errs"

	"github.com/google/uuid"
)

type EventView struct {
	ID             uuid.UUID
	Title          string
	Venue          string
	Category       string
	Date           time.Time
	SeatCapacity   int
	BookedSeats    int
	AvailableSeats int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EventFilter narrows the public catalog listing. A nil field means no
// restriction. Date matches the calendar day, not the exact instant.
type EventFilter struct {
	Category *string
	Venue    *string
	Date     *time.Time
}

type EventReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, filter EventFilter) ([]*EventView, error)
}

type EventQueries interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]*EventView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *eventQueriesImpl) ListEvents(ctx context.Context, filter EventFilter) ([]*EventView, error) {
	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
