package commands

import (
	"context"
	"time"

	domevent "ticketgate/internal/domain/event"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, e *domevent.Event) error
	Update(ctx context.Context, id uuid.UUID, title, venue, category string, date time.Time, seatCapacity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domevent.Event, error)
}

type EventRequest struct {
	Title        string
	Venue        string
	Category     string
	Date         time.Time
	SeatCapacity int
}

type EventCommands interface {
	CreateEvent(ctx context.Context, req EventRequest) (*queries.EventView, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req EventRequest) (*queries.EventView, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventUseCaseImpl struct {
	events EventRepository
	reads  queries.EventQueries
}

func NewEventUseCase(events EventRepository, reads queries.EventQueries) EventCommands {
	return &eventUseCaseImpl{events: events, reads: reads}
}

func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, req EventRequest) (*queries.EventView, error) {
	ev, err := domevent.NewEvent(req.Title, req.Venue, req.Category, req.Date, req.SeatCapacity)
	if err != nil {
		return nil, err
	}

	if err := uc.events.Create(ctx, ev); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return uc.reads.GetEvent(ctx, ev.ID())
}

func (uc *eventUseCaseImpl) UpdateEvent(ctx context.Context, id uuid.UUID, req EventRequest) (*queries.EventView, error) {
	current, err := uc.events.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := domevent.NewEvent(req.Title, req.Venue, req.Category, req.Date, req.SeatCapacity); err != nil {
		return nil, err
	}
	if err := current.CanResizeTo(req.SeatCapacity); err != nil {
		return nil, errs.ErrCapacityBelowBooked
	}

	// The repository re-checks the capacity floor inside the UPDATE:
	// bookings may have landed between the read above and this write.
	if err := uc.events.Update(ctx, id, req.Title, req.Venue, req.Category, req.Date, req.SeatCapacity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindCheckViolated):
			return nil, errs.ErrCapacityBelowBooked
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrEventNotFound
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return uc.reads.GetEvent(ctx, id)
}

func (uc *eventUseCaseImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := uc.events.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindCheckViolated):
			return errs.ErrEventHasBookings
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrEventNotFound
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}
