package queries

import (
	"context"
	"time"

	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingView struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	EventID     uuid.UUID
	EventTitle  string
	EventVenue  string
	EventDate   time.Time
	Quantity    int
	Status      string
	ArtifactRef string
	ConsumedAt  *time.Time
	CreatedAt   time.Time
}

// ScanSummary is what a gate scanner sees after a successful validation.
// Deliberately narrow: no user or booking identifiers beyond what the
// operator needs to wave someone through.
type ScanSummary struct {
	EventTitle string
	HolderName string
	Quantity   int
	BookedAt   time.Time
}

type BookingReadStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	GetScanSummary(ctx context.Context, id uuid.UUID) (*ScanSummary, error)
}

type BookingQueries interface {
	// GetBooking enforces ownership: callers only ever see their own bookings.
	GetBooking(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error)
	// GetBookingSystem bypasses the ownership check for internal read-after-write.
	GetBookingSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, requesterID uuid.UUID) (*BookingView, error) {
	view, err := q.GetBookingSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != requesterID {
		return nil, errs.ErrAccessDenied
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetBookingSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
