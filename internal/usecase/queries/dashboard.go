package queries

import (
	"context"
	"time"

	"ticketgate/internal/pkg/errs"
)

// Dashboard aggregation for catalog administrators: every event with the
// people booked onto it. Read-only; never touches the seat ledger.

type DashboardBooking struct {
	HolderName  string
	HolderEmail string
	Quantity    int
	BookedAt    time.Time
}

type DashboardEntry struct {
	EventTitle string
	EventDate  time.Time
	Bookings   []DashboardBooking
}

type DashboardReadStore interface {
	ListEventBookings(ctx context.Context) ([]*DashboardEntry, error)
}

type DashboardQueries interface {
	GetDashboard(ctx context.Context) ([]*DashboardEntry, error)
}

type dashboardQueriesImpl struct {
	store DashboardReadStore
}

func NewDashboardQueries(store DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{store: store}
}

func (q *dashboardQueriesImpl) GetDashboard(ctx context.Context) ([]*DashboardEntry, error) {
	entries, err := q.store.ListEventBookings(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entries, nil
}
