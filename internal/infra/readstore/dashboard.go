package readstore

import (
	"context"
	"time"

	"ticketgate/internal/infra"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardReadStore struct {
	pool *pgxpool.Pool
}

func NewDashboardReadStore(pool *pgxpool.Pool) *DashboardReadStore {
	return &DashboardReadStore{pool: pool}
}

// ListEventBookings joins every event with its bookings in one pass instead
// of a query per event. Events without bookings still get an entry.
func (s *DashboardReadStore) ListEventBookings(ctx context.Context) ([]*queries.DashboardEntry, error) {
	const query = `
SELECT e.id, e.title, e.date, u.name, u.email, b.quantity, b.created_at
FROM events e
LEFT JOIN bookings b ON b.event_id = e.id
LEFT JOIN users u ON u.id = b.user_id
ORDER BY e.date, e.id, b.created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query dashboard", err)
	}
	defer rows.Close()

	var (
		entries []*queries.DashboardEntry
		current *queries.DashboardEntry
		lastID  uuid.UUID
	)
	for rows.Next() {
		var (
			eventID    uuid.UUID
			title      string
			date       time.Time
			holderName *string
			holderMail *string
			quantity   *int
			bookedAt   *time.Time
		)
		if err := rows.Scan(&eventID, &title, &date, &holderName, &holderMail, &quantity, &bookedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan dashboard row", err)
		}

		if current == nil || eventID != lastID {
			current = &queries.DashboardEntry{
				EventTitle: title,
				EventDate:  date,
				Bookings:   []queries.DashboardBooking{},
			}
			entries = append(entries, current)
			lastID = eventID
		}

		if holderName != nil && holderMail != nil && quantity != nil && bookedAt != nil {
			current.Bookings = append(current.Bookings, queries.DashboardBooking{
				HolderName:  *holderName,
				HolderEmail: *holderMail,
				Quantity:    *quantity,
				BookedAt:    *bookedAt,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate dashboard rows", err)
	}
	return entries, nil
}
