//go:build unit || e2e

package builder

import (
	"time"

	reqdto "ticketgate/internal/handler/dto/request"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventBuilder struct {
	ID           uuid.UUID
	Title        string
	Venue        string
	Category     string
	Date         time.Time
	SeatCapacity int
	BookedSeats  int
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:           uuid.New(),
		Title:        "Jazz Night",
		Venue:        "Main Hall",
		Category:     "concert",
		Date:         time.Date(2025, 9, 1, 19, 0, 0, 0, time.UTC),
		SeatCapacity: 100,
		BookedSeats:  0,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) BuildView() *queries.EventView {
	now := time.Now()
	return &queries.EventView{
		ID:             b.ID,
		Title:          b.Title,
		Venue:          b.Venue,
		Category:       b.Category,
		Date:           b.Date,
		SeatCapacity:   b.SeatCapacity,
		BookedSeats:    b.BookedSeats,
		AvailableSeats: b.SeatCapacity - b.BookedSeats,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *EventBuilder) BuildRequestDTO() reqdto.EventRequest {
	return reqdto.EventRequest{
		Title:        b.Title,
		Venue:        b.Venue,
		Category:     b.Category,
		Date:         b.Date,
		SeatCapacity: b.SeatCapacity,
	}
}
