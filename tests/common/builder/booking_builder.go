//go:build unit || e2e

package builder

import (
	"time"

	"ticketgate/internal/domain/booking"
	reqdto "ticketgate/internal/handler/dto/request"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EventID    uuid.UUID
	EventTitle string
	EventVenue string
	EventDate  time.Time
	Quantity   int
	Status     booking.Status
	ConsumedAt *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		EventID:    uuid.New(),
		EventTitle: "Jazz Night",
		EventVenue: "Main Hall",
		EventDate:  time.Date(2025, 9, 1, 19, 0, 0, 0, time.UTC),
		Quantity:   2,
		Status:     booking.StatusConfirmed,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:         b.ID,
		UserID:     b.UserID,
		EventID:    b.EventID,
		EventTitle: b.EventTitle,
		EventVenue: b.EventVenue,
		EventDate:  b.EventDate,
		Quantity:   b.Quantity,
		Status:     b.Status.String(),
		ConsumedAt: b.ConsumedAt,
		CreatedAt:  time.Now(),
	}
	if b.Status == booking.StatusConfirmed {
		view.ArtifactRef = booking.ArtifactFileName(b.ID)
	}
	return view
}

func (b *BookingBuilder) BuildScanSummary() *queries.ScanSummary {
	return &queries.ScanSummary{
		EventTitle: b.EventTitle,
		HolderName: "Ticket Holder",
		Quantity:   b.Quantity,
		BookedAt:   time.Now(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventID:  b.EventID,
		Quantity: b.Quantity,
	}
}
