package response

import (
	"time"

	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Venue          string    `json:"venue"`
	Category       string    `json:"category"`
	Date           time.Time `json:"date"`
	SeatCapacity   int       `json:"seatCapacity"`
	BookedSeats    int       `json:"bookedSeats"`
	AvailableSeats int       `json:"availableSeats"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromEventView(rm *queries.EventView) *EventResponse {
	var resp EventResponse
	if err := copier.Copy(&resp, rm); err != nil {
		panic(err)
	}
	return &resp
}

func FromEventViews(rms []*queries.EventView) []*EventResponse {
	resps := make([]*EventResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromEventView(rm)
	}
	return resps
}
