package request

import (
	"strings"
	"time"

	"ticketgate/internal/usecase/commands"
	"ticketgate/internal/usecase/queries"
)

type EventRequest struct {
	Title        string    `json:"title" binding:"required"`
	Venue        string    `json:"venue" binding:"required"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date" binding:"required"`
	SeatCapacity int       `json:"seat_capacity" binding:"required"`
}

func (r EventRequest) ToCommand() commands.EventRequest {
	return commands.EventRequest{
		Title:        r.Title,
		Venue:        r.Venue,
		Category:     r.Category,
		Date:         r.Date,
		SeatCapacity: r.SeatCapacity,
	}
}

// EventFilterQuery binds the optional catalog filters. Empty strings mean
// no restriction; date is a calendar day in YYYY-MM-DD.
type EventFilterQuery struct {
	Category string `form:"category"`
	Venue    string `form:"venue"`
	Date     string `form:"date"`
}

func (q EventFilterQuery) ToFilter() (queries.EventFilter, error) {
	var filter queries.EventFilter

	if s := strings.TrimSpace(q.Category); s != "" {
		filter.Category = &s
	}
	if s := strings.TrimSpace(q.Venue); s != "" {
		filter.Venue = &s
	}
	if s := strings.TrimSpace(q.Date); s != "" {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			return queries.EventFilter{}, err
		}
		filter.Date = &day
	}
	return filter, nil
}
