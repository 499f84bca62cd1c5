package event

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("event title cannot be empty")
	ErrEmptyVenue          = errors.New("event venue cannot be empty")
	ErrTitleTooLong        = errors.New("event title is too long (max 255 characters)")
	ErrNonPositiveCapacity = errors.New("seat capacity must be positive")
	ErrCapacityBelowBooked = errors.New("seat capacity cannot drop below booked seats")
)

const MaxTitleLength = 255

// Event is the catalog entry a booking reserves seats against.
// bookedSeats is mutated only through the seat ledger's atomic reservation;
// the entity itself never increments it.
type Event struct {
	id           uuid.UUID
	title        string
	venue        string
	category     string
	date         time.Time
	seatCapacity int
	bookedSeats  int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewEvent(title, venue, category string, date time.Time, seatCapacity int) (*Event, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if strings.TrimSpace(venue) == "" {
		return nil, ErrEmptyVenue
	}
	if seatCapacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Event{
		id:           uuid.New(),
		title:        strings.TrimSpace(title),
		venue:        strings.TrimSpace(venue),
		category:     strings.TrimSpace(category),
		date:         date,
		seatCapacity: seatCapacity,
	}, nil
}

func ReconstructEvent(
	id uuid.UUID,
	title, venue, category string,
	date time.Time,
	seatCapacity, bookedSeats int,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:           id,
		title:        title,
		venue:        venue,
		category:     category,
		date:         date,
		seatCapacity: seatCapacity,
		bookedSeats:  bookedSeats,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// CanResizeTo reports whether catalog management may change capacity.
// Reducing below the already booked count is rejected at the caller,
// never silently clamped by the ledger.
func (e *Event) CanResizeTo(newCapacity int) error {
	if newCapacity <= 0 {
		return ErrNonPositiveCapacity
	}
	if newCapacity < e.bookedSeats {
		return ErrCapacityBelowBooked
	}
	return nil
}

func (e *Event) AvailableSeats() int {
	return e.seatCapacity - e.bookedSeats
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) Venue() string        { return e.venue }
func (e *Event) Category() string     { return e.category }
func (e *Event) Date() time.Time      { return e.date }
func (e *Event) SeatCapacity() int    { return e.seatCapacity }
func (e *Event) BookedSeats() int     { return e.bookedSeats }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }
