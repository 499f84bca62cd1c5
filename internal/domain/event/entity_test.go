//go:build unit

package event_test

import (
	"testing"
	"time"

	"ticketgate/internal/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	date := time.Date(2025, 9, 20, 19, 30, 0, 0, time.UTC)

	t.Run("valid event", func(t *testing.T) {
		e, err := event.NewEvent("  Autumn Jazz Night ", "City Hall", "music", date, 120)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, e.ID())
		assert.Equal(t, "Autumn Jazz Night", e.Title())
		assert.Equal(t, 120, e.SeatCapacity())
		assert.Equal(t, 0, e.BookedSeats())
		assert.Equal(t, 120, e.AvailableSeats())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name     string
			title    string
			venue    string
			capacity int
			errIs    error
		}{
			{name: "empty title", title: "", venue: "v", capacity: 10, errIs: event.ErrEmptyTitle},
			{name: "blank title", title: "   ", venue: "v", capacity: 10, errIs: event.ErrEmptyTitle},
			{name: "empty venue", title: "t", venue: " ", capacity: 10, errIs: event.ErrEmptyVenue},
			{name: "zero capacity", title: "t", venue: "v", capacity: 0, errIs: event.ErrNonPositiveCapacity},
			{name: "negative capacity", title: "t", venue: "v", capacity: -5, errIs: event.ErrNonPositiveCapacity},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := event.NewEvent(tc.title, tc.venue, "cat", date, tc.capacity)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestCanResizeTo(t *testing.T) {
	date := time.Date(2025, 9, 20, 19, 30, 0, 0, time.UTC)
	e := event.ReconstructEvent(uuid.New(), "t", "v", "cat", date, 100, 40, time.Now(), time.Now())

	assert.NoError(t, e.CanResizeTo(40))
	assert.NoError(t, e.CanResizeTo(200))
	assert.ErrorIs(t, e.CanResizeTo(39), event.ErrCapacityBelowBooked)
	assert.ErrorIs(t, e.CanResizeTo(0), event.ErrNonPositiveCapacity)
}
