//go:build unit

package notify_test

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"ticketgate/internal/infra/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu    sync.Mutex
	sent  []string
	block chan struct{}
}

func (m *recordingMailer) Send(to, _, _ string) error {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func (m *recordingMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func TestDispatcher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	confirmation := func(to string) notify.BookingConfirmation {
		return notify.BookingConfirmation{
			RecipientEmail: to,
			EventTitle:     "Autumn Jazz Night",
			EventVenue:     "City Hall",
			EventDate:      time.Date(2025, 9, 20, 19, 30, 0, 0, time.UTC),
			Quantity:       2,
			RetrievalLink:  "http://localhost:8080/api/bookings/x/qr?token=y",
		}
	}

	t.Run("delivers enqueued confirmations", func(t *testing.T) {
		mailer := &recordingMailer{}
		d := notify.NewDispatcher(mailer, 4, logger)
		d.Start()

		d.Enqueue(confirmation("a@example.com"))
		d.Enqueue(confirmation("b@example.com"))
		d.Stop()

		assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, mailer.recipients())
	})

	t.Run("full queue drops instead of blocking", func(t *testing.T) {
		release := make(chan struct{})
		mailer := &recordingMailer{block: release}
		d := notify.NewDispatcher(mailer, 1, logger)
		d.Start()

		// First message occupies the worker, second fills the queue,
		// third must be dropped without blocking this goroutine.
		done := make(chan struct{})
		go func() {
			d.Enqueue(confirmation("first@example.com"))
			d.Enqueue(confirmation("second@example.com"))
			d.Enqueue(confirmation("third@example.com"))
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Enqueue blocked on a full queue")
		}

		close(release)
		d.Stop()

		require.LessOrEqual(t, len(mailer.recipients()), 2)
	})
}
