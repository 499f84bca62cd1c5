package notify

import (
	"fmt"
	"log/slog"
	"time"
)

// BookingConfirmation is everything the confirmation email needs. Built
// entirely from data already in hand when the booking commits, so dispatch
// never goes back to the database.
type BookingConfirmation struct {
	RecipientEmail string
	EventTitle     string
	EventVenue     string
	EventDate      time.Time
	Quantity       int
	RetrievalLink  string
}

// Dispatcher delivers booking confirmations off the request path. The
// queue is bounded; when it is full the message is dropped and logged
// rather than blocking a booking that is already committed. Losing an
// email never loses a booking.
type Dispatcher struct {
	mailer Mailer
	queue  chan BookingConfirmation
	logger *slog.Logger
	done   chan struct{}
}

func NewDispatcher(mailer Mailer, queueSize int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		mailer: mailer,
		queue:  make(chan BookingConfirmation, queueSize),
		logger: logger,
	}
}

func (d *Dispatcher) Start() {
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		for msg := range d.queue {
			if err := d.mailer.Send(msg.RecipientEmail, "Your Event Booking Confirmation", renderConfirmation(msg)); err != nil {
				d.logger.Warn("booking confirmation dispatch failed", "error", err.Error())
			}
		}
	}()
}

// Stop closes the queue and waits for in-flight sends to finish.
// Enqueue must not be called after Stop.
func (d *Dispatcher) Stop() {
	close(d.queue)
	if d.done != nil {
		<-d.done
	}
}

// Enqueue is fire-and-forget: it never blocks and never fails the caller.
func (d *Dispatcher) Enqueue(msg BookingConfirmation) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping confirmation",
			"recipient", msg.RecipientEmail, "event", msg.EventTitle)
	}
}

func renderConfirmation(msg BookingConfirmation) string {
	return fmt.Sprintf(`
<h2>Booking Confirmed!</h2>
<p>You booked <strong>%d</strong> ticket(s) to <strong>%s</strong> at <strong>%s</strong>.</p>
<p>Date: %s</p>
<p><strong>Click below to view your QR code:</strong></p>
<p><a href="%s" target="_blank">View QR Code</a></p>`,
		msg.Quantity, msg.EventTitle, msg.EventVenue,
		msg.EventDate.Format("Mon Jan 2 2006 15:04"), msg.RetrievalLink)
}
