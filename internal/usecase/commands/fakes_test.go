//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"ticketgate/internal/domain/booking"
	"ticketgate/internal/domain/event"
	"ticketgate/internal/domain/user"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/notify"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

// fakeLedger mirrors the conditional-update semantics of the SQL ledger:
// a reservation is a single check-and-increment under one lock.
type fakeLedger struct {
	mu       sync.Mutex
	capacity map[uuid.UUID]int
	booked   map[uuid.UUID]int
	titles   map[uuid.UUID]string
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		capacity: make(map[uuid.UUID]int),
		booked:   make(map[uuid.UUID]int),
		titles:   make(map[uuid.UUID]string),
	}
}

func (l *fakeLedger) addEvent(id uuid.UUID, title string, capacity int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.capacity[id] = capacity
	l.titles[id] = title
}

func (l *fakeLedger) bookedSeats(id uuid.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.booked[id]
}

func (l *fakeLedger) TryReserve(_ context.Context, eventID uuid.UUID, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	capacity, ok := l.capacity[eventID]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
	}
	if l.booked[eventID]+quantity > capacity {
		return infra.WrapRepoErr(infra.KindNoSeats, "insufficient seats", nil)
	}
	l.booked[eventID] += quantity
	return nil
}

func (l *fakeLedger) Release(_ context.Context, eventID uuid.UUID, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.capacity[eventID]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
	}
	l.booked[eventID] -= quantity
	if l.booked[eventID] < 0 {
		l.booked[eventID] = 0
	}
	return nil
}

func (l *fakeLedger) FindByID(_ context.Context, id uuid.UUID) (*event.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	capacity, ok := l.capacity[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "event not found", nil)
	}
	return event.ReconstructEvent(
		id, l.titles[id], "Main Hall", "concert",
		time.Date(2025, 9, 1, 19, 0, 0, 0, time.UTC),
		capacity, l.booked[id],
		time.Time{}, time.Time{},
	), nil
}

type bookingRow struct {
	userID     uuid.UUID
	eventID    uuid.UUID
	quantity   int
	status     booking.Status
	ref        string
	consumedAt *time.Time
	createdAt  time.Time
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*bookingRow
	createErr error
	updateErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{rows: make(map[uuid.UUID]*bookingRow)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.rows[b.ID()] = &bookingRow{
		userID:    b.UserID(),
		eventID:   b.EventID(),
		quantity:  b.Quantity(),
		status:    b.Status(),
		createdAt: time.Now(),
	}
	return nil
}

func (r *fakeBookingRepo) UpdateArtifact(_ context.Context, id uuid.UUID, status booking.Status, artifactRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	row, ok := r.rows[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	row.status = status
	row.ref = artifactRef
	return nil
}

func (r *fakeBookingRepo) MarkConsumed(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	if row.consumedAt != nil {
		return infra.WrapRepoErr(infra.KindAlreadyUpdated, "booking already consumed", nil)
	}
	row.consumedAt = &at
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return booking.ReconstructBooking(
		id, row.userID, row.eventID, row.quantity,
		row.status, row.ref, row.consumedAt, row.createdAt,
	), nil
}

func (r *fakeBookingRepo) status(id uuid.UUID) booking.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id].status
}

// fakeBookingQueries derives views straight from the fake repo so
// read-after-write sees whatever the commands wrote.
type fakeBookingQueries struct {
	repo   *fakeBookingRepo
	ledger *fakeLedger
}

func (q *fakeBookingQueries) GetBooking(ctx context.Context, id, requesterID uuid.UUID) (*queries.BookingView, error) {
	view, err := q.GetBookingSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != requesterID {
		return nil, errs.ErrAccessDenied
	}
	return view, nil
}

func (q *fakeBookingQueries) GetBookingSystem(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:          b.ID(),
		UserID:      b.UserID(),
		EventID:     b.EventID(),
		EventTitle:  q.ledger.titles[b.EventID()],
		Quantity:    b.Quantity(),
		Status:      b.Status().String(),
		ArtifactRef: b.ArtifactRef(),
		ConsumedAt:  b.ConsumedAt(),
		CreatedAt:   b.CreatedAt(),
	}, nil
}

func (q *fakeBookingQueries) ListUserBookings(_ context.Context, _ uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

type fakeScanReader struct {
	repo   *fakeBookingRepo
	ledger *fakeLedger
}

func (s *fakeScanReader) GetScanSummary(ctx context.Context, id uuid.UUID) (*queries.ScanSummary, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.ScanSummary{
		EventTitle: s.ledger.titles[b.EventID()],
		HolderName: "Ticket Holder",
		Quantity:   b.Quantity(),
		BookedAt:   b.CreatedAt(),
	}, nil
}

type fakeUserReader struct {
	users map[uuid.UUID]*user.User
}

func (r *fakeUserReader) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

type fakeEncoder struct {
	mu       sync.Mutex
	err      error
	payloads []string
}

func (e *fakeEncoder) Encode(payload string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	e.payloads = append(e.payloads, payload)
	return []byte("png:" + payload), nil
}

type fakeArtifactStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
}

func newFakeArtifactStore() *fakeArtifactStore {
	return &fakeArtifactStore{files: make(map[string][]byte)}
}

func (s *fakeArtifactStore) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.files[name] = data
	return nil
}

func (s *fakeArtifactStore) Open(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "artifact not found", nil)
	}
	return data, nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.BookingConfirmation
}

func (n *fakeNotifier) Enqueue(msg notify.BookingConfirmation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *fakeNotifier) messages() []notify.BookingConfirmation {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.BookingConfirmation(nil), n.sent...)
}
