package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrAlreadyConsumed     = errors.New("booking already consumed")
	ErrInvalidStatus       = errors.New("invalid booking status")
)

// Booking is created exactly once on a successful seat reservation and is
// immutable afterwards, except for the artifact status transition and the
// one-way consumption mark set at the gate.
type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	eventID     uuid.UUID
	quantity    int
	status      Status
	artifactRef string
	consumedAt  *time.Time
	createdAt   time.Time
}

func NewBooking(userID, eventID uuid.UUID, quantity int) (*Booking, error) {
	if quantity <= 0 {
		return nil, ErrNonPositiveQuantity
	}

	return &Booking{
		id:       uuid.New(),
		userID:   userID,
		eventID:  eventID,
		quantity: quantity,
		status:   StatusPendingArtifact,
	}, nil
}

func ReconstructBooking(
	id, userID, eventID uuid.UUID,
	quantity int,
	status Status,
	artifactRef string,
	consumedAt *time.Time,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		eventID:     eventID,
		quantity:    quantity,
		status:      status,
		artifactRef: artifactRef,
		consumedAt:  consumedAt,
		createdAt:   createdAt,
	}
}

// ArtifactFileName derives the on-disk name for a booking's QR image.
// Deterministic so the file can always be re-addressed from the booking ID.
func ArtifactFileName(bookingID uuid.UUID) string {
	return "qr-" + bookingID.String() + ".png"
}

func (b *Booking) ConfirmArtifact(ref string) {
	b.status = StatusConfirmed
	b.artifactRef = ref
}

func (b *Booking) FailArtifact() {
	b.status = StatusFailedArtifact
}

func (b *Booking) IsConsumed() bool {
	return b.consumedAt != nil
}

func (b *Booking) OwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) EventID() uuid.UUID     { return b.eventID }
func (b *Booking) Quantity() int          { return b.quantity }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) ArtifactRef() string    { return b.artifactRef }
func (b *Booking) ConsumedAt() *time.Time { return b.consumedAt }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
