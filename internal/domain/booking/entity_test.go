//go:build unit

package booking_test

import (
	"testing"

	"ticketgate/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()

	t.Run("starts pending artifact", func(t *testing.T) {
		b, err := booking.NewBooking(userID, eventID, 2)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPendingArtifact, b.Status())
		assert.Empty(t, b.ArtifactRef())
		assert.False(t, b.IsConsumed())
		assert.True(t, b.OwnedBy(userID))
		assert.False(t, b.OwnedBy(uuid.New()))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := booking.NewBooking(userID, eventID, qty)
			assert.ErrorIs(t, err, booking.ErrNonPositiveQuantity)
		}
	})

	t.Run("artifact transitions", func(t *testing.T) {
		b, err := booking.NewBooking(userID, eventID, 1)
		require.NoError(t, err)

		ref := booking.ArtifactFileName(b.ID())
		b.ConfirmArtifact(ref)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, ref, b.ArtifactRef())

		b2, err := booking.NewBooking(userID, eventID, 1)
		require.NoError(t, err)
		b2.FailArtifact()
		assert.Equal(t, booking.StatusFailedArtifact, b2.Status())
	})
}

func TestPayload(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		id := uuid.New()
		payload := booking.EncodePayload(id)
		assert.Equal(t, "BOOKING:"+id.String(), payload)

		decoded, err := booking.DecodePayload(payload)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	})

	t.Run("rejects missing marker and bad ids", func(t *testing.T) {
		for _, payload := range []string{
			"",
			uuid.New().String(),
			"TICKET:" + uuid.New().String(),
			"BOOKING:not-a-uuid",
			"BOOKING:",
		} {
			_, err := booking.DecodePayload(payload)
			assert.ErrorIs(t, err, booking.ErrMalformedPayload, "payload %q", payload)
		}
	})
}
