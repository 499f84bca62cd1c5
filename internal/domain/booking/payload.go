package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// PayloadMarker prefixes every scannable payload so a gate scanner can tell
// booking codes apart from other QR content.
const PayloadMarker = "BOOKING:"

var ErrMalformedPayload = errors.New("malformed scan payload")

// EncodePayload builds the string embedded in a booking's QR image.
func EncodePayload(bookingID uuid.UUID) string {
	return PayloadMarker + bookingID.String()
}

// DecodePayload recovers a booking identifier from a scanned payload.
func DecodePayload(payload string) (uuid.UUID, error) {
	rest, found := strings.CutPrefix(payload, PayloadMarker)
	if !found {
		return uuid.Nil, ErrMalformedPayload
	}

	id, err := uuid.Parse(rest)
	if err != nil {
		return uuid.Nil, ErrMalformedPayload
	}
	return id, nil
}
