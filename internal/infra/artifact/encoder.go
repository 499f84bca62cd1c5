package artifact

import (
	"ticketgate/internal/pkg/qr"
)

// QREncoder adapts the qr package to the encoder port the booking engine
// expects, so tests can swap in a failing encoder.
type QREncoder struct{}

func NewQREncoder() *QREncoder {
	return &QREncoder{}
}

func (*QREncoder) Encode(payload string) ([]byte, error) {
	return qr.Generate(payload)
}
