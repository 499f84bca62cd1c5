package qr

import (
	"errors"

	"ticketgate/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

var ErrEncoding = errors.New("qr encoding failed")

// MaxPayloadBytes caps payloads well below the QR binary-mode limit so the
// medium error-correction level always fits.
const MaxPayloadBytes = 1024

const imageSize = 256

// Generate encodes payload into a scannable PNG QR image. Pure function of
// its input; the same payload always yields the same image.
func Generate(payload string) ([]byte, error) {
	if payload == "" || len(payload) > MaxPayloadBytes {
		return nil, ErrEncoding
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrEncoding)
	}
	return png, nil
}
