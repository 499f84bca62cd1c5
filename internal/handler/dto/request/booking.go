package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventID  uuid.UUID `json:"event_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required"`
}
