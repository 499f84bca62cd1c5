package response

import (
	"time"

	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID  `json:"id"`
	EventID    uuid.UUID  `json:"eventId"`
	EventTitle string     `json:"eventTitle"`
	EventVenue string     `json:"eventVenue"`
	EventDate  time.Time  `json:"eventDate"`
	Quantity   int        `json:"quantity"`
	Status     string     `json:"status"`
	ConsumedAt *time.Time `json:"consumedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, rm); err != nil {
		panic(err)
	}
	return &resp
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromBookingView(rm)
	}
	return resps
}

// ScanResponse is the gate-facing validation verdict. Failure reasons are
// coarse on purpose.
type ScanResponse struct {
	Valid   bool         `json:"valid"`
	Reason  string       `json:"reason,omitempty"`
	Summary *ScanSummary `json:"summary,omitempty"`
}

type ScanSummary struct {
	EventTitle string    `json:"eventTitle"`
	HolderName string    `json:"holderName"`
	Quantity   int       `json:"quantity"`
	BookedAt   time.Time `json:"bookedAt"`
}

func FromScanSummary(rm *queries.ScanSummary) *ScanResponse {
	var summary ScanSummary
	if err := copier.Copy(&summary, rm); err != nil {
		panic(err)
	}
	return &ScanResponse{Valid: true, Summary: &summary}
}

func ScanRejected(reason string) *ScanResponse {
	return &ScanResponse{Valid: false, Reason: reason}
}
