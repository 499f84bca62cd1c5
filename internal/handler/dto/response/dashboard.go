package response

import (
	"time"

	"ticketgate/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DashboardBooking struct {
	HolderName  string    `json:"holderName"`
	HolderEmail string    `json:"holderEmail"`
	Quantity    int       `json:"quantity"`
	BookedAt    time.Time `json:"bookedAt"`
}

type DashboardEntry struct {
	EventTitle string             `json:"eventTitle"`
	EventDate  time.Time          `json:"eventDate"`
	Bookings   []DashboardBooking `json:"bookings"`
}

func FromDashboardEntries(rms []*queries.DashboardEntry) []*DashboardEntry {
	resps := make([]*DashboardEntry, len(rms))
	for i, rm := range rms {
		var entry DashboardEntry
		if err := copier.Copy(&entry, rm); err != nil {
			panic(err)
		}
		resps[i] = &entry
	}
	return resps
}
