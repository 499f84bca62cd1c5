package booking

type Status string

const (
	// StatusPendingArtifact: seats are reserved, QR image not yet written.
	StatusPendingArtifact Status = "pending_artifact"
	// StatusConfirmed: booking complete, artifact stored.
	StatusConfirmed Status = "confirmed"
	// StatusFailedArtifact: terminal encoding failure. Seats stay consumed;
	// artifact generation can be retried against the same booking.
	StatusFailedArtifact Status = "failed_artifact"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingArtifact, StatusConfirmed, StatusFailedArtifact:
		return true
	default:
		return false
	}
}
