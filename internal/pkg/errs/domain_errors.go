package errs

import "errors"

// Domain-specific sentinel errors shared by usecase layers
var (
	// Event errors
	ErrEventNotFound       = errors.New("event not found")
	ErrEventHasBookings    = errors.New("event has bookings")
	ErrCapacityBelowBooked = errors.New("capacity below booked seats")

	// Booking errors
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInsufficientSeats   = errors.New("insufficient seats")
	ErrArtifactGeneration  = errors.New("artifact generation failed")
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrBookingNotRetryable = errors.New("booking artifact not retryable")

	// Validation errors
	ErrTicketUnknown  = errors.New("unknown or malformed ticket")
	ErrTicketConsumed = errors.New("ticket already consumed")

	// Auth errors
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccessDenied       = errors.New("access denied")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
