package usecase

import (
	"context"

	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/pkg/token"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrArtifactTokenInvalid  = errs.New("artifact token invalid or expired")
	ErrArtifactTokenMismatch = errs.New("artifact token does not grant this booking")
)

type ArtifactReader interface {
	Open(name string) ([]byte, error)
}

// ArtifactAccess serves QR images gated by a capability token: the token
// alone authorizes the read, no session required, so emailed links work.
type ArtifactAccess interface {
	Fetch(ctx context.Context, bookingID uuid.UUID, tokenString string) ([]byte, error)
}

type artifactAccessImpl struct {
	capability *token.CapabilityService
	bookings   queries.BookingQueries
	store      ArtifactReader
}

func NewArtifactAccess(capability *token.CapabilityService, bookings queries.BookingQueries, store ArtifactReader) ArtifactAccess {
	return &artifactAccessImpl{capability: capability, bookings: bookings, store: store}
}

func (a *artifactAccessImpl) Fetch(ctx context.Context, bookingID uuid.UUID, tokenString string) ([]byte, error) {
	switch a.capability.Verify(tokenString, bookingID, token.ActionRetrieveArtifact) {
	case token.ResultValid:
	case token.ResultSubjectMismatch, token.ResultActionMismatch:
		// A well-formed token for the wrong booking or operation is an
		// authorization failure, not an authentication one.
		return nil, ErrArtifactTokenMismatch
	default:
		return nil, ErrArtifactTokenInvalid
	}

	view, err := a.bookings.GetBookingSystem(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if view.ArtifactRef == "" {
		return nil, errs.ErrArtifactNotFound
	}

	data, err := a.store.Open(view.ArtifactRef)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrArtifactNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return data, nil
}
