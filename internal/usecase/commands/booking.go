package commands

import (
	"context"
	"log/slog"
	"time"

	dombooking "ticketgate/internal/domain/booking"
	domevent "ticketgate/internal/domain/event"
	domuser "ticketgate/internal/domain/user"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/notify"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/pkg/token"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

// SeatLedger is the atomic seat accounting surface. TryReserve either grants
// the full quantity or fails without side effects; Release hands seats back.
type SeatLedger interface {
	TryReserve(ctx context.Context, eventID uuid.UUID, quantity int) error
	Release(ctx context.Context, eventID uuid.UUID, quantity int) error
}

type EventReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domevent.Event, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *dombooking.Booking) error
	UpdateArtifact(ctx context.Context, id uuid.UUID, status dombooking.Status, artifactRef string) error
	FindByID(ctx context.Context, id uuid.UUID) (*dombooking.Booking, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domuser.User, error)
}

type ArtifactEncoder interface {
	Encode(payload string) ([]byte, error)
}

type ArtifactWriter interface {
	Save(name string, data []byte) error
}

type Notifier interface {
	Enqueue(msg notify.BookingConfirmation)
}

type CreateBookingRequest struct {
	EventID  uuid.UUID
	Quantity int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
	RetryArtifact(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	ledger     SeatLedger
	events     EventReader
	bookings   BookingRepository
	users      UserReader
	reads      queries.BookingQueries
	encoder    ArtifactEncoder
	store      ArtifactWriter
	capability *token.CapabilityService
	notifier   Notifier
	tokenTTL   time.Duration
	baseURL    string
	logger     *slog.Logger
}

func NewBookingUseCase(
	ledger SeatLedger,
	events EventReader,
	bookings BookingRepository,
	users UserReader,
	reads queries.BookingQueries,
	encoder ArtifactEncoder,
	store ArtifactWriter,
	capability *token.CapabilityService,
	notifier Notifier,
	tokenTTL time.Duration,
	baseURL string,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		ledger:     ledger,
		events:     events,
		bookings:   bookings,
		users:      users,
		reads:      reads,
		encoder:    encoder,
		store:      store,
		capability: capability,
		notifier:   notifier,
		tokenTTL:   tokenTTL,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// CreateBooking runs the full reservation pipeline: reserve seats, persist
// the booking, generate and store the QR artifact, then confirm. Seats are
// the only resource that must never leak, so every failure after the grant
// either compensates with Release or leaves a booking row that still owns
// the seats (failed_artifact, retryable).
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error) {
	ev, err := uc.events.FindByID(ctx, req.EventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b, err := dombooking.NewBooking(userID, req.EventID, req.Quantity)
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.TryReserve(ctx, req.EventID, req.Quantity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNoSeats):
			return nil, errs.ErrInsufficientSeats
		case infra.IsKind(err, infra.KindNotFound):
			// Event deleted between the lookup and the reservation.
			return nil, errs.ErrEventNotFound
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := uc.bookings.Create(ctx, b); err != nil {
		// The grant succeeded but the booking row did not land, so the
		// seats belong to nobody. Hand them back before reporting failure.
		if rerr := uc.ledger.Release(ctx, req.EventID, req.Quantity); rerr != nil {
			uc.logger.Error("seat release failed after booking persist error, seats leaked",
				"event_id", req.EventID, "quantity", req.Quantity, "error", rerr)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ref, err := uc.writeArtifact(ctx, b.ID())
	if err != nil {
		return nil, err
	}

	if err := uc.bookings.UpdateArtifact(ctx, b.ID(), dombooking.StatusConfirmed, ref); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.sendConfirmation(ctx, b, ev)

	return uc.reads.GetBookingSystem(ctx, b.ID())
}

// RetryArtifact regenerates the QR image for a booking whose artifact step
// failed. The seats were never released, so this is purely an artifact
// operation: no ledger involvement.
func (uc *bookingUseCaseImpl) RetryArtifact(ctx context.Context, bookingID, actorID uuid.UUID) (*queries.BookingView, error) {
	b, err := uc.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !b.OwnedBy(actorID) {
		return nil, errs.ErrAccessDenied
	}
	if b.Status() == dombooking.StatusConfirmed {
		return nil, errs.ErrBookingNotRetryable
	}

	ref, err := uc.writeArtifact(ctx, b.ID())
	if err != nil {
		return nil, err
	}

	if err := uc.bookings.UpdateArtifact(ctx, b.ID(), dombooking.StatusConfirmed, ref); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return uc.reads.GetBookingSystem(ctx, b.ID())
}

// writeArtifact encodes the scan payload and stores the image. On failure
// the booking is flipped to failed_artifact so the client can retry later.
func (uc *bookingUseCaseImpl) writeArtifact(ctx context.Context, bookingID uuid.UUID) (string, error) {
	ref := dombooking.ArtifactFileName(bookingID)

	data, err := uc.encoder.Encode(dombooking.EncodePayload(bookingID))
	if err == nil {
		err = uc.store.Save(ref, data)
	}
	if err != nil {
		uc.logger.Error("artifact generation failed", "booking_id", bookingID, "error", err)
		if uerr := uc.bookings.UpdateArtifact(ctx, bookingID, dombooking.StatusFailedArtifact, ""); uerr != nil {
			uc.logger.Error("failed to mark booking as failed_artifact", "booking_id", bookingID, "error", uerr)
		}
		return "", errs.Mark(err, errs.ErrArtifactGeneration)
	}
	return ref, nil
}

// sendConfirmation mints a retrieval capability and hands the message to the
// notification queue. Best effort: the booking is already confirmed, so any
// failure here is logged and swallowed.
func (uc *bookingUseCaseImpl) sendConfirmation(ctx context.Context, b *dombooking.Booking, ev *domevent.Event) {
	u, err := uc.users.FindByID(ctx, b.UserID())
	if err != nil {
		uc.logger.Error("confirmation skipped, user lookup failed", "booking_id", b.ID(), "error", err)
		return
	}

	capToken, err := uc.capability.Issue(b.ID(), token.ActionRetrieveArtifact, uc.tokenTTL)
	if err != nil {
		uc.logger.Error("confirmation skipped, capability issue failed", "booking_id", b.ID(), "error", err)
		return
	}

	uc.notifier.Enqueue(notify.BookingConfirmation{
		RecipientEmail: u.Email().Value(),
		EventTitle:     ev.Title(),
		EventVenue:     ev.Venue(),
		EventDate:      ev.Date(),
		Quantity:       b.Quantity(),
		RetrievalLink:  uc.baseURL + "/api/bookings/" + b.ID().String() + "/qr?token=" + capToken,
	})
}
