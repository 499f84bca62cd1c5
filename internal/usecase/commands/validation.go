package commands

import (
	"context"
	"log/slog"
	"time"

	dombooking "ticketgate/internal/domain/booking"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

// TicketConsumer flips a booking's one-way consumption mark. The consumed
// check and the write happen in a single step so concurrent scans of the
// same ticket cannot both succeed.
type TicketConsumer interface {
	MarkConsumed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ScanReader interface {
	GetScanSummary(ctx context.Context, id uuid.UUID) (*queries.ScanSummary, error)
}

type ValidationCommands interface {
	// ValidateScan decides a gate scan. Malformed payloads and unknown
	// bookings are indistinguishable to the caller so the endpoint cannot
	// be used to probe for valid booking IDs.
	ValidateScan(ctx context.Context, payload string) (*queries.ScanSummary, error)
}

type validationUseCaseImpl struct {
	consumer TicketConsumer
	reads    ScanReader
	clock    clock.Clock
	logger   *slog.Logger
}

func NewValidationUseCase(consumer TicketConsumer, reads ScanReader, clk clock.Clock, logger *slog.Logger) ValidationCommands {
	return &validationUseCaseImpl{consumer: consumer, reads: reads, clock: clk, logger: logger}
}

func (uc *validationUseCaseImpl) ValidateScan(ctx context.Context, payload string) (*queries.ScanSummary, error) {
	bookingID, err := dombooking.DecodePayload(payload)
	if err != nil {
		return nil, errs.ErrTicketUnknown
	}

	if err := uc.consumer.MarkConsumed(ctx, bookingID, uc.clock.Now()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrTicketUnknown
		case infra.IsKind(err, infra.KindAlreadyUpdated):
			return nil, errs.ErrTicketConsumed
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	summary, err := uc.reads.GetScanSummary(ctx, bookingID)
	if err != nil {
		// The ticket is already consumed at this point; losing the summary
		// should not fail the scan outcome silently, so report it.
		uc.logger.Error("scan summary lookup failed after consumption", "booking_id", bookingID, "error", err)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return summary, nil
}
