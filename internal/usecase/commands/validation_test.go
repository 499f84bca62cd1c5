//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	dombooking "ticketgate/internal/domain/booking"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationFixture struct {
	repo   *fakeBookingRepo
	ledger *fakeLedger
	clk    *clock.MockClock
	uc     commands.ValidationCommands

	eventID uuid.UUID
}

func newValidationFixture(t *testing.T) *validationFixture {
	t.Helper()

	ledger := newFakeLedger()
	eventID := uuid.New()
	ledger.addEvent(eventID, "Jazz Night", 100)

	repo := newFakeBookingRepo()
	clk := clock.NewMockClock(time.Date(2025, 9, 1, 18, 30, 0, 0, time.UTC))

	return &validationFixture{
		repo:    repo,
		ledger:  ledger,
		clk:     clk,
		uc:      commands.NewValidationUseCase(repo, &fakeScanReader{repo: repo, ledger: ledger}, clk, slog.New(slog.DiscardHandler)),
		eventID: eventID,
	}
}

func (f *validationFixture) confirmedBooking(t *testing.T, quantity int) uuid.UUID {
	t.Helper()

	b, err := dombooking.NewBooking(uuid.New(), f.eventID, quantity)
	require.NoError(t, err)
	require.NoError(t, f.repo.Create(context.Background(), b))
	require.NoError(t, f.repo.UpdateArtifact(context.Background(), b.ID(), dombooking.StatusConfirmed, dombooking.ArtifactFileName(b.ID())))
	return b.ID()
}

func TestValidateScan(t *testing.T) {
	ctx := context.Background()

	t.Run("first scan consumes the ticket and returns the summary", func(t *testing.T) {
		f := newValidationFixture(t)
		id := f.confirmedBooking(t, 2)

		summary, err := f.uc.ValidateScan(ctx, dombooking.EncodePayload(id))
		require.NoError(t, err)

		assert.Equal(t, "Jazz Night", summary.EventTitle)
		assert.Equal(t, 2, summary.Quantity)

		b, err := f.repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, b.IsConsumed())
	})

	t.Run("second scan of the same ticket is rejected", func(t *testing.T) {
		f := newValidationFixture(t)
		id := f.confirmedBooking(t, 1)
		payload := dombooking.EncodePayload(id)

		_, err := f.uc.ValidateScan(ctx, payload)
		require.NoError(t, err)

		_, err = f.uc.ValidateScan(ctx, payload)
		assert.ErrorIs(t, err, errs.ErrTicketConsumed)
	})

	t.Run("unknown booking and malformed payload are indistinguishable", func(t *testing.T) {
		f := newValidationFixture(t)

		_, errUnknown := f.uc.ValidateScan(ctx, dombooking.EncodePayload(uuid.New()))
		assert.ErrorIs(t, errUnknown, errs.ErrTicketUnknown)

		for _, payload := range []string{
			"",
			"garbage",
			"BOOKING:",
			"BOOKING:not-a-uuid",
			"TICKET:" + uuid.New().String(),
		} {
			_, errMalformed := f.uc.ValidateScan(ctx, payload)
			assert.ErrorIs(t, errMalformed, errs.ErrTicketUnknown, "payload %q", payload)
		}
	})

	t.Run("concurrent scans admit exactly one", func(t *testing.T) {
		const scanners = 12

		f := newValidationFixture(t)
		payload := dombooking.EncodePayload(f.confirmedBooking(t, 1))

		var wg sync.WaitGroup
		results := make(chan error, scanners)
		for i := 0; i < scanners; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.uc.ValidateScan(ctx, payload)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		admitted := 0
		for err := range results {
			if err == nil {
				admitted++
			}
		}
		assert.Equal(t, 1, admitted)
	})
}
