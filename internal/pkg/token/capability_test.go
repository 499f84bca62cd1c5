//go:build unit

package token_test

import (
	"testing"
	"time"

	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityService_Verify(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := time.Hour
	bookingA := uuid.New()
	bookingB := uuid.New()

	newService := func(clk clock.Clock) *token.CapabilityService {
		return token.NewCapabilityService("capability-secret", clk)
	}

	t.Run("valid token passes for the bound subject and action", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(clk)

		tok, err := svc.Issue(bookingA, token.ActionRetrieveArtifact, ttl)
		require.NoError(t, err)

		assert.Equal(t, token.ResultValid, svc.Verify(tok, bookingA, token.ActionRetrieveArtifact))
	})

	t.Run("subject mismatch is reported, not a generic failure", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(clk)

		tok, err := svc.Issue(bookingA, token.ActionRetrieveArtifact, ttl)
		require.NoError(t, err)

		assert.Equal(t, token.ResultSubjectMismatch, svc.Verify(tok, bookingB, token.ActionRetrieveArtifact))
	})

	t.Run("action mismatch is reported even for the right subject", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(clk)

		tok, err := svc.Issue(bookingA, token.ActionRetrieveArtifact, ttl)
		require.NoError(t, err)

		assert.Equal(t, token.ResultActionMismatch, svc.Verify(tok, bookingA, token.Action("validate")))
	})

	t.Run("expiry is strict", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(clk)

		tok, err := svc.Issue(bookingA, token.ActionRetrieveArtifact, ttl)
		require.NoError(t, err)

		clk.Set(issuedAt.Add(ttl - time.Millisecond))
		assert.Equal(t, token.ResultValid, svc.Verify(tok, bookingA, token.ActionRetrieveArtifact))

		// now == exp already counts as expired
		clk.Set(issuedAt.Add(ttl))
		assert.Equal(t, token.ResultExpired, svc.Verify(tok, bookingA, token.ActionRetrieveArtifact))

		clk.Set(issuedAt.Add(ttl + time.Millisecond))
		assert.Equal(t, token.ResultExpired, svc.Verify(tok, bookingA, token.ActionRetrieveArtifact))
	})

	t.Run("garbage and foreign signatures are malformed", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := newService(clk)

		assert.Equal(t, token.ResultMalformed, svc.Verify("not-a-token", bookingA, token.ActionRetrieveArtifact))

		other := token.NewCapabilityService("some-other-secret", clk)
		tok, err := other.Issue(bookingA, token.ActionRetrieveArtifact, ttl)
		require.NoError(t, err)

		assert.Equal(t, token.ResultMalformed, svc.Verify(tok, bookingA, token.ActionRetrieveArtifact))
	})
}
