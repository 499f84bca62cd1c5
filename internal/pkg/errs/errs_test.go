//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"ticketgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("mark is visible to errors.Is", func(t *testing.T) {
		cause := errs.New("disk full")

		err := errs.Mark(cause, errs.ErrArtifactGeneration)
		assert.True(t, errors.Is(err, errs.ErrArtifactGeneration))
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		cause := errs.New("disk full")

		err := errs.Mark(cause, errs.ErrArtifactGeneration)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("nil cause yields the mark alone", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrDatabaseOperationFailed)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
