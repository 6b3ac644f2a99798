package kernel_test

import (
	"testing"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	t.Run("NewID generates distinct valid ids", func(t *testing.T) {
		a := kernel.NewID()
		b := kernel.NewID()

		require.NoError(t, a.Validate())
		require.NoError(t, b.Validate())
		assert.False(t, a.IsEqual(b))
		assert.Len(t, a.String(), 36)
	})

	t.Run("ParseID keeps caller text verbatim", func(t *testing.T) {
		id, err := kernel.ParseID("P1")

		require.NoError(t, err)
		assert.Equal(t, "P1", id.String())
		other, _ := kernel.ParseID("P1")
		assert.True(t, id.IsEqual(other))
	})

	t.Run("ParseID rejects blank text", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t"} {
			_, err := kernel.ParseID(raw)
			require.ErrorIs(t, err, errs.ErrValueIsRequired, "raw=%q", raw)
		}
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.ID

		assert.True(t, id.IsZero())
		assert.Empty(t, id.String())
		require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
	})
}
