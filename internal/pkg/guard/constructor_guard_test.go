package guard_test

import (
	"errors"
	"testing"

	"cargo/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("hold not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardEmbedded shows the guard inside a small value object.
func TestConstructorGuardEmbedded(t *testing.T) {
	type crate struct {
		size  int
		guard guard.ConstructorGuard
	}

	errCrateNotConstructed := errors.New("crate must be created via newCrate")

	newCrate := func(size int) (crate, error) {
		if size <= 0 {
			return crate{}, errors.New("size must be positive")
		}
		return crate{size: size, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		c, err := newCrate(2)

		require.NoError(t, err)
		require.NoError(t, c.guard.Validate(errCrateNotConstructed))
		assert.Equal(t, 2, c.size)
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		c := crate{size: 2}

		assert.Equal(t, errCrateNotConstructed, c.guard.Validate(errCrateNotConstructed))
	})

	t.Run("rejected_construction_returns_zero_value", func(t *testing.T) {
		c, err := newCrate(0)

		require.Error(t, err)
		assert.Equal(t, errCrateNotConstructed, c.guard.Validate(errCrateNotConstructed))
	})
}
