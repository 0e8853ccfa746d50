package ship_test

import (
	"testing"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/ship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitsOf(tags ...string) []cargo.Unit {
	units := make([]cargo.Unit, 0, len(tags))
	for _, tag := range tags {
		units = append(units, cargo.MustNewUnit(1, tag))
	}
	return units
}

func TestStack(t *testing.T) {
	t.Run("five units produce two columns of four rows", func(t *testing.T) {
		grid := ship.Stack(unitsOf("FF", "CG", "PG", "RM", "IE"))

		require.Len(t, grid, ship.StackHeight)
		for _, row := range grid {
			require.Len(t, row, 2)
		}

		assert.Equal(t, [][]string{
			{"RM", "  "},
			{"PG", "  "},
			{"CG", "  "},
			{"FF", "IE"},
		}, grid)
	})

	t.Run("unit i lands at column i/4 and row 3-i%4", func(t *testing.T) {
		tags := []string{"FF", "CG", "PG", "RM", "IE", "FF", "CG", "PG", "RM"}
		units := unitsOf(tags...)

		grid := ship.Stack(units)

		for i, unit := range units {
			assert.Equal(t, unit.Category().String(), grid[3-i%4][i/4], "unit %d", i)
		}
		assert.Len(t, grid[0], 3)
	})

	t.Run("no units produce four empty rows", func(t *testing.T) {
		grid := ship.Stack(nil)

		require.Len(t, grid, ship.StackHeight)
		for _, row := range grid {
			assert.Empty(t, row)
		}
	})

	t.Run("exactly four units fill one column", func(t *testing.T) {
		grid := ship.Stack(unitsOf("FF", "CG", "PG", "RM"))

		assert.Equal(t, [][]string{{"RM"}, {"PG"}, {"CG"}, {"FF"}}, grid)
	})
}
