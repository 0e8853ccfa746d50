package ship

import "cargo/internal/core/domain/model/cargo"

const (
	// StackHeight is the number of tiers in the stacking layout.
	StackHeight = 4

	// emptyCell fills a slot with no unit; it is as wide as a category tag.
	emptyCell = "  "
)

// Stack lays units out in columns of StackHeight, filled bottom-to-top and
// then left-to-right. Unit i lands in column i/StackHeight and row
// StackHeight-1-i%StackHeight; row 0 is the top tier.
//
// The result always has StackHeight rows. With no units every row is empty.
func Stack(units []cargo.Unit) [][]string {
	columns := (len(units) + StackHeight - 1) / StackHeight

	grid := make([][]string, StackHeight)
	for row := range grid {
		grid[row] = make([]string, columns)
		for col := range grid[row] {
			grid[row][col] = emptyCell
		}
	}

	for i, unit := range units {
		col := i / StackHeight
		row := StackHeight - 1 - i%StackHeight
		grid[row][col] = unit.Category().String()
	}

	return grid
}
