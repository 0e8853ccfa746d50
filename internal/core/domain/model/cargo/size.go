package cargo

import "cargo/internal/pkg/errs"

// Size is the capacity a unit consumes, in TEU.
type Size int

const (
	// SizeSingle is a twenty-foot unit.
	SizeSingle Size = 1
	// SizeDouble is a forty-foot unit.
	SizeDouble Size = 2
)

// Validate accepts only SizeSingle and SizeDouble.
func (s Size) Validate() error {
	if s < SizeSingle || s > SizeDouble {
		return errs.NewValueIsOutOfRangeError("size", int(s), int(SizeSingle), int(SizeDouble))
	}
	return nil
}

// TEU returns the size as a plain integer.
func (s Size) TEU() int {
	return int(s)
}
