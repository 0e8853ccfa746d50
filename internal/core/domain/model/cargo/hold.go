package cargo

import (
	"errors"
	"fmt"
	"slices"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	// ErrCapacityExceeded indicates the unit does not fit in the remaining capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrUnitNotFound indicates the named unit is not in the hold.
	ErrUnitNotFound = errors.New("unit not found in hold")

	// ErrHoldIsEmpty indicates there is nothing to take out.
	ErrHoldIsEmpty = errors.New("hold is empty")

	// ErrRemovalPolicyMismatch indicates a removal that the hold's policy forbids.
	ErrRemovalPolicyMismatch = errors.New("removal not allowed by policy")

	// ErrHoldIsNotConstructed indicates a zero-value Hold.
	ErrHoldIsNotConstructed = errors.New("Hold must be created via NewHold constructor")
)

// Hold is the ordered, capacity-bounded sequence of units carried by a vessel.
// Insertion order is preserved and drives the vessel reports.
//
// Business rules:
//   - The sum of unit sizes never exceeds the limit
//   - Only constructed units are accepted
//   - Removal follows the hold's RemovalPolicy
//
// Hold reports rejections as errors; vessels turn them into notices.
type Hold struct {
	limit  int
	policy RemovalPolicy
	units  []Unit

	guard guard.ConstructorGuard
}

// NewHold creates an empty hold that accepts up to limit TEU.
func NewHold(limit int, policy RemovalPolicy) (*Hold, error) {
	hold := &Hold{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(hold.setLimit(limit), hold.setPolicy(policy)); err != nil {
		return nil, err
	}

	return hold, nil
}

// Limit returns the maximum total size the hold accepts.
func (h *Hold) Limit() int {
	return h.limit
}

// Policy returns the removal policy fixed at construction.
func (h *Hold) Policy() RemovalPolicy {
	return h.policy
}

// TotalLoad returns the sum of the sizes of all held units.
func (h *Hold) TotalLoad() int {
	total := 0
	for _, unit := range h.units {
		total += unit.Size()
	}
	return total
}

// LoadingFraction returns TotalLoad divided by Limit, in [0, 1].
func (h *Hold) LoadingFraction() float64 {
	return float64(h.TotalLoad()) / float64(h.limit)
}

// Len returns the number of held units.
func (h *Hold) Len() int {
	return len(h.units)
}

// Units returns a copy of the held units in loading order.
func (h *Hold) Units() []Unit {
	units := make([]Unit, len(h.units))
	copy(units, h.units)
	return units
}

// CanStore reports whether the unit fits in the remaining capacity.
func (h *Hold) CanStore(unit Unit) bool {
	return h.TotalLoad()+unit.Size() <= h.limit
}

// Store appends the unit. It returns ErrCapacityExceeded, leaving the hold
// untouched, when the unit does not fit.
func (h *Hold) Store(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	if !h.CanStore(unit) {
		return fmt.Errorf("%w: load %d + size %d > limit %d", ErrCapacityExceeded, h.TotalLoad(), unit.Size(), h.limit)
	}

	h.units = append(h.units, unit)
	return nil
}

// Remove takes out the first unit equal to the given one. Only allowed under
// RemoveByReference.
func (h *Hold) Remove(unit Unit) error {
	if h.policy != RemoveByReference {
		return fmt.Errorf("%w: hold unloads %s", ErrRemovalPolicyMismatch, h.policy)
	}

	for i, held := range h.units {
		if held == unit {
			h.units = slices.Delete(h.units, i, i+1)
			return nil
		}
	}

	return ErrUnitNotFound
}

// Pop takes out the most recently stored unit. Only allowed under RemoveByStack.
func (h *Hold) Pop() (Unit, error) {
	if h.policy != RemoveByStack {
		return Unit{}, fmt.Errorf("%w: hold unloads %s", ErrRemovalPolicyMismatch, h.policy)
	}

	if len(h.units) == 0 {
		return Unit{}, ErrHoldIsEmpty
	}

	last := h.units[len(h.units)-1]
	h.units = h.units[:len(h.units)-1]
	return last, nil
}

// Validate reports whether the hold was built by NewHold.
func (h *Hold) Validate() error {
	if h == nil {
		return ErrHoldIsNotConstructed
	}
	return h.guard.Validate(ErrHoldIsNotConstructed)
}

func (h *Hold) setLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"limit",
			fmt.Errorf("%d is not greater than 0", limit),
		)
	}

	h.limit = limit
	return nil
}

func (h *Hold) setPolicy(policy RemovalPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	h.policy = policy
	return nil
}
