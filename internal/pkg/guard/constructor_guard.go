// Package guard provides ConstructorGuard, a marker embedded into domain objects
// and commands to tell a constructor-built value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// guard is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its
// constructor. A struct literal or `var x T` leaves the guard unset.
//
// Example usage:
//
//	var ErrHoldIsNotConstructed = errors.New("Hold must be created via NewHold")
//
//	type Hold struct {
//	    limit int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewHold(limit int) (*Hold, error) {
//	    if limit <= 0 {
//	        return nil, errors.New("limit must be positive")
//	    }
//	    return &Hold{limit: limit, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (h *Hold) Validate() error {
//	    return h.guard.Validate(ErrHoldIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from the
// constructor of the enclosing type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
