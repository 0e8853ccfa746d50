package cargo

import (
	"errors"
	"fmt"

	"cargo/internal/pkg/guard"
)

var (
	// ErrInvalidUnit is the sentinel every InvalidUnitError unwraps to.
	ErrInvalidUnit = errors.New("invalid cargo unit")

	// ErrUnitIsNotConstructed is returned when validating a zero-value Unit.
	ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit constructor")
)

// InvalidUnitError is returned by NewUnit when the size or the category is
// outside the allowed sets. Cause holds the joined validation errors.
type InvalidUnitError struct {
	Size     int
	Category string
	Cause    error
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("%s (size=%d, category=%q): %v", ErrInvalidUnit, e.Size, e.Category, e.Cause)
}

// Unwrap exposes both ErrInvalidUnit and the underlying validation errors to
// errors.Is and errors.As.
func (e *InvalidUnitError) Unwrap() []error {
	return []error{ErrInvalidUnit, e.Cause}
}

// Unit is one shippable container. It is an immutable value object: two units
// with the same size and category are equal under ==.
//
// Example:
//
//	unit, err := cargo.NewUnit(2, "ff")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(unit.Size(), unit.Category()) // 2 FF
type Unit struct {
	size     Size
	category Category

	guard guard.ConstructorGuard
}

// NewUnit builds a Unit. The category tag is matched case-insensitively and
// stored upper-case. Any violation yields an *InvalidUnitError.
func NewUnit(size int, category string) (Unit, error) {
	parsedSize := Size(size)
	parsedCategory, categoryErr := ParseCategory(category)

	if err := errors.Join(parsedSize.Validate(), categoryErr); err != nil {
		return Unit{}, &InvalidUnitError{Size: size, Category: category, Cause: err}
	}

	return Unit{
		size:     parsedSize,
		category: parsedCategory,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// MustNewUnit is NewUnit for literal fixtures; it panics on invalid input.
func MustNewUnit(size int, category string) Unit {
	unit, err := NewUnit(size, category)
	if err != nil {
		panic(err)
	}
	return unit
}

// Size returns the capacity the unit consumes, in TEU.
func (u Unit) Size() int {
	return u.size.TEU()
}

// Category returns the normalized cargo category.
func (u Unit) Category() Category {
	return u.category
}

// String renders the unit as "<category>/<size>TEU".
func (u Unit) String() string {
	return fmt.Sprintf("%s/%dTEU", u.category, u.size)
}

// Validate reports whether the unit was built by NewUnit.
func (u Unit) Validate() error {
	return u.guard.Validate(ErrUnitIsNotConstructed)
}
