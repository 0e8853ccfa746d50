package cargo

import (
	"fmt"

	"cargo/internal/pkg/errs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the closed set of cargo tags a unit can carry.
// The zero value, CategoryUnknown, is never valid.
type Category int

const (
	// CategoryUnknown catches uninitialized Category values.
	CategoryUnknown Category = iota
	CategoryFF
	CategoryCG
	CategoryPG
	CategoryRM
	CategoryIE
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown has no tag
	return map[Category]string{
		CategoryFF: "FF",
		CategoryCG: "CG",
		CategoryPG: "PG",
		CategoryRM: "RM",
		CategoryIE: "IE",
	}
}

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{CategoryFF, CategoryCG, CategoryPG, CategoryRM, CategoryIE}
}

// ParseCategory maps a tag to its Category. Matching is case-insensitive:
// "ff", "Ff" and "FF" all yield CategoryFF.
func ParseCategory(tag string) (Category, error) {
	normalized := cases.Upper(language.Und).String(tag)
	for category, str := range getCategoryStrings() {
		if str == normalized {
			return category, nil
		}
	}

	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not one of FF, CG, PG, RM, IE", tag),
	)
}

// Validate returns an error for CategoryUnknown and out-of-range values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the two-letter tag, or "??" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "??"
}
