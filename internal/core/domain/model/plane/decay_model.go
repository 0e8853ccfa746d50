package plane

import (
	"fmt"
	"math"

	"cargo/internal/pkg/errs"
)

// DecayModel selects how a plane's speed falls as it takes on weight.
//
//   - InverseSquareRoot: speed = max / sqrt(1 + f), never below 40% of max
//   - PolynomialDecay:   speed = max * (1 - 0.6 * f^1.5), never below 30% of max
//
// f is the weight fraction, load / MaxWeight.
type DecayModel int

const (
	// DecayModelUnknown catches uninitialized values.
	DecayModelUnknown DecayModel = iota
	InverseSquareRoot
	PolynomialDecay
)

const (
	inverseSqrtFloor   = 0.4
	polynomialFloor    = 0.3
	polynomialCoeff    = 0.6
	polynomialExponent = 1.5
)

func getDecayModelStrings() map[DecayModel]string {
	//nolint:exhaustive // DecayModelUnknown is not selectable
	return map[DecayModel]string{
		InverseSquareRoot: "inverse-sqrt",
		PolynomialDecay:   "polynomial",
	}
}

// ParseDecayModel accepts "inverse-sqrt" or "polynomial".
func ParseDecayModel(s string) (DecayModel, error) {
	for model, str := range getDecayModelStrings() {
		if str == s {
			return model, nil
		}
	}
	return DecayModelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"decay model",
		fmt.Errorf("%q is not one of inverse-sqrt, polynomial", s),
	)
}

// UnmarshalText lets configuration loaders decode the model by name.
func (m *DecayModel) UnmarshalText(text []byte) error {
	model, err := ParseDecayModel(string(text))
	if err != nil {
		return err
	}
	*m = model
	return nil
}

// Validate returns an error for DecayModelUnknown and out-of-range values.
func (m DecayModel) Validate() error {
	if _, ok := getDecayModelStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("decay model", fmt.Errorf("%d is not a valid model", m))
	}
	return nil
}

func (m DecayModel) String() string {
	if str, ok := getDecayModelStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Speed returns the speed at the given weight fraction. A zero fraction
// always yields maxSpeed.
func (m DecayModel) Speed(maxSpeed, fraction float64) float64 {
	if fraction == 0 {
		return maxSpeed
	}

	switch m {
	case InverseSquareRoot:
		return math.Max(maxSpeed/math.Sqrt(1+fraction), inverseSqrtFloor*maxSpeed)
	case PolynomialDecay:
		return math.Max(maxSpeed*(1-polynomialCoeff*math.Pow(fraction, polynomialExponent)), polynomialFloor*maxSpeed)
	default:
		return maxSpeed
	}
}
