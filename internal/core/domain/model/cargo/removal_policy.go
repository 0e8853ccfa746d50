package cargo

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// RemovalPolicy selects how units leave a hold. It is fixed when the vessel is
// built.
//
//   - RemoveByReference: the caller names a unit; the first equal unit goes.
//   - RemoveByStack: the most recently loaded unit goes.
type RemovalPolicy int

const (
	// RemovalPolicyUnknown catches uninitialized values.
	RemovalPolicyUnknown RemovalPolicy = iota
	RemoveByReference
	RemoveByStack
)

func getRemovalPolicyStrings() map[RemovalPolicy]string {
	//nolint:exhaustive // RemovalPolicyUnknown is not selectable
	return map[RemovalPolicy]string{
		RemoveByReference: "by-reference",
		RemoveByStack:     "by-stack",
	}
}

// ParseRemovalPolicy accepts "by-reference" or "by-stack".
func ParseRemovalPolicy(s string) (RemovalPolicy, error) {
	for policy, str := range getRemovalPolicyStrings() {
		if str == s {
			return policy, nil
		}
	}
	return RemovalPolicyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"removal policy",
		fmt.Errorf("%q is not one of by-reference, by-stack", s),
	)
}

// UnmarshalText lets configuration loaders decode the policy by name.
func (p *RemovalPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseRemovalPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Validate returns an error for RemovalPolicyUnknown and out-of-range values.
func (p RemovalPolicy) Validate() error {
	if _, ok := getRemovalPolicyStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("removal policy", fmt.Errorf("%d is not a valid policy", p))
	}
	return nil
}

func (p RemovalPolicy) String() string {
	if str, ok := getRemovalPolicyStrings()[p]; ok {
		return str
	}
	return "unknown"
}
