package plane

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

const (
	overflowNotice = "Exceeded airplane capacity"
	emptyManifest  = "(empty)"
	manifestSep    = " | "
)

var (
	// ErrNameIsRequired is returned when creating a plane without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPlaneIsNotConstructed is returned when using a zero-value Plane.
	ErrPlaneIsNotConstructed = errors.New("Plane must be created via NewPlane constructor")
)

// Particulars are the fixed performance parameters of a cargo plane.
type Particulars struct {
	// MaxWeight is the payload limit in TEU.
	MaxWeight int
	// MaxSpeed is the speed with no payload, in knots.
	MaxSpeed float64
}

// Validate checks that both limits are positive and MaxSpeed is finite.
func (p Particulars) Validate() error {
	var problems []error

	if p.MaxWeight <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"maxWeight", fmt.Errorf("%d is not greater than 0", p.MaxWeight)))
	}
	if math.IsNaN(p.MaxSpeed) || math.IsInf(p.MaxSpeed, 0) || p.MaxSpeed <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"maxSpeed", fmt.Errorf("%g is not a finite number greater than 0", p.MaxSpeed)))
	}

	return errors.Join(problems...)
}

// Plane is a cargo airplane. Its speed decays with payload according to the
// DecayModel chosen at construction.
//
// Business rules:
//   - Total load never exceeds MaxWeight; overflowing units are rejected
//     with the "Exceeded airplane capacity" notice
//   - Units are unloaded according to the plane's RemovalPolicy
//   - The manifest lists categories in loading order
type Plane struct {
	id          kernel.UUID
	name        string
	particulars Particulars
	model       DecayModel
	hold        *cargo.Hold
	notifier    cargo.Notifier

	guard guard.ConstructorGuard
}

// NewPlane creates an empty plane. A nil notifier discards notices.
// All validation errors are aggregated.
func NewPlane(
	id kernel.UUID,
	name string,
	particulars Particulars,
	model DecayModel,
	policy cargo.RemovalPolicy,
	notifier cargo.Notifier,
) (*Plane, error) {
	p := &Plane{
		notifier: notifier,
		guard:    guard.NewConstructorGuard(),
	}
	if p.notifier == nil {
		p.notifier = cargo.DiscardNotifier
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setModel(model),
		p.setParticulars(particulars, policy),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// ID returns the plane identifier.
func (p *Plane) ID() kernel.UUID {
	return p.id
}

// Name returns the plane name used in notices.
func (p *Plane) Name() string {
	return p.name
}

// Particulars returns the performance parameters fixed at construction.
func (p *Plane) Particulars() Particulars {
	return p.particulars
}

// DecayModel returns the speed model fixed at construction.
func (p *Plane) DecayModel() DecayModel {
	return p.model
}

// Policy returns the removal policy fixed at construction.
func (p *Plane) Policy() cargo.RemovalPolicy {
	return p.hold.Policy()
}

// Units returns the carried units in loading order.
func (p *Plane) Units() []cargo.Unit {
	return p.hold.Units()
}

// TotalLoad returns the payload in TEU.
func (p *Plane) TotalLoad() int {
	return p.hold.TotalLoad()
}

// CurrentSpeed applies the plane's decay model to the current weight fraction.
func (p *Plane) CurrentSpeed() float64 {
	return p.model.Speed(p.particulars.MaxSpeed, p.hold.LoadingFraction())
}

// AddUnit loads the unit if it fits within MaxWeight. Otherwise it emits the
// capacity notice and returns false without changing the plane.
func (p *Plane) AddUnit(unit cargo.Unit) bool {
	return p.accept(p.hold.Store(unit))
}

// RemoveUnit unloads the first unit equal to the given one (by-reference policy).
func (p *Plane) RemoveUnit(unit cargo.Unit) bool {
	return p.accept(p.hold.Remove(unit))
}

// PopUnit unloads the most recently loaded unit (by-stack policy).
func (p *Plane) PopUnit() (cargo.Unit, bool) {
	unit, err := p.hold.Pop()
	return unit, p.accept(err)
}

// Manifest joins the unit categories with " | ", or returns "(empty)".
func (p *Plane) Manifest() string {
	units := p.hold.Units()
	if len(units) == 0 {
		return emptyManifest
	}

	tags := make([]string, 0, len(units))
	for _, unit := range units {
		tags = append(tags, unit.Category().String())
	}
	return strings.Join(tags, manifestSep)
}

// Report renders payload, speed and manifest:
//
//	Cargo: 10 TEU
//	Speed: 424.26 knots
//	Manifest:
//	FF | CG | PG | IE | FF
func (p *Plane) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cargo: %d TEU\n", p.TotalLoad())
	fmt.Fprintf(&b, "Speed: %.2f knots\n", p.CurrentSpeed())
	b.WriteString("Manifest:\n")
	b.WriteString(p.Manifest())
	b.WriteString("\n")

	return b.String()
}

// Validate reports whether the plane was built by NewPlane.
func (p *Plane) Validate() error {
	if p == nil {
		return ErrPlaneIsNotConstructed
	}
	return p.guard.Validate(ErrPlaneIsNotConstructed)
}

func (p *Plane) accept(err error) bool {
	if err == nil {
		return true
	}

	p.notifier.Notify(cargo.Notice{Vessel: p.name, Message: cargo.NoticeFor(err, overflowNotice)})
	return false
}

func (p *Plane) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Plane) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Plane) setModel(model DecayModel) error {
	if err := model.Validate(); err != nil {
		return err
	}

	p.model = model
	return nil
}

func (p *Plane) setParticulars(particulars Particulars, policy cargo.RemovalPolicy) error {
	if err := particulars.Validate(); err != nil {
		return err
	}

	hold, err := cargo.NewHold(particulars.MaxWeight, policy)
	if err != nil {
		return err
	}

	p.particulars = particulars
	p.hold = hold
	return nil
}
