package ship

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
	// overflowNotice is emitted when a unit does not fit in the ship.
	overflowNotice = "Exceeded ship capacity"

	// fullLoadSpeedDrop is the share of max speed lost at full capacity.
	fullLoadSpeedDrop = 0.5
)

var (
	// ErrNameIsRequired is returned when creating a ship without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrShipIsNotConstructed is returned when using a zero-value Ship.
	ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip constructor")
)

// Particulars are the fixed physical parameters of a ship.
type Particulars struct {
	// MaxCapacity is the hold size in TEU.
	MaxCapacity int
	// MaxSpeed is the speed when empty, in knots.
	MaxSpeed float64
	// MinDraft is the draft when empty, in meters.
	MinDraft float64
	// MaxDraft is the draft at full capacity, in meters.
	MaxDraft float64
}

// Validate checks that capacity and speed are positive, every float is finite
// and MinDraft < MaxDraft.
func (p Particulars) Validate() error {
	var problems []error

	if p.MaxCapacity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"maxCapacity", fmt.Errorf("%d is not greater than 0", p.MaxCapacity)))
	}
	if !isFinite(p.MaxSpeed) || p.MaxSpeed <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"maxSpeed", fmt.Errorf("%g is not a finite number greater than 0", p.MaxSpeed)))
	}
	if !isFinite(p.MinDraft) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"minDraft", fmt.Errorf("%g is not a finite number", p.MinDraft)))
	}
	if !isFinite(p.MaxDraft) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"maxDraft", fmt.Errorf("%g is not a finite number", p.MaxDraft)))
	}
	if !(p.MinDraft < p.MaxDraft) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"maxDraft", fmt.Errorf("%g is not greater than minDraft %g", p.MaxDraft, p.MinDraft)))
	}

	return errors.Join(problems...)
}

// Ship is a container ship. Its draft grows linearly with the load and its
// speed falls linearly to half of MaxSpeed at full capacity.
//
// Business rules:
//   - Total load never exceeds MaxCapacity; overflowing units are rejected
//     with the "Exceeded ship capacity" notice
//   - Units are unloaded according to the ship's RemovalPolicy
//   - Loading order is kept and drives the stacking layout in Report
//
// Example:
//
//	s, err := ship.NewShip(kernel.NewUUID(), "Northern Star", ship.Particulars{
//	    MaxCapacity: 20, MaxSpeed: 25, MinDraft: 5, MaxDraft: 15,
//	}, cargo.RemoveByReference, notifier)
//	if err != nil {
//	    return err
//	}
//	s.AddUnit(cargo.MustNewUnit(1, "FF"))
//	fmt.Print(s.Report())
type Ship struct {
	id          kernel.UUID
	name        string
	particulars Particulars
	hold        *cargo.Hold
	notifier    cargo.Notifier

	guard guard.ConstructorGuard
}

// NewShip creates an empty ship. A nil notifier discards notices.
// All validation errors are aggregated.
func NewShip(
	id kernel.UUID,
	name string,
	particulars Particulars,
	policy cargo.RemovalPolicy,
	notifier cargo.Notifier,
) (*Ship, error) {
	s := &Ship{
		notifier: notifier,
		guard:    guard.NewConstructorGuard(),
	}
	if s.notifier == nil {
		s.notifier = cargo.DiscardNotifier
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setParticulars(particulars, policy),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the ship identifier.
func (s *Ship) ID() kernel.UUID {
	return s.id
}

// Name returns the ship name used in notices.
func (s *Ship) Name() string {
	return s.name
}

// Particulars returns the physical parameters fixed at construction.
func (s *Ship) Particulars() Particulars {
	return s.particulars
}

// Policy returns the removal policy fixed at construction.
func (s *Ship) Policy() cargo.RemovalPolicy {
	return s.hold.Policy()
}

// Units returns the carried units in loading order.
func (s *Ship) Units() []cargo.Unit {
	return s.hold.Units()
}

// TotalLoad returns the sum of the sizes of all carried units, in TEU.
func (s *Ship) TotalLoad() int {
	return s.hold.TotalLoad()
}

// CurrentDraft interpolates linearly between MinDraft (empty) and MaxDraft (full).
func (s *Ship) CurrentDraft() float64 {
	p := s.particulars
	return p.MinDraft + s.hold.LoadingFraction()*(p.MaxDraft-p.MinDraft)
}

// CurrentSpeed derives the loading fraction from the draft and reduces
// MaxSpeed linearly, down to half of it at full capacity.
func (s *Ship) CurrentSpeed() float64 {
	p := s.particulars
	loadingFraction := (s.CurrentDraft() - p.MinDraft) / (p.MaxDraft - p.MinDraft)
	return p.MaxSpeed * (1 - fullLoadSpeedDrop*loadingFraction)
}

// AddUnit loads the unit if it fits. Otherwise it emits the capacity notice
// and returns false without changing the ship.
func (s *Ship) AddUnit(unit cargo.Unit) bool {
	return s.accept(s.hold.Store(unit))
}

// RemoveUnit unloads the first unit equal to the given one. It requires the
// by-reference policy; a miss emits "Container not found" and returns false.
func (s *Ship) RemoveUnit(unit cargo.Unit) bool {
	return s.accept(s.hold.Remove(unit))
}

// PopUnit unloads the most recently loaded unit. It requires the by-stack
// policy; an empty ship emits a notice and returns false.
func (s *Ship) PopUnit() (cargo.Unit, bool) {
	unit, err := s.hold.Pop()
	return unit, s.accept(err)
}

// Report renders load, draft, speed and the stacking layout:
//
//	Cargo: 8 TEU
//	Draft: 9.00 meters
//	Speed: 20.00 knots
//	Composition:
//	RM PG
//	PG CG
//	CG FF
//	FF IE
func (s *Ship) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cargo: %d TEU\n", s.TotalLoad())
	fmt.Fprintf(&b, "Draft: %.2f meters\n", s.CurrentDraft())
	fmt.Fprintf(&b, "Speed: %.2f knots\n", s.CurrentSpeed())
	b.WriteString("Composition:\n")

	for _, row := range Stack(s.hold.Units()) {
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}

	return b.String()
}

// Validate reports whether the ship was built by NewShip.
func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

func (s *Ship) accept(err error) bool {
	if err == nil {
		return true
	}

	s.notifier.Notify(cargo.Notice{Vessel: s.name, Message: cargo.NoticeFor(err, overflowNotice)})
	return false
}

func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Ship) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

func (s *Ship) setParticulars(particulars Particulars, policy cargo.RemovalPolicy) error {
	if err := particulars.Validate(); err != nil {
		return err
	}

	hold, err := cargo.NewHold(particulars.MaxCapacity, policy)
	if err != nil {
		return err
	}

	s.particulars = particulars
	s.hold = hold
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
