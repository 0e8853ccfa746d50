// Package ship models a container ship whose draft and speed depend on how
// much cargo it carries.
//
// The package includes:
//   - Ship: the sea vessel aggregate with capacity-bounded loading
//   - Particulars: capacity, speed and draft limits fixed at construction
//   - Stack: the four-tier stacking layout used by the ship report
//
// Key business rules:
//   - Draft = MinDraft + (load / MaxCapacity) * (MaxDraft - MinDraft)
//   - Speed = MaxSpeed * (1 - 0.5 * loading fraction)
//   - A unit that would push the load above MaxCapacity is rejected
package ship
