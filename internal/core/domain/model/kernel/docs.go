// Package kernel provides the shared domain primitives of the cargo model.
//
// The package includes:
//   - UUID: the identity of a vessel in the fleet, with validation and comparison
//
// Cargo units deliberately carry no identity: they compare by value.
package kernel
