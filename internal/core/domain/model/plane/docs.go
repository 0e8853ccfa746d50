// Package plane models a cargo airplane whose speed falls as its payload grows.
//
// Two speed decay models are available and chosen per plane at construction
// time (see DecayModel). Removal semantics follow cargo.RemovalPolicy, also
// chosen at construction time.
package plane
