// Package kernel provides the core domain primitives shared by every
// aggregate in the relay-point system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Coordinates: a latitude/longitude value object with haversine distance
//
// These primitives are immutable, enforce their invariants at construction
// time, and are safe for concurrent use.
package kernel
