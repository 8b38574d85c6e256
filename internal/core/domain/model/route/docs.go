// Package route provides the Route aggregate of the logistics domain: one
// truck assigned to one delivery date, identified by a sequential route code.
//
// The package includes:
//   - Route: the aggregate with its constructors and accessors
//   - Truck: the fleet whitelist
//   - GenerateRouteCode: ROU-NNNN code formatting
//
// Uniqueness of (truck, delivery date) spans aggregates and is guarded by the
// use case and the store; the store reports violations as ErrRouteAlreadyExists.
package route
