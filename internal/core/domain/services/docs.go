// Package services provides domain policies that do not belong to a single
// aggregate.
//
// The package includes:
//   - DeliveryWindow: the earliest calendar date a route may be created for
package services
