// Package kernel provides domain primitives shared by the logistics model.
//
// The package includes:
//   - Date: a calendar date value object with ISO 8601 parsing
//
// Primitives are immutable and validate themselves on construction; zero
// values fail Validate.
package kernel
