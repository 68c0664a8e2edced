// Package kernel provides the value objects shared by every photoflow aggregate.
//
// The package includes:
//   - UUID: identifier wrapper over google/uuid whose zero value is invalid
//   - Location: the trimmed street address of a shoot
//   - Role and Actor: the authenticated caller handed to every use case
//
// Values are immutable once built and must come from their constructors.
package kernel
