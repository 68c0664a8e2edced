// Package services holds domain logic that spans aggregates.
//
// The package includes:
//   - OrderPricer: prices an order from the workspace subscription and plan
package services
