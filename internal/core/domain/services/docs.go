// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the booking platform. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ProviderMatcher: A domain service for selecting and assigning the best
//     available provider to a booking
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
