// Package provider provides domain entities and business logic for provider
// profiles in the service-booking platform. It implements the Provider
// aggregate root with its approval lifecycle and cumulative statistics.
//
// The package includes:
//   - Provider: The aggregate root holding identity, approval status, and the
//     earnings / completed-jobs / average-rating statistics
//   - ApprovalStatus: A state machine for the admin-facing provider lifecycle
//
// Key business rules:
//   - Total earnings only grow, and only through completed bookings
//   - The completed-jobs counter moves in lockstep with earnings
//   - The average rating is derived from the ratings store and never set
//     directly by a user
package provider
