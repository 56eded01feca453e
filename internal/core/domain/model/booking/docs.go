// Package booking provides domain entities and business logic for booking
// management in the service-booking platform. It implements the Booking
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Booking: The aggregate root that manages booking identity, the price
//     snapshot, denormalized display names, and the lifecycle
//   - Status: A state machine that enforces valid booking status transitions
//
// Key business rules:
//   - Bookings snapshot the service's base price at creation; later catalog
//     changes never affect existing bookings
//   - Status follows a defined workflow: Pending -> Accepted -> Completed,
//     with cancellation possible before completion
//   - Providers can be reassigned while the booking is Accepted
//   - Entering Completed is the one-shot trigger for the provider
//     completion bonus
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package booking
