// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"servicebooking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// ProviderRepoFactory provides access to the provider repository within a transaction.
	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// BookingUoW manages transactions for booking-only operations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CreateBookingUoW manages transactions for booking creation.
	// Creation reads the customer and the service item to snapshot
	// denormalized fields into the new booking.
	CreateBookingUoW interface {
		TxManager
		BookingRepoFactory
		CustomerRepoFactory
		CatalogRepoFactory
	}

	// CreateBookingUoWFactory creates new booking-creation unit of work instances.
	CreateBookingUoWFactory interface {
		Create() CreateBookingUoW
	}

	// BookingProviderUoW manages transactions touching both a booking and
	// its provider. Used for assignment and for completion, where the
	// provider's earnings move in lockstep with the booking status.
	BookingProviderUoW interface {
		TxManager
		BookingRepoFactory
		ProviderRepoFactory
	}

	// BookingProviderUoWFactory creates new booking+provider unit of work instances.
	BookingProviderUoWFactory interface {
		Create() BookingProviderUoW
	}

	// UpdateBookingUoW manages transactions for booking status transitions.
	// Completion also credits the provider, and every transition notifies the
	// customer, so all three aggregates are in scope.
	UpdateBookingUoW interface {
		TxManager
		BookingRepoFactory
		ProviderRepoFactory
		CustomerRepoFactory
	}

	// UpdateBookingUoWFactory creates new booking-transition unit of work instances.
	UpdateBookingUoWFactory interface {
		Create() UpdateBookingUoW
	}

	// RatingUoW manages transactions for rating submission. A submission
	// stores the rating and recomputes the provider's average in the same
	// transaction.
	RatingUoW interface {
		TxManager
		RatingRepoFactory
		BookingRepoFactory
		ProviderRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// ProviderUoW manages transactions for provider-only operations.
	ProviderUoW interface {
		TxManager
		ProviderRepoFactory
	}

	// ProviderUoWFactory creates new provider unit of work instances.
	ProviderUoWFactory interface {
		Create() ProviderUoW
	}

	// PaymentUoW manages transactions for payment recording. Recording reads
	// the booking to copy its amount.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		BookingRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// CatalogUoW manages transactions for catalog maintenance.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// NotificationUoW manages transactions for notification state changes.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
