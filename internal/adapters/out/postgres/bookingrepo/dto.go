// Package bookingrepo provides data transfer objects and mapping functions for booking persistence.
// This package implements the repository pattern for the booking domain aggregate, handling
// the conversion between domain entities and database representations.
package bookingrepo

import (
	"time"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting booking aggregates.
// Maps booking domain entities to relational database tables with indexing
// for efficient querying by status, customer and provider assignment.
type BookingDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	ProviderID   *uuid.UUID `gorm:"type:uuid;index"`
	ServiceID    uuid.UUID  `gorm:"type:uuid;index"`
	ScheduledAt  time.Time
	Location     string
	Status       int `gorm:"index"`
	Amount       float64
	CustomerName string
	ProviderName string
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for booking entities.
// Overrides GORM's default naming convention to use "bookings".
func (BookingDTO) TableName() string {
	return "bookings"
}

// fromDomain converts a booking domain aggregate to its database representation.
// Maps all booking attributes including the optional provider assignment.
func fromDomain(aggregate *booking.Booking) BookingDTO {
	var providerID *uuid.UUID
	if id := aggregate.ProviderID(); id != nil {
		raw := id.Bytes()
		providerID = &raw
	}

	return BookingDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		ProviderID:   providerID,
		ServiceID:    aggregate.ServiceID().Bytes(),
		ScheduledAt:  aggregate.ScheduledAt(),
		Location:     aggregate.Location(),
		Status:       int(aggregate.Status()),
		Amount:       aggregate.Amount(),
		CustomerName: aggregate.CustomerName(),
		ProviderName: aggregate.ProviderName(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a booking domain aggregate.
// Reconstructs the complete aggregate including status and provider assignment using RestoreBooking.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var providerID *kernel.UUID
	if dto.ProviderID != nil {
		pID, providerErr := kernel.UUIDFromBytes((*dto.ProviderID)[:])
		if providerErr != nil {
			return nil, providerErr
		}

		providerID = &pID
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		customerID,
		providerID,
		serviceID,
		dto.ScheduledAt,
		dto.Location,
		booking.Status(dto.Status),
		dto.Amount,
		dto.CustomerName,
		dto.ProviderName,
		dto.CreatedAt,
	)
}
