// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
package customerrepo

import (
	"servicebooking/internal/core/domain/model/customer"
	"servicebooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name   string
	Email  string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:     aggregate.ID().Bytes(),
		UserID: aggregate.UserID().Bytes(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, userID, dto.Name, dto.Email)
}
