// Package providerrepo provides data transfer objects and mapping functions for provider persistence.
package providerrepo

import (
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"

	"github.com/google/uuid"
)

// ProviderDTO represents the database structure for persisting provider aggregates.
type ProviderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name             string
	SelectedServices string
	Status           int `gorm:"index"`
	TotalEarnings    float64
	CompletedJobs    int
	Rating           float64
}

// TableName specifies the database table name for provider entities.
func (ProviderDTO) TableName() string {
	return "providers"
}

func fromDomain(aggregate *provider.Provider) ProviderDTO {
	return ProviderDTO{
		ID:               aggregate.ID().Bytes(),
		UserID:           aggregate.UserID().Bytes(),
		Name:             aggregate.Name(),
		SelectedServices: aggregate.SelectedServices(),
		Status:           int(aggregate.Status()),
		TotalEarnings:    aggregate.TotalEarnings(),
		CompletedJobs:    aggregate.CompletedJobs(),
		Rating:           aggregate.Rating(),
	}
}

func toDomain(dto ProviderDTO) (*provider.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return provider.RestoreProvider(
		id,
		userID,
		dto.Name,
		dto.SelectedServices,
		provider.ApprovalStatus(dto.Status),
		dto.TotalEarnings,
		dto.CompletedJobs,
		dto.Rating,
	)
}
