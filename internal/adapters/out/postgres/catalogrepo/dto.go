// Package catalogrepo provides data transfer objects and mapping functions for catalog persistence.
// Covers categories and the service items listed under them.
package catalogrepo

import (
	"servicebooking/internal/core/domain/model/catalog"
	"servicebooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
// The name carries a unique index; duplicates surface as gorm.ErrDuplicatedKey.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Description string
	Icon        string
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ServiceItemDTO represents the database structure for persisting service items.
type ServiceItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	BasePrice   float64
}

// TableName specifies the database table name for service item entities.
func (ServiceItemDTO) TableName() string {
	return "service_items"
}

func categoryFromDomain(aggregate *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Icon:        aggregate.Icon(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCategory(id, dto.Name, dto.Description, dto.Icon)
}

func serviceItemFromDomain(aggregate *catalog.ServiceItem) ServiceItemDTO {
	return ServiceItemDTO{
		ID:          aggregate.ID().Bytes(),
		CategoryID:  aggregate.CategoryID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		BasePrice:   aggregate.BasePrice(),
	}
}

func serviceItemToDomain(dto ServiceItemDTO) (*catalog.ServiceItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreServiceItem(id, categoryID, dto.Name, dto.Description, dto.BasePrice)
}
