package catalogrepo

import (
	"context"
	"errors"

	"servicebooking/internal/core/domain/model/catalog"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// The gorm session must run with TranslateError enabled so unique violations
// arrive as gorm.ErrDuplicatedKey.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddCategory saves a new category to the database.
// A duplicate name fails with errs.ErrValueIsInvalid.
func (r *GormCatalogRepository) AddCategory(ctx context.Context, aggregate *catalog.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetCategory retrieves a category by ID.
func (r *GormCatalogRepository) GetCategory(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// GetAllCategories retrieves all catalog categories ordered by name.
func (r *GormCatalogRepository) GetAllCategories(ctx context.Context) ([]*catalog.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]*catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, err := categoryToDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}

// AddServiceItem saves a new service item to the database.
func (r *GormCatalogRepository) AddServiceItem(ctx context.Context, aggregate *catalog.ServiceItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := serviceItemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetServiceItem retrieves a service item by ID.
func (r *GormCatalogRepository) GetServiceItem(ctx context.Context, id kernel.UUID) (*catalog.ServiceItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceItem", id.String())
		}
		return nil, err
	}

	return serviceItemToDomain(dto)
}

// GetServiceItemsByCategory retrieves all service items in one category.
func (r *GormCatalogRepository) GetServiceItemsByCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) ([]*catalog.ServiceItem, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ServiceItemDTO
	if err := r.db.WithContext(ctx).Order("name").
		Find(&dtos, "category_id = ?", categoryID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.ServiceItem, 0, len(dtos))
	for _, dto := range dtos {
		s, err := serviceItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}

	return items, nil
}
