package providerrepo

import (
	"context"
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProviderRepository implements ProviderRepository using GORM.
type GormProviderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProviderRepository creates a new GORM provider repository.
func NewGormProviderRepository(db *gorm.DB, tracker aggregateTracker) *GormProviderRepository {
	return &GormProviderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new provider to the database.
func (r *GormProviderRepository) Add(ctx context.Context, aggregate *provider.Provider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing provider to the database.
// Selects all columns so zero-valued stats are written too.
func (r *GormProviderRepository) Update(ctx context.Context, aggregate *provider.Provider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProviderDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a provider by ID.
func (r *GormProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProviderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("provider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the provider profile owned by the given user.
func (r *GormProviderRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*provider.Provider, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProviderDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("provider", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingApproval retrieves all providers awaiting an admin decision.
func (r *GormProviderRepository) GetAllPendingApproval(ctx context.Context) ([]*provider.Provider, error) {
	return r.getAllByStatus(ctx, provider.PendingApproval)
}

// GetAllApproved retrieves all providers that passed admin review, whatever
// their current availability. Callers filter on availability themselves.
func (r *GormProviderRepository) GetAllApproved(ctx context.Context) ([]*provider.Provider, error) {
	return r.getAllByStatus(ctx, provider.ApprovedStatuses()...)
}

func (r *GormProviderRepository) getAllByStatus(
	ctx context.Context,
	statuses ...provider.ApprovalStatus,
) ([]*provider.Provider, error) {
	var dtos []ProviderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status IN ?", statuses).Error; err != nil {
		return nil, err
	}

	providers := make([]*provider.Provider, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	return providers, nil
}
