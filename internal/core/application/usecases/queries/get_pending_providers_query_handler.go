package queries

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingProvidersQueryHandler retrieves the provider approval backlog.
type GetPendingProvidersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingProvidersQueryHandler creates a handler for approval backlog queries.
func NewGetPendingProvidersQueryHandler(db *gorm.DB) GetPendingProvidersQueryHandler {
	return GetPendingProvidersQueryHandler{db: db}
}

// Handle returns providers still awaiting an approval decision, sorted by name.
func (h GetPendingProvidersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingProvidersQuery,
) (paging.Page[ProviderResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[ProviderResponse]{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM providers WHERE status = ?", int(provider.PendingApproval)).
		Scan(&total).Error
	if err != nil {
		return paging.Page[ProviderResponse]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			selected_services,
			status,
			total_earnings,
			completed_jobs,
			rating
		FROM providers
		WHERE status = ?
		ORDER BY name
		LIMIT ? OFFSET ?
	`, int(provider.PendingApproval), query.Size(), paging.Offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return paging.Page[ProviderResponse]{}, err
	}
	defer rows.Close()

	providers := make([]ProviderResponse, 0)

	for rows.Next() {
		var providerResp ProviderResponse
		var id, userID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&userID,
			&providerResp.Name,
			&providerResp.SelectedServices,
			&status,
			&providerResp.TotalEarnings,
			&providerResp.CompletedJobs,
			&providerResp.Rating,
		)
		if err != nil {
			return paging.Page[ProviderResponse]{}, err
		}

		providerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return paging.Page[ProviderResponse]{}, idErr
		}
		providerResp.ID = providerID

		providerUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return paging.Page[ProviderResponse]{}, idErr
		}
		providerResp.UserID = providerUserID

		providerResp.Status = provider.ApprovalStatus(status).String()

		providers = append(providers, providerResp)
	}

	if err = rows.Err(); err != nil {
		return paging.Page[ProviderResponse]{}, err
	}

	return paging.NewPage(providers, query.Page(), query.Size(), total), nil
}
