package queries

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserNotificationsQueryHandler retrieves notifications from the read store.
type GetUserNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserNotificationsQueryHandler creates a handler for notification queries.
func NewGetUserNotificationsQueryHandler(db *gorm.DB) GetUserNotificationsQueryHandler {
	return GetUserNotificationsQueryHandler{db: db}
}

// Handle returns the user's notifications, newest first.
func (h GetUserNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUserNotificationsQuery,
) (paging.Page[NotificationResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[NotificationResponse]{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM notifications WHERE user_id = ?", query.UserID().Bytes()).
		Scan(&total).Error
	if err != nil {
		return paging.Page[NotificationResponse]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			title,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.UserID().Bytes(), query.Size(), paging.Offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return paging.Page[NotificationResponse]{}, err
	}
	defer rows.Close()

	notifications := make([]NotificationResponse, 0)

	for rows.Next() {
		var notificationResp NotificationResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&userID,
			&notificationResp.Title,
			&notificationResp.Message,
			&notificationResp.IsRead,
			&notificationResp.CreatedAt,
		)
		if err != nil {
			return paging.Page[NotificationResponse]{}, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return paging.Page[NotificationResponse]{}, idErr
		}
		notificationResp.ID = notificationID

		notificationUserID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return paging.Page[NotificationResponse]{}, idErr
		}
		notificationResp.UserID = notificationUserID

		notifications = append(notifications, notificationResp)
	}

	if err = rows.Err(); err != nil {
		return paging.Page[NotificationResponse]{}, err
	}

	return paging.NewPage(notifications, query.Page(), query.Size(), total), nil
}
