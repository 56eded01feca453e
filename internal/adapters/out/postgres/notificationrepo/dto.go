// Package notificationrepo provides data transfer objects and mapping functions for notification persistence.
package notificationrepo

import (
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		IsRead:    aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, userID, dto.Title, dto.Message, dto.IsRead, dto.CreatedAt)
}
