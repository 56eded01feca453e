package queries

import (
	"errors"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetUserNotificationsQueryIsNotConstructed = errors.New(
		"GetUserNotificationsQuery must be created via NewGetUserNotificationsQuery constructor",
	)
)

// GetUserNotificationsQuery retrieves a user's notifications, newest first.
type GetUserNotificationsQuery struct {
	userID kernel.UUID
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetUserNotificationsQuery creates a query for one user's notifications.
func NewGetUserNotificationsQuery(userID kernel.UUID, page, size int) (GetUserNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	return GetUserNotificationsQuery{
		userID: userID,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserNotificationsQueryIsNotConstructed)
}

// UserID returns the notification recipient.
func (q GetUserNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// Page returns the zero-based page number.
func (q GetUserNotificationsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetUserNotificationsQuery) Size() int {
	return q.size
}

// NotificationResponse is the notification read model.
type NotificationResponse struct {
	ID        kernel.UUID `json:"id"`
	UserID    kernel.UUID `json:"userId"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	IsRead    bool        `json:"isRead"`
	CreatedAt time.Time   `json:"createdAt"`
}
