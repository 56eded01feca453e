// Package notification provides the in-app notification aggregate. Every
// lifecycle event addressed to a user (booking accepted, job completed,
// provider approval decision) leaves one notification row that the user can
// later mark as read.
package notification

import (
	"errors"
	"strings"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when using an improperly
// initialized Notification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// ErrTitleIsRequired is returned for a blank notification title.
var ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

// ErrMessageIsRequired is returned for a blank notification message.
var ErrMessageIsRequired = errs.NewValueIsRequiredError("message")

// Notification is a single in-app message addressed to one user.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	title     string
	message   string
	isRead    bool
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewNotification creates an unread notification for a user.
func NewNotification(id kernel.UUID, userID kernel.UUID, title string, message string) (*Notification, error) {
	n := &Notification{
		isRead:    false,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setTitle(title),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	title string,
	message string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, title, message)
	if err != nil {
		return nil, err
	}
	n.isRead = isRead
	n.createdAt = createdAt
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the addressee's user identifier.
func (n *Notification) UserID() kernel.UUID { return n.userID }

// Title returns the short headline of the notification.
func (n *Notification) Title() string { return n.title }

// Message returns the notification body.
func (n *Notification) Message() string { return n.message }

// IsRead reports whether the user has marked the notification as read.
func (n *Notification) IsRead() bool { return n.isRead }

// CreatedAt returns the notification's creation timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead marks the notification as read. Marking an already read
// notification is a no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

func (n *Notification) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}
