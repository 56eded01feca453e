package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
)

// Notifier delivers in-app messages to users. Delivery failures never fail
// the business operation that produced the message, implementations log and
// swallow their own errors.
type Notifier interface {
	// Notify stores a message addressed to the given user.
	Notify(ctx context.Context, userID kernel.UUID, title string, message string)
}
