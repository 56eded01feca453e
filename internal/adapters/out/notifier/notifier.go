// Package notifier delivers user notifications by storing them in the
// notification inbox. Delivery is best-effort: failures are logged and
// swallowed so a notification problem never fails the triggering command.
package notifier

import (
	"context"
	"log/slog"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/notification"
	"servicebooking/internal/core/ports"
)

var _ ports.Notifier = (*InboxNotifier)(nil)

// InboxNotifier persists notifications through its own unit of work,
// separate from the transaction of the command that triggered them.
type InboxNotifier struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
}

// NewInboxNotifier creates a notifier writing to the notification inbox.
func NewInboxNotifier(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *InboxNotifier {
	return &InboxNotifier{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Notify stores a notification for the user. Errors are logged, not returned.
func (n *InboxNotifier) Notify(ctx context.Context, userID kernel.UUID, title, message string) {
	aggregate, err := notification.NewNotification(kernel.NewUUID(), userID, title, message)
	if err != nil {
		n.logger.ErrorContext(ctx, "notification rejected",
			slog.String("userID", userID.String()),
			slog.String("title", title),
			slog.Any("error", err),
		)
		return
	}

	uow := n.uowFactory.Create()

	if err = uow.Begin(ctx); err != nil {
		n.logger.ErrorContext(ctx, "notification transaction failed to start", slog.Any("error", err))
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, aggregate); err != nil {
		n.logger.ErrorContext(ctx, "notification not stored",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		n.logger.ErrorContext(ctx, "notification commit failed", slog.Any("error", err))
		return
	}

	n.logger.InfoContext(ctx, "notification delivered",
		slog.String("userID", userID.String()),
		slog.String("title", title),
	)
}
