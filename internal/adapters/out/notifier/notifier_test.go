package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"servicebooking/internal/adapters/out/notifier"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/notification"
	"servicebooking/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

// MockInboxUoW mocks only the slice of ports.UnitOfWork the notifier touches.
// The embedded interface satisfies the repository accessors the notifier
// never calls.
type MockInboxUoW struct {
	mock.Mock
	ports.UnitOfWork
}

func (m *MockInboxUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInboxUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInboxUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInboxUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockInboxUoWFactory struct{ mock.Mock }

func (m *MockInboxUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestInboxNotifier_Notify_PersistsNotification(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	repo := new(MockNotificationRepository)
	uow := new(MockInboxUoW)

	var stored *notification.Notification
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*notification.Notification)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(errors.New("no active transaction")).Once(),
	)

	factory := new(MockInboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	logger, logs := newCapturedLogger()
	sink := notifier.NewInboxNotifier(factory, logger)

	sink.Notify(ctx, userID, "Booking Created", "Your booking is confirmed")

	require.NotNil(t, stored)
	assert.True(t, stored.UserID().IsEqual(userID))
	assert.Equal(t, "Booking Created", stored.Title())
	assert.Equal(t, "Your booking is confirmed", stored.Message())
	assert.False(t, stored.IsRead())
	assert.Contains(t, logs.String(), "notification delivered")
	uow.AssertExpectations(t)
}

func TestInboxNotifier_Notify_BeginFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()

	uow := new(MockInboxUoW)
	uow.On("Begin", ctx).Return(errors.New("connection refused")).Once()

	factory := new(MockInboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	logger, logs := newCapturedLogger()
	sink := notifier.NewInboxNotifier(factory, logger)

	sink.Notify(ctx, kernel.NewUUID(), "Booking Created", "Your booking is confirmed")

	assert.Contains(t, logs.String(), "notification transaction failed to start")
	assert.Contains(t, logs.String(), "connection refused")
	uow.AssertNotCalled(t, "NotificationRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestInboxNotifier_Notify_StoreFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	repo := new(MockNotificationRepository)
	uow := new(MockInboxUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	logger, logs := newCapturedLogger()
	sink := notifier.NewInboxNotifier(factory, logger)

	sink.Notify(ctx, userID, "Booking Created", "Your booking is confirmed")

	assert.Contains(t, logs.String(), "notification not stored")
	assert.Contains(t, logs.String(), userID.String())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestInboxNotifier_Notify_CommitFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()

	repo := new(MockNotificationRepository)
	uow := new(MockInboxUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	logger, logs := newCapturedLogger()
	sink := notifier.NewInboxNotifier(factory, logger)

	sink.Notify(ctx, kernel.NewUUID(), "Booking Created", "Your booking is confirmed")

	assert.Contains(t, logs.String(), "notification commit failed")
	assert.NotContains(t, logs.String(), "notification delivered")
}

func TestInboxNotifier_Notify_InvalidMessageIsRejectedWithoutTransaction(t *testing.T) {
	ctx := t.Context()

	factory := new(MockInboxUoWFactory)

	logger, logs := newCapturedLogger()
	sink := notifier.NewInboxNotifier(factory, logger)

	sink.Notify(ctx, kernel.NewUUID(), "", "Your booking is confirmed")

	assert.Contains(t, logs.String(), "notification rejected")
	factory.AssertNotCalled(t, "Create")
}
