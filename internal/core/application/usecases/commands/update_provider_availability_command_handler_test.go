package commands_test

import (
	"testing"

	"servicebooking/internal/core/application/usecases/commands"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProviderAvailabilityCommandHandler_Handle_GoesOnline(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, kernel.NewUUID(), "Ravi Kumar", "plumbing")
	require.NoError(t, err)
	require.NoError(t, testProvider.Approve())

	cmd, err := commands.NewUpdateProviderAvailabilityCommand(providerID, true)
	require.NoError(t, err)

	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockProviderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, providerID).Return(testProvider, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Update", ctx, mock.AnythingOfType("*provider.Provider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateProviderAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, provider.Online, testProvider.Status())
	assert.True(t, testProvider.Status().IsApproved())
	providerRepo.AssertExpectations(t)
}

func TestUpdateProviderAvailabilityCommandHandler_Handle_GoesOffline(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, kernel.NewUUID(), "Ravi Kumar", "plumbing")
	require.NoError(t, err)
	require.NoError(t, testProvider.Approve())
	require.NoError(t, testProvider.SetAvailability(true))

	cmd, err := commands.NewUpdateProviderAvailabilityCommand(providerID, false)
	require.NoError(t, err)

	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockProviderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, providerID).Return(testProvider, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Update", ctx, mock.AnythingOfType("*provider.Provider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateProviderAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, provider.Offline, testProvider.Status())
}

func TestUpdateProviderAvailabilityCommandHandler_Handle_PendingProviderRejected(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, kernel.NewUUID(), "Ravi Kumar", "plumbing")
	require.NoError(t, err)

	cmd, err := commands.NewUpdateProviderAvailabilityCommand(providerID, true)
	require.NoError(t, err)

	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockProviderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, providerID).Return(testProvider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateProviderAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, provider.PendingApproval, testProvider.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSuspendProviderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	userID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, userID, "Ravi Kumar", "plumbing")
	require.NoError(t, err)
	require.NoError(t, testProvider.Approve())
	require.NoError(t, testProvider.SetAvailability(true))

	cmd, err := commands.NewSuspendProviderCommand(providerID)
	require.NoError(t, err)

	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockProviderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, providerID).Return(testProvider, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Update", ctx, mock.AnythingOfType("*provider.Provider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockStatusNotifier)
	notifier.On("Notify", ctx, userID, "Account Suspended", mock.AnythingOfType("string")).Once()

	handlerFactory := new(MockProviderUoWFactory)
	handlerFactory.On("Create").Return(uow).Once()

	handler := commands.NewSuspendProviderCommandHandler(handlerFactory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, provider.Suspended, testProvider.Status())
	assert.True(t, testProvider.Status().IsApproved())
	assert.False(t, testProvider.Status().IsAvailable())
	notifier.AssertExpectations(t)
}

func TestSuspendProviderCommandHandler_Handle_AlreadySuspended(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, kernel.NewUUID(), "Ravi Kumar", "plumbing")
	require.NoError(t, err)
	require.NoError(t, testProvider.Approve())
	require.NoError(t, testProvider.Suspend())

	cmd, err := commands.NewSuspendProviderCommand(providerID)
	require.NoError(t, err)

	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockProviderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, providerID).Return(testProvider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockStatusNotifier)
	handlerFactory := new(MockProviderUoWFactory)
	handlerFactory.On("Create").Return(uow).Once()

	handler := commands.NewSuspendProviderCommandHandler(handlerFactory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
