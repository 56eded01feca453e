package commands_test

import (
	"context"
	"testing"

	"servicebooking/internal/core/application/usecases/commands"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/core/ports"
	"servicebooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProviderUoW struct{ mock.Mock }

func (m *MockProviderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProviderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProviderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProviderUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

type MockProviderUoWFactory struct{ mock.Mock }

func (m *MockProviderUoWFactory) Create() commands.ProviderUoW {
	args := m.Called()
	return args.Get(0).(commands.ProviderUoW)
}

func TestApproveProviderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	userID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, userID, "Ravi Kumar", "plumbing,electrical")
	require.NoError(t, err)

	cmd, err := commands.NewApproveProviderCommand(providerID)
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
	notifier.On("Notify", ctx, userID, "Approved", "Your provider application is approved").Once()

	factory := new(MockProviderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveProviderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, provider.Approved, testProvider.Status())
	providerRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestApproveProviderCommandHandler_Handle_AlreadyApproved(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, kernel.NewUUID(), "Ravi Kumar", "plumbing")
	require.NoError(t, err)
	require.NoError(t, testProvider.Approve())

	cmd, err := commands.NewApproveProviderCommand(providerID)
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
	factory := new(MockProviderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveProviderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRejectProviderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	providerID := kernel.NewUUID()
	userID := kernel.NewUUID()
	testProvider, err := provider.NewProvider(providerID, userID, "Ravi Kumar", "plumbing")
	require.NoError(t, err)

	cmd, err := commands.NewRejectProviderCommand(providerID)
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
	notifier.On("Notify", ctx, userID, "Rejected", "Your provider application was rejected").Once()

	factory := new(MockProviderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectProviderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, provider.Rejected, testProvider.Status())
	notifier.AssertExpectations(t)
}
