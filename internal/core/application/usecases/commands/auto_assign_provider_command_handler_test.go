package commands_test

import (
	"testing"
	"time"

	"servicebooking/internal/core/application/usecases/commands"
	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeRatedProvider(t *testing.T, name string, rating float64, jobs int) *provider.Provider {
	t.Helper()

	p, err := provider.RestoreProvider(
		kernel.NewUUID(),
		kernel.NewUUID(),
		name,
		"cleaning",
		provider.Approved,
		float64(jobs)*200.0,
		jobs,
		rating,
	)
	require.NoError(t, err)
	return p
}

func TestAutoAssignProviderCommandHandler_Handle_PicksBestProvider(t *testing.T) {
	ctx := t.Context()

	testBooking, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2026, 7, 3, 11, 0, 0, 0, time.UTC),
		"12 Hill Road",
		499.0,
		"Asha Rao",
	)
	require.NoError(t, err)

	weaker := makeRatedProvider(t, "Ravi Kumar", 3.9, 12)
	stronger := makeRatedProvider(t, "Meera Patel", 4.7, 8)

	cmd, err := commands.NewAutoAssignProviderCommand(testBooking.ID())
	require.NoError(t, err)

	bookingRepo := new(MockStatusBookingRepository)
	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", ctx, testBooking.ID()).Return(testBooking, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("GetAllApproved", ctx).Return([]*provider.Provider{weaker, stronger}, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockStatusNotifier)
	notifier.On("Notify", ctx, stronger.UserID(), "New Job Assigned", mock.AnythingOfType("string")).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignProviderCommandHandler(factory, services.NewProviderMatcher(), notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, booking.Accepted, testBooking.Status())
	require.NotNil(t, testBooking.ProviderID())
	assert.Equal(t, stronger.ID(), *testBooking.ProviderID())
	assert.Equal(t, "Meera Patel", testBooking.ProviderName())
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAutoAssignProviderCommandHandler_Handle_NoApprovedProviders(t *testing.T) {
	ctx := t.Context()

	testBooking, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2026, 7, 3, 11, 0, 0, 0, time.UTC),
		"12 Hill Road",
		499.0,
		"Asha Rao",
	)
	require.NoError(t, err)

	cmd, err := commands.NewAutoAssignProviderCommand(testBooking.ID())
	require.NoError(t, err)

	bookingRepo := new(MockStatusBookingRepository)
	providerRepo := new(MockStatusProviderRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", ctx, testBooking.ID()).Return(testBooking, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("GetAllApproved", ctx).Return([]*provider.Provider{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockStatusNotifier)
	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAutoAssignProviderCommandHandler(factory, services.NewProviderMatcher(), notifier)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrProviderNotFound)
	assert.Equal(t, booking.Pending, testBooking.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
