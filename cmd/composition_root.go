package cmd

import (
	"log/slog"

	httpin "servicebooking/internal/adapters/in/http"
	"servicebooking/internal/adapters/out/notifier"
	"servicebooking/internal/adapters/out/postgres"
	"servicebooking/internal/core/application/usecases/commands"
	"servicebooking/internal/core/application/usecases/queries"
	"servicebooking/internal/core/domain/services"
	"servicebooking/internal/core/ports"
	"servicebooking/internal/pkg/recovery"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	notifier      ports.Notifier
	recoveryStore *recovery.Store
	logger        *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *uowFactory,
		notifier:      notifier.NewInboxNotifier(uowFactory, logger),
		recoveryStore: recovery.NewStore(configs.RecoveryCodeTTL),
		logger:        logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) RecoveryStore() *recovery.Store {
	return c.recoveryStore
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.CreateBookingUoWFactory = FuncCreateBookingUoWFactory(func() commands.CreateBookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignProviderCommandHandler() commands.AssignProviderCommandHandler {
	var f commands.BookingProviderUoWFactory = FuncBookingProviderUoWFactory(func() commands.BookingProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignProviderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAutoAssignProviderCommandHandler() commands.AutoAssignProviderCommandHandler {
	var f commands.BookingProviderUoWFactory = FuncBookingProviderUoWFactory(func() commands.BookingProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignProviderCommandHandler(f, services.NewProviderMatcher(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateBookingStatusCommandHandler() commands.UpdateBookingStatusCommandHandler {
	var f commands.UpdateBookingUoWFactory = FuncUpdateBookingUoWFactory(func() commands.UpdateBookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBookingStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	var f commands.UpdateBookingUoWFactory = FuncUpdateBookingUoWFactory(func() commands.UpdateBookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelBookingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveProviderCommandHandler() commands.ApproveProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveProviderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRejectProviderCommandHandler() commands.RejectProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectProviderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateProviderAvailabilityCommandHandler() commands.UpdateProviderAvailabilityCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProviderAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateSuspendProviderCommandHandler() commands.SuspendProviderCommandHandler {
	var f commands.ProviderUoWFactory = FuncProviderUoWFactory(func() commands.ProviderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSuspendProviderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCategoryCommandHandler() commands.AddCategoryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateAddServiceItemCommandHandler() commands.AddServiceItemCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddServiceItemCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateCommandHandlers() httpin.Commands {
	return httpin.Commands{
		CreateBooking:        c.CreateCreateBookingCommandHandler(),
		AssignProvider:       c.CreateAssignProviderCommandHandler(),
		AutoAssignProvider:   c.CreateAutoAssignProviderCommandHandler(),
		UpdateBookingStatus:  c.CreateUpdateBookingStatusCommandHandler(),
		CancelBooking:        c.CreateCancelBookingCommandHandler(),
		SubmitRating:         c.CreateSubmitRatingCommandHandler(),
		ApproveProvider:      c.CreateApproveProviderCommandHandler(),
		RejectProvider:       c.CreateRejectProviderCommandHandler(),
		ProviderAvailability: c.CreateUpdateProviderAvailabilityCommandHandler(),
		SuspendProvider:      c.CreateSuspendProviderCommandHandler(),
		RecordPayment:        c.CreateRecordPaymentCommandHandler(),
		AddCategory:          c.CreateAddCategoryCommandHandler(),
		AddServiceItem:       c.CreateAddServiceItemCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpin.Queries {
	return httpin.Queries{
		FilterBookings:     queries.NewFilterBookingsQueryHandler(c.gormDB),
		CustomerBookings:   queries.NewGetCustomerBookingsQueryHandler(c.gormDB),
		ProviderBookings:   queries.NewGetProviderBookingsQueryHandler(c.gormDB),
		AverageRating:      queries.NewGetAverageRatingQueryHandler(c.gormDB),
		ProviderRatings:    queries.NewGetProviderRatingsQueryHandler(c.gormDB),
		UserNotifications:  queries.NewGetUserNotificationsQueryHandler(c.gormDB),
		PendingProviders:   queries.NewGetPendingProvidersQueryHandler(c.gormDB),
		DashboardStats:     queries.NewGetDashboardStatsQueryHandler(c.gormDB),
		ListCategories:     queries.NewListCategoriesQueryHandler(c.gormDB),
		ListServiceItems:   queries.NewListServiceItemsQueryHandler(c.gormDB),
		SearchServiceItems: queries.NewSearchServiceItemsQueryHandler(c.gormDB),
	}
}

type FuncCreateBookingUoWFactory func() commands.CreateBookingUoW

func (f FuncCreateBookingUoWFactory) Create() commands.CreateBookingUoW {
	return f()
}

type FuncBookingProviderUoWFactory func() commands.BookingProviderUoW

func (f FuncBookingProviderUoWFactory) Create() commands.BookingProviderUoW {
	return f()
}

type FuncUpdateBookingUoWFactory func() commands.UpdateBookingUoW

func (f FuncUpdateBookingUoWFactory) Create() commands.UpdateBookingUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncProviderUoWFactory func() commands.ProviderUoW

func (f FuncProviderUoWFactory) Create() commands.ProviderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
