// Package http exposes the application's command and query handlers over a
// REST surface built on echo. Handlers bind and validate the request, build
// a command or query, and translate application errors to status codes.
package http

import (
	"net/http"
	"strconv"

	"servicebooking/internal/core/application/usecases/commands"
	"servicebooking/internal/core/application/usecases/queries"
	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Commands bundles the write-side handlers the server dispatches to.
type Commands struct {
	CreateBooking        commands.CreateBookingCommandHandler
	AssignProvider       commands.AssignProviderCommandHandler
	AutoAssignProvider   commands.AutoAssignProviderCommandHandler
	UpdateBookingStatus  commands.UpdateBookingStatusCommandHandler
	CancelBooking        commands.CancelBookingCommandHandler
	SubmitRating         commands.SubmitRatingCommandHandler
	ApproveProvider      commands.ApproveProviderCommandHandler
	RejectProvider       commands.RejectProviderCommandHandler
	ProviderAvailability commands.UpdateProviderAvailabilityCommandHandler
	SuspendProvider      commands.SuspendProviderCommandHandler
	RecordPayment        commands.RecordPaymentCommandHandler
	AddCategory          commands.AddCategoryCommandHandler
	AddServiceItem       commands.AddServiceItemCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler
}

// Queries bundles the read-side handlers the server dispatches to.
type Queries struct {
	FilterBookings     queries.FilterBookingsQueryHandler
	CustomerBookings   queries.GetCustomerBookingsQueryHandler
	ProviderBookings   queries.GetProviderBookingsQueryHandler
	AverageRating      queries.GetAverageRatingQueryHandler
	ProviderRatings    queries.GetProviderRatingsQueryHandler
	UserNotifications  queries.GetUserNotificationsQueryHandler
	PendingProviders   queries.GetPendingProvidersQueryHandler
	DashboardStats     queries.GetDashboardStatsQueryHandler
	ListCategories     queries.ListCategoriesQueryHandler
	ListServiceItems   queries.ListServiceItemsQueryHandler
	SearchServiceItems queries.SearchServiceItemsQueryHandler
}

// Server wires the REST routes to the application layer.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates the HTTP server facade over the use case handlers.
func NewServer(commandHandlers Commands, queryHandlers Queries) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/bookings", s.CreateBooking)
	api.PUT("/bookings/:id/assign-provider", s.AssignProvider)
	api.PUT("/bookings/:id/auto-assign", s.AutoAssignProvider)
	api.PUT("/bookings/:id/status", s.UpdateBookingStatus)
	api.DELETE("/bookings/:id", s.CancelBooking)
	api.POST("/bookings/filter", s.FilterBookings)
	api.GET("/bookings/customer/:id", s.GetCustomerBookings)
	api.GET("/bookings/provider/:id", s.GetProviderBookings)

	api.POST("/ratings", s.SubmitRating)
	api.GET("/ratings/provider/:id", s.GetProviderRatings)
	api.GET("/ratings/provider/:id/low", s.GetLowRatings)
	api.GET("/ratings/provider/:id/top", s.GetTopRatings)
	api.GET("/ratings/provider/:id/average", s.GetAverageRating)

	api.PUT("/providers/:id/approve", s.ApproveProvider)
	api.PUT("/providers/:id/reject", s.RejectProvider)
	api.PUT("/providers/:id/status", s.UpdateProviderAvailability)
	api.PUT("/providers/:id/suspend", s.SuspendProvider)
	api.GET("/providers/pending", s.GetPendingProviders)

	api.POST("/payments", s.RecordPayment)

	api.GET("/notifications", s.GetUserNotifications)
	api.PUT("/notifications/:id/read", s.MarkNotificationRead)

	api.GET("/admin/dashboard", s.GetDashboardStats)

	api.POST("/categories", s.AddCategory)
	api.GET("/categories", s.ListCategories)
	api.POST("/services", s.AddServiceItem)
	api.GET("/services", s.ListServiceItems)
	api.GET("/services/search", s.SearchServiceItems)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateBooking handles POST /api/bookings.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customerId")
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return badRequest(ctx, "invalid serviceId")
	}

	bookingID := kernel.NewUUID()

	cmd, err := commands.NewCreateBookingCommand(bookingID, customerID, serviceID, req.ScheduledAt, req.Location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: bookingID.String()})
}

// AssignProvider handles PUT /api/bookings/:id/assign-provider.
func (s *Server) AssignProvider(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	providerID, err := kernel.UUIDFromString(ctx.QueryParam("providerId"))
	if err != nil {
		return badRequest(ctx, "invalid providerId")
	}

	cmd, err := commands.NewAssignProviderCommand(bookingID, providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AssignProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AutoAssignProvider handles PUT /api/bookings/:id/auto-assign.
func (s *Server) AutoAssignProvider(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	cmd, err := commands.NewAutoAssignProviderCommand(bookingID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AutoAssignProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status.
func (s *Server) UpdateBookingStatus(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	status, err := booking.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "unknown status")
	}

	cmd, err := commands.NewUpdateBookingStatusCommand(bookingID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateBookingStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelBooking handles DELETE /api/bookings/:id.
func (s *Server) CancelBooking(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid booking id")
	}

	cmd, err := commands.NewCancelBookingCommand(bookingID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CancelBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FilterBookings handles POST /api/bookings/filter.
func (s *Server) FilterBookings(ctx echo.Context) error {
	criteria := make(map[string]string)
	if err := ctx.Bind(&criteria); err != nil {
		return badRequest(ctx, "invalid filter body")
	}

	page, size := pageParams(ctx)

	query, err := queries.NewFilterBookingsQuery(criteria, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.FilterBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetCustomerBookings handles GET /api/bookings/customer/:id.
func (s *Server) GetCustomerBookings(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	page, size := pageParams(ctx)

	query, err := queries.NewGetCustomerBookingsQuery(customerID, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.CustomerBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetProviderBookings handles GET /api/bookings/provider/:id.
func (s *Server) GetProviderBookings(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	page, size := pageParams(ctx)

	query, err := queries.NewGetProviderBookingsQuery(providerID, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.ProviderBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// SubmitRating handles POST /api/ratings.
func (s *Server) SubmitRating(ctx echo.Context) error {
	var req SubmitRatingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	bookingID, err := kernel.UUIDFromString(req.BookingID)
	if err != nil {
		return badRequest(ctx, "invalid bookingId")
	}

	ratingID := kernel.NewUUID()

	cmd, err := commands.NewSubmitRatingCommand(ratingID, bookingID, req.Stars, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SubmitRating.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: ratingID.String()})
}

func (s *Server) providerRatings(ctx echo.Context, band queries.RatingBand) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	page, size := pageParams(ctx)

	query, err := queries.NewGetProviderRatingsQuery(providerID, band, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.ProviderRatings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetProviderRatings handles GET /api/ratings/provider/:id.
func (s *Server) GetProviderRatings(ctx echo.Context) error {
	return s.providerRatings(ctx, queries.AllRatings)
}

// GetLowRatings handles GET /api/ratings/provider/:id/low.
func (s *Server) GetLowRatings(ctx echo.Context) error {
	return s.providerRatings(ctx, queries.LowRatings)
}

// GetTopRatings handles GET /api/ratings/provider/:id/top.
func (s *Server) GetTopRatings(ctx echo.Context) error {
	return s.providerRatings(ctx, queries.TopRatings)
}

// GetAverageRating handles GET /api/ratings/provider/:id/average.
func (s *Server) GetAverageRating(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	query, err := queries.NewGetAverageRatingQuery(providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.AverageRating.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// ApproveProvider handles PUT /api/providers/:id/approve.
func (s *Server) ApproveProvider(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	cmd, err := commands.NewApproveProviderCommand(providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ApproveProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectProvider handles PUT /api/providers/:id/reject.
func (s *Server) RejectProvider(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	cmd, err := commands.NewRejectProviderCommand(providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RejectProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateProviderAvailability handles PUT /api/providers/:id/status.
// The status query parameter must be ONLINE or OFFLINE.
func (s *Server) UpdateProviderAvailability(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	var online bool
	switch ctx.QueryParam("status") {
	case "ONLINE":
		online = true
	case "OFFLINE":
		online = false
	default:
		return badRequest(ctx, "status must be ONLINE or OFFLINE")
	}

	cmd, err := commands.NewUpdateProviderAvailabilityCommand(providerID, online)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ProviderAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SuspendProvider handles PUT /api/providers/:id/suspend.
func (s *Server) SuspendProvider(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid provider id")
	}

	cmd, err := commands.NewSuspendProviderCommand(providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SuspendProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPendingProviders handles GET /api/providers/pending.
func (s *Server) GetPendingProviders(ctx echo.Context) error {
	page, size := pageParams(ctx)

	query, err := queries.NewGetPendingProvidersQuery(page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.PendingProviders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// RecordPayment handles POST /api/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	bookingID, err := kernel.UUIDFromString(req.BookingID)
	if err != nil {
		return badRequest(ctx, "invalid bookingId")
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return badRequest(ctx, "unknown payment method")
	}

	paymentID := kernel.NewUUID()

	cmd, err := commands.NewRecordPaymentCommand(paymentID, bookingID, method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: paymentID.String()})
}

// GetUserNotifications handles GET /api/notifications.
func (s *Server) GetUserNotifications(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("userId"))
	if err != nil {
		return badRequest(ctx, "invalid userId")
	}

	page, size := pageParams(ctx)

	query, err := queries.NewGetUserNotificationsQuery(userID, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.UserNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetDashboardStats handles GET /api/admin/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query := queries.NewGetDashboardStatsQuery()

	result, err := s.queries.DashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// AddCategory handles POST /api/categories.
func (s *Server) AddCategory(ctx echo.Context) error {
	var req AddCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	categoryID := kernel.NewUUID()

	cmd, err := commands.NewAddCategoryCommand(categoryID, req.Name, req.Description, req.Icon)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: categoryID.String()})
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	query := queries.NewListCategoriesQuery()

	result, err := s.queries.ListCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// AddServiceItem handles POST /api/services.
func (s *Server) AddServiceItem(ctx echo.Context) error {
	var req AddServiceItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "invalid categoryId")
	}

	serviceID := kernel.NewUUID()

	cmd, err := commands.NewAddServiceItemCommand(serviceID, categoryID, req.Name, req.Description, req.BasePrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddServiceItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: serviceID.String()})
}

// ListServiceItems handles GET /api/services.
func (s *Server) ListServiceItems(ctx echo.Context) error {
	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("categoryId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid categoryId")
		}
		categoryID = &parsed
	}

	page, size := pageParams(ctx)

	query, err := queries.NewListServiceItemsQuery(categoryID, page, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.ListServiceItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// SearchServiceItems handles GET /api/services/search.
func (s *Server) SearchServiceItems(ctx echo.Context) error {
	query, err := queries.NewSearchServiceItemsQuery(ctx.QueryParam("keyword"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.SearchServiceItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// pathID parses the :id path parameter.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// pageParams reads page and size query parameters, clamping size to keep a
// single response bounded.
func pageParams(ctx echo.Context) (int, int) {
	page := 0
	if raw := ctx.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			page = parsed
		}
	}

	size := defaultPageSize
	if raw := ctx.QueryParam("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = parsed
		}
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return page, size
}
