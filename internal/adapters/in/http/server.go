package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/agent"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/metrics"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server handles HTTP requests for the admin API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLocationHandler        commands.CreateLocationCommandHandler
	createVendorHandler          commands.CreateVendorCommandHandler
	updateVendorHandler          commands.UpdateVendorCommandHandler
	deleteVendorHandler          commands.DeleteVendorCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler
	updateDeliveryStatusHandler  commands.UpdateDeliveryStatusCommandHandler
	createAgentHandler           commands.CreateAgentCommandHandler
	deleteAgentHandler           commands.DeleteAgentCommandHandler
	assignAgentHandler           commands.AssignAgentCommandHandler
	markNotificationReadHandler  commands.MarkNotificationReadCommandHandler

	// Query handlers
	childLocationsHandler     queries.GetChildLocationsQueryHandler
	locationPathHandler       queries.GetLocationPathQueryHandler
	locationStatsHandler      queries.GetLocationStatsQueryHandler
	allVendorsHandler         queries.GetAllVendorsQueryHandler
	vendorsByLocationHandler  queries.GetVendorsByLocationQueryHandler
	vendorLocationsHandler    queries.GetVendorLocationsQueryHandler
	ordersHandler             queries.GetOrdersQueryHandler
	orderHandler              queries.GetOrderQueryHandler
	allAgentsHandler          queries.GetAllAgentsQueryHandler
	agentPerformanceHandler   queries.GetAgentPerformanceQueryHandler
	agentNotificationsHandler queries.GetAgentNotificationsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createLocationHandler commands.CreateLocationCommandHandler,
	createVendorHandler commands.CreateVendorCommandHandler,
	updateVendorHandler commands.UpdateVendorCommandHandler,
	deleteVendorHandler commands.DeleteVendorCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	deleteAgentHandler commands.DeleteAgentCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	markNotificationReadHandler commands.MarkNotificationReadCommandHandler,
	childLocationsHandler queries.GetChildLocationsQueryHandler,
	locationPathHandler queries.GetLocationPathQueryHandler,
	locationStatsHandler queries.GetLocationStatsQueryHandler,
	allVendorsHandler queries.GetAllVendorsQueryHandler,
	vendorsByLocationHandler queries.GetVendorsByLocationQueryHandler,
	vendorLocationsHandler queries.GetVendorLocationsQueryHandler,
	ordersHandler queries.GetOrdersQueryHandler,
	orderHandler queries.GetOrderQueryHandler,
	allAgentsHandler queries.GetAllAgentsQueryHandler,
	agentPerformanceHandler queries.GetAgentPerformanceQueryHandler,
	agentNotificationsHandler queries.GetAgentNotificationsQueryHandler,
) *Server {
	return &Server{
		createLocationHandler:        createLocationHandler,
		createVendorHandler:          createVendorHandler,
		updateVendorHandler:          updateVendorHandler,
		deleteVendorHandler:          deleteVendorHandler,
		createOrderHandler:           createOrderHandler,
		transitionOrderStatusHandler: transitionOrderStatusHandler,
		updateDeliveryStatusHandler:  updateDeliveryStatusHandler,
		createAgentHandler:           createAgentHandler,
		deleteAgentHandler:           deleteAgentHandler,
		assignAgentHandler:           assignAgentHandler,
		markNotificationReadHandler:  markNotificationReadHandler,
		childLocationsHandler:        childLocationsHandler,
		locationPathHandler:          locationPathHandler,
		locationStatsHandler:         locationStatsHandler,
		allVendorsHandler:            allVendorsHandler,
		vendorsByLocationHandler:     vendorsByLocationHandler,
		vendorLocationsHandler:       vendorLocationsHandler,
		ordersHandler:                ordersHandler,
		orderHandler:                 orderHandler,
		allAgentsHandler:             allAgentsHandler,
		agentPerformanceHandler:      agentPerformanceHandler,
		agentNotificationsHandler:    agentNotificationsHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(
		promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	api.GET("/locations", s.GetLocations)
	api.POST("/locations", s.CreateLocation)
	api.GET("/locations/stats", s.GetLocationStats)
	api.GET("/locations/:id/path", s.GetLocationPath)

	api.GET("/vendors", s.GetVendors)
	api.POST("/vendors", s.CreateVendor)
	api.PUT("/vendors/:id", s.UpdateVendor)
	api.DELETE("/vendors/:id", s.DeleteVendor)
	api.GET("/vendors/:id/locations", s.GetVendorLocations)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/transition", s.TransitionOrderStatus)
	api.POST("/orders/:id/delivery-status", s.UpdateDeliveryStatus)

	api.GET("/delivery-agents", s.GetAgents)
	api.POST("/delivery-agents", s.CreateAgent)
	api.DELETE("/delivery-agents/:id", s.DeleteAgent)
	api.POST("/delivery-agents/:id/assign", s.AssignAgent)
	api.GET("/delivery-agents/:id/performance", s.GetAgentPerformance)
	api.GET("/delivery-agents/:id/notifications", s.GetAgentNotifications)

	api.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// respondError maps use case failures onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderAlreadyAssigned),
		errors.Is(err, agent.ErrAgentUnavailable),
		errors.Is(err, agent.ErrAgentDeleteBlocked),
		errors.Is(err, commands.ErrVendorHasOpenOrders),
		errors.Is(err, location.ErrLocationAlreadyExists),
		errors.Is(err, commands.ErrOrderNotAssignedToAgent):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// GetLocations handles GET /api/v1/locations - lists child nodes of the
// parent given in the query string, or root nodes when it is absent.
func (s *Server) GetLocations(ctx echo.Context) error {
	var parentID *location.ID
	if raw := ctx.QueryParam("parent"); raw != "" {
		id := location.ID(raw)
		parentID = &id
	}

	query, err := queries.NewGetChildLocationsQuery(parentID)
	if err != nil {
		return badRequest(ctx, "Invalid parent filter: "+err.Error())
	}

	locations, err := s.childLocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, locationResponses(locations))
}

// CreateLocation handles POST /api/v1/locations - registers a hierarchy node.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var req CreateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var parentID *location.ID
	if req.ParentID != nil {
		id := location.ID(*req.ParentID)
		parentID = &id
	}

	var coordinates *location.Coordinates
	if req.Lat != nil && req.Lng != nil {
		c, err := location.NewCoordinates(*req.Lat, *req.Lng)
		if err != nil {
			return badRequest(ctx, "Invalid coordinates: "+err.Error())
		}
		coordinates = &c
	}

	cmd, err := commands.NewCreateLocationCommand(
		location.ID(req.ID),
		req.Name,
		location.Type(req.Type),
		parentID,
		coordinates,
	)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err := s.createLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.LocationID().String()})
}

// GetLocationPath handles GET /api/v1/locations/:id/path - root-first ancestry.
func (s *Server) GetLocationPath(ctx echo.Context) error {
	query, err := queries.NewGetLocationPathQuery(location.ID(ctx.Param("id")))
	if err != nil {
		return badRequest(ctx, "Invalid location id: "+err.Error())
	}

	path, err := s.locationPathHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, locationResponses(path))
}

// GetLocationStats handles GET /api/v1/locations/stats - hierarchy aggregates.
func (s *Server) GetLocationStats(ctx echo.Context) error {
	stats, err := s.locationStatsHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetLocationStatsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	countByType := make(map[string]int, len(stats.CountByType))
	for locType, count := range stats.CountByType {
		countByType[string(locType)] = count
	}

	return ctx.JSON(http.StatusOK, LocationStatsResponse{
		TotalLocations: stats.TotalLocations,
		CountByType:    countByType,
		TopByRevenue:   locationResponses(stats.TopByRevenue),
	})
}

// GetVendors handles GET /api/v1/vendors - lists vendors, optionally only
// those serving the location given in the query string.
func (s *Server) GetVendors(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if raw := ctx.QueryParam("location"); raw != "" {
		query, err := queries.NewGetVendorsByLocationQuery(location.ID(raw))
		if err != nil {
			return badRequest(ctx, "Invalid location filter: "+err.Error())
		}

		vendors, err := s.vendorsByLocationHandler.Handle(reqCtx, query)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, vendorResponses(vendors))
	}

	vendors, err := s.allVendorsHandler.Handle(reqCtx, queries.NewGetAllVendorsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vendorResponses(vendors))
}

// CreateVendor handles POST /api/v1/vendors - registers a vendor.
func (s *Server) CreateVendor(ctx echo.Context) error {
	var req CreateVendorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationIDs := make([]location.ID, 0, len(req.LocationIDs))
	for _, id := range req.LocationIDs {
		locationIDs = append(locationIDs, location.ID(id))
	}

	cmd, err := commands.NewCreateVendorCommand(
		req.Name,
		locationIDs,
		req.CommissionRate,
		vendor.Contact{
			Description: req.Contact.Description,
			Email:       req.Contact.Email,
			Phone:       req.Contact.Phone,
			Website:     req.Contact.Website,
			LogoURL:     req.Contact.LogoURL,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	if err := s.createVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.VendorID().String()})
}

// UpdateVendor handles PUT /api/v1/vendors/:id - partial profile update.
func (s *Server) UpdateVendor(ctx echo.Context) error {
	vendorID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	var req UpdateVendorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var locationIDs []location.ID
	for _, id := range req.LocationIDs {
		locationIDs = append(locationIDs, location.ID(id))
	}

	var contact *vendor.Contact
	if req.Contact != nil {
		contact = &vendor.Contact{
			Description: req.Contact.Description,
			Email:       req.Contact.Email,
			Phone:       req.Contact.Phone,
			Website:     req.Contact.Website,
			LogoURL:     req.Contact.LogoURL,
		}
	}

	cmd, err := commands.NewUpdateVendorCommand(
		vendorID,
		req.Name,
		locationIDs,
		req.Rating,
		req.CommissionRate,
		req.Active,
		req.Verified,
		contact,
	)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	if err := s.updateVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteVendor handles DELETE /api/v1/vendors/:id - removes a vendor unless
// it still has open orders.
func (s *Server) DeleteVendor(ctx echo.Context) error {
	vendorID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	cmd, err := commands.NewDeleteVendorCommand(vendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	if err := s.deleteVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVendorLocations handles GET /api/v1/vendors/:id/locations - the nodes a
// vendor serves.
func (s *Server) GetVendorLocations(ctx echo.Context) error {
	vendorID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	query, err := queries.NewGetVendorLocationsQuery(vendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	locations, err := s.vendorLocationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, locationResponses(locations))
}

// GetOrders handles GET /api/v1/orders - lists orders newest first, filtered
// by status, vendor, and location query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var vendorID *kernel.UUID
	if raw := ctx.QueryParam("vendor"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid vendor filter: "+err.Error())
		}
		vendorID = &id
	}

	var locationID *location.ID
	if raw := ctx.QueryParam("location"); raw != "" {
		id := location.ID(raw)
		locationID = &id
	}

	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"), vendorID, locationID)
	if err != nil {
		return badRequest(ctx, "Invalid order filter: "+err.Error())
	}

	orders, err := s.ordersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	lineItems := make([]order.LineItem, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lineItem, err := order.NewLineItem(item.ProductID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid line item: "+err.Error())
		}
		lineItems = append(lineItems, lineItem)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customerID,
		req.CustomerName,
		vendorID,
		location.ID(req.LocationID),
		lineItems,
		req.PaymentMethod,
		req.DeliveryAddress,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.OrderID().String()})
}

// GetOrder handles GET /api/v1/orders/:id - one order with its full ledger.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.orderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(result))
}

// TransitionOrderStatus handles POST /api/v1/orders/:id/transition - moves an
// order along the status state machine and appends a ledger entry.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(
		orderID,
		order.Status(req.Status),
		req.UpdatedBy,
		req.Note,
	)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err := s.transitionOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/orders/:id/delivery-status - an
// agent progressing an order through the delivery stages.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req DeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, agentID, order.Status(req.Status))
	if err != nil {
		return badRequest(ctx, "Invalid delivery status data: "+err.Error())
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAgents handles GET /api/v1/delivery-agents - lists all delivery agents.
func (s *Server) GetAgents(ctx echo.Context) error {
	agents, err := s.allAgentsHandler.Handle(ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		response = append(response, agentResponse(a))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateAgent handles POST /api/v1/delivery-agents - registers an agent.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req CreateAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zoneIDs := make([]location.ID, 0, len(req.ZoneIDs))
	for _, id := range req.ZoneIDs {
		zoneIDs = append(zoneIDs, location.ID(id))
	}

	cmd, err := commands.NewCreateAgentCommand(req.Name, req.Phone, zoneIDs)
	if err != nil {
		return badRequest(ctx, "Invalid agent data: "+err.Error())
	}

	if err := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: cmd.AgentID().String()})
}

// DeleteAgent handles DELETE /api/v1/delivery-agents/:id - removes an agent
// unless it is currently out on a delivery.
func (s *Server) DeleteAgent(ctx echo.Context) error {
	agentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewDeleteAgentCommand(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	if err := s.deleteAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/delivery-agents/:id/assign - dispatches an
// agent onto an order.
func (s *Server) AssignAgent(ctx echo.Context) error {
	agentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	var req AssignRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAgentPerformance handles GET /api/v1/delivery-agents/:id/performance -
// lists the agent's per-day delivery rollups.
func (s *Server) GetAgentPerformance(ctx echo.Context) error {
	agentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	query, err := queries.NewGetAgentPerformanceQuery(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	records, err := s.agentPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PerformanceResponse, 0, len(records))
	for _, r := range records {
		response = append(response, performanceResponse(r))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentNotifications handles GET /api/v1/delivery-agents/:id/notifications -
// lists the agent's feed, newest first.
func (s *Server) GetAgentNotifications(ctx echo.Context) error {
	agentID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	query, err := queries.NewGetAgentNotificationsQuery(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	feed, err := s.agentNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]NotificationResponse, 0, len(feed))
	for _, n := range feed {
		response = append(response, notificationResponse(n))
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read - flags a
// feed entry as seen, making it eligible for the retention purge.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid notification id: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return badRequest(ctx, "Invalid notification id: "+err.Error())
	}

	if err := s.markNotificationReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
