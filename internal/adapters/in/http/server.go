// Package http exposes the fulfillment engine over a JSON API. Handlers
// translate requests into commands and queries; all scoping and rollup
// decisions stay in the core.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// Server handles HTTP requests for the fulfillment dashboard. It coordinates
// between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	createCustomerHandler   commands.CreateCustomerCommandHandler
	createPrintshopHandler  commands.CreatePrintshopCommandHandler
	setItemStatusHandler    commands.SetItemStatusCommandHandler
	setItemPrintshopHandler commands.SetItemPrintshopCommandHandler
	setItemDueDateHandler   commands.SetItemDueDateCommandHandler
	setOrderPaymentHandler  commands.SetOrderPaymentCommandHandler
	cancelItemsHandler      commands.CancelItemsCommandHandler
	addOrderNoteHandler     commands.AddOrderNoteCommandHandler

	// Query handlers
	getVisibleOrdersHandler    queries.GetVisibleOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler
	getItemsHandler            queries.GetItemsQueryHandler
	getAllPrintshopsHandler    queries.GetAllPrintshopsQueryHandler
	getAllCustomersHandler     queries.GetAllCustomersQueryHandler
	getOverdueItemsHandler     queries.GetOverdueItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createPrintshopHandler commands.CreatePrintshopCommandHandler,
	setItemStatusHandler commands.SetItemStatusCommandHandler,
	setItemPrintshopHandler commands.SetItemPrintshopCommandHandler,
	setItemDueDateHandler commands.SetItemDueDateCommandHandler,
	setOrderPaymentHandler commands.SetOrderPaymentCommandHandler,
	cancelItemsHandler commands.CancelItemsCommandHandler,
	addOrderNoteHandler commands.AddOrderNoteCommandHandler,
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByCustomerHandler queries.GetOrdersByCustomerQueryHandler,
	getItemsHandler queries.GetItemsQueryHandler,
	getAllPrintshopsHandler queries.GetAllPrintshopsQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getOverdueItemsHandler queries.GetOverdueItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		createCustomerHandler:      createCustomerHandler,
		createPrintshopHandler:     createPrintshopHandler,
		setItemStatusHandler:       setItemStatusHandler,
		setItemPrintshopHandler:    setItemPrintshopHandler,
		setItemDueDateHandler:      setItemDueDateHandler,
		setOrderPaymentHandler:     setOrderPaymentHandler,
		cancelItemsHandler:         cancelItemsHandler,
		addOrderNoteHandler:        addOrderNoteHandler,
		getVisibleOrdersHandler:    getVisibleOrdersHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersByCustomerHandler: getOrdersByCustomerHandler,
		getItemsHandler:            getItemsHandler,
		getAllPrintshopsHandler:    getAllPrintshopsHandler,
		getAllCustomersHandler:     getAllCustomersHandler,
		getOverdueItemsHandler:     getOverdueItemsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/notes", s.AddNote)
	api.PUT("/orders/:orderId/payment-status", s.SetPaymentStatus)
	api.PUT("/orders/:orderId/payment-method", s.SetPaymentMethod)

	api.GET("/items", s.GetItems)
	api.GET("/items/overdue", s.GetOverdueItems)
	api.PUT("/items/:itemId/status", s.SetItemStatus)
	api.PUT("/items/:itemId/printshop", s.SetItemPrintshop)
	api.PUT("/items/:itemId/due-date", s.SetItemDueDate)
	api.POST("/items/cancel", s.CancelItems)

	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/:customerId/orders", s.GetOrdersByCustomer)
	api.POST("/customers", s.CreateCustomer)

	api.GET("/printshops", s.GetPrintshops)
	api.POST("/printshops", s.CreatePrintshop)
}

// CreateOrder handles POST /api/v1/orders - registers an order at intake.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer id: "+err.Error())
	}

	method, err := order.DeliveryMethodFromString(body.DeliveryMethod)
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery method: "+err.Error())
	}

	amountTotal, err := decimal.NewFromString(body.AmountTotal)
	if err != nil {
		return respondBadRequest(ctx, "Invalid amount total: "+err.Error())
	}

	orderID := kernel.NewUUID()
	items := make([]commands.ItemInput, len(body.Items))
	itemIDs := make([]string, len(body.Items))
	for i, item := range body.Items {
		itemID := kernel.NewUUID()
		items[i] = commands.ItemInput{
			ID:          itemID,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			Specs:       item.Specs,
		}
		itemIDs[i] = itemID.String()
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, body.ExternalID, customerID, method, amountTotal, body.Source, items)
	if err != nil {
		return respondBadRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"orderId": orderID.String(),
		"itemIds": itemIDs,
	})
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the
// acting user, each with its scoped rollup.
func (s *Server) GetOrders(ctx echo.Context) error {
	user, err := actorFromRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user identity: "+err.Error())
	}

	query, err := queries.NewGetVisibleOrdersQuery(user)
	if err != nil {
		return respondBadRequest(ctx, "Invalid query: "+err.Error())
	}

	views, err := s.getVisibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(views))
	for i, view := range views {
		response[i] = newOrderResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId. Orders outside the acting
// user's scope read as not found.
func (s *Server) GetOrder(ctx echo.Context) error {
	user, err := actorFromRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user identity: "+err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID, user)
	if err != nil {
		return respondBadRequest(ctx, "Invalid query: "+err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(view))
}

// GetOrdersByCustomer handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	user, err := actorFromRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user identity: "+err.Error())
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID, user)
	if err != nil {
		return respondBadRequest(ctx, "Invalid query: "+err.Error())
	}

	views, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(views))
	for i, view := range views {
		response[i] = newOrderResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetItems handles GET /api/v1/items - the board view. Filters by
// printshopId and status query params; at least one is required.
func (s *Server) GetItems(ctx echo.Context) error {
	user, err := actorFromRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user identity: "+err.Error())
	}

	shopParam := ctx.QueryParam("printshopId")
	statusParam := ctx.QueryParam("status")

	var query queries.GetItemsQuery
	switch {
	case shopParam != "" && statusParam != "":
		shopID, idErr := kernel.UUIDFromString(shopParam)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid printshop id: "+idErr.Error())
		}
		status, statusErr := order.StatusFromString(statusParam)
		if statusErr != nil {
			return respondBadRequest(ctx, "Invalid status: "+statusErr.Error())
		}
		query, err = queries.NewItemsByPrintshopAndStatusQuery(user, shopID, status)
	case shopParam != "":
		shopID, idErr := kernel.UUIDFromString(shopParam)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid printshop id: "+idErr.Error())
		}
		query, err = queries.NewItemsByPrintshopQuery(user, shopID)
	case statusParam != "":
		status, statusErr := order.StatusFromString(statusParam)
		if statusErr != nil {
			return respondBadRequest(ctx, "Invalid status: "+statusErr.Error())
		}
		query, err = queries.NewItemsByStatusQuery(user, status)
	default:
		return respondBadRequest(ctx, "Either printshopId or status is required")
	}
	if err != nil {
		return respondBadRequest(ctx, "Invalid query: "+err.Error())
	}

	views, err := s.getItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Item, len(views))
	for i, view := range views {
		response[i] = newItemResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueItems handles GET /api/v1/items/overdue - the overdue feed.
// An optional RFC 3339 deadline query param overrides "now".
func (s *Server) GetOverdueItems(ctx echo.Context) error {
	deadline := time.Now().UTC()
	if raw := ctx.QueryParam("deadline"); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return respondBadRequest(ctx, "Invalid deadline: "+parseErr.Error())
		}
		deadline = parsed
	}

	query, err := queries.NewGetOverdueItemsQuery(deadline)
	if err != nil {
		return respondBadRequest(ctx, "Invalid query: "+err.Error())
	}

	overdue, err := s.getOverdueItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OverdueItem, len(overdue))
	for i, item := range overdue {
		response[i] = OverdueItem{
			ItemID:      item.ItemID.String(),
			OrderID:     item.OrderID.String(),
			ProductName: item.ProductName,
			Status:      item.Status.String(),
			PrintshopID: uuidPtrToString(item.PrintshopID),
			DueDate:     item.DueDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetItemStatus handles PUT /api/v1/items/:itemId/status - the single
// status mutation entry point.
func (s *Server) SetItemStatus(ctx echo.Context) error {
	user, err := actorFromRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user identity: "+err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item id: "+err.Error())
	}

	var body SetStatus
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewSetItemStatusCommand(itemID, status, user, userFromRequest(ctx), body.Note)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status change: "+err.Error())
	}

	result, err := s.setItemStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MutationResult{Changed: result.Changed})
}

// SetItemPrintshop handles PUT /api/v1/items/:itemId/printshop.
func (s *Server) SetItemPrintshop(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item id: "+err.Error())
	}

	var body SetPrintshop
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	var shopID *kernel.UUID
	if body.PrintshopID != nil {
		id, idErr := kernel.UUIDFromString(*body.PrintshopID)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid printshop id: "+idErr.Error())
		}
		shopID = &id
	}

	cmd, err := commands.NewSetItemPrintshopCommand(itemID, shopID, userFromRequest(ctx))
	if err != nil {
		return respondBadRequest(ctx, "Invalid assignment: "+err.Error())
	}

	result, err := s.setItemPrintshopHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MutationResult{Changed: result.Changed})
}

// SetItemDueDate handles PUT /api/v1/items/:itemId/due-date.
func (s *Server) SetItemDueDate(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item id: "+err.Error())
	}

	var body SetDueDate
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetItemDueDateCommand(itemID, body.DueDate)
	if err != nil {
		return respondBadRequest(ctx, "Invalid due date: "+err.Error())
	}

	if handleErr := s.setItemDueDateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelItems handles POST /api/v1/items/cancel - bulk cancellation with
// per-item outcomes. Items that cannot be canceled do not block the rest.
func (s *Server) CancelItems(ctx echo.Context) error {
	user, err := actorFromRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid user identity: "+err.Error())
	}

	var body CancelItems
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	itemIDs := make([]kernel.UUID, len(body.ItemIDs))
	for i, raw := range body.ItemIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid item id: "+idErr.Error())
		}
		itemIDs[i] = id
	}

	cmd, err := commands.NewCancelItemsCommand(itemIDs, user, userFromRequest(ctx))
	if err != nil {
		return respondBadRequest(ctx, "Invalid cancellation: "+err.Error())
	}

	results, err := s.cancelItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CancelItemOutcome, len(results))
	for i, result := range results {
		outcome := CancelItemOutcome{
			ItemID:  result.ItemID.String(),
			Changed: result.Changed,
		}
		if result.Err != nil {
			outcome.Error = result.Err.Error()
		}
		response[i] = outcome
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetPaymentStatus handles PUT /api/v1/orders/:orderId/payment-status.
func (s *Server) SetPaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body SetPaymentStatus
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.PaymentStatusFromString(body.Status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid payment status: "+err.Error())
	}

	cmd, err := commands.NewSetOrderPaymentStatusCommand(orderID, status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid payment change: "+err.Error())
	}

	if handleErr := s.setOrderPaymentHandler.HandleStatus(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPaymentMethod handles PUT /api/v1/orders/:orderId/payment-method.
func (s *Server) SetPaymentMethod(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body SetPaymentMethod
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetOrderPaymentMethodCommand(orderID, body.Method)
	if err != nil {
		return respondBadRequest(ctx, "Invalid payment method: "+err.Error())
	}

	if handleErr := s.setOrderPaymentHandler.HandleMethod(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddNote handles POST /api/v1/orders/:orderId/notes.
func (s *Server) AddNote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body NewNote
	if err = ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	var itemID *kernel.UUID
	if body.ItemID != nil {
		id, idErr := kernel.UUIDFromString(*body.ItemID)
		if idErr != nil {
			return respondBadRequest(ctx, "Invalid item id: "+idErr.Error())
		}
		itemID = &id
	}

	department, err := order.DepartmentFromString(body.Department)
	if err != nil {
		return respondBadRequest(ctx, "Invalid department: "+err.Error())
	}

	noteID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderNoteCommand(
		noteID, orderID, itemID, department, userFromRequest(ctx), body.Text)
	if err != nil {
		return respondBadRequest(ctx, "Invalid note: "+err.Error())
	}

	if handleErr := s.addOrderNoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"noteId": noteID.String()})
}

// GetPrintshops handles GET /api/v1/printshops.
func (s *Server) GetPrintshops(ctx echo.Context) error {
	query := queries.NewGetAllPrintshopsQuery()

	shops, err := s.getAllPrintshopsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Printshop, len(shops))
	for i, shop := range shops {
		response[i] = Printshop{
			ID:      shop.ID.String(),
			Name:    shop.Name,
			Address: shop.Address,
			Lat:     shop.Location.Lat(),
			Lng:     shop.Location.Lng(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePrintshop handles POST /api/v1/printshops.
func (s *Server) CreatePrintshop(ctx echo.Context) error {
	var body NewPrintshop
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return respondBadRequest(ctx, "Invalid location: "+err.Error())
	}

	shopID := kernel.NewUUID()
	cmd, err := commands.NewCreatePrintshopCommand(shopID, body.Name, body.Address, location)
	if err != nil {
		return respondBadRequest(ctx, "Invalid printshop data: "+err.Error())
	}

	if handleErr := s.createPrintshopHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"printshopId": shopID.String()})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:      c.ID.String(),
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Company: c.Company,
			Address: c.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, body.Name, body.Email, body.Phone, body.Company, body.Address, body.Notes)
	if err != nil {
		return respondBadRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"customerId": customerID.String()})
}
