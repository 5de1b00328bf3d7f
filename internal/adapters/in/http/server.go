// Package http exposes the escrow workflow over a REST surface. It
// coordinates between HTTP handlers and application use cases; role
// authorization stays with the use cases, the adapter only authenticates
// callers and translates errors to statuses.
package http

import (
	"net/http"

	"tradefinance/internal/core/application/usecases/commands"
	"tradefinance/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order lifecycle.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	confirmOrderHandler      commands.ConfirmOrderCommandHandler
	shipOrderHandler         commands.ShipOrderCommandHandler
	signArrivalHandler       commands.SignArrivalCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	checkDeliveryDateHandler commands.CheckDeliveryDateCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	signArrivalHandler commands.SignArrivalCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	checkDeliveryDateHandler commands.CheckDeliveryDateCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		shipOrderHandler:         shipOrderHandler,
		signArrivalHandler:       signArrivalHandler,
		cancelOrderHandler:       cancelOrderHandler,
		checkDeliveryDateHandler: checkDeliveryDateHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
	}
}

// RegisterRoutes mounts all order endpoints under /api/v1. The read
// surface is open: anyone may look up or enumerate orders, so the GET
// routes sit outside the authentication middleware. Every mutating route
// requires an authenticated caller.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)

	guarded := api.Group("", auth)
	guarded.POST("/orders", s.CreateOrder)
	guarded.POST("/orders/:id/confirm", s.ConfirmOrder)
	guarded.POST("/orders/:id/ship", s.ShipOrder)
	guarded.POST("/orders/:id/arrival", s.SignArrival)
	guarded.POST("/orders/:id/cancel", s.CancelOrder)
	guarded.POST("/orders/:id/deadline-check", s.CheckDeliveryDate)
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderID            string `json:"orderId"`
	ProductID          int    `json:"productId"`
	Quantity           int    `json:"quantity"`
	Price              int64  `json:"price"`
	ShippingCosts      int64  `json:"shippingCosts"`
	ShippingAddress    string `json:"shippingAddress"`
	LatestDeliveryDate string `json:"latestDeliveryDate"`
}

// CreateOrder handles POST /api/v1/orders - registers a new purchase order.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		actor,
		req.OrderID,
		req.ProductID,
		req.Quantity,
		req.Price,
		req.ShippingCosts,
		req.ShippingAddress,
		req.LatestDeliveryDate,
	)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	cmd, err := commands.NewConfirmOrderCommand(actor, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := s.confirmOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShipOrderRequest is the body of POST /api/v1/orders/:id/ship.
type ShipOrderRequest struct {
	TrackingCode string `json:"trackingCode"`
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var req ShipOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewShipOrderCommand(actor, c.Param("id"), req.TrackingCode)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.shipOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SignArrival handles POST /api/v1/orders/:id/arrival. The signing party
// comes from the caller's role attributes, not from the request body.
func (s *Server) SignArrival(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	cmd, err := commands.NewSignArrivalCommand(actor, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := s.signArrivalHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CheckDeliveryDateResponse reports whether the checked order expired.
type CheckDeliveryDateResponse struct {
	Passed bool `json:"passed"`
}

// CheckDeliveryDate handles POST /api/v1/orders/:id/deadline-check. Any
// authenticated caller may trigger the check; the outcome depends only on
// the clock and the order record.
func (s *Server) CheckDeliveryDate(c echo.Context) error {
	cmd, err := commands.NewCheckDeliveryDateCommand(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	passed, err := s.checkDeliveryDateHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckDeliveryDateResponse{Passed: passed})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	record, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// GetOrders handles GET /api/v1/orders - enumerates all ledger records.
func (s *Server) GetOrders(c echo.Context) error {
	entries, err := s.getAllOrdersHandler.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
