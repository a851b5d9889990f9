// Package http exposes the workflow over a thin echo surface: web order
// intake under /api and the operator console under /admin. Handlers
// translate between JSON and commands; every decision stays in the
// application layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// TransitionNotifier fans an accepted status transition out to staff and
// the customer. Satisfied by notifications.Dispatcher.
type TransitionNotifier interface {
	Dispatch(ctx context.Context, o *order.Order, oldStatusName string, actor order.Actor)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	finalizeOrderHandler    commands.FinalizeOrderCommandHandler
	applyStatusHandler      commands.ApplyOrderStatusCommandHandler
	assignCourierHandler    commands.AssignCourierCommandHandler
	reviseOrderItemsHandler commands.ReviseOrderItemsCommandHandler
	deleteStatusHandler     commands.DeleteStatusCommandHandler
	bindStaffHandler        commands.BindStaffIdentityCommandHandler
	toggleShiftHandler      commands.ToggleShiftCommandHandler
	logoutStaffHandler      commands.LogoutStaffCommandHandler

	// Query handlers
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrderHistoryHandler  queries.GetOrderHistoryQueryHandler
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler
	getStaffOnShiftHandler  queries.GetStaffOnShiftQueryHandler

	orders   ports.OrderRepository
	notifier TransitionNotifier
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	finalizeOrderHandler commands.FinalizeOrderCommandHandler,
	applyStatusHandler commands.ApplyOrderStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	reviseOrderItemsHandler commands.ReviseOrderItemsCommandHandler,
	deleteStatusHandler commands.DeleteStatusCommandHandler,
	bindStaffHandler commands.BindStaffIdentityCommandHandler,
	toggleShiftHandler commands.ToggleShiftCommandHandler,
	logoutStaffHandler commands.LogoutStaffCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
	getStaffOnShiftHandler queries.GetStaffOnShiftQueryHandler,
	orders ports.OrderRepository,
	notifier TransitionNotifier,
) *Server {
	return &Server{
		finalizeOrderHandler:    finalizeOrderHandler,
		applyStatusHandler:      applyStatusHandler,
		assignCourierHandler:    assignCourierHandler,
		reviseOrderItemsHandler: reviseOrderItemsHandler,
		deleteStatusHandler:     deleteStatusHandler,
		bindStaffHandler:        bindStaffHandler,
		toggleShiftHandler:      toggleShiftHandler,
		logoutStaffHandler:      logoutStaffHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getOrderHistoryHandler:  getOrderHistoryHandler,
		getCourierOrdersHandler: getCourierOrdersHandler,
		getStaffOnShiftHandler:  getStaffOnShiftHandler,
		orders:                  orders,
		notifier:                notifier,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/admin/orders", s.GetActiveOrders)
	e.GET("/admin/orders/:id", s.GetOrder)
	e.POST("/admin/orders/:id/status", s.ChangeOrderStatus)
	e.POST("/admin/orders/:id/courier", s.AssignCourier)
	e.PUT("/admin/orders/:id/items", s.ReviseOrderItems)
	e.DELETE("/admin/statuses/:id", s.DeleteStatus)
	e.GET("/admin/couriers", s.GetCouriersOnShift)
	e.GET("/admin/couriers/:id/orders", s.GetCourierOrders)
	e.POST("/staff/login", s.StaffLogin)
	e.POST("/staff/shift", s.ToggleShift)
	e.POST("/staff/logout", s.StaffLogout)
}

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the web intake payload. Items map product identities
// to requested quantities.
type NewOrderRequest struct {
	Items         map[int64]int `json:"items"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Address       string        `json:"address"`
	IsDelivery    bool          `json:"is_delivery"`
	RequestedTime string        `json:"requested_time"`
}

// CreateOrder handles POST /api/orders - places an order from the web form.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinalizeOrderCommand(
		req.Items,
		order.Origin{},
		order.Customer{Name: req.CustomerName, Phone: req.CustomerPhone, Address: req.Address},
		req.IsDelivery,
		req.RequestedTime,
		order.NewWebAdminActor(),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.finalizeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"id": placed.ID()})
}

// ChangeStatusRequest selects the target status for a transition.
type ChangeStatusRequest struct {
	StatusID int64 `json:"status_id"`
}

// ChangeStatusResponse reports the applied transition. Unchanged is true
// for the idempotent re-apply of the current status.
type ChangeStatusResponse struct {
	OrderID   int64  `json:"order_id"`
	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status,omitempty"`
	Unchanged bool   `json:"unchanged,omitempty"`
}

// ChangeOrderStatus handles POST /admin/orders/:id/status - moves an order
// to the requested status on behalf of the web admin.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor := order.NewWebAdminActor()
	cmd, err := commands.NewApplyOrderStatusCommand(orderID, req.StatusID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.applyStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if result.NoOp {
		return ctx.JSON(http.StatusOK, ChangeStatusResponse{OrderID: orderID, Unchanged: true})
	}

	s.notifier.Dispatch(ctx.Request().Context(), result.Order, result.OldStatusName, actor)

	return ctx.JSON(http.StatusOK, ChangeStatusResponse{
		OrderID:   orderID,
		OldStatus: result.OldStatusName,
		NewStatus: result.StatusName,
	})
}

// AssignCourierRequest selects the courier; zero unassigns.
type AssignCourierRequest struct {
	CourierID int64 `json:"courier_id"`
}

// AssignCourierResponse reports courier display names around the change.
type AssignCourierResponse struct {
	OrderID         int64  `json:"order_id"`
	PreviousCourier string `json:"previous_courier"`
	NewCourier      string `json:"new_courier"`
}

// AssignCourier handles POST /admin/orders/:id/courier - assigns,
// reassigns or unassigns the order's courier.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, req.CourierID, order.NewWebAdminActor())
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignCourierResponse{
		OrderID:         orderID,
		PreviousCourier: result.PreviousCourierName,
		NewCourier:      result.NewCourierName,
	})
}

// ReviseItemsRequest replaces the order's item snapshot.
type ReviseItemsRequest struct {
	Items map[int64]int `json:"items"`
}

// ReviseOrderItems handles PUT /admin/orders/:id/items - re-resolves the
// composition and total against the current catalog.
func (s *Server) ReviseOrderItems(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ReviseItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReviseOrderItemsCommand(orderID, req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	revised, err := s.reviseOrderItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"id":          revised.ID(),
		"composition": revised.Composition().String(),
		"total_price": revised.TotalPrice(),
	})
}

// DeleteStatus handles DELETE /admin/statuses/:id - removes an unused
// status row.
func (s *Server) DeleteStatus(ctx echo.Context) error {
	statusID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid status id")
	}

	cmd, err := commands.NewDeleteStatusCommand(statusID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ActiveOrderItem is one row of the operator work list.
type ActiveOrderItem struct {
	ID            int64  `json:"id"`
	Composition   string `json:"composition"`
	TotalPrice    int64  `json:"total_price"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	IsDelivery    bool   `json:"is_delivery"`
	RequestedTime string `json:"requested_time"`
	StatusName    string `json:"status_name"`
	CourierName   string `json:"courier_name"`
	CreatedAt     string `json:"created_at"`
}

// GetActiveOrders handles GET /admin/orders - lists non-terminal orders,
// newest first.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	rows, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderItem, len(rows))
	for i, row := range rows {
		response[i] = ActiveOrderItem{
			ID:            row.ID,
			Composition:   row.Composition,
			TotalPrice:    row.TotalPrice,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			Address:       row.Address,
			IsDelivery:    row.IsDelivery,
			RequestedTime: row.RequestedTime,
			StatusName:    row.StatusName,
			CourierName:   row.CourierName,
			CreatedAt:     row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// HistoryItem is one audit trail row of the order detail.
type HistoryItem struct {
	StatusName string `json:"status_name"`
	Actor      string `json:"actor"`
	OccurredAt string `json:"occurred_at"`
}

// OrderDetail is the full order card with its audit trail.
type OrderDetail struct {
	ID            int64         `json:"id"`
	Composition   string        `json:"composition"`
	TotalPrice    int64         `json:"total_price"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Address       string        `json:"address"`
	IsDelivery    bool          `json:"is_delivery"`
	RequestedTime string        `json:"requested_time"`
	StatusID      int64         `json:"status_id"`
	CourierID     *int64        `json:"courier_id"`
	CompletedByID *int64        `json:"completed_by_id"`
	CreatedAt     string        `json:"created_at"`
	History       []HistoryItem `json:"history"`
}

// GetOrder handles GET /admin/orders/:id - the order detail with its audit
// trail in chronological order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	aggregate, err := s.orders.Get(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	historyQuery, err := queries.NewGetOrderHistoryQuery(orderID, queries.HistoryAscending)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), historyQuery)
	if err != nil {
		return writeError(ctx, err)
	}

	detail := OrderDetail{
		ID:            aggregate.ID(),
		Composition:   aggregate.Composition().String(),
		TotalPrice:    aggregate.TotalPrice(),
		CustomerName:  aggregate.Customer().Name,
		CustomerPhone: aggregate.Customer().Phone,
		Address:       aggregate.Customer().Address,
		IsDelivery:    aggregate.IsDelivery(),
		RequestedTime: aggregate.RequestedTime(),
		StatusID:      aggregate.StatusID(),
		CourierID:     aggregate.CourierID(),
		CompletedByID: aggregate.CompletedByID(),
		CreatedAt:     aggregate.CreatedAt().Format("2006-01-02 15:04:05"),
		History:       make([]HistoryItem, len(history)),
	}
	for i, entry := range history {
		detail.History[i] = HistoryItem{
			StatusName: entry.StatusName,
			Actor:      entry.Actor,
			OccurredAt: entry.OccurredAt.Format("2006-01-02 15:04:05"),
		}
	}

	return ctx.JSON(http.StatusOK, detail)
}

// CourierOnShift is one row of the assignment picker. Reachable couriers
// carry a chat identity.
type CourierOnShift struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	ChatID   *int64 `json:"chat_id"`
}

// GetCouriersOnShift handles GET /admin/couriers - the assignment picker
// roster.
func (s *Server) GetCouriersOnShift(ctx echo.Context) error {
	rows, err := s.getStaffOnShiftHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetStaffOnShiftQuery(queries.CanBeAssigned),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourierOnShift, len(rows))
	for i, row := range rows {
		response[i] = CourierOnShift{ID: row.ID, FullName: row.FullName, ChatID: row.ChatID}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CourierOrderItem is one row of a courier's work list.
type CourierOrderItem struct {
	ID            int64  `json:"id"`
	Composition   string `json:"composition"`
	TotalPrice    int64  `json:"total_price"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	IsDelivery    bool   `json:"is_delivery"`
	RequestedTime string `json:"requested_time"`
	StatusName    string `json:"status_name"`
}

// GetCourierOrders handles GET /admin/couriers/:id/orders - one courier's
// non-terminal orders, oldest first.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourierOrderItem, len(rows))
	for i, row := range rows {
		response[i] = CourierOrderItem{
			ID:            row.ID,
			Composition:   row.Composition,
			TotalPrice:    row.TotalPrice,
			CustomerName:  row.CustomerName,
			CustomerPhone: row.CustomerPhone,
			Address:       row.Address,
			IsDelivery:    row.IsDelivery,
			RequestedTime: row.RequestedTime,
			StatusName:    row.StatusName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StaffLoginRequest identifies the employee by phone and the chat to bind.
type StaffLoginRequest struct {
	Phone  string `json:"phone"`
	ChatID int64  `json:"chat_id"`
}

// StaffLogin handles POST /staff/login - binds a chat identity to the
// employee with the given phone.
func (s *Server) StaffLogin(ctx echo.Context) error {
	var req StaffLoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBindStaffIdentityCommand(req.Phone, req.ChatID)
	if err != nil {
		return writeError(ctx, err)
	}

	employee, err := s.bindStaffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrStaffNotPermitted) {
			return ctx.JSON(http.StatusForbidden, ErrorBody{
				Code: http.StatusForbidden, Message: err.Error(),
			})
		}
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"id":        employee.ID(),
		"full_name": employee.FullName(),
		"role":      employee.Role().Name(),
	})
}

// ShiftRequest selects the desired shift state for a bound chat identity.
type ShiftRequest struct {
	ChatID  int64 `json:"chat_id"`
	OnShift bool  `json:"on_shift"`
}

// ToggleShift handles POST /staff/shift - moves the employee on or off
// shift. Requesting the current state is a quiet acknowledgment.
func (s *Server) ToggleShift(ctx echo.Context) error {
	var req ShiftRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewToggleShiftCommand(req.ChatID, req.OnShift)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.toggleShiftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{
		"changed":  result.Changed,
		"on_shift": result.OnShift,
	})
}

// LogoutRequest identifies the chat binding to clear.
type LogoutRequest struct {
	ChatID int64 `json:"chat_id"`
}

// StaffLogout handles POST /staff/logout - clears the chat binding and all
// session state.
func (s *Server) StaffLogout(ctx echo.Context) error {
	var req LogoutRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLogoutStaffCommand(req.ChatID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.logoutStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorBody{Code: http.StatusBadRequest, Message: message})
}

// writeError maps the application error taxonomy onto HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrIntegrityConflict),
		errors.Is(err, commands.ErrCourierNotEligible):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorBody{Code: status, Message: err.Error()})
}
