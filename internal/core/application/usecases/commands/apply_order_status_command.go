package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrApplyOrderStatusCommandIsNotConstructed is returned when the command
// was not created via NewApplyOrderStatusCommand.
var ErrApplyOrderStatusCommandIsNotConstructed = errors.New(
	"ApplyOrderStatusCommand must be created via NewApplyOrderStatusCommand constructor",
)

// ApplyOrderStatusCommand requests moving an order to a target status on
// behalf of an actor. Applying the status the order is already in is not
// an error; the handler reports it as a no-op.
type ApplyOrderStatusCommand struct {
	orderID  int64
	statusID int64
	actor    order.Actor

	guard guard.ConstructorGuard
}

// NewApplyOrderStatusCommand creates a validated status transition request.
func NewApplyOrderStatusCommand(orderID, statusID int64, actor order.Actor) (ApplyOrderStatusCommand, error) {
	if orderID <= 0 {
		return ApplyOrderStatusCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if statusID <= 0 {
		return ApplyOrderStatusCommand{}, errs.NewValueIsInvalidError("statusID")
	}

	return ApplyOrderStatusCommand{
		orderID:  orderID,
		statusID: statusID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ApplyOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c *ApplyOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// StatusID returns the target status.
func (c *ApplyOrderStatusCommand) StatusID() int64 {
	return c.statusID
}

// Actor returns who triggered the transition.
func (c *ApplyOrderStatusCommand) Actor() order.Actor {
	return c.actor
}
