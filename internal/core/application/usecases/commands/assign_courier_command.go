package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrAssignCourierCommandIsNotConstructed is returned when the command was
// not created via NewAssignCourierCommand.
var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// UnassignCourier is the courier id sentinel that clears the assignment.
const UnassignCourier int64 = 0

// AssignCourierCommand requests assigning (or, with the UnassignCourier
// sentinel, clearing) an order's courier on behalf of an actor.
type AssignCourierCommand struct {
	orderID   int64
	courierID int64
	actor     order.Actor

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a validated assignment request.
func NewAssignCourierCommand(orderID, courierID int64, actor order.Actor) (AssignCourierCommand, error) {
	if orderID <= 0 {
		return AssignCourierCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if courierID < 0 {
		return AssignCourierCommand{}, errs.NewValueIsInvalidError("courierID")
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order to (re)assign.
func (c *AssignCourierCommand) OrderID() int64 {
	return c.orderID
}

// CourierID returns the new courier, or UnassignCourier.
func (c *AssignCourierCommand) CourierID() int64 {
	return c.courierID
}

// IsUnassign reports whether the command clears the assignment.
func (c *AssignCourierCommand) IsUnassign() bool {
	return c.courierID == UnassignCourier
}

// Actor returns who triggered the assignment.
func (c *AssignCourierCommand) Actor() order.Actor {
	return c.actor
}
