package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrReviseOrderItemsCommandIsNotConstructed is returned when the command
// was not created via NewReviseOrderItemsCommand.
var ErrReviseOrderItemsCommandIsNotConstructed = errors.New(
	"ReviseOrderItemsCommand must be created via NewReviseOrderItemsCommand constructor",
)

// ReviseOrderItemsCommand replaces an order's item set after an admin
// edit. The composition is rebuilt and the total recomputed against
// current catalog prices, following the same resolution rules as intake.
type ReviseOrderItemsCommand struct {
	orderID int64
	items   map[int64]int

	guard guard.ConstructorGuard
}

// NewReviseOrderItemsCommand creates a validated revision request.
func NewReviseOrderItemsCommand(orderID int64, items map[int64]int) (ReviseOrderItemsCommand, error) {
	if orderID <= 0 {
		return ReviseOrderItemsCommand{}, errs.NewValueIsInvalidError("orderID")
	}

	copied := make(map[int64]int, len(items))
	for id, qty := range items {
		copied[id] = qty
	}

	return ReviseOrderItemsCommand{
		orderID: orderID,
		items:   copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ReviseOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReviseOrderItemsCommandIsNotConstructed)
}

// OrderID returns the order to revise.
func (c *ReviseOrderItemsCommand) OrderID() int64 {
	return c.orderID
}

// Items returns the requested quantities keyed by product identity.
func (c *ReviseOrderItemsCommand) Items() map[int64]int {
	return c.items
}
