package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

// ErrFinalizeOrderCommandIsNotConstructed is returned when the command was
// not created via NewFinalizeOrderCommand.
var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand turns a raw item snapshot plus customer fields into
// a persisted, priced order. Items carry requested quantities keyed by
// product identity; non-positive quantities and unknown or inactive
// products are dropped during resolution, not rejected.
type FinalizeOrderCommand struct {
	items         map[int64]int
	origin        order.Origin
	customer      order.Customer
	isDelivery    bool
	requestedTime string
	placedBy      order.Actor

	guard guard.ConstructorGuard
}

// NewFinalizeOrderCommand creates a validated intake request. An empty
// item set is allowed here; callers upstream are expected to reject empty
// carts before checkout.
func NewFinalizeOrderCommand(
	items map[int64]int,
	origin order.Origin,
	customer order.Customer,
	isDelivery bool,
	requestedTime string,
	placedBy order.Actor,
) (FinalizeOrderCommand, error) {
	copied := make(map[int64]int, len(items))
	for id, qty := range items {
		copied[id] = qty
	}

	return FinalizeOrderCommand{
		items:         copied,
		origin:        origin,
		customer:      customer,
		isDelivery:    isDelivery,
		requestedTime: requestedTime,
		placedBy:      placedBy,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

// Items returns the requested quantities keyed by product identity.
func (c *FinalizeOrderCommand) Items() map[int64]int {
	return c.items
}

// Origin returns where the order is being placed from.
func (c *FinalizeOrderCommand) Origin() order.Origin {
	return c.origin
}

// Customer returns the contact fields collected at checkout.
func (c *FinalizeOrderCommand) Customer() order.Customer {
	return c.customer
}

// IsDelivery reports whether the order is delivered rather than picked up.
func (c *FinalizeOrderCommand) IsDelivery() bool {
	return c.isDelivery
}

// RequestedTime returns the delivery time the customer asked for, possibly
// empty.
func (c *FinalizeOrderCommand) RequestedTime() string {
	return c.requestedTime
}

// PlacedBy returns the intake channel attribution for the genesis audit
// entry.
func (c *FinalizeOrderCommand) PlacedBy() order.Actor {
	return c.placedBy
}
