package order

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/status"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when using an Order that was not
// created via NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// DefaultRequestedTime is used when the customer did not ask for a
// specific delivery time.
const DefaultRequestedTime = "As soon as possible"

// Origin identifies where an order was placed from. A chat order carries
// the customer's chat identity (and optionally their username); a web
// order carries neither.
type Origin struct {
	ChatID   *int64
	Username *string
}

// Customer carries the contact fields collected at checkout.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// Order is the aggregate root of one customer purchase. It owns its audit
// trail: every accepted status transition appends exactly one HistoryEntry,
// and genesis itself counts as the first transition. The current status and
// the assigned courier are last-write-wins fields; the history is the only
// durable record of intermediate states.
type Order struct {
	id             int64
	origin         Origin
	composition    Composition
	totalPrice     int64
	customer       Customer
	isDelivery     bool
	requestedTime  string
	statusID       int64
	courierID      *int64
	completedByID  *int64
	createdAt      time.Time
	history        []HistoryEntry

	guard guard.ConstructorGuard
}

// NewOrder creates a not-yet-persisted order in the given initial status
// and appends the genesis audit entry attributed to the intake channel.
// The total price is in minor currency units and must already equal the
// sum of the composition's lines at current catalog prices.
func NewOrder(
	origin Origin,
	customer Customer,
	composition Composition,
	totalPrice int64,
	isDelivery bool,
	requestedTime string,
	initial *status.Status,
	placedBy Actor,
	now time.Time,
) (*Order, error) {
	if totalPrice < 0 {
		return nil, errs.NewValueIsInvalidError("total price")
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	if requestedTime == "" {
		requestedTime = DefaultRequestedTime
	}

	o := &Order{
		origin:        origin,
		composition:   composition,
		totalPrice:    totalPrice,
		customer:      customer,
		isDelivery:    isDelivery,
		requestedTime: requestedTime,
		statusID:      initial.ID(),
		createdAt:     now,
		guard:         guard.NewConstructorGuard(),
	}
	o.appendHistory(initial.ID(), placedBy, now)

	return o, nil
}

// RestoreOrder reconstructs a persisted order from storage together with
// its audit trail.
func RestoreOrder(
	id int64,
	origin Origin,
	customer Customer,
	composition Composition,
	totalPrice int64,
	isDelivery bool,
	requestedTime string,
	statusID int64,
	courierID *int64,
	completedByID *int64,
	createdAt time.Time,
	history []HistoryEntry,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id")
	}
	if statusID <= 0 {
		return nil, errs.NewValueIsInvalidError("status id")
	}
	if totalPrice < 0 {
		return nil, errs.NewValueIsInvalidError("total price")
	}

	return &Order{
		id:            id,
		origin:        origin,
		composition:   composition,
		totalPrice:    totalPrice,
		customer:      customer,
		isDelivery:    isDelivery,
		requestedTime: requestedTime,
		statusID:      statusID,
		courierID:     courierID,
		completedByID: completedByID,
		createdAt:     createdAt,
		history:       history,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// MarkPersisted records the identity assigned by the store on first insert
// and stamps it onto the pending genesis audit entries.
func (o *Order) MarkPersisted(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	if o.id != 0 {
		return nil
	}

	o.id = id
	for i := range o.history {
		if o.history[i].orderID == 0 {
			o.history[i].orderID = id
		}
	}
	return nil
}

// ChangeStatus moves the order to the given status and appends one audit
// entry. Returns false without mutating anything when the order is already
// in that status (the idempotent short-circuit).
//
// When a courier moves the order into a completing status, the order's
// completed-by reference is stamped with whatever courier is assigned at
// this moment, so a later reassignment cannot rewrite who completed it.
func (o *Order) ChangeStatus(to *status.Status, actor Actor, at time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := to.Validate(); err != nil {
		return false, err
	}

	if to.ID() == o.statusID {
		return false, nil
	}

	o.statusID = to.ID()
	if actor.IsCourier() && to.IsCompleting() {
		if o.courierID != nil {
			completedBy := *o.courierID
			o.completedByID = &completedBy
		}
	}
	o.appendHistory(to.ID(), actor, at)

	return true, nil
}

// Assign sets the order's courier reference. Eligibility is the caller's
// concern; assignment itself is not a status change and appends no audit
// entry.
func (o *Order) Assign(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidError("courier id")
	}

	o.courierID = &courierID
	return nil
}

// Unassign clears the order's courier reference.
func (o *Order) Unassign() {
	o.courierID = nil
}

// Revise replaces the order's composition and total price after an item
// edit. The total must already be recomputed against current catalog
// prices.
func (o *Order) Revise(composition Composition, totalPrice int64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("total price")
	}

	o.composition = composition
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) appendHistory(statusID int64, actor Actor, at time.Time) {
	o.history = append(o.history, HistoryEntry{
		orderID:    o.id,
		statusID:   statusID,
		actor:      actor.Description(),
		occurredAt: at,
	})
}

// ID returns the order identity (0 until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// Origin returns where the order was placed from.
func (o *Order) Origin() Origin {
	return o.origin
}

// PlacedViaChat reports whether the order carries the customer's chat
// identity, i.e. was placed through the chat interface rather than the web
// form.
func (o *Order) PlacedViaChat() bool {
	return o.origin.ChatID != nil
}

// Composition returns the itemized order content.
func (o *Order) Composition() Composition {
	return o.composition
}

// TotalPrice returns the order total in minor currency units.
func (o *Order) TotalPrice() int64 {
	return o.totalPrice
}

// Customer returns the contact fields collected at checkout.
func (o *Order) Customer() Customer {
	return o.customer
}

// IsDelivery reports whether the order is delivered rather than picked up.
func (o *Order) IsDelivery() bool {
	return o.isDelivery
}

// RequestedTime returns the delivery time the customer asked for.
func (o *Order) RequestedTime() string {
	return o.requestedTime
}

// StatusID returns the current status reference.
func (o *Order) StatusID() int64 {
	return o.statusID
}

// CourierID returns the assigned courier, or nil when unassigned.
func (o *Order) CourierID() *int64 {
	return o.courierID
}

// CompletedByID returns the courier who completed the order, or nil while
// the order has not reached a completing status via a courier.
func (o *Order) CompletedByID() *int64 {
	return o.completedByID
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// History returns the audit trail in append order. Entries with a zero ID
// have not been persisted yet.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}
