// Package status contains the OrderStatus configuration entity. Statuses
// are admin-managed rows with capability flags; the workflow core only ever
// reads them.
package status

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrStatusIsNotConstructed is returned when using a Status that was not
	// created via NewStatus or RestoreStatus.
	ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus or RestoreStatus")
	// ErrNameIsRequired is returned when a status is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("status name")
)

// Flags carries the capability flags of an order status.
//
// IsCompleting and IsCancelling mark a status as a terminal flavor ending an
// order's active lifecycle. The two are not enforced as mutually exclusive:
// an admin can configure a status carrying both, and the transition engine
// treats the flags independently.
type Flags struct {
	// NotifyCustomer triggers a customer-facing notice when an order enters
	// this status.
	NotifyCustomer bool
	// VisibleToOperator exposes this status as a quick action to operators.
	VisibleToOperator bool
	// VisibleToCourier exposes this status as a quick action to the
	// assigned courier.
	VisibleToCourier bool
	// IsCompleting marks a successful terminal status.
	IsCompleting bool
	// IsCancelling marks a cancelled terminal status.
	IsCancelling bool
}

// Status is a named order status configuration row. It is read-only to the
// workflow core; creation and deletion happen through admin surfaces.
type Status struct {
	id    int64
	name  string
	flags Flags

	guard guard.ConstructorGuard
}

// NewStatus creates a not-yet-persisted status with the given name and
// flags. The identity is assigned by the store on insert.
func NewStatus(name string, flags Flags) (*Status, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Status{
		name:  name,
		flags: flags,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreStatus reconstructs a persisted status from storage.
func RestoreStatus(id int64, name string, flags Flags) (*Status, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("status id")
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Status{
		id:    id,
		name:  name,
		flags: flags,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the status was created through a constructor.
func (s *Status) Validate() error {
	if s == nil {
		return ErrStatusIsNotConstructed
	}
	return s.guard.Validate(ErrStatusIsNotConstructed)
}

// ID returns the status identity (0 until persisted).
func (s *Status) ID() int64 {
	return s.id
}

// Name returns the human-readable status name.
func (s *Status) Name() string {
	return s.name
}

// NotifyCustomer reports whether entering this status notifies the customer.
func (s *Status) NotifyCustomer() bool {
	return s.flags.NotifyCustomer
}

// VisibleToOperator reports whether operators see this status as an action.
func (s *Status) VisibleToOperator() bool {
	return s.flags.VisibleToOperator
}

// VisibleToCourier reports whether the assigned courier sees this status as
// an action.
func (s *Status) VisibleToCourier() bool {
	return s.flags.VisibleToCourier
}

// IsCompleting reports whether this status successfully ends an order.
func (s *Status) IsCompleting() bool {
	return s.flags.IsCompleting
}

// IsCancelling reports whether this status cancels an order.
func (s *Status) IsCancelling() bool {
	return s.flags.IsCancelling
}

// IsTerminal reports whether this status ends an order's active lifecycle,
// either by completion or by cancellation.
func (s *Status) IsTerminal() bool {
	return s.flags.IsCompleting || s.flags.IsCancelling
}

// Flags returns a copy of the capability flags.
func (s *Status) Flags() Flags {
	return s.flags
}
