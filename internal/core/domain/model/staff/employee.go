// Package staff contains the Employee and Role entities: the staff
// identities that process and deliver orders. An employee binds a chat
// identity at login, toggles an on-shift flag, and may transiently hold the
// order they are working on.
package staff

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrEmployeeIsNotConstructed is returned when using an Employee that
	// was not created via NewEmployee or RestoreEmployee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee or RestoreEmployee")
	// ErrFullNameIsRequired is returned when an employee is created without
	// a name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
)

// Employee is a staff identity. The chat identity binding is optional and
// transient: it is set at login by phone lookup and cleared at logout. The
// binding is unique across employees when present (enforced by the store).
type Employee struct {
	id             int64
	chatID         *int64
	fullName       string
	phone          string
	role           *Role
	onShift        bool
	currentOrderID *int64

	guard guard.ConstructorGuard
}

// NewEmployee creates a not-yet-persisted employee in the given role, off
// shift and with no chat identity bound.
func NewEmployee(fullName, phone string, role *Role) (*Employee, error) {
	if fullName == "" {
		return nil, ErrFullNameIsRequired
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Employee{
		fullName: fullName,
		phone:    phone,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreEmployee reconstructs a persisted employee from storage, including
// transient session state.
func RestoreEmployee(
	id int64,
	chatID *int64,
	fullName, phone string,
	role *Role,
	onShift bool,
	currentOrderID *int64,
) (*Employee, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("employee id")
	}
	if fullName == "" {
		return nil, ErrFullNameIsRequired
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Employee{
		id:             id,
		chatID:         chatID,
		fullName:       fullName,
		phone:          phone,
		role:           role,
		onShift:        onShift,
		currentOrderID: currentOrderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the employee was created through a constructor.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// ID returns the employee identity (0 until persisted).
func (e *Employee) ID() int64 {
	return e.id
}

// ChatID returns the bound chat identity, or nil when the employee is not
// logged in.
func (e *Employee) ChatID() *int64 {
	return e.chatID
}

// FullName returns the employee's display name.
func (e *Employee) FullName() string {
	return e.fullName
}

// Phone returns the phone number used as the login key.
func (e *Employee) Phone() string {
	return e.phone
}

// Role returns the employee's role.
func (e *Employee) Role() *Role {
	return e.role
}

// IsOnShift reports whether the employee is currently available for
// order and assignment duties.
func (e *Employee) IsOnShift() bool {
	return e.onShift
}

// CurrentOrderID returns the order the employee transiently holds, or nil.
func (e *Employee) CurrentOrderID() *int64 {
	return e.currentOrderID
}

// CanManageOrders reports whether the employee's role is operator-class.
func (e *Employee) CanManageOrders() bool {
	return e.role.CanManageOrders()
}

// CanBeAssigned reports whether the employee's role is courier-class.
func (e *Employee) CanBeAssigned() bool {
	return e.role.CanBeAssigned()
}

// BindChat binds the chat identity used to reach this employee. Called at
// login after a successful phone lookup.
func (e *Employee) BindChat(chatID int64) error {
	if chatID == 0 {
		return errs.NewValueIsInvalidError("chat id")
	}

	e.chatID = &chatID
	return nil
}

// Logout clears the chat identity binding and all identity-linked transient
// state: the on-shift flag and the currently held order.
func (e *Employee) Logout() {
	e.chatID = nil
	e.onShift = false
	e.currentOrderID = nil
}

// StartShift marks the employee available. Returns false when the employee
// was already on shift.
func (e *Employee) StartShift() bool {
	if e.onShift {
		return false
	}
	e.onShift = true
	return true
}

// EndShift marks the employee unavailable and, for courier-class roles,
// releases the currently held order. Returns false when the employee was
// already off shift.
func (e *Employee) EndShift() bool {
	if !e.onShift {
		return false
	}
	e.onShift = false
	if e.role.CanBeAssigned() {
		e.currentOrderID = nil
	}
	return true
}

// HoldOrder records the order this employee is currently working on.
func (e *Employee) HoldOrder(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	e.currentOrderID = &orderID
	return nil
}

// ReleaseOrder clears the held order if it matches orderID. Returns true
// when the hold was released.
func (e *Employee) ReleaseOrder(orderID int64) bool {
	if e.currentOrderID == nil || *e.currentOrderID != orderID {
		return false
	}
	e.currentOrderID = nil
	return true
}
