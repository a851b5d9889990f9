package staff

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrRoleIsNotConstructed is returned when using a Role that was not created
// via NewRole or RestoreRole.
var ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole or RestoreRole")

// Role carries staff capability flags. CanManageOrders marks operator-class
// roles, CanBeAssigned marks courier-class roles. The flags are independent
// capabilities, not an exclusive choice: a role may hold neither, either,
// or both.
type Role struct {
	id              int64
	name            string
	canManageOrders bool
	canBeAssigned   bool

	guard guard.ConstructorGuard
}

// NewRole creates a not-yet-persisted role.
func NewRole(name string, canManageOrders, canBeAssigned bool) (*Role, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("role name")
	}

	return &Role{
		name:            name,
		canManageOrders: canManageOrders,
		canBeAssigned:   canBeAssigned,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreRole reconstructs a persisted role from storage.
func RestoreRole(id int64, name string, canManageOrders, canBeAssigned bool) (*Role, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("role id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("role name")
	}

	return &Role{
		id:              id,
		name:            name,
		canManageOrders: canManageOrders,
		canBeAssigned:   canBeAssigned,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the role was created through a constructor.
func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

// ID returns the role identity (0 until persisted).
func (r *Role) ID() int64 {
	return r.id
}

// Name returns the human-readable role name.
func (r *Role) Name() string {
	return r.name
}

// CanManageOrders reports whether employees in this role process orders.
func (r *Role) CanManageOrders() bool {
	return r.canManageOrders
}

// CanBeAssigned reports whether employees in this role can be assigned to
// orders as couriers.
func (r *Role) CanBeAssigned() bool {
	return r.canBeAssigned
}
