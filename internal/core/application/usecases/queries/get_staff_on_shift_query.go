package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrGetStaffOnShiftQueryIsNotConstructed = errors.New(
	"GetStaffOnShiftQuery must be created via NewGetStaffOnShiftQuery constructor",
)

// StaffCapability selects which role capability the roster is filtered by.
type StaffCapability int

const (
	// CanManageOrders selects operator-class staff. Used by the new-order
	// fan-out.
	CanManageOrders StaffCapability = iota
	// CanBeAssigned selects courier-class staff. Used by the assignment
	// picker.
	CanBeAssigned
)

// GetStaffOnShiftQuery retrieves the on-shift roster for one capability.
// The roster is re-read per operation; there is no process-wide cache to
// go stale during a fan-out.
type GetStaffOnShiftQuery struct {
	capability StaffCapability

	guard guard.ConstructorGuard
}

// NewGetStaffOnShiftQuery creates a validated roster query.
func NewGetStaffOnShiftQuery(capability StaffCapability) GetStaffOnShiftQuery {
	return GetStaffOnShiftQuery{
		capability: capability,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetStaffOnShiftQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffOnShiftQueryIsNotConstructed)
}

// Capability returns the requested capability filter.
func (q GetStaffOnShiftQuery) Capability() StaffCapability {
	return q.capability
}

// GetStaffOnShiftQueryResponse is one roster row. ChatID is nil for staff
// who are on shift but not logged into the chat, and therefore not
// reachable.
type GetStaffOnShiftQueryResponse struct {
	ID       int64
	FullName string
	ChatID   *int64
}

// Reachable reports whether the staff member can receive chat messages.
func (r GetStaffOnShiftQueryResponse) Reachable() bool {
	return r.ChatID != nil
}
