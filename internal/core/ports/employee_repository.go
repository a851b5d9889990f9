package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/staff"
)

// EmployeeRepository is the persistence contract for staff identities.
// Employees are admin-created; the workflow only reads them and mutates
// their transient session state (chat binding, shift flag, held order).
type EmployeeRepository interface {
	// Get retrieves an employee by identity. Returns
	// errs.ObjectNotFoundError when no such employee exists.
	Get(ctx context.Context, id int64) (*staff.Employee, error)

	// GetByChatID retrieves the employee bound to the given chat identity.
	// Returns errs.ObjectNotFoundError when no employee is bound to it.
	GetByChatID(ctx context.Context, chatID int64) (*staff.Employee, error)

	// GetByPhone retrieves an employee by the phone used as login key.
	// Returns errs.ObjectNotFoundError when no employee has that phone.
	GetByPhone(ctx context.Context, phone string) (*staff.Employee, error)

	// Update persists changes to an existing employee.
	Update(ctx context.Context, aggregate *staff.Employee) error
}
