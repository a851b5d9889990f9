package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/staff"
	"orderdesk/internal/pkg/errs"
)

// ErrStaffNotPermitted is returned when the employee's role carries no
// order-handling capability at all, so there is nothing for them to do in
// the staff chat.
var ErrStaffNotPermitted = errors.New("employee role has no order-handling capability")

// BindStaffIdentityCommandHandler performs staff login. The chat identity
// binding is unique across employees: a stale binding of the same chat to
// another employee is cleared before the new one is written.
type BindStaffIdentityCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewBindStaffIdentityCommandHandler creates a handler for staff login.
func NewBindStaffIdentityCommandHandler(uowFactory StaffUoWFactory) BindStaffIdentityCommandHandler {
	return BindStaffIdentityCommandHandler{uowFactory: uowFactory}
}

// Handle binds the chat identity and returns the logged-in employee.
// Returns errs.ObjectNotFoundError when no employee has the given phone,
// ErrStaffNotPermitted when the role carries no capability.
func (h *BindStaffIdentityCommandHandler) Handle(
	ctx context.Context,
	cmd BindStaffIdentityCommand,
) (*staff.Employee, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()

	employee, err := employeeRepo.GetByPhone(ctx, cmd.Phone())
	if err != nil {
		return nil, err
	}

	if !employee.CanManageOrders() && !employee.CanBeAssigned() {
		return nil, ErrStaffNotPermitted
	}

	previous, err := employeeRepo.GetByChatID(ctx, cmd.ChatID())
	switch {
	case err == nil:
		if previous.ID() != employee.ID() {
			previous.Logout()
			if err = employeeRepo.Update(ctx, previous); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// chat not bound to anyone yet
	default:
		return nil, err
	}

	if err = employee.BindChat(cmd.ChatID()); err != nil {
		return nil, err
	}

	if err = employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return employee, nil
}
