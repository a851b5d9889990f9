package commands

import "context"

// LogoutStaffCommandHandler clears a staff member's chat binding, shift
// flag and held order in one write.
type LogoutStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewLogoutStaffCommandHandler creates a handler for staff logout.
func NewLogoutStaffCommandHandler(uowFactory StaffUoWFactory) LogoutStaffCommandHandler {
	return LogoutStaffCommandHandler{uowFactory: uowFactory}
}

// Handle logs the employee out. Returns errs.ObjectNotFoundError when no
// employee is bound to the chat identity.
func (h *LogoutStaffCommandHandler) Handle(ctx context.Context, cmd LogoutStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()

	employee, err := employeeRepo.GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return err
	}

	employee.Logout()

	if err = employeeRepo.Update(ctx, employee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
