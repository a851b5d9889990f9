package commands

import "context"

// ToggleShiftResult reports whether the shift state actually changed.
// Requesting the state the employee is already in is a quiet no-op.
type ToggleShiftResult struct {
	Changed bool
	OnShift bool
}

// ToggleShiftCommandHandler moves an employee on or off shift. Ending a
// courier's shift also releases the order they were holding.
type ToggleShiftCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewToggleShiftCommandHandler creates a handler for shift changes.
func NewToggleShiftCommandHandler(uowFactory StaffUoWFactory) ToggleShiftCommandHandler {
	return ToggleShiftCommandHandler{uowFactory: uowFactory}
}

// Handle applies the shift change. Returns errs.ObjectNotFoundError when
// no employee is bound to the chat identity.
func (h *ToggleShiftCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleShiftCommand,
) (ToggleShiftResult, error) {
	if err := cmd.Validate(); err != nil {
		return ToggleShiftResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ToggleShiftResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employeeRepo := uow.EmployeeRepository()

	employee, err := employeeRepo.GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return ToggleShiftResult{}, err
	}

	var changed bool
	if cmd.OnShift() {
		changed = employee.StartShift()
	} else {
		changed = employee.EndShift()
	}

	if !changed {
		return ToggleShiftResult{OnShift: employee.IsOnShift()}, nil
	}

	if err = employeeRepo.Update(ctx, employee); err != nil {
		return ToggleShiftResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ToggleShiftResult{}, err
	}

	return ToggleShiftResult{Changed: true, OnShift: employee.IsOnShift()}, nil
}
