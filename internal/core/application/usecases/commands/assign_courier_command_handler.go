package commands

import (
	"context"
	"errors"

	"orderdesk/internal/core/domain/model/staff"
)

// ErrCourierNotEligible is returned when the target employee cannot take
// the order: their role is not courier-capable or they are off shift.
// Eligibility is rechecked here, at assignment time, so going off shift
// between listing and selection fails the assignment instead of silently
// landing an order on an unavailable courier.
var ErrCourierNotEligible = errors.New("courier is off shift or cannot be assigned orders")

// NoCourierName is rendered when an assignment slot is empty.
const NoCourierName = "none"

// AssignCourierResult reports display names for the caller surface to
// render. Either side is NoCourierName when the slot was or became empty.
type AssignCourierResult struct {
	PreviousCourierName string
	NewCourierName      string
}

// AssignCourierCommandHandler assigns, reassigns or unassigns an order's
// courier. Assignment is not a status change: no audit entry is appended.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   AssignmentNotifier
}

// NewAssignCourierCommandHandler creates a handler for courier
// assignments.
func NewAssignCourierCommandHandler(
	uowFactory UoWFactory,
	notifier AssignmentNotifier,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

// Handle applies the assignment. Returns errs.ObjectNotFoundError when the
// order or the target courier does not exist, ErrCourierNotEligible when
// the target fails the eligibility recheck.
//
// When a different courier was previously assigned, exactly one "taken
// from you" notice is attempted before the switch; the notice is
// best-effort and its failure never fails the assignment.
func (h *AssignCourierCommandHandler) Handle(
	ctx context.Context,
	cmd AssignCourierCommand,
) (AssignCourierResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignCourierResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignCourierResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	employeeRepo := uow.EmployeeRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AssignCourierResult{}, err
	}

	var next *staff.Employee
	if !cmd.IsUnassign() {
		next, err = employeeRepo.Get(ctx, cmd.CourierID())
		if err != nil {
			return AssignCourierResult{}, err
		}
		if !next.CanBeAssigned() || !next.IsOnShift() {
			return AssignCourierResult{}, ErrCourierNotEligible
		}
	}

	result := AssignCourierResult{
		PreviousCourierName: NoCourierName,
		NewCourierName:      NoCourierName,
	}

	if prevID := aggregate.CourierID(); prevID != nil && *prevID != cmd.CourierID() {
		previous, prevErr := employeeRepo.Get(ctx, *prevID)
		if prevErr == nil {
			result.PreviousCourierName = previous.FullName()
			h.notifier.NotifyCourierRemoved(ctx, aggregate, previous)
		}
	}

	if cmd.IsUnassign() {
		aggregate.Unassign()
	} else {
		if err = aggregate.Assign(next.ID()); err != nil {
			return AssignCourierResult{}, err
		}
		result.NewCourierName = next.FullName()
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AssignCourierResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignCourierResult{}, err
	}

	if next != nil {
		h.notifier.NotifyCourierAssigned(ctx, aggregate, next)
		h.notifier.LogCourierAssignment(ctx, aggregate, next.FullName())
	} else {
		h.notifier.LogCourierAssignment(ctx, aggregate, "unassigned")
	}

	return result, nil
}
