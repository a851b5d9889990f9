package commands

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// ApplyOrderStatusResult reports the outcome of a status transition. When
// NoOp is true the order was already in the target status and nothing was
// written. The caller hands (order, OldStatusName, actor) to the
// notification dispatcher after a non-NoOp result; delivery and the
// transition itself are independent failure domains.
type ApplyOrderStatusResult struct {
	Order         *order.Order
	OldStatusName string
	StatusName    string
	NoOp          bool
}

// ApplyOrderStatusCommandHandler applies one status transition: it sets
// the order's status reference and appends exactly one audit entry, both
// in one transaction.
type ApplyOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewApplyOrderStatusCommandHandler creates a handler for status
// transitions.
func NewApplyOrderStatusCommandHandler(uowFactory UoWFactory) ApplyOrderStatusCommandHandler {
	return ApplyOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the transition. Returns errs.ObjectNotFoundError when the
// order or the target status does not exist.
//
// When a courier moves the order into a completing or cancelling status,
// the order is also released from the courier's held-order field; the
// completed-by stamp for completing statuses is handled by the aggregate.
func (h *ApplyOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyOrderStatusCommand,
) (ApplyOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	statusRepo := uow.StatusRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ApplyOrderStatusResult{}, err
	}

	target, err := statusRepo.Get(ctx, cmd.StatusID())
	if err != nil {
		return ApplyOrderStatusResult{}, err
	}

	previous, err := statusRepo.Get(ctx, aggregate.StatusID())
	if err != nil {
		return ApplyOrderStatusResult{}, err
	}

	changed, err := aggregate.ChangeStatus(target, cmd.Actor(), time.Now())
	if err != nil {
		return ApplyOrderStatusResult{}, err
	}

	if !changed {
		return ApplyOrderStatusResult{
			Order:         aggregate,
			OldStatusName: previous.Name(),
			StatusName:    target.Name(),
			NoOp:          true,
		}, nil
	}

	if cmd.Actor().IsCourier() && target.IsTerminal() {
		if err = h.releaseCourierHold(ctx, uow, cmd.Actor().EmployeeID(), aggregate.ID()); err != nil {
			return ApplyOrderStatusResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ApplyOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyOrderStatusResult{}, err
	}

	return ApplyOrderStatusResult{
		Order:         aggregate,
		OldStatusName: previous.Name(),
		StatusName:    target.Name(),
	}, nil
}

func (h *ApplyOrderStatusCommandHandler) releaseCourierHold(
	ctx context.Context,
	uow UoW,
	courierID, orderID int64,
) error {
	if courierID == 0 {
		return nil
	}

	employeeRepo := uow.EmployeeRepository()

	courier, err := employeeRepo.Get(ctx, courierID)
	if err != nil {
		return err
	}

	if !courier.ReleaseOrder(orderID) {
		return nil
	}

	return employeeRepo.Update(ctx, courier)
}
