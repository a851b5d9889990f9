package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// ReviseOrderItemsCommandHandler rewrites an order's composition and
// total from a fresh item snapshot. Revision is not a status change and
// appends no audit entry.
type ReviseOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
}

// NewReviseOrderItemsCommandHandler creates a handler for item revisions.
func NewReviseOrderItemsCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
) ReviseOrderItemsCommandHandler {
	return ReviseOrderItemsCommandHandler{uowFactory: uowFactory, catalog: catalog}
}

// Handle applies the revision and returns the updated order. Returns
// errs.ObjectNotFoundError when the order does not exist.
func (h *ReviseOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd ReviseOrderItemsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	composition, total, err := resolveOrderItems(ctx, h.catalog, cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Revise(composition, total); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
