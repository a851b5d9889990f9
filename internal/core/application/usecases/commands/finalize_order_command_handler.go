package commands

import (
	"context"
	"sort"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// FinalizeOrderCommandHandler prices an item snapshot against the current
// catalog, persists the order together with its genesis audit entry, and
// fans the new order out to staff. Dispatch runs after the commit: a
// delivery failure can never undo an already durable order.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	notifier   NewOrderNotifier
}

// NewFinalizeOrderCommandHandler creates a handler for order intake.
func NewFinalizeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	notifier NewOrderNotifier,
) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Handle persists the order and returns it with its store-assigned
// identity. An intake whose every item failed resolution yields a
// zero-price, empty-composition order rather than an error.
func (h *FinalizeOrderCommandHandler) Handle(
	ctx context.Context,
	cmd FinalizeOrderCommand,
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

	initial, err := uow.StatusRepository().GetInitial(ctx)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.Origin(),
		cmd.Customer(),
		composition,
		total,
		cmd.IsDelivery(),
		cmd.RequestedTime(),
		initial,
		cmd.PlacedBy(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.DispatchNewOrder(ctx, aggregate)

	return aggregate, nil
}

// resolveOrderItems prices requested quantities against the current
// catalog. Non-positive quantities and unknown or inactive products are
// dropped. Lines are ordered by product identity so the serialized
// composition is deterministic.
func resolveOrderItems(
	ctx context.Context,
	catalog ports.CatalogReader,
	items map[int64]int,
) (order.Composition, int64, error) {
	ids := make([]int64, 0, len(items))
	for id, qty := range items {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if len(ids) == 0 {
		return order.Composition{}, 0, nil
	}

	products, err := catalog.GetProducts(ctx, ids)
	if err != nil {
		return order.Composition{}, 0, err
	}

	byID := make(map[int64]ports.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var total int64
	lines := make([]order.Line, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || !p.IsActive {
			continue
		}

		qty := items[id]
		lines = append(lines, order.Line{Name: p.Name, Quantity: qty})
		total += p.Price * int64(qty)
	}

	composition, err := order.NewComposition(lines)
	if err != nil {
		return order.Composition{}, 0, err
	}

	return composition, total, nil
}
