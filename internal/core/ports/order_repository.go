package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates. Get
// loads the aggregate together with its audit trail; Add and Update persist
// the aggregate and append any not-yet-persisted history entries in the
// same transaction.
type OrderRepository interface {
	// Add persists a new order and its genesis audit entry, then stamps
	// the store-assigned identity back onto the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order and appends any new
	// audit entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identity. Returns errs.ObjectNotFoundError
	// when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
