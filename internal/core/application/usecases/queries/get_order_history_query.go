package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// HistoryOrdering selects how the audit trail is sorted. Both orderings
// read the same rows: chronological for the admin detail page,
// most-recent-first for chat views.
type HistoryOrdering int

const (
	// HistoryAscending sorts oldest entry first.
	HistoryAscending HistoryOrdering = iota
	// HistoryDescending sorts newest entry first.
	HistoryDescending
)

// GetOrderHistoryQuery retrieves one order's audit trail.
type GetOrderHistoryQuery struct {
	orderID  int64
	ordering HistoryOrdering

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a validated audit trail query.
func NewGetOrderHistoryQuery(orderID int64, ordering HistoryOrdering) (GetOrderHistoryQuery, error) {
	if orderID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidError("orderID")
	}

	return GetOrderHistoryQuery{
		orderID:  orderID,
		ordering: ordering,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose trail is read.
func (q GetOrderHistoryQuery) OrderID() int64 {
	return q.orderID
}

// Ordering returns the requested sort direction.
func (q GetOrderHistoryQuery) Ordering() HistoryOrdering {
	return q.ordering
}

// GetOrderHistoryQueryResponse is one audit entry with the status name
// joined in.
type GetOrderHistoryQueryResponse struct {
	ID         int64
	StatusName string
	Actor      string
	OccurredAt time.Time
}
