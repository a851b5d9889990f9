package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStaleNewOrdersQueryHandler projects unattended orders from the
// store. The initial status is the configuration row with the lowest id,
// the same rule intake uses for genesis.
type GetStaleNewOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleNewOrdersQueryHandler creates a handler for stale order
// queries.
func NewGetStaleNewOrdersQueryHandler(db *gorm.DB) GetStaleNewOrdersQueryHandler {
	return GetStaleNewOrdersQueryHandler{db: db}
}

// Handle returns orders still in the initial status created before the
// cutoff, oldest first.
func (h GetStaleNewOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleNewOrdersQuery,
) ([]GetStaleNewOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.customer_name, o.created_at
		FROM orders o
		WHERE o.status_id = (SELECT MIN(id) FROM order_statuses)
		  AND o.created_at < ?
		ORDER BY o.created_at, o.id
	`, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetStaleNewOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetStaleNewOrdersQueryResponse

		if err = rows.Scan(&resp.ID, &resp.CustomerName, &resp.CreatedAt); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
