package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler projects one order's audit trail from the
// store.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail
// queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order's audit entries in the requested direction.
// Ties on the timestamp break on the entry id, which follows insertion
// order.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT h.id, s.name, h.actor, h.occurred_at
		FROM order_status_history h
		JOIN order_statuses s ON s.id = h.status_id
		WHERE h.order_id = ?
		ORDER BY h.occurred_at, h.id
	`
	if query.Ordering() == HistoryDescending {
		sql = `
			SELECT h.id, s.name, h.actor, h.occurred_at
			FROM order_status_history h
			JOIN order_statuses s ON s.id = h.status_id
			WHERE h.order_id = ?
			ORDER BY h.occurred_at DESC, h.id DESC
		`
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderHistoryQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderHistoryQueryResponse

		if err = rows.Scan(&resp.ID, &resp.StatusName, &resp.Actor, &resp.OccurredAt); err != nil {
			return nil, err
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
