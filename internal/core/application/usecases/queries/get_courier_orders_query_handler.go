package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler projects one courier's work list from the
// store.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier work list
// queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle returns the courier's non-terminal orders, oldest first, so the
// longest-waiting order is at the top of the chat.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]GetCourierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.composition,
			o.total_price,
			o.customer_name,
			o.customer_phone,
			o.address,
			o.is_delivery,
			o.requested_time,
			s.name,
			o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE o.courier_id = ?
		  AND s.is_completing = FALSE AND s.is_cancelling = FALSE
		ORDER BY o.created_at, o.id
	`, query.CourierID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCourierOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetCourierOrdersQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Composition,
			&resp.TotalPrice,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.Address,
			&resp.IsDelivery,
			&resp.RequestedTime,
			&resp.StatusName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
