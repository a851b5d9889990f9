package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler projects the operator work list straight
// from the store.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active orders
// query.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns all non-terminal orders, newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
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
			e.full_name,
			o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		LEFT JOIN employees e ON e.id = o.courier_id
		WHERE s.is_completing = FALSE AND s.is_cancelling = FALSE
		ORDER BY o.created_at DESC, o.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var courierName sql.NullString

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
			&courierName,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.CourierName = courierName.String
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
