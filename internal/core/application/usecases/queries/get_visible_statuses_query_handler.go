package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVisibleStatusesQueryHandler projects an audience's status button set
// from the store.
type GetVisibleStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetVisibleStatusesQueryHandler creates a handler for button set
// queries.
func NewGetVisibleStatusesQueryHandler(db *gorm.DB) GetVisibleStatusesQueryHandler {
	return GetVisibleStatusesQueryHandler{db: db}
}

// Handle returns the audience's statuses in configuration order.
func (h GetVisibleStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetVisibleStatusesQuery,
) ([]GetVisibleStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `SELECT id, name FROM order_statuses WHERE visible_to_operator = TRUE ORDER BY id`
	if query.Audience() == CourierStatuses {
		sql = `SELECT id, name FROM order_statuses WHERE visible_to_courier = TRUE ORDER BY id`
	}

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]GetVisibleStatusesQueryResponse, 0)
	for rows.Next() {
		var resp GetVisibleStatusesQueryResponse

		if err = rows.Scan(&resp.ID, &resp.Name); err != nil {
			return nil, err
		}

		statuses = append(statuses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
