package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStaffOnShiftQueryHandler projects the on-shift roster from the
// store.
type GetStaffOnShiftQueryHandler struct {
	db *gorm.DB
}

// NewGetStaffOnShiftQueryHandler creates a handler for roster queries.
func NewGetStaffOnShiftQueryHandler(db *gorm.DB) GetStaffOnShiftQueryHandler {
	return GetStaffOnShiftQueryHandler{db: db}
}

// Handle returns the on-shift staff holding the requested capability,
// ordered by name.
func (h GetStaffOnShiftQueryHandler) Handle(
	ctx context.Context,
	query GetStaffOnShiftQuery,
) ([]GetStaffOnShiftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT e.id, e.full_name, e.chat_id
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.on_shift = TRUE AND r.can_manage_orders = TRUE
		ORDER BY e.full_name, e.id
	`
	if query.Capability() == CanBeAssigned {
		sql = `
			SELECT e.id, e.full_name, e.chat_id
			FROM employees e
			JOIN roles r ON r.id = e.role_id
			WHERE e.on_shift = TRUE AND r.can_be_assigned = TRUE
			ORDER BY e.full_name, e.id
		`
	}

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make([]GetStaffOnShiftQueryResponse, 0)
	for rows.Next() {
		var resp GetStaffOnShiftQueryResponse

		if err = rows.Scan(&resp.ID, &resp.FullName, &resp.ChatID); err != nil {
			return nil, err
		}

		roster = append(roster, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
