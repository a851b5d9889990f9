package postgres

import (
	"fmt"

	"orderdesk/internal/adapters/out/postgres/catalogrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/settingsrepo"
	"orderdesk/internal/adapters/out/postgres/staffrepo"
	"orderdesk/internal/adapters/out/postgres/statusrepo"

	"gorm.io/gorm"
)

// foreignKeys are added outside AutoMigrate because the referential rules
// carry workflow semantics: deleting an order removes its audit trail,
// deleting an employee unassigns them from orders without touching the
// orders themselves, and a status stays undeletable while referenced.
type foreignKey struct {
	table      string
	constraint string
	definition string
}

var foreignKeys = []foreignKey{
	{"orders", "fk_orders_status",
		"FOREIGN KEY (status_id) REFERENCES order_statuses(id) ON DELETE RESTRICT"},
	{"orders", "fk_orders_courier",
		"FOREIGN KEY (courier_id) REFERENCES employees(id) ON DELETE SET NULL"},
	{"orders", "fk_orders_completed_by",
		"FOREIGN KEY (completed_by_id) REFERENCES employees(id) ON DELETE SET NULL"},
	{"order_status_history", "fk_history_order",
		"FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE"},
	{"order_status_history", "fk_history_status",
		"FOREIGN KEY (status_id) REFERENCES order_statuses(id) ON DELETE RESTRICT"},
	{"employees", "fk_employees_role",
		"FOREIGN KEY (role_id) REFERENCES roles(id) ON DELETE RESTRICT"},
}

// Migrate creates or updates the schema for all workflow tables and wires
// the cross-table referential rules. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&staffrepo.RoleDTO{},
		&staffrepo.EmployeeDTO{},
		&statusrepo.StatusDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&catalogrepo.ProductDTO{},
		&settingsrepo.SettingsDTO{},
	)
	if err != nil {
		return err
	}

	// Re-applying the constraints keeps the referential rules in step with
	// this code on every startup.
	for _, fk := range foreignKeys {
		drop := fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", fk.table, fk.constraint)
		if err := db.Exec(drop).Error; err != nil {
			return err
		}

		add := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", fk.table, fk.constraint, fk.definition)
		if err := db.Exec(add).Error; err != nil {
			return err
		}
	}

	return nil
}
