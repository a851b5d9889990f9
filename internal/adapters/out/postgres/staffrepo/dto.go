// Package staffrepo provides data transfer objects and mapping functions
// for employee persistence. Roles are admin-managed lookup rows loaded
// alongside the employee; the repository never writes them.
package staffrepo

import (
	"orderdesk/internal/core/domain/model/staff"
)

// EmployeeDTO represents the database structure for persisting employees.
// The chat binding is nullable and unique: at most one employee per chat
// identity, cleared at logout.
type EmployeeDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	ChatID         *int64 `gorm:"uniqueIndex"`
	FullName       string
	Phone          string `gorm:"index"`
	RoleID         int64
	Role           RoleDTO `gorm:"foreignKey:RoleID"`
	OnShift        bool
	CurrentOrderID *int64
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// RoleDTO represents one staff role with its capability flags.
type RoleDTO struct {
	ID              int64 `gorm:"primaryKey;autoIncrement"`
	Name            string
	CanManageOrders bool
	CanBeAssigned   bool
}

// TableName specifies the database table name for role entities.
func (RoleDTO) TableName() string {
	return "roles"
}

// fromDomain converts an employee domain aggregate to its database
// representation. The role is mapped by reference only.
func fromDomain(aggregate *staff.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:             aggregate.ID(),
		ChatID:         aggregate.ChatID(),
		FullName:       aggregate.FullName(),
		Phone:          aggregate.Phone(),
		RoleID:         aggregate.Role().ID(),
		OnShift:        aggregate.IsOnShift(),
		CurrentOrderID: aggregate.CurrentOrderID(),
	}
}

// toDomain converts a database DTO, with its preloaded role, back to an
// employee domain aggregate.
func toDomain(dto EmployeeDTO) (*staff.Employee, error) {
	role, err := staff.RestoreRole(dto.Role.ID, dto.Role.Name, dto.Role.CanManageOrders, dto.Role.CanBeAssigned)
	if err != nil {
		return nil, err
	}

	return staff.RestoreEmployee(
		dto.ID,
		dto.ChatID,
		dto.FullName,
		dto.Phone,
		role,
		dto.OnShift,
		dto.CurrentOrderID,
	)
}
