// Package statusrepo provides data transfer objects and mapping functions
// for order status configuration rows.
package statusrepo

import (
	"orderdesk/internal/core/domain/model/status"
)

// StatusDTO represents the database structure for order status rows.
type StatusDTO struct {
	ID                int64 `gorm:"primaryKey;autoIncrement"`
	Name              string
	NotifyCustomer    bool
	VisibleToOperator bool
	VisibleToCourier  bool
	IsCompleting      bool
	IsCancelling      bool
}

// TableName specifies the database table name for status entities.
func (StatusDTO) TableName() string {
	return "order_statuses"
}

// toDomain converts a database DTO to a status domain entity.
func toDomain(dto StatusDTO) (*status.Status, error) {
	return status.RestoreStatus(dto.ID, dto.Name, status.Flags{
		NotifyCustomer:    dto.NotifyCustomer,
		VisibleToOperator: dto.VisibleToOperator,
		VisibleToCourier:  dto.VisibleToCourier,
		IsCompleting:      dto.IsCompleting,
		IsCancelling:      dto.IsCancelling,
	})
}
