// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. The order aggregate spans two tables: the orders
// row itself and the append-only order_status_history rows it owns.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The composition is stored in its serialized text form;
// courier and completed-by references are nullable foreign keys to
// employees.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	OriginChatID   *int64
	OriginUsername *string
	Composition    string
	TotalPrice     int64
	CustomerName   string
	CustomerPhone  string
	Address        string
	IsDelivery     bool
	RequestedTime  string
	StatusID       int64 `gorm:"index"`
	CourierID      *int64 `gorm:"index"`
	CompletedByID  *int64
	CreatedAt      time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO represents one audit trail row. Rows are insert-only; the
// owning order's deletion cascades to them.
type HistoryDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	OrderID    int64 `gorm:"index"`
	StatusID   int64
	Actor      string
	OccurredAt time.Time
}

// TableName specifies the database table name for audit trail entries.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database
// representation. History rows are mapped separately because their
// lifecycle differs: the order row is upserted, history rows only appended.
func fromDomain(aggregate *order.Order) OrderDTO {
	origin := aggregate.Origin()
	customer := aggregate.Customer()

	return OrderDTO{
		ID:             aggregate.ID(),
		OriginChatID:   origin.ChatID,
		OriginUsername: origin.Username,
		Composition:    aggregate.Composition().String(),
		TotalPrice:     aggregate.TotalPrice(),
		CustomerName:   customer.Name,
		CustomerPhone:  customer.Phone,
		Address:        customer.Address,
		IsDelivery:     aggregate.IsDelivery(),
		RequestedTime:  aggregate.RequestedTime(),
		StatusID:       aggregate.StatusID(),
		CourierID:      aggregate.CourierID(),
		CompletedByID:  aggregate.CompletedByID(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// pendingHistory extracts the aggregate's not-yet-persisted audit entries
// as insertable rows.
func pendingHistory(aggregate *order.Order) []HistoryDTO {
	var dtos []HistoryDTO
	for _, entry := range aggregate.History() {
		if entry.ID() != 0 {
			continue
		}
		dtos = append(dtos, HistoryDTO{
			OrderID:    entry.OrderID(),
			StatusID:   entry.StatusID(),
			Actor:      entry.Actor(),
			OccurredAt: entry.OccurredAt(),
		})
	}
	return dtos
}

// toDomain converts database rows back to an order domain aggregate,
// reconstructing the audit trail alongside.
func toDomain(dto OrderDTO, historyDTOs []HistoryDTO) (*order.Order, error) {
	history := make([]order.HistoryEntry, 0, len(historyDTOs))
	for _, h := range historyDTOs {
		entry, err := order.RestoreHistoryEntry(h.ID, h.OrderID, h.StatusID, h.Actor, h.OccurredAt)
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(
		dto.ID,
		order.Origin{ChatID: dto.OriginChatID, Username: dto.OriginUsername},
		order.Customer{Name: dto.CustomerName, Phone: dto.CustomerPhone, Address: dto.Address},
		order.ParseComposition(dto.Composition),
		dto.TotalPrice,
		dto.IsDelivery,
		dto.RequestedTime,
		dto.StatusID,
		dto.CourierID,
		dto.CompletedByID,
		dto.CreatedAt,
		history,
	)
}
