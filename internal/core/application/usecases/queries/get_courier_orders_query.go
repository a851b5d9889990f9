package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves one courier's non-terminal orders: the
// work list shown in the courier chat.
type GetCourierOrdersQuery struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a validated courier work list query.
func NewGetCourierOrdersQuery(courierID int64) (GetCourierOrdersQuery, error) {
	if courierID <= 0 {
		return GetCourierOrdersQuery{}, errs.NewValueIsInvalidError("courierID")
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are listed.
func (q GetCourierOrdersQuery) CourierID() int64 {
	return q.courierID
}

// GetCourierOrdersQueryResponse is one row of a courier's work list.
type GetCourierOrdersQueryResponse struct {
	ID            int64
	Composition   string
	TotalPrice    int64
	CustomerName  string
	CustomerPhone string
	Address       string
	IsDelivery    bool
	RequestedTime string
	StatusName    string
	CreatedAt     time.Time
}
