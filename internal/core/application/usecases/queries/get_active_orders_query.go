// Package queries contains the read side of the workflow: raw SQL
// projections over the store, shaped for the caller surfaces (operator
// lists, courier lists, audit views, button sets). Queries never go
// through the aggregates and never mutate anything.
package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order whose status is neither
// completing nor cancelling, newest first. This is the operator work list.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates the parameterless active orders query.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the operator work list. The
// courier name is already joined in; empty when no courier is assigned.
type GetActiveOrdersQueryResponse struct {
	ID            int64
	Composition   string
	TotalPrice    int64
	CustomerName  string
	CustomerPhone string
	Address       string
	IsDelivery    bool
	RequestedTime string
	StatusName    string
	CourierName   string
	CreatedAt     time.Time
}
