package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrGetVisibleStatusesQueryIsNotConstructed = errors.New(
	"GetVisibleStatusesQuery must be created via NewGetVisibleStatusesQuery constructor",
)

// StatusAudience selects which visibility flag the status set is filtered
// by. Operators and couriers see different quick-action button sets.
type StatusAudience int

const (
	// OperatorStatuses selects statuses flagged visible-to-operator.
	OperatorStatuses StatusAudience = iota
	// CourierStatuses selects statuses flagged visible-to-courier.
	CourierStatuses
)

// GetVisibleStatusesQuery retrieves the status set one audience may move
// orders into. The rows back the quick-action buttons under order
// messages.
type GetVisibleStatusesQuery struct {
	audience StatusAudience

	guard guard.ConstructorGuard
}

// NewGetVisibleStatusesQuery creates a validated button set query.
func NewGetVisibleStatusesQuery(audience StatusAudience) GetVisibleStatusesQuery {
	return GetVisibleStatusesQuery{
		audience: audience,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetVisibleStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleStatusesQueryIsNotConstructed)
}

// Audience returns the requested visibility filter.
func (q GetVisibleStatusesQuery) Audience() StatusAudience {
	return q.audience
}

// GetVisibleStatusesQueryResponse is one selectable status.
type GetVisibleStatusesQueryResponse struct {
	ID   int64
	Name string
}
