package queries

import (
	"errors"
	"time"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var ErrGetStaleNewOrdersQueryIsNotConstructed = errors.New(
	"GetStaleNewOrdersQuery must be created via NewGetStaleNewOrdersQuery constructor",
)

// GetStaleNewOrdersQuery retrieves orders still sitting in the initial
// status past a cutoff: nobody has picked them up since intake. The
// reminder job re-raises them in the staff channel.
type GetStaleNewOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleNewOrdersQuery creates a validated stale order query.
// Orders created before the cutoff are considered stale.
func NewGetStaleNewOrdersQuery(cutoff time.Time) (GetStaleNewOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStaleNewOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStaleNewOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleNewOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleNewOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness boundary.
func (q GetStaleNewOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStaleNewOrdersQueryResponse is one unattended order.
type GetStaleNewOrdersQueryResponse struct {
	ID           int64
	CustomerName string
	CreatedAt    time.Time
}
