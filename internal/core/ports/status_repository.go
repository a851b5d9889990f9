package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/status"
)

// StatusRepository is the persistence contract for the status
// configuration rows. Statuses are admin-managed and read-only to the
// workflow itself, except for deletion, which must fail while any order or
// audit entry still references the status.
type StatusRepository interface {
	// Get retrieves a status by identity. Returns errs.ObjectNotFoundError
	// when no such status exists.
	Get(ctx context.Context, id int64) (*status.Status, error)

	// GetInitial retrieves the status new orders start in: the row with
	// the lowest identity.
	GetInitial(ctx context.Context) (*status.Status, error)

	// Delete removes a status. Returns errs.IntegrityConflictError when
	// the status is still referenced by orders or audit entries.
	Delete(ctx context.Context, id int64) error
}
