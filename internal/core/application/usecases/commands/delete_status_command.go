package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrDeleteStatusCommandIsNotConstructed is returned when the command was
// not created via NewDeleteStatusCommand.
var ErrDeleteStatusCommandIsNotConstructed = errors.New(
	"DeleteStatusCommand must be created via NewDeleteStatusCommand constructor",
)

// DeleteStatusCommand removes a status configuration row. Deletion is
// blocked while any order or audit entry still references the status.
type DeleteStatusCommand struct {
	statusID int64

	guard guard.ConstructorGuard
}

// NewDeleteStatusCommand creates a validated deletion request.
func NewDeleteStatusCommand(statusID int64) (DeleteStatusCommand, error) {
	if statusID <= 0 {
		return DeleteStatusCommand{}, errs.NewValueIsInvalidError("statusID")
	}

	return DeleteStatusCommand{
		statusID: statusID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *DeleteStatusCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusCommandIsNotConstructed)
}

// StatusID returns the status to delete.
func (c *DeleteStatusCommand) StatusID() int64 {
	return c.statusID
}
