package commands

import "context"

// DeleteStatusCommandHandler removes a status configuration row, relying
// on store-level referential integrity to block deletion of a status that
// live data still points at.
type DeleteStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewDeleteStatusCommandHandler creates a handler for status deletion.
func NewDeleteStatusCommandHandler(uowFactory StatusUoWFactory) DeleteStatusCommandHandler {
	return DeleteStatusCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the status. Returns errs.ObjectNotFoundError when the
// status does not exist and errs.IntegrityConflictError when orders or
// audit entries still reference it.
func (h *DeleteStatusCommandHandler) Handle(ctx context.Context, cmd DeleteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StatusRepository().Delete(ctx, cmd.StatusID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
