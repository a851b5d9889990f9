package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrToggleShiftCommandIsNotConstructed is returned when the command was
// not created via NewToggleShiftCommand.
var ErrToggleShiftCommandIsNotConstructed = errors.New(
	"ToggleShiftCommand must be created via NewToggleShiftCommand constructor",
)

// ToggleShiftCommand moves a logged-in employee on or off shift.
type ToggleShiftCommand struct {
	chatID  int64
	onShift bool

	guard guard.ConstructorGuard
}

// NewToggleShiftCommand creates a validated shift change request.
func NewToggleShiftCommand(chatID int64, onShift bool) (ToggleShiftCommand, error) {
	if chatID == 0 {
		return ToggleShiftCommand{}, errs.NewValueIsInvalidError("chatID")
	}

	return ToggleShiftCommand{
		chatID:  chatID,
		onShift: onShift,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *ToggleShiftCommand) Validate() error {
	return c.guard.Validate(ErrToggleShiftCommandIsNotConstructed)
}

// ChatID returns the chat identity of the logged-in employee.
func (c *ToggleShiftCommand) ChatID() int64 {
	return c.chatID
}

// OnShift returns the requested shift state.
func (c *ToggleShiftCommand) OnShift() bool {
	return c.onShift
}
