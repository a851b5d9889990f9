package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrLogoutStaffCommandIsNotConstructed is returned when the command was
// not created via NewLogoutStaffCommand.
var ErrLogoutStaffCommandIsNotConstructed = errors.New(
	"LogoutStaffCommand must be created via NewLogoutStaffCommand constructor",
)

// LogoutStaffCommand logs a staff member out, clearing the chat identity
// binding and all identity-linked transient state.
type LogoutStaffCommand struct {
	chatID int64

	guard guard.ConstructorGuard
}

// NewLogoutStaffCommand creates a validated logout request.
func NewLogoutStaffCommand(chatID int64) (LogoutStaffCommand, error) {
	if chatID == 0 {
		return LogoutStaffCommand{}, errs.NewValueIsInvalidError("chatID")
	}

	return LogoutStaffCommand{
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *LogoutStaffCommand) Validate() error {
	return c.guard.Validate(ErrLogoutStaffCommandIsNotConstructed)
}

// ChatID returns the chat identity to unbind.
func (c *LogoutStaffCommand) ChatID() int64 {
	return c.chatID
}
