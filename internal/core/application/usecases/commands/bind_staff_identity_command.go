package commands

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrBindStaffIdentityCommandIsNotConstructed is returned when the command
// was not created via NewBindStaffIdentityCommand.
var ErrBindStaffIdentityCommandIsNotConstructed = errors.New(
	"BindStaffIdentityCommand must be created via NewBindStaffIdentityCommand constructor",
)

// BindStaffIdentityCommand logs a staff member in: looks the employee up
// by phone and binds the chat identity they are writing from.
type BindStaffIdentityCommand struct {
	phone  string
	chatID int64

	guard guard.ConstructorGuard
}

// NewBindStaffIdentityCommand creates a validated login request.
func NewBindStaffIdentityCommand(phone string, chatID int64) (BindStaffIdentityCommand, error) {
	if phone == "" {
		return BindStaffIdentityCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if chatID == 0 {
		return BindStaffIdentityCommand{}, errs.NewValueIsInvalidError("chatID")
	}

	return BindStaffIdentityCommand{
		phone:  phone,
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *BindStaffIdentityCommand) Validate() error {
	return c.guard.Validate(ErrBindStaffIdentityCommandIsNotConstructed)
}

// Phone returns the login key.
func (c *BindStaffIdentityCommand) Phone() string {
	return c.phone
}

// ChatID returns the chat identity to bind.
func (c *BindStaffIdentityCommand) ChatID() int64 {
	return c.chatID
}
