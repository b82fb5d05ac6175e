package commands

import (
	"errors"

	"packline/internal/pkg/guard"
)

var ErrRefreshBacklogCommandIsNotConstructed = errors.New(
	"RefreshBacklogCommand must be created via NewRefreshBacklogCommand constructor",
)

// RefreshBacklogCommand triggers one backlog generation pass: derive demand
// from open orders, plan the tasks the backlog is missing, and refresh the
// advisory blocking flags. Run periodically and after intake or corrections.
//
// Example:
//
//	cmd := NewRefreshBacklogCommand()
//	handler := NewRefreshBacklogCommandHandler(uowFactory, planner)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("backlog refresh failed: %v", err)
//	}
type RefreshBacklogCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshBacklogCommand creates a command to run one backlog refresh pass.
// This is a parameterless command; the refresh reads everything it needs
// inside its own transaction.
func NewRefreshBacklogCommand() RefreshBacklogCommand {
	return RefreshBacklogCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshBacklogCommandIsNotConstructed if validation fails.
func (c *RefreshBacklogCommand) Validate() error {
	return c.guard.Validate(ErrRefreshBacklogCommandIsNotConstructed)
}
