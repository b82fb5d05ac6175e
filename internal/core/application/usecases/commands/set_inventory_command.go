package commands

import (
	"errors"

	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

var ErrSetInventoryCommandIsNotConstructed = errors.New(
	"SetInventoryCommand must be created via NewSetInventoryCommand constructor",
)

// SetInventoryCommand represents a manual inventory correction: an operator
// replaces all three stage counters of a SKU with physically counted values,
// bypassing the task flow.
type SetInventoryCommand struct { //nolint:recvcheck //using for validation
	code   sku.Code
	staged int
	filled int
	cased  int

	guard guard.ConstructorGuard
}

// NewSetInventoryCommand creates a command to reconcile a SKU's counters.
// All three values must be non-negative.
func NewSetInventoryCommand(code sku.Code, staged, filled, cased int) (SetInventoryCommand, error) {
	command := SetInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCode(code),
		command.setCounter("staged", staged, &command.staged),
		command.setCounter("filled", filled, &command.filled),
		command.setCounter("cased", cased, &command.cased),
	); err != nil {
		return SetInventoryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetInventoryCommandIsNotConstructed if validation fails.
func (c SetInventoryCommand) Validate() error {
	return c.guard.Validate(ErrSetInventoryCommandIsNotConstructed)
}

// Code returns the SKU being corrected.
func (c SetInventoryCommand) Code() sku.Code {
	return c.code
}

// Staged returns the counted staged quantity.
func (c SetInventoryCommand) Staged() int {
	return c.staged
}

// Filled returns the counted filled quantity.
func (c SetInventoryCommand) Filled() int {
	return c.filled
}

// Cased returns the counted cased quantity.
func (c SetInventoryCommand) Cased() int {
	return c.cased
}

func (c *SetInventoryCommand) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *SetInventoryCommand) setCounter(name string, value int, field *int) error {
	if value < 0 {
		return errs.NewValueIsInvalidError(name)
	}

	*field = value
	return nil
}
