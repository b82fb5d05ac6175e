package commands

import (
	"errors"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/sku"
	"packline/internal/pkg/guard"
)

var ErrAddContainerCommandIsNotConstructed = errors.New(
	"AddContainerCommand must be created via NewAddContainerCommand constructor",
)

// AddContainerCommand represents an operator booking one container of stock
// into the staged stage. Only the enumerated container sizes are accepted;
// anything else is rejected before any state is touched.
//
// Example:
//
//	cmd, err := NewAddContainerCommand(code, inventory.ContainerSize4)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAddContainerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AddContainerCommand struct { //nolint:recvcheck //using for validation
	code sku.Code
	size inventory.ContainerSize

	guard guard.ConstructorGuard
}

// NewAddContainerCommand creates a command to book a container against a SKU.
func NewAddContainerCommand(code sku.Code, size inventory.ContainerSize) (AddContainerCommand, error) {
	command := AddContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCode(code),
		command.setSize(size),
	); err != nil {
		return AddContainerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddContainerCommandIsNotConstructed if validation fails.
func (c AddContainerCommand) Validate() error {
	return c.guard.Validate(ErrAddContainerCommandIsNotConstructed)
}

// Code returns the SKU the container is booked against.
func (c AddContainerCommand) Code() sku.Code {
	return c.code
}

// Size returns the enumerated container size.
func (c AddContainerCommand) Size() inventory.ContainerSize {
	return c.size
}

func (c *AddContainerCommand) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *AddContainerCommand) setSize(size inventory.ContainerSize) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
