package commands

import (
	"errors"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

var ErrRevertTaskCommandIsNotConstructed = errors.New(
	"RevertTaskCommand must be created via NewRevertTaskCommand constructor",
)

// RevertTaskCommand represents an operator correction: move a task one
// column backward, reversing the inventory transition that brought it
// forward. Reverting from ToCase returns the task to ToFill; reverting from
// Done removes the completed record and recreates the task in ToCase.
type RevertTaskCommand struct { //nolint:recvcheck //using for validation
	taskID     kernel.UUID
	code       sku.Code
	quantity   int
	fromColumn task.Column

	guard guard.ConstructorGuard
}

// NewRevertTaskCommand creates a command to revert a task out of the given
// column. The column must be ToCase or Done; nothing precedes ToFill.
func NewRevertTaskCommand(
	taskID kernel.UUID,
	code sku.Code,
	quantity int,
	fromColumn task.Column,
) (RevertTaskCommand, error) {
	command := RevertTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTaskID(taskID),
		command.setCode(code),
		command.setQuantity(quantity),
		command.setFromColumn(fromColumn),
	); err != nil {
		return RevertTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRevertTaskCommandIsNotConstructed if validation fails.
func (c RevertTaskCommand) Validate() error {
	return c.guard.Validate(ErrRevertTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to revert.
func (c RevertTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Code returns the SKU code the client saw on the task.
func (c RevertTaskCommand) Code() sku.Code {
	return c.code
}

// Quantity returns the quantity the client saw on the task.
func (c RevertTaskCommand) Quantity() int {
	return c.quantity
}

// FromColumn returns the column the client is reverting the task out of.
func (c RevertTaskCommand) FromColumn() task.Column {
	return c.fromColumn
}

func (c *RevertTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *RevertTaskCommand) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *RevertTaskCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *RevertTaskCommand) setFromColumn(fromColumn task.Column) error {
	if fromColumn != task.ColumnToCase && fromColumn != task.ColumnDone {
		return errs.NewValueIsInvalidError("fromColumn")
	}

	c.fromColumn = fromColumn
	return nil
}
