package commands

import (
	"errors"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"
	"packline/internal/pkg/guard"
)

var (
	ErrAdvanceTaskCommandIsNotConstructed = errors.New(
		"AdvanceTaskCommand must be created via NewAdvanceTaskCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AdvanceTaskCommand represents a request to move a task one column forward
// on the board. The SKU, quantity, and source column the client saw travel
// with the request, so a stale board is detected instead of silently acted on.
//
// Example:
//
//	cmd, err := NewAdvanceTaskCommand(taskID, code, 6, task.ColumnToFill)
//	if err != nil {
//	    return fmt.Errorf("invalid advance request: %w", err)
//	}
//
//	handler := NewAdvanceTaskCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // insufficient inventory, unknown task, or stale board
//	    return err
//	}
type AdvanceTaskCommand struct { //nolint:recvcheck //using for validation
	taskID     kernel.UUID
	code       sku.Code
	quantity   int
	fromColumn task.Column

	guard guard.ConstructorGuard
}

// NewAdvanceTaskCommand creates a command to advance a task out of the given
// column. The column must be one the active board shows (ToFill or ToCase).
func NewAdvanceTaskCommand(
	taskID kernel.UUID,
	code sku.Code,
	quantity int,
	fromColumn task.Column,
) (AdvanceTaskCommand, error) {
	command := AdvanceTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTaskID(taskID),
		command.setCode(code),
		command.setQuantity(quantity),
		command.setFromColumn(fromColumn),
	); err != nil {
		return AdvanceTaskCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceTaskCommandIsNotConstructed if validation fails.
func (c AdvanceTaskCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to advance.
func (c AdvanceTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Code returns the SKU code the client saw on the task.
func (c AdvanceTaskCommand) Code() sku.Code {
	return c.code
}

// Quantity returns the quantity the client saw on the task.
func (c AdvanceTaskCommand) Quantity() int {
	return c.quantity
}

// FromColumn returns the column the client is advancing the task out of.
func (c AdvanceTaskCommand) FromColumn() task.Column {
	return c.fromColumn
}

func (c *AdvanceTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *AdvanceTaskCommand) setCode(code sku.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *AdvanceTaskCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AdvanceTaskCommand) setFromColumn(fromColumn task.Column) error {
	if fromColumn != task.ColumnToFill && fromColumn != task.ColumnToCase {
		return errs.NewValueIsInvalidError("fromColumn")
	}

	c.fromColumn = fromColumn
	return nil
}
