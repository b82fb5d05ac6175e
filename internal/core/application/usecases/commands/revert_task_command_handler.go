package commands

import (
	"context"
	"fmt"

	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"
)

// RevertTaskCommandHandler moves a task one column backward, applying the
// exact reversal of the advance that brought it forward. Every revert
// re-validates against current inventory at call time; it never trusts a
// previously cached state.
type RevertTaskCommandHandler struct {
	uowFactory SchedulerUoWFactory
}

// NewRevertTaskCommandHandler creates a handler for task revert operations.
// Requires a SchedulerUoWFactory for transactional persistence.
func NewRevertTaskCommandHandler(uowFactory SchedulerUoWFactory) RevertTaskCommandHandler {
	return RevertTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the revert command.
//
// Reverting from ToCase moves the task back to ToFill and returns its
// quantity from filled to staged. Reverting from Done removes the
// completed-task record, recreates the active task in ToCase with its
// original identity, and returns the quantity from cased to filled.
// On insufficient inventory nothing is persisted.
func (h *RevertTaskCommandHandler) Handle(ctx context.Context, cmd RevertTaskCommand) error {
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

	if cmd.FromColumn() == task.ColumnDone {
		if err := h.revertCompleted(ctx, uow, cmd); err != nil {
			return err
		}
	} else {
		if err := h.revertActive(ctx, uow, cmd); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *RevertTaskCommandHandler) revertActive(ctx context.Context, uow SchedulerUoW, cmd RevertTaskCommand) error {
	taskRepo := uow.TaskRepository()
	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = verifyBoardState(aggregate, cmd.Code().String(), cmd.Quantity(), cmd.FromColumn()); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	level, err := inventoryRepo.GetForUpdate(ctx, aggregate.Code())
	if err != nil {
		return err
	}

	delta, err := aggregate.RevertDelta()
	if err != nil {
		return err
	}

	if err = level.ApplyDelta(delta); err != nil {
		return err
	}

	if err = inventoryRepo.Upsert(ctx, level); err != nil {
		return err
	}

	if err = aggregate.Revert(); err != nil {
		return err
	}

	return taskRepo.Update(ctx, aggregate)
}

func (h *RevertTaskCommandHandler) revertCompleted(ctx context.Context, uow SchedulerUoW, cmd RevertTaskCommand) error {
	taskRepo := uow.TaskRepository()
	completed, err := taskRepo.GetCompleted(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if completed.Code().String() != cmd.Code().String() || completed.Quantity() != cmd.Quantity() {
		return errs.NewConflictErrorWithCause(
			"task",
			fmt.Errorf("completed task %s is %s %d, request described %s %d",
				completed.ID().String(),
				completed.Code().String(), completed.Quantity(),
				cmd.Code().String(), cmd.Quantity(),
			),
		)
	}

	inventoryRepo := uow.InventoryRepository()
	level, err := inventoryRepo.GetForUpdate(ctx, completed.Code())
	if err != nil {
		return err
	}

	delta, err := completed.RevertDelta()
	if err != nil {
		return err
	}

	if err = level.ApplyDelta(delta); err != nil {
		return err
	}

	if err = inventoryRepo.Upsert(ctx, level); err != nil {
		return err
	}

	recreated, err := completed.Revert()
	if err != nil {
		return err
	}

	if err = taskRepo.RemoveCompleted(ctx, completed.ID()); err != nil {
		return err
	}

	return taskRepo.Add(ctx, recreated)
}
