package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"
)

// AdvanceTaskCommandHandler moves a task one column forward and applies the
// inventory delta the transition implies, inside one transaction with the
// SKU's level row locked.
//
// On insufficient inventory nothing moves: the transaction persists only the
// task's blocked flag, and the caller receives the precise error with the
// requested and available quantities.
type AdvanceTaskCommandHandler struct {
	uowFactory SchedulerUoWFactory
}

// NewAdvanceTaskCommandHandler creates a handler for task advance operations.
// Requires a SchedulerUoWFactory for transactional persistence.
func NewAdvanceTaskCommandHandler(uowFactory SchedulerUoWFactory) AdvanceTaskCommandHandler {
	return AdvanceTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command.
//
// Workflow:
//   - load the task and verify it matches what the client saw
//   - lock the SKU's inventory level and apply the transition delta
//   - on success persist the moved task, converting ToCase completions
//     into the completed-task log
//   - on insufficient inventory persist the blocked flag and return the error
func (h *AdvanceTaskCommandHandler) Handle(ctx context.Context, cmd AdvanceTaskCommand) error {
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

	delta, err := aggregate.AdvanceDelta()
	if err != nil {
		return err
	}

	if err = level.ApplyDelta(delta); err != nil {
		var insufficient *errs.InsufficientInventoryError
		if !errors.As(err, &insufficient) {
			return err
		}

		// Keep the rejection but persist the advisory blocked flag.
		if markErr := aggregate.MarkBlocked(); markErr != nil {
			return markErr
		}
		if updateErr := taskRepo.Update(ctx, aggregate); updateErr != nil {
			return updateErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		return err
	}

	if err = inventoryRepo.Upsert(ctx, level); err != nil {
		return err
	}

	if err = aggregate.Advance(); err != nil {
		return err
	}

	if aggregate.IsDone() {
		completed, completeErr := aggregate.Complete(time.Now())
		if completeErr != nil {
			return completeErr
		}

		if err = taskRepo.Remove(ctx, aggregate.ID()); err != nil {
			return err
		}
		if err = taskRepo.AddCompleted(ctx, completed); err != nil {
			return err
		}
	} else {
		if err = taskRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// verifyBoardState rejects a transition request built from a stale board:
// the task must still carry the SKU, quantity, and column the client saw.
func verifyBoardState(aggregate *task.Task, code string, quantity int, fromColumn task.Column) error {
	if aggregate.Code().String() != code || aggregate.Quantity() != quantity || aggregate.Column() != fromColumn {
		return errs.NewConflictErrorWithCause(
			"task",
			fmt.Errorf("task %s is %s %d in %s, request described %s %d in %s",
				aggregate.ID().String(),
				aggregate.Code().String(), aggregate.Quantity(), aggregate.Column().String(),
				code, quantity, fromColumn.String(),
			),
		)
	}
	return nil
}
