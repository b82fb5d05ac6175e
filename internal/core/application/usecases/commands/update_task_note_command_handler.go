package commands

import (
	"context"
)

// UpdateTaskNoteCommandHandler replaces the operator note on an active task.
type UpdateTaskNoteCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewUpdateTaskNoteCommandHandler creates a handler for task note updates.
// Requires a TaskUoWFactory for transactional persistence.
func NewUpdateTaskNoteCommandHandler(uowFactory TaskUoWFactory) UpdateTaskNoteCommandHandler {
	return UpdateTaskNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note update. Returns an ObjectNotFoundError if the
// task is no longer on the active board.
func (h *UpdateTaskNoteCommandHandler) Handle(ctx context.Context, cmd UpdateTaskNoteCommand) error {
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

	if err = aggregate.SetNote(cmd.Text()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
