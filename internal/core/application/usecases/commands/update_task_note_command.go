package commands

import (
	"errors"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/pkg/guard"
)

var ErrUpdateTaskNoteCommandIsNotConstructed = errors.New(
	"UpdateTaskNoteCommand must be created via NewUpdateTaskNoteCommand constructor",
)

// UpdateTaskNoteCommand represents a request to replace the free-form
// operator note on an active task. An empty text clears the note.
type UpdateTaskNoteCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	text   string

	guard guard.ConstructorGuard
}

// NewUpdateTaskNoteCommand creates a command to set a task's note.
// Length limits are enforced by the aggregate when the note is applied.
func NewUpdateTaskNoteCommand(taskID kernel.UUID, text string) (UpdateTaskNoteCommand, error) {
	command := UpdateTaskNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTaskID(taskID); err != nil {
		return UpdateTaskNoteCommand{}, err
	}
	command.text = text

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateTaskNoteCommandIsNotConstructed if validation fails.
func (c UpdateTaskNoteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskNoteCommandIsNotConstructed)
}

// TaskID returns the identifier of the task to annotate.
func (c UpdateTaskNoteCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Text returns the replacement note text.
func (c UpdateTaskNoteCommand) Text() string {
	return c.text
}

func (c *UpdateTaskNoteCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}
