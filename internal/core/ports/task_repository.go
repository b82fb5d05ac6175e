package ports

import (
	"context"

	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for the task backlog and
// the completed-task log. Active tasks and completed records live in separate
// tables but form one bounded concept: completing moves a task from the
// active set into the log, reverting moves it back.
type TaskRepository interface {
	// Add persists a new active task with its sources.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing active task.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves an active task by id.
	// Returns an ObjectNotFoundError if no active task has the id.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetAllOpen retrieves every active task in presentation order:
	// priority tier, then creation time, then id.
	GetAllOpen(ctx context.Context) ([]*task.Task, error)

	// Remove deletes an active task, used when it completes.
	Remove(ctx context.Context, id kernel.UUID) error

	// AddCompleted appends a record to the completed-task log.
	AddCompleted(ctx context.Context, record *task.CompletedTask) error

	// GetCompleted retrieves a completed-task record by id.
	// Returns an ObjectNotFoundError if no record has the id.
	GetCompleted(ctx context.Context, id kernel.UUID) (*task.CompletedTask, error)

	// GetAllCompleted retrieves the completed-task log, most recent first.
	GetAllCompleted(ctx context.Context) ([]*task.CompletedTask, error)

	// RemoveCompleted deletes a record from the log, used by the explicit
	// done-to-case revert.
	RemoveCompleted(ctx context.Context, id kernel.UUID) error
}
