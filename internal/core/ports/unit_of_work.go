package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new read-write database transaction.
	Begin(ctx context.Context) error

	// BeginReadOnly starts a read-only transaction at snapshot isolation,
	// used by the dashboard query to observe one consistent point-in-time
	// view while mutations proceed concurrently.
	BeginReadOnly(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after Begin; a rollback after commit is a no-op.
	Rollback(ctx context.Context) error

	// InventoryRepository returns an InventoryRepository bound to the current transaction.
	InventoryRepository() InventoryRepository

	// TaskRepository returns a TaskRepository bound to the current transaction.
	TaskRepository() TaskRepository

	// IntakeRepository returns an IntakeRepository bound to the current transaction.
	IntakeRepository() IntakeRepository

	// SKURepository returns a SKURepository bound to the current transaction.
	SKURepository() SKURepository

	// OrderSource returns the upstream order reader bound to the current transaction,
	// so demand is derived from the same snapshot the repositories read.
	OrderSource() OrderSource
}
