// Package commands contains business operations that modify pipeline state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"packline/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// IntakeRepoFactory provides access to the intake audit log within a transaction.
	IntakeRepoFactory interface {
		IntakeRepository() ports.IntakeRepository
	}

	// OrderSourceFactory provides access to the upstream order reader within a transaction.
	OrderSourceFactory interface {
		OrderSource() ports.OrderSource
	}

	// InventoryUoW manages transactions for inventory-only corrections.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// IntakeUoW manages transactions for container intake: the level
	// mutation and the audit append commit together.
	IntakeUoW interface {
		TxManager
		InventoryRepoFactory
		IntakeRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// TaskUoW manages transactions for task-only operations.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// SchedulerUoW manages transactions for task transitions, which move
	// both the task and its SKU's inventory level.
	SchedulerUoW interface {
		TxManager
		InventoryRepoFactory
		TaskRepoFactory
	}

	// SchedulerUoWFactory creates new scheduler unit of work instances.
	SchedulerUoWFactory interface {
		Create() SchedulerUoW
	}

	// PlannerUoW manages transactions for the backlog refresh, which reads
	// orders and inventory and writes the task backlog.
	PlannerUoW interface {
		TxManager
		InventoryRepoFactory
		TaskRepoFactory
		OrderSourceFactory
	}

	// PlannerUoWFactory creates new planner unit of work instances.
	PlannerUoWFactory interface {
		Create() PlannerUoW
	}
)
