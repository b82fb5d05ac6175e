package queries

import (
	"context"

	"packline/internal/core/ports"
)

// DashboardUoWFactory creates a read-only unit of work per dashboard request.
type DashboardUoWFactory interface {
	Create() DashboardUoW
}

// DashboardUoW is the read surface of the dashboard: one snapshot-isolated
// transaction over everything the snapshot assembles. It never writes; the
// transaction ends with a rollback.
type DashboardUoW interface {
	// BeginReadOnly starts a read-only transaction at snapshot isolation.
	BeginReadOnly(ctx context.Context) error

	// Rollback ends the read transaction.
	Rollback(ctx context.Context) error

	InventoryRepository() ports.InventoryRepository
	TaskRepository() ports.TaskRepository
	IntakeRepository() ports.IntakeRepository
	SKURepository() ports.SKURepository
	OrderSource() ports.OrderSource
}
