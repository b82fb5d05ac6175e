// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"packline/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the full presentation snapshot: inventory with
// demand-derived flags, the active board, the completed log, and recent
// intakes. The snapshot is side-effect free; calling it twice with no
// intervening mutation returns identical results.
//
// Example:
//
//	query := NewGetDashboardQuery()
//	handler := NewGetDashboardQueryHandler(uowFactory)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the dashboard snapshot.
// This is a parameterless query covering the whole pipeline state.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// InventoryItem is the per-SKU read model: the three stage counters joined
// with the SKU catalog entry and the demand derived from open orders.
//
// Gap is the cased quantity still missing against total demand. LowStock
// flags a SKU whose entire pipeline stock, all three stages combined, no
// longer covers total demand.
type InventoryItem struct {
	Code   string
	Name   string
	Family string

	Staged int
	Filled int
	Cased  int

	DemandTotal    int
	DemandUrgent   int
	DemandTomorrow int

	Gap      int
	LowStock bool
}

// SourceItem is one demand source behind a task.
type SourceItem struct {
	Type         string
	Quantity     int
	CustomerName string
}

// TaskItem is the read model of one active board task. Status carries the
// advisory blocking flag recomputed against the snapshot's inventory, not
// the persisted value.
type TaskItem struct {
	ID       string
	Code     string
	Quantity int
	Column   string
	Status   string
	Tier     string
	Sources  []SourceItem
	Note     string

	CreatedAt time.Time
}

// CompletedTaskItem is the read model of one completed-task record.
type CompletedTaskItem struct {
	ID       string
	Code     string
	Quantity int
	Tier     string
	Sources  []SourceItem
	Note     string

	CreatedAt   time.Time
	CompletedAt time.Time
}

// IntakeItem is one container-intake audit record.
type IntakeItem struct {
	Code       string
	Size       int
	OccurredAt time.Time
}

// Snapshot is the consistent point-in-time view the dashboard renders.
// Inventory is sorted by SKU code; TasksByColumn keys are column wire names
// with tasks in tier then creation order; CompletedTasks and RecentIntakes
// are most recent first. Notes indexes the non-empty notes of every task,
// active and completed, by task id.
type Snapshot struct {
	Inventory      []InventoryItem
	TasksByColumn  map[string][]TaskItem
	CompletedTasks []CompletedTaskItem
	RecentIntakes  []IntakeItem
	Notes          map[string]string

	GeneratedAt time.Time
}
