package queries

import (
	"context"
	"sort"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/core/domain/services"
)

// GetDashboardQueryHandler assembles the dashboard snapshot from one
// snapshot-isolated read-only transaction. Demand and advisory blocking are
// recomputed in memory from what the transaction saw; nothing is persisted,
// so the persisted blocking flags are untouched until the next backlog
// refresh.
type GetDashboardQueryHandler struct {
	uowFactory DashboardUoWFactory
	aggregator services.DemandAggregator
	evaluator  services.BlockingEvaluator
}

// NewGetDashboardQueryHandler creates a handler for dashboard snapshots.
// Requires a DashboardUoWFactory for read-only transactional access.
func NewGetDashboardQueryHandler(uowFactory DashboardUoWFactory) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		uowFactory: uowFactory,
		aggregator: services.NewDemandAggregator(),
		evaluator:  services.NewBlockingEvaluator(),
	}
}

// Handle executes the query and returns the assembled snapshot.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Snapshot, error) {
	if err := query.Validate(); err != nil {
		return Snapshot{}, err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.BeginReadOnly(ctx); err != nil {
		return Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderSource().GetOpenOrders(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	levels, err := uow.InventoryRepository().GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	taskRepo := uow.TaskRepository()
	open, err := taskRepo.GetAllOpen(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	completed, err := taskRepo.GetAllCompleted(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	intakes, err := uow.IntakeRepository().GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	catalog, err := uow.SKURepository().GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	demand, err := h.aggregator.Aggregate(orders, now)
	if err != nil {
		return Snapshot{}, err
	}

	// Advisory only. The aggregates are discarded with the transaction.
	if err = h.evaluator.Evaluate(open, levels); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Inventory:      assembleInventory(catalog, levels, demand),
		TasksByColumn:  assembleBoard(open),
		CompletedTasks: assembleCompleted(completed),
		RecentIntakes:  assembleIntakes(intakes),
		Notes:          assembleNotes(open, completed),
		GeneratedAt:    now,
	}, nil
}

// assembleInventory joins the SKU catalog, the persisted levels, and the
// derived demand over the union of their SKU codes, code ascending. SKUs
// never stocked render with zero counters; stocked SKUs missing from the
// catalog render without a display name.
func assembleInventory(
	catalog []*sku.SKU,
	levels []*inventory.Level,
	demand []services.DemandEntry,
) []InventoryItem {
	catalogIndex := make(map[string]*sku.SKU, len(catalog))
	for _, entry := range catalog {
		catalogIndex[entry.Code().String()] = entry
	}

	levelIndex := make(map[string]*inventory.Level, len(levels))
	for _, level := range levels {
		levelIndex[level.Code().String()] = level
	}

	demandIndex := make(map[string]services.DemandEntry, len(demand))
	for _, entry := range demand {
		demandIndex[entry.Code.String()] = entry
	}

	codes := make([]string, 0, len(catalogIndex))
	seen := make(map[string]bool, len(catalogIndex))
	for code := range catalogIndex {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for code := range levelIndex {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for code := range demandIndex {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	items := make([]InventoryItem, 0, len(codes))
	for _, code := range codes {
		item := InventoryItem{Code: code}

		if entry, ok := catalogIndex[code]; ok {
			item.Name = entry.Name()
			item.Family = entry.Family()
		}

		if level, ok := levelIndex[code]; ok {
			item.Staged = level.Staged()
			item.Filled = level.Filled()
			item.Cased = level.Cased()
		}

		if entry, ok := demandIndex[code]; ok {
			item.DemandTotal = entry.Total
			item.DemandUrgent = entry.Urgent
			item.DemandTomorrow = entry.Tomorrow
		}

		item.Gap = max(0, item.DemandTotal-item.Cased)
		item.LowStock = item.Staged+item.Filled+item.Cased < item.DemandTotal

		items = append(items, item)
	}

	return items
}

// assembleBoard groups the open tasks by column wire name. GetAllOpen
// already yields tier then creation order; grouping preserves it.
func assembleBoard(open []*task.Task) map[string][]TaskItem {
	board := map[string][]TaskItem{
		task.ColumnToFill.String(): {},
		task.ColumnToCase.String(): {},
	}

	for _, aggregate := range open {
		column := aggregate.Column().String()
		board[column] = append(board[column], TaskItem{
			ID:        aggregate.ID().String(),
			Code:      aggregate.Code().String(),
			Quantity:  aggregate.Quantity(),
			Column:    column,
			Status:    aggregate.Status().String(),
			Tier:      aggregate.Tier().String(),
			Sources:   assembleSources(aggregate.Sources()),
			Note:      aggregate.Note(),
			CreatedAt: aggregate.CreatedAt(),
		})
	}

	return board
}

func assembleCompleted(completed []*task.CompletedTask) []CompletedTaskItem {
	items := make([]CompletedTaskItem, 0, len(completed))
	for _, record := range completed {
		items = append(items, CompletedTaskItem{
			ID:          record.ID().String(),
			Code:        record.Code().String(),
			Quantity:    record.Quantity(),
			Tier:        record.Tier().String(),
			Sources:     assembleSources(record.Sources()),
			Note:        record.Note(),
			CreatedAt:   record.CreatedAt(),
			CompletedAt: record.CompletedAt(),
		})
	}

	return items
}

func assembleIntakes(intakes []*inventory.Intake) []IntakeItem {
	items := make([]IntakeItem, 0, len(intakes))
	for _, record := range intakes {
		items = append(items, IntakeItem{
			Code:       record.Code().String(),
			Size:       record.Size().Units(),
			OccurredAt: record.OccurredAt(),
		})
	}

	return items
}

func assembleNotes(open []*task.Task, completed []*task.CompletedTask) map[string]string {
	notes := make(map[string]string)
	for _, aggregate := range open {
		if aggregate.Note() != "" {
			notes[aggregate.ID().String()] = aggregate.Note()
		}
	}
	for _, record := range completed {
		if record.Note() != "" {
			notes[record.ID().String()] = record.Note()
		}
	}

	return notes
}

func assembleSources(sources []task.Source) []SourceItem {
	items := make([]SourceItem, 0, len(sources))
	for _, source := range sources {
		items = append(items, SourceItem{
			Type:         source.Type().String(),
			Quantity:     source.Quantity(),
			CustomerName: source.CustomerName(),
		})
	}

	return items
}
