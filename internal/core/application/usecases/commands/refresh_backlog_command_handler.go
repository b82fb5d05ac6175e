package commands

import (
	"context"
	"time"

	"packline/internal/core/domain/model/task"
	"packline/internal/core/domain/services"
)

// RefreshBacklogCommandHandler runs one backlog generation pass in a single
// transaction: read open orders and current state, plan missing tasks,
// persist them, and refresh the advisory blocking flags of the whole board.
//
// The dashboard never writes; this handler is the only producer of tasks and
// persisted blocking statuses.
type RefreshBacklogCommandHandler struct {
	uowFactory PlannerUoWFactory
	aggregator services.DemandAggregator
	planner    services.BacklogPlanner
	evaluator  services.BlockingEvaluator
}

// NewRefreshBacklogCommandHandler creates a handler for backlog refreshes.
// The planner carries the configured backfill buffer.
func NewRefreshBacklogCommandHandler(
	uowFactory PlannerUoWFactory,
	planner services.BacklogPlanner,
) RefreshBacklogCommandHandler {
	return RefreshBacklogCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewDemandAggregator(),
		planner:    planner,
		evaluator:  services.NewBlockingEvaluator(),
	}
}

// Handle processes the refresh command.
//
// Workflow:
//   - read open orders, inventory levels, and the open backlog from one
//     transaction
//   - aggregate demand and plan the uncovered remainder into new tasks
//   - evaluate blocking across existing and new tasks
//   - persist new tasks and any status changes, then commit
func (h *RefreshBacklogCommandHandler) Handle(ctx context.Context, cmd RefreshBacklogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderSource().GetOpenOrders(ctx)
	if err != nil {
		return err
	}

	demand, err := h.aggregator.Aggregate(orders, now)
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	levels, err := inventoryRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	taskRepo := uow.TaskRepository()
	open, err := taskRepo.GetAllOpen(ctx)
	if err != nil {
		return err
	}

	planned, err := h.planner.Plan(demand, levels, open, now)
	if err != nil {
		return err
	}

	// Statuses before evaluation, so only actual changes are rewritten.
	previous := make(map[string]task.Status, len(open))
	for _, openTask := range open {
		previous[openTask.ID().String()] = openTask.Status()
	}

	board := make([]*task.Task, 0, len(open)+len(planned))
	board = append(board, open...)
	board = append(board, planned...)

	if err = h.evaluator.Evaluate(board, levels); err != nil {
		return err
	}

	for _, newTask := range planned {
		if err = taskRepo.Add(ctx, newTask); err != nil {
			return err
		}
	}

	for _, openTask := range open {
		if previous[openTask.ID().String()] != openTask.Status() {
			if err = taskRepo.Update(ctx, openTask); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
