package services_test

import (
	"testing"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/task"
	"packline/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlanner(t *testing.T, buffer int) services.BacklogPlanner {
	t.Helper()
	planner, err := services.NewBacklogPlanner(buffer)
	require.NoError(t, err)
	return planner
}

func aggregate(t *testing.T, orders []services.OpenOrder, now time.Time) []services.DemandEntry {
	t.Helper()
	entries, err := services.NewDemandAggregator().Aggregate(orders, now)
	require.NoError(t, err)
	return entries
}

func restoreLevel(t *testing.T, code string, staged, filled, cased int) *inventory.Level {
	t.Helper()
	level, err := inventory.RestoreLevel(mustCode(t, code), staged, filled, cased)
	require.NoError(t, err)
	return level
}

func openBacklogTask(t *testing.T, code string, quantity int, column task.Column) *task.Task {
	t.Helper()
	source, err := task.NewOrderSource(quantity, "Green Leaf")
	require.NoError(t, err)
	created, err := task.NewTask(
		kernel.NewUUID(), mustCode(t, code), quantity, column, task.TierUrgent,
		[]task.Source{source}, time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return created
}

func TestNewBacklogPlanner(t *testing.T) {
	_, err := services.NewBacklogPlanner(-1)
	require.Error(t, err)

	_, err = services.NewBacklogPlanner(0)
	require.NoError(t, err)
}

func TestBacklogPlanner_Plan(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	today := now
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	t.Run("demand in different tiers is never merged", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"VZ": 3}),
			openOrder(t, "Herbal House", tomorrow, map[string]int{"VZ": 5}),
		}, now)

		planned, err := mustPlanner(t, 0).Plan(demand, nil, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 2)
		assert.Equal(t, task.TierUrgent, planned[0].Tier())
		assert.Equal(t, 3, planned[0].Quantity())
		assert.Equal(t, task.TierTomorrow, planned[1].Tier())
		assert.Equal(t, 5, planned[1].Quantity())
		for _, p := range planned {
			assert.Equal(t, task.ColumnToFill, p.Column())
			assert.Equal(t, now, p.CreatedAt())
		}
	})

	t.Run("cased stock covers the most urgent demand first", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"VZ": 3}),
			openOrder(t, "Herbal House", tomorrow, map[string]int{"VZ": 5}),
		}, now)
		levels := []*inventory.Level{restoreLevel(t, "VZ", 0, 0, 4)}

		planned, err := mustPlanner(t, 0).Plan(demand, levels, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, task.TierTomorrow, planned[0].Tier())
		assert.Equal(t, 4, planned[0].Quantity())
	})

	t.Run("open tasks are not generated twice", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"BG": 10}),
		}, now)
		open := []*task.Task{openBacklogTask(t, "BG", 6, task.ColumnToFill)}

		planned, err := mustPlanner(t, 0).Plan(demand, nil, open, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, 4, planned[0].Quantity())
	})

	t.Run("fully covered demand plans nothing", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"BG": 5}),
		}, now)
		levels := []*inventory.Level{restoreLevel(t, "BG", 0, 0, 5)}

		planned, err := mustPlanner(t, 0).Plan(demand, levels, nil, now)

		require.NoError(t, err)
		assert.Empty(t, planned)
	})

	t.Run("free filled stock starts the task in to-case", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"BG": 4}),
		}, now)
		levels := []*inventory.Level{restoreLevel(t, "BG", 0, 4, 0)}

		planned, err := mustPlanner(t, 0).Plan(demand, levels, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, task.ColumnToCase, planned[0].Column())
	})

	t.Run("filled stock reserved by open to-case tasks is not reused", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"BG": 8}),
		}, now)
		levels := []*inventory.Level{restoreLevel(t, "BG", 0, 4, 0)}
		open := []*task.Task{openBacklogTask(t, "BG", 4, task.ColumnToCase)}

		planned, err := mustPlanner(t, 0).Plan(demand, levels, open, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, 4, planned[0].Quantity())
		assert.Equal(t, task.ColumnToFill, planned[0].Column())
	})

	t.Run("sources record the uncovered order contributions", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"BG": 3}),
			openOrder(t, "Herbal House", today, map[string]int{"BG": 5}),
		}, now)
		levels := []*inventory.Level{restoreLevel(t, "BG", 0, 0, 4)}

		planned, err := mustPlanner(t, 0).Plan(demand, levels, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, 4, planned[0].Quantity())

		// Coverage consumed Green Leaf's 3 and one of Herbal House's 5.
		sources := planned[0].Sources()
		require.Len(t, sources, 1)
		assert.Equal(t, task.SourceTypeOrder, sources[0].Type())
		assert.Equal(t, "Herbal House", sources[0].CustomerName())
		assert.Equal(t, 4, sources[0].Quantity())
	})

	t.Run("surplus stock becomes a backfill task up to the buffer", func(t *testing.T) {
		levels := []*inventory.Level{restoreLevel(t, "CR", 10, 0, 0)}

		planned, err := mustPlanner(t, 4).Plan(nil, levels, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, task.TierBackfill, planned[0].Tier())
		assert.Equal(t, 4, planned[0].Quantity())
		assert.Equal(t, task.ColumnToFill, planned[0].Column())

		sources := planned[0].Sources()
		require.Len(t, sources, 1)
		assert.Equal(t, task.SourceTypeBackfill, sources[0].Type())
	})

	t.Run("backfill is capped by available surplus", func(t *testing.T) {
		levels := []*inventory.Level{restoreLevel(t, "CR", 3, 0, 0)}

		planned, err := mustPlanner(t, 12).Plan(nil, levels, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 1)
		assert.Equal(t, 3, planned[0].Quantity())
	})

	t.Run("no backfill once the buffer is reached", func(t *testing.T) {
		levels := []*inventory.Level{restoreLevel(t, "CR", 10, 0, 12)}

		planned, err := mustPlanner(t, 12).Plan(nil, levels, nil, now)

		require.NoError(t, err)
		assert.Empty(t, planned)
	})

	t.Run("zero buffer still advances surplus toward demand", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", nextWeek, map[string]int{"BG": 6}),
		}, now)
		levels := []*inventory.Level{restoreLevel(t, "BG", 9, 0, 0)}
		open := []*task.Task{openBacklogTask(t, "BG", 6, task.ColumnToFill)}

		planned, err := mustPlanner(t, 0).Plan(demand, levels, open, now)

		// Demand is covered by the open task and staged stock beyond it
		// has nothing to build toward.
		require.NoError(t, err)
		assert.Empty(t, planned)
	})

	t.Run("output is ordered by sku then tier", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"VZ": 2, "BG": 3}),
			openOrder(t, "Herbal House", nextWeek, map[string]int{"BG": 4}),
		}, now)

		planned, err := mustPlanner(t, 0).Plan(demand, nil, nil, now)

		require.NoError(t, err)
		require.Len(t, planned, 3)
		assert.Equal(t, "BG", planned[0].Code().String())
		assert.Equal(t, task.TierUrgent, planned[0].Tier())
		assert.Equal(t, "BG", planned[1].Code().String())
		assert.Equal(t, task.TierUpcoming, planned[1].Tier())
		assert.Equal(t, "VZ", planned[2].Code().String())
	})

	t.Run("planning twice over the updated backlog is stable", func(t *testing.T) {
		demand := aggregate(t, []services.OpenOrder{
			openOrder(t, "Green Leaf", today, map[string]int{"BG": 5}),
		}, now)

		first, err := mustPlanner(t, 0).Plan(demand, nil, nil, now)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := mustPlanner(t, 0).Plan(demand, nil, first, now)
		require.NoError(t, err)
		assert.Empty(t, second)
	})
}
