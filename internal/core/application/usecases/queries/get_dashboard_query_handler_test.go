package queries_test

import (
	"testing"
	"time"

	"packline/internal/core/application/usecases/queries"
	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, value string) sku.Code {
	t.Helper()
	code, err := sku.NewCode(value)
	require.NoError(t, err)
	return code
}

func restoredLevel(t *testing.T, code string, staged, filled, cased int) *inventory.Level {
	t.Helper()
	level, err := inventory.RestoreLevel(mustCode(t, code), staged, filled, cased)
	require.NoError(t, err)
	return level
}

func openTask(t *testing.T, code string, quantity int, column task.Column, note string) *task.Task {
	t.Helper()
	source, err := task.NewOrderSource(quantity, "Green Leaf")
	require.NoError(t, err)
	aggregate, err := task.RestoreTask(
		kernel.NewUUID(), mustCode(t, code), quantity, column, task.StatusActive,
		task.TierUrgent, []task.Source{source}, note, time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return aggregate
}

func newDashboardUoW(
	orderSource *MockOrderSource,
	inventoryRepo *MockInventoryRepository,
	taskRepo *MockTaskRepository,
	intakeRepo *MockIntakeRepository,
	skuRepo *MockSKURepository,
) *MockDashboardUoW {
	uow := new(MockDashboardUoW)
	uow.On("BeginReadOnly", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("OrderSource").Return(orderSource)
	uow.On("InventoryRepository").Return(inventoryRepo)
	uow.On("TaskRepository").Return(taskRepo)
	uow.On("IntakeRepository").Return(intakeRepo)
	uow.On("SKURepository").Return(skuRepo)
	return uow
}

func TestGetDashboardQuery(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		query := queries.NewGetDashboardQuery()
		assert.NoError(t, query.Validate())
	})

	t.Run("zero value fails validate", func(t *testing.T) {
		var query queries.GetDashboardQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetDashboardQueryIsNotConstructed)
	})
}

func TestGetDashboardQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	bg, err := sku.NewSKU(mustCode(t, "BG"), "Berry Gold", "GOLD")
	require.NoError(t, err)

	fillTask := openTask(t, "BG", 6, task.ColumnToFill, "use the small caps")
	caseTask := openTask(t, "BG", 4, task.ColumnToCase, "")
	level := restoredLevel(t, "BG", 10, 4, 2)

	intake, err := inventory.RestoreIntake(
		kernel.NewUUID(), mustCode(t, "BG"), inventory.ContainerSize8, time.Now().Add(-2*time.Hour),
	)
	require.NoError(t, err)

	orders := []services.OpenOrder{
		{
			CustomerName: "Green Leaf",
			DeliveryDate: time.Now(),
			Lines:        []services.OpenOrderLine{{Code: mustCode(t, "BG"), Quantity: 8}},
		},
	}

	orderSource := new(MockOrderSource)
	orderSource.On("GetOpenOrders", ctx).Return(orders, nil)

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetAll", ctx).Return([]*inventory.Level{level}, nil)

	taskRepo := new(MockTaskRepository)
	taskRepo.On("GetAllOpen", ctx).Return([]*task.Task{fillTask, caseTask}, nil)
	taskRepo.On("GetAllCompleted", ctx).Return([]*task.CompletedTask{}, nil)

	intakeRepo := new(MockIntakeRepository)
	intakeRepo.On("GetAll", ctx).Return([]*inventory.Intake{intake}, nil)

	skuRepo := new(MockSKURepository)
	skuRepo.On("GetAll", ctx).Return([]*sku.SKU{bg}, nil)

	uow := newDashboardUoW(orderSource, inventoryRepo, taskRepo, intakeRepo, skuRepo)
	factory := new(MockDashboardUoWFactory)
	factory.On("Create").Return(uow)

	handler := queries.NewGetDashboardQueryHandler(factory)
	snapshot, err := handler.Handle(ctx, queries.NewGetDashboardQuery())
	require.NoError(t, err)

	require.Len(t, snapshot.Inventory, 1)
	item := snapshot.Inventory[0]
	assert.Equal(t, "BG", item.Code)
	assert.Equal(t, "Berry Gold", item.Name)
	assert.Equal(t, "GOLD", item.Family)
	assert.Equal(t, 10, item.Staged)
	assert.Equal(t, 4, item.Filled)
	assert.Equal(t, 2, item.Cased)
	assert.Equal(t, 8, item.DemandTotal)
	assert.Equal(t, 8, item.DemandUrgent)
	assert.Equal(t, 6, item.Gap)
	assert.False(t, item.LowStock)

	require.Len(t, snapshot.TasksByColumn["TO_FILL"], 1)
	require.Len(t, snapshot.TasksByColumn["TO_CASE"], 1)
	assert.Equal(t, "ACTIVE", snapshot.TasksByColumn["TO_FILL"][0].Status)
	assert.Equal(t, "ACTIVE", snapshot.TasksByColumn["TO_CASE"][0].Status)

	require.Len(t, snapshot.RecentIntakes, 1)
	assert.Equal(t, 8, snapshot.RecentIntakes[0].Size)

	assert.Equal(t, map[string]string{
		fillTask.ID().String(): "use the small caps",
	}, snapshot.Notes)

	uow.AssertExpectations(t)
}

func TestGetDashboardQueryHandler_Handle_ComputesAdvisoryBlocking(t *testing.T) {
	ctx := t.Context()

	// Persisted ACTIVE, but staged stock no longer covers the task.
	starved := openTask(t, "BG", 6, task.ColumnToFill, "")
	level := restoredLevel(t, "BG", 2, 0, 0)

	orderSource := new(MockOrderSource)
	orderSource.On("GetOpenOrders", ctx).Return([]services.OpenOrder{}, nil)

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetAll", ctx).Return([]*inventory.Level{level}, nil)

	taskRepo := new(MockTaskRepository)
	taskRepo.On("GetAllOpen", ctx).Return([]*task.Task{starved}, nil)
	taskRepo.On("GetAllCompleted", ctx).Return([]*task.CompletedTask{}, nil)

	intakeRepo := new(MockIntakeRepository)
	intakeRepo.On("GetAll", ctx).Return([]*inventory.Intake{}, nil)

	skuRepo := new(MockSKURepository)
	skuRepo.On("GetAll", ctx).Return([]*sku.SKU{}, nil)

	uow := newDashboardUoW(orderSource, inventoryRepo, taskRepo, intakeRepo, skuRepo)
	factory := new(MockDashboardUoWFactory)
	factory.On("Create").Return(uow)

	handler := queries.NewGetDashboardQueryHandler(factory)
	snapshot, err := handler.Handle(ctx, queries.NewGetDashboardQuery())
	require.NoError(t, err)

	require.Len(t, snapshot.TasksByColumn["TO_FILL"], 1)
	assert.Equal(t, "BLOCKED", snapshot.TasksByColumn["TO_FILL"][0].Status)

	// Nothing was persisted back.
	taskRepo.AssertNotCalled(t, "Update", ctx, starved)
}

func TestGetDashboardQueryHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()

	level := restoredLevel(t, "BG", 3, 1, 5)
	aggregate := openTask(t, "BG", 2, task.ColumnToCase, "")

	orderSource := new(MockOrderSource)
	orderSource.On("GetOpenOrders", ctx).Return([]services.OpenOrder{}, nil)

	inventoryRepo := new(MockInventoryRepository)
	inventoryRepo.On("GetAll", ctx).Return([]*inventory.Level{level}, nil)

	taskRepo := new(MockTaskRepository)
	taskRepo.On("GetAllOpen", ctx).Return([]*task.Task{aggregate}, nil)
	taskRepo.On("GetAllCompleted", ctx).Return([]*task.CompletedTask{}, nil)

	intakeRepo := new(MockIntakeRepository)
	intakeRepo.On("GetAll", ctx).Return([]*inventory.Intake{}, nil)

	skuRepo := new(MockSKURepository)
	skuRepo.On("GetAll", ctx).Return([]*sku.SKU{}, nil)

	uow := newDashboardUoW(orderSource, inventoryRepo, taskRepo, intakeRepo, skuRepo)
	factory := new(MockDashboardUoWFactory)
	factory.On("Create").Return(uow)

	handler := queries.NewGetDashboardQueryHandler(factory)

	first, err := handler.Handle(ctx, queries.NewGetDashboardQuery())
	require.NoError(t, err)
	second, err := handler.Handle(ctx, queries.NewGetDashboardQuery())
	require.NoError(t, err)

	assert.Equal(t, first.Inventory, second.Inventory)
	assert.Equal(t, first.TasksByColumn, second.TasksByColumn)
	assert.Equal(t, first.CompletedTasks, second.CompletedTasks)
	assert.Equal(t, first.Notes, second.Notes)
}
