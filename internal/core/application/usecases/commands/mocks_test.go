package commands_test

import (
	"context"

	"packline/internal/core/application/usecases/commands"
	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/core/domain/services"
	"packline/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, code sku.Code) (*inventory.Level, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Level), args.Error(1)
}

func (m *MockInventoryRepository) GetAll(ctx context.Context) ([]*inventory.Level, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Level), args.Error(1)
}

func (m *MockInventoryRepository) Upsert(ctx context.Context, level *inventory.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, aggregate *task.Task) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAllOpen(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) AddCompleted(ctx context.Context, record *task.CompletedTask) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTaskRepository) GetCompleted(ctx context.Context, id kernel.UUID) (*task.CompletedTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.CompletedTask), args.Error(1)
}

func (m *MockTaskRepository) GetAllCompleted(ctx context.Context) ([]*task.CompletedTask, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.CompletedTask), args.Error(1)
}

func (m *MockTaskRepository) RemoveCompleted(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockIntakeRepository struct{ mock.Mock }

func (m *MockIntakeRepository) Add(ctx context.Context, intake *inventory.Intake) error {
	args := m.Called(ctx, intake)
	return args.Error(0)
}

func (m *MockIntakeRepository) GetAll(ctx context.Context) ([]*inventory.Intake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Intake), args.Error(1)
}

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) GetOpenOrders(ctx context.Context) ([]services.OpenOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.OpenOrder), args.Error(1)
}

// MockUoW satisfies every narrow unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockUoW) IntakeRepository() ports.IntakeRepository {
	args := m.Called()
	return args.Get(0).(ports.IntakeRepository)
}

func (m *MockUoW) OrderSource() ports.OrderSource {
	args := m.Called()
	return args.Get(0).(ports.OrderSource)
}

type MockSchedulerUoWFactory struct{ mock.Mock }

func (m *MockSchedulerUoWFactory) Create() commands.SchedulerUoW {
	args := m.Called()
	return args.Get(0).(commands.SchedulerUoW)
}

type MockIntakeUoWFactory struct{ mock.Mock }

func (m *MockIntakeUoWFactory) Create() commands.IntakeUoW {
	args := m.Called()
	return args.Get(0).(commands.IntakeUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockTaskUoWFactory struct{ mock.Mock }

func (m *MockTaskUoWFactory) Create() commands.TaskUoW {
	args := m.Called()
	return args.Get(0).(commands.TaskUoW)
}

type MockPlannerUoWFactory struct{ mock.Mock }

func (m *MockPlannerUoWFactory) Create() commands.PlannerUoW {
	args := m.Called()
	return args.Get(0).(commands.PlannerUoW)
}
