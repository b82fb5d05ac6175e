package cmd

import (
	"packline/internal/adapters/out/postgres"
	"packline/internal/core/application/usecases/commands"
	"packline/internal/core/application/usecases/queries"
	"packline/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	planner    services.BacklogPlanner
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	planner, err := services.NewBacklogPlanner(configs.BackfillBuffer)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		planner:    planner,
	}, nil
}

func (c *CompositionRoot) CreateAdvanceTaskCommandHandler() commands.AdvanceTaskCommandHandler {
	var f commands.SchedulerUoWFactory = FuncSchedulerUoWFactory(func() commands.SchedulerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateRevertTaskCommandHandler() commands.RevertTaskCommandHandler {
	var f commands.SchedulerUoWFactory = FuncSchedulerUoWFactory(func() commands.SchedulerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRevertTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateAddContainerCommandHandler() commands.AddContainerCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddContainerCommandHandler(f)
}

func (c *CompositionRoot) CreateSetInventoryCommandHandler() commands.SetInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTaskNoteCommandHandler() commands.UpdateTaskNoteCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTaskNoteCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshBacklogCommandHandler() commands.RefreshBacklogCommandHandler {
	var f commands.PlannerUoWFactory = FuncPlannerUoWFactory(func() commands.PlannerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshBacklogCommandHandler(f, c.planner)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	var f queries.DashboardUoWFactory = FuncDashboardUoWFactory(func() queries.DashboardUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetDashboardQueryHandler(f)
}

type FuncSchedulerUoWFactory func() commands.SchedulerUoW

func (f FuncSchedulerUoWFactory) Create() commands.SchedulerUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncPlannerUoWFactory func() commands.PlannerUoW

func (f FuncPlannerUoWFactory) Create() commands.PlannerUoW {
	return f()
}

type FuncDashboardUoWFactory func() queries.DashboardUoW

func (f FuncDashboardUoWFactory) Create() queries.DashboardUoW {
	return f()
}
