package cmd

import (
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"fieldops/internal/adapters/out/postgres"
	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateJobCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWorkerCommandHandler() commands.CreateWorkerCommandHandler {
	var f commands.WorkerUoWFactory = FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkerCommandHandler(f)
}

func (c *CompositionRoot) CreateRescheduleJobCommandHandler() commands.RescheduleJobCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleJobCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeJobStatusCommandHandler() commands.ChangeJobStatusCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeJobStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordJobValueCommandHandler() commands.RecordJobValueCommandHandler {
	var f commands.JobUoWFactory = FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordJobValueCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBlockedTimeCommandHandler() commands.CreateBlockedTimeCommandHandler {
	var f commands.BlockedTimeUoWFactory = FuncBlockedTimeUoWFactory(func() commands.BlockedTimeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBlockedTimeCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveBlockedTimeCommandHandler() commands.RemoveBlockedTimeCommandHandler {
	var f commands.BlockedTimeUoWFactory = FuncBlockedTimeUoWFactory(func() commands.BlockedTimeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveBlockedTimeCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDailyScheduleQueryHandler() queries.GetDailyScheduleQueryHandler {
	handler, err := queries.NewGetDailyScheduleQueryHandler(c.gormDB)
	if err != nil {
		log.Fatalf("Failed to create daily schedule query handler: %v", err)
	}
	return handler
}

func (c *CompositionRoot) CreateGetMonthlyStatsQueryHandler() queries.GetMonthlyStatsQueryHandler {
	handler, err := queries.NewGetMonthlyStatsQueryHandler(c.gormDB)
	if err != nil {
		log.Fatalf("Failed to create monthly stats query handler: %v", err)
	}
	return handler
}

func (c *CompositionRoot) CreateGetAllWorkersQueryHandler() queries.GetAllWorkersQueryHandler {
	handler, err := queries.NewGetAllWorkersQueryHandler(c.gormDB)
	if err != nil {
		log.Fatalf("Failed to create workers query handler: %v", err)
	}
	return handler
}

func (c *CompositionRoot) CreateGetBlockedOverlaysQueryHandler() queries.GetBlockedOverlaysQueryHandler {
	handler, err := queries.NewGetBlockedOverlaysQueryHandler(c.gormDB)
	if err != nil {
		log.Fatalf("Failed to create blocked overlays query handler: %v", err)
	}
	return handler
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}

type FuncBlockedTimeUoWFactory func() commands.BlockedTimeUoW

func (f FuncBlockedTimeUoWFactory) Create() commands.BlockedTimeUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
