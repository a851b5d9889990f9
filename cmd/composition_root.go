package cmd

import (
	"log/slog"
	"os"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/catalogrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/settingsrepo"
	"orderdesk/internal/adapters/out/postgres/staffrepo"
	"orderdesk/internal/adapters/out/postgres/statusrepo"
	"orderdesk/internal/adapters/out/telegram"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/jobs"
	"orderdesk/internal/notifications"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateDispatcher() *notifications.Dispatcher {
	roster := queries.NewGetStaffOnShiftQueryHandler(c.gormDB)
	directory := queries.NewGetVisibleStatusesQueryHandler(c.gormDB)
	settings := settingsrepo.NewGormSettingsRepository(c.gormDB)

	return notifications.NewDispatcher(
		settings,
		telegram.NewProvider(settings),
		staffrepo.NewGormEmployeeRepository(c.gormDB),
		statusrepo.NewGormStatusRepository(c.gormDB),
		roster,
		directory,
		c.logger,
	)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler(dispatcher *notifications.Dispatcher) commands.FinalizeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeOrderCommandHandler(f, catalogrepo.NewGormCatalogReader(c.gormDB), dispatcher)
}

func (c *CompositionRoot) CreateApplyOrderStatusCommandHandler() commands.ApplyOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler(dispatcher *notifications.Dispatcher) commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, dispatcher)
}

func (c *CompositionRoot) CreateReviseOrderItemsCommandHandler() commands.ReviseOrderItemsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviseOrderItemsCommandHandler(f, catalogrepo.NewGormCatalogReader(c.gormDB))
}

func (c *CompositionRoot) CreateBindStaffIdentityCommandHandler() commands.BindStaffIdentityCommandHandler {
	return commands.NewBindStaffIdentityCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateToggleShiftCommandHandler() commands.ToggleShiftCommandHandler {
	return commands.NewToggleShiftCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateLogoutStaffCommandHandler() commands.LogoutStaffCommandHandler {
	return commands.NewLogoutStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStatusCommandHandler() commands.DeleteStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(dispatcher *notifications.Dispatcher) *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetStaleNewOrdersQueryHandler(c.gormDB),
		dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	dispatcher := c.CreateDispatcher()

	return httpin.NewServer(
		c.CreateFinalizeOrderCommandHandler(dispatcher),
		c.CreateApplyOrderStatusCommandHandler(),
		c.CreateAssignCourierCommandHandler(dispatcher),
		c.CreateReviseOrderItemsCommandHandler(),
		c.CreateDeleteStatusCommandHandler(),
		c.CreateBindStaffIdentityCommandHandler(),
		c.CreateToggleShiftCommandHandler(),
		c.CreateLogoutStaffCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetCourierOrdersQueryHandler(),
		queries.NewGetStaffOnShiftQueryHandler(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB),
		dispatcher,
	)
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}
