package cmd

import (
	"context"
	"errors"
	"log/slog"

	"fleetdispatch/api"
	httpin "fleetdispatch/internal/adapters/in/http"
	"fleetdispatch/internal/adapters/out/memory"
	"fleetdispatch/internal/adapters/out/postgres"
	"fleetdispatch/internal/adapters/out/postgres/taskrepo"
	"fleetdispatch/internal/core/application/usecases/commands"
	"fleetdispatch/internal/core/application/usecases/queries"
	"fleetdispatch/internal/core/domain/services"
	"fleetdispatch/internal/core/ports"
	"fleetdispatch/internal/jobs"
	"fleetdispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	uowFactory  ports.UnitOfWorkFactory
	taskReader  ports.TaskReader
	statsReader ports.TaskStatsReader
	health      func(ctx context.Context) error

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	clock    commands.Clock
}

// NewCompositionRoot wires the application on the store selected by
// cfg.StoreDriver. gormDB is required for the postgres store and ignored
// for the memory store.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	root := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		metrics:  m,
		clock:    commands.SystemClock,
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory:
		store := memory.NewStore(m.ChangeObserver())
		root.uowFactory = store
		root.taskReader = store.TaskReader()
		root.statsReader = store

	default:
		if gormDB == nil {
			return nil, errors.New("postgres store selected but no database connection given")
		}
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, m.ChangeObserver())
		root.taskReader = postgres.NewTaskReader(gormDB)
		root.statsReader = taskrepo.NewGormTaskStats(gormDB)
		root.health = func(ctx context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateTaskCommandHandler() commands.CreateTaskCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTaskCommandHandler(f, services.NewReferenceResolver(), c.clock)
}

func (c *CompositionRoot) CreateUpdateTaskCommandHandler() commands.UpdateTaskCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTaskCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCompleteTaskCommandHandler() commands.CompleteTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteTaskCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteTaskCommandHandler() commands.DeleteTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTaskQueryHandler() queries.GetTaskQueryHandler {
	return queries.NewGetTaskQueryHandler(c.taskReader)
}

func (c *CompositionRoot) CreateListTasksQueryHandler() queries.ListTasksQueryHandler {
	return queries.NewListTasksQueryHandler(c.taskReader)
}

// CreateJobManager builds the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.statsReader, c.metrics, c.cfg.StatsSchedule, c.logger)
}

// CreateRouter builds the HTTP router serving every handler above.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.JSON(ctx)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateTask:   c.CreateCreateTaskCommandHandler(),
		UpdateTask:   c.CreateUpdateTaskCommandHandler(),
		CompleteTask: c.CreateCompleteTaskCommandHandler(),
		DeleteTask:   c.CreateDeleteTaskCommandHandler(),
		GetTask:      c.CreateGetTaskQueryHandler(),
		ListTasks:    c.CreateListTasksQueryHandler(),
	})

	return httpin.NewRouter(httpin.RouterConfig{
		Server:       server,
		Logger:       c.logger,
		Metrics:      c.metrics,
		Gatherer:     c.registry,
		Verifier:     httpin.NewTokenVerifier(c.cfg.AuthJWTSecret),
		OpenAPI:      doc,
		Health:       c.health,
		AllowOrigins: c.cfg.CORSOrigins,
	}), nil
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
