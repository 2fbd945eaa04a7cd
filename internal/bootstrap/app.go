package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CrashSite_Go/internal/catalog"
	"github.com/osse101/CrashSite_Go/internal/config"
	"github.com/osse101/CrashSite_Go/internal/event"
	"github.com/osse101/CrashSite_Go/internal/game"
	"github.com/osse101/CrashSite_Go/internal/job"
	"github.com/osse101/CrashSite_Go/internal/progression"
	"github.com/osse101/CrashSite_Go/internal/runner"
	"github.com/osse101/CrashSite_Go/internal/save"
	"github.com/osse101/CrashSite_Go/internal/server"
	"github.com/osse101/CrashSite_Go/internal/sse"
	"github.com/osse101/CrashSite_Go/internal/worker"
)

// App is the assembled game: state, loop, workers and HTTP surface
type App struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Bus     event.Bus
	Manager *game.Manager
	Engine  *progression.Engine
	Runner  *runner.Runner
	Jobs    job.Service
	Saver   save.Service
	Hub     *sse.Hub
	Server  *server.Server

	storage       *Storage
	notifications *Notifications
	journal       *Journal
	production    *worker.ProductionWorker
	autosave      *worker.AutosaveWorker

	stopRunner context.CancelFunc
	runnerDone chan struct{}
}

// New loads the catalog, restores the saved game and wires every component.
// Nothing runs until Start.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"resources", len(cat.Resources),
		"actions", len(cat.Actions),
		"jobs", len(cat.Jobs),
		"buildings", len(cat.Buildings))

	clock := game.NewRealClock()
	bus := event.NewMemoryBus()
	manager := game.NewManager(game.NewState(cat, clock), bus)

	handlers := progression.NewHandlerRegistry()
	RegisterCompletionHandlers(handlers, cat)
	engine := progression.NewEngine(handlers, progression.NewMultiplierCache(0, cfg.MultiplierCacheTTL))

	hub := sse.NewHub(clock.Now)
	if err := RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, Engine: engine, Hub: hub}); err != nil {
		return nil, err
	}

	notifications, err := InitializeNotifications(cfg, bus, cat)
	if err != nil {
		return nil, err
	}

	storage, err := InitializeStorage(ctx, cfg)
	if err != nil {
		notifications.Close(ctx)
		return nil, err
	}

	app := &App{
		Config:        cfg,
		Catalog:       cat,
		Bus:           bus,
		Manager:       manager,
		Engine:        engine,
		Jobs:          job.NewService(manager, engine),
		Hub:           hub,
		storage:       storage,
		notifications: notifications,
	}
	app.Runner = runner.NewRunner(manager, engine, runner.Options{
		TickInterval:  cfg.TickInterval,
		ConfirmWindow: cfg.CancelConfirmWindow,
	})

	if storage.Store != nil {
		app.Saver = save.NewService(storage.Store, manager, cfg.SaveSlot)
		app.Saver.Load(ctx)
		app.autosave = worker.NewAutosaveWorker(app.Saver, cfg.AutosaveInterval)
	}
	app.production = worker.NewProductionWorker(app.Jobs, cfg.ProductionInterval)

	deps := server.Deps{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Manager:        manager,
		Runner:         app.Runner,
		Jobs:           app.Jobs,
		Saver:          app.Saver,
		Rewards:        engine,
		Hub:            hub,
	}
	if storage.Pool != nil {
		deps.DBPool = storage.Pool
		app.journal = InitializeJournal(bus, storage.Pool, cfg)
		deps.Journal = app.journal.Service
	}
	app.Server = server.NewServer(deps)

	return app, nil
}

// Start launches the game loop, the background workers and the SSE hub.
// The HTTP server is started separately by the caller.
func (a *App) Start(ctx context.Context) {
	a.Hub.Start()

	runCtx, cancel := context.WithCancel(ctx)
	a.stopRunner = cancel
	a.runnerDone = make(chan struct{})
	go func() {
		defer close(a.runnerDone)
		a.Runner.Run(runCtx)
	}()

	a.journal.Start()
	a.production.Start(ctx)
	if a.autosave != nil {
		a.autosave.Start(ctx)
	}

	slog.Info(LogMsgApplicationReady,
		"port", a.Config.Port,
		"save_backend", a.Config.SaveBackend,
		"discord", a.notifications != nil)
}

// Shutdown stops everything in dependency order and writes a final save
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:        a.Server,
		StopRunner:    a.stopRunner,
		RunnerDone:    a.runnerDone,
		Production:    a.production,
		Autosave:      a.autosave,
		Saver:         a.Saver,
		Hub:           a.Hub,
		Notifications: a.notifications,
		Journal:       a.journal,
	})
}
