package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/ballotbox/internal/vote/http"
	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/postgres"
	"github.com/aussiebroadwan/ballotbox/internal/vote/store/drivers/sqlite"
	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"
)

// BuildVersion is overridden with -ldflags "-X .../app.BuildVersion=..." in
// release builds.
var BuildVersion = "v0.1.0"

// services groups the business layer so it can be handed to the router in
// one place.
type services struct {
	tokens    *service.TokenService
	users     *service.UserService
	clubs     *service.ClubService
	elections *service.ElectionService
	votes     *service.VoteService
	bootstrap *service.BootstrapService
}

// Application owns the store, the signing keys and the HTTP server of the
// vote service.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager
	svc        services
	closer     *service.ElectionCloser // nil when VOTE_CLOSER_INTERVAL is 0

	router *httpapi.Router
	server *http.Server

	shutdownOnce sync.Once
	shutdownErr  error
}

// New opens the store, applies migrations and wires every service. The
// returned Application has not started listening yet.
func New(cfg Config) (*Application, error) {
	logger := slogx.New(slogx.Config{
		Service: "vote-service",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	cryptox.SetPepperPath(cfg.PepperFile)

	db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("database ready", "driver", cfg.DatabaseDriver)

	keyManager, err := InitSigningKeys(cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &Application{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		keyManager: keyManager,
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run serves HTTP until SIGINT or SIGTERM arrives, then shuts down within
// the configured grace period.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if app.closer != nil {
		app.closer.Start()
	}

	app.logger.Info("vote service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			// Shutdown was called elsewhere and owns the cleanup.
			return nil
		}
		_ = app.Shutdown()
		return fmt.Errorf("server failed: %w", err)

	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	}
}

// Shutdown drains in-flight requests, stops the closer and releases the
// store, in that order. Only the first call does the work; later calls
// return its result.
func (app *Application) Shutdown() error {
	app.shutdownOnce.Do(func() {
		app.shutdownErr = app.shutdown()
	})
	return app.shutdownErr
}

func (app *Application) shutdown() error {
	app.logger.Info("shutting down vote service")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed, forcing close", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.closer != nil {
		app.closer.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("vote service stopped")
	return nil
}

// openStore connects to the configured backend and migrates it.
func openStore(cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)

	switch cfg.DatabaseDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("VOTE_DATABASE_URL is required for the postgres driver")
		}
		db, err = postgres.NewStore(cfg.DatabaseURL)
	case DriverSQLite, "":
		db, err = sqlite.NewStore(sqliteDSN(cfg.DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.DatabaseDriver, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// sqliteDSN enables WAL and foreign keys on every pooled connection.
func sqliteDSN(file string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		file,
	)
}

func (app *Application) initServices() {
	tokens := &service.TokenService{
		KeyManager: app.keyManager,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.TokenTTL,
	}

	app.svc = services{
		tokens:    tokens,
		users:     &service.UserService{Store: app.db, Tokens: tokens},
		clubs:     &service.ClubService{Store: app.db},
		elections: &service.ElectionService{Store: app.db},
		votes:     &service.VoteService{Store: app.db},
		bootstrap: &service.BootstrapService{
			Store:  app.db,
			Tokens: tokens,
			Token:  app.cfg.BootstrapToken,
		},
	}

	if app.cfg.CloserInterval > 0 {
		app.closer = service.NewElectionCloser(app.db, app.logger, app.cfg.CloserInterval)
		app.logger.Info("election closer enabled", "interval", app.cfg.CloserInterval)
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)
	router.UserService = app.svc.users
	router.ClubService = app.svc.clubs
	router.ElectionService = app.svc.elections
	router.VoteService = app.svc.votes
	router.BootstrapService = app.svc.bootstrap
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
