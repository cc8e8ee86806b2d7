// Package app wires configuration, logging, storage and the user service
// together and runs the demonstration flow from cmd/userstore.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/userstore/internal/config"
	"github.com/dmitrijs2005/userstore/internal/dbx"
	"github.com/dmitrijs2005/userstore/internal/logging"
	"github.com/dmitrijs2005/userstore/internal/repositories/repomanager"
	"github.com/dmitrijs2005/userstore/internal/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	flushLogger func() error
	userService *services.UserService
	printer     *printer
}

// NewApp opens the database described by c, applies migrations when enabled
// and builds the user service. Records are printed to out.
func NewApp(ctx context.Context, c *config.Config, logOut, out io.Writer) (*App, error) {
	logger, flush, err := logging.New(c.LogBackend, logOut, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := dbx.Open(ctx, c.Driver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m, err := repomanager.NewSQLRepositoryManager(c.Driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository init error: %w", err)
	}

	if c.Migrate {
		if err := m.RunMigrations(ctx, db.DB); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		logger.Info(ctx, "migrations applied", "driver", c.Driver)
	}

	return newApp(c, logger, flush, db, m, out), nil
}

func newApp(c *config.Config, logger logging.Logger, flush func() error, db *sqlx.DB, m repomanager.RepositoryManager, out io.Writer) *App {
	return &App{
		config:      c,
		logger:      logger,
		flushLogger: flush,
		userService: services.NewUserService(db, m, logger),
		printer:     newPrinter(out),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run executes the demo flow and shuts the service down afterwards, or as
// soon as SIGINT/SIGTERM arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stop := app.initSignalHandler(cancelFunc)
	defer stop()

	app.logger.Info(ctx, "starting userstore", "driver", app.config.Driver)

	runErr := app.demo(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "demo failed", "error", runErr)
	}

	if err := app.userService.Shutdown(); err != nil {
		app.logger.Error(ctx, "shutdown failed", "error", err)
		if runErr == nil {
			runErr = err
		}
	}
	_ = app.flushLogger()

	return runErr
}
