// Package server wires configuration, storage and the HTTP API together and
// runs the process until it is signalled to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/apsihub/apsi-auth/internal/logging"
	"github.com/apsihub/apsi-auth/internal/server/config"
	"github.com/apsihub/apsi-auth/internal/server/httpapi"
	"github.com/apsihub/apsi-auth/internal/server/shared/db"
	"github.com/apsihub/apsi-auth/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repoManager db.RepositoryManager
	userService *users.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), logger)

	return &App{config: c, logger: logger, repoManager: m, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// bootstrapSchema applies the embedded migrations. A failure is logged but
// not fatal: the process keeps serving and store calls fail at the
// repository layer until the schema is fixed.
func (app *App) bootstrapSchema(ctx context.Context) {
	if err := app.repoManager.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "Error ensuring DB schema", "error", err.Error())
		return
	}
	app.logger.Info(ctx, "DB schema ensured")
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.config.CORSAllowedOrigins,
		app.logger, app.userService, app.repoManager)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)
	app.bootstrapSchema(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "Error closing DB", "error", err.Error())
	}
}
