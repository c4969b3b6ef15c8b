// Package server initializes and runs the chat server application: storage,
// the chat core, authentication, the gRPC endpoint, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mbaklanov/chatline/internal/logging"
	"github.com/mbaklanov/chatline/internal/server/chat"
	"github.com/mbaklanov/chatline/internal/server/config"
	"github.com/mbaklanov/chatline/internal/server/repositories/repomanager"
	"github.com/mbaklanov/chatline/internal/server/users"

	gs "github.com/mbaklanov/chatline/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *users.Service
	chatService *chat.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// The Postgres manager runs its embedded migrations during construction.
	var repos repomanager.RepositoryManager
	if cfg.DatabaseDSN == "" {
		repos = repomanager.NewInMemoryRepositoryManager()
	} else {
		pg, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = pg
	}

	dir := chat.NewDirectory(repos.Accounts(), repos.Messages(), logger)
	reg := chat.NewRegistry(dir, cfg.DeliveryBufferSize, logger)
	router := chat.NewRouter(dir, reg, logger)

	cs := chat.NewService(dir, reg, router, logger)
	us := users.NewService(dir, repos.RefreshTokens(), []byte(cfg.SecretKey),
		cfg.AccessTokenValidityDuration, cfg.RefreshTokenValidityDuration, logger)

	return &App{
		config:      cfg,
		logger:      logger,
		repos:       repos,
		userService: us,
		chatService: cs,
	}, nil
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.chatService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing repositories", "error", err.Error())
	}
}
