package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/repository"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/service"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/config"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/db"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/events"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/feed"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/logger"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/server"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/telemetry"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file (optional)")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger.Init(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exiting")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	hub := feed.NewHub()
	go hub.Run(ctx)

	// Create repository and event publisher for the configured store
	var (
		statsRepo repository.StatsRepository
		publisher events.Publisher = hub
	)
	if cfg.UsesRedis() {
		rdb, err := db.NewRedisClient(ctx, cfg.Redis.Addr)
		if err != nil {
			return err
		}
		defer rdb.Close()

		statsRepo = repository.NewRedisStatsRepository(rdb)
		publisher = events.NewRedisPublisher(rdb)
		go feed.RunRelay(ctx, rdb, hub)
		slog.InfoContext(ctx, "Using redis store", "redis.addr", cfg.Redis.Addr)
	} else {
		conn, err := db.Connect(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := db.InitializeDB(ctx, conn); err != nil {
			return err
		}

		statsRepo = repository.NewSQLiteStatsRepository(conn)
	}

	if err := statsRepo.Seed(ctx, string(game.PlayerX), string(game.PlayerO)); err != nil {
		return err
	}

	// Create services and controllers
	statsService, err := service.NewStatsService(statsRepo, publisher)
	if err != nil {
		return err
	}
	statsController := controller.NewStatsController(statsService)

	srv := server.NewServer(statsController, server.Options{
		AdminSecret: cfg.Admin.JWTSecret,
		Feed:        feed.NewHandler(hub, statsService),
	})

	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server started", "http.addr", cfg.HTTP.Addr, "store.driver", cfg.Store.Driver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}
