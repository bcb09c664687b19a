// Package servertest starts a complete scoreboard server backed by an
// in-memory SQLite store for use in tests.
package servertest

import (
	"context"
	"net/http/httptest"
	"testing"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/repository"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/service"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/db"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/feed"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Scoreboard is a running test server.
type Scoreboard struct {
	*httptest.Server
	Repo repository.StatsRepository
	Hub  *feed.Hub
}

// Start serves the full route set on a random port. The store is seeded with X and O.
func Start(t testing.TB, adminSecret string) *Scoreboard {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	conn, err := db.Connect(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.InitializeDB(ctx, conn))

	repo := repository.NewSQLiteStatsRepository(conn)
	require.NoError(t, repo.Seed(ctx, "X", "O"))

	hub := feed.NewHub()
	go hub.Run(ctx)

	svc, err := service.NewStatsService(repo, hub)
	require.NoError(t, err)

	srv := server.NewServer(controller.NewStatsController(svc), server.Options{
		AdminSecret: adminSecret,
		Feed:        feed.NewHandler(hub, svc),
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &Scoreboard{Server: ts, Repo: repo, Hub: hub}
}
