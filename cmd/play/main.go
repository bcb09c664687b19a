package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/bot"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/console"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/logger"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/scoreclient"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/session"
)

func main() {
	serverURL := flag.String("server", scoreclient.DefaultServer, "scoreboard server base URL")
	size := flag.Int("size", game.DefaultSize, fmt.Sprintf("grid size (%d-%d)", game.MinSize, game.MaxSize))
	difficulty := flag.String("bot", "", "let the computer play O: easy, medium or hard")
	timeout := flag.Duration("timeout", 5*time.Second, "timeout for each scoreboard request")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	// Game output goes to stdout; logs go to stderr.
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.ParseLevel(*logLevel))))

	var opponent *bot.Bot
	if *difficulty != "" {
		d, err := bot.ParseDifficulty(*difficulty)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opponent = bot.New(game.PlayerO, d)
		opponent.ThinkTime = 300 * time.Millisecond
	}

	s, err := session.New(scoreclient.New(*serverURL, scoreclient.WithTimeout(*timeout)), *size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := console.New(os.Stdin, os.Stdout, s, opponent).Run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("Game ended with error", "error", err)
		os.Exit(1)
	}
}
