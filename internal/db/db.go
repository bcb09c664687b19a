package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const driverName = "sqlite"

const statsSchema = `
CREATE TABLE IF NOT EXISTS player_stats (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	player TEXT NOT NULL UNIQUE,
	wins INTEGER NOT NULL DEFAULT 0 CHECK (wins >= 0),
	losses INTEGER NOT NULL DEFAULT 0 CHECK (losses >= 0),
	draws INTEGER NOT NULL DEFAULT 0 CHECK (draws >= 0)
);`

// Connect opens the SQLite database at path (":memory:" for a throwaway store).
// The pool is capped at one connection; an in-memory database lives only as long
// as that connection.
func Connect(ctx context.Context, path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	pool.SetMaxOpenConns(1)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.InfoContext(ctx, "Connected to database", "db.path", path)
	return pool, nil
}

// InitializeDB creates the scoreboard schema if it does not exist yet.
func InitializeDB(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, statsSchema); err != nil {
		return fmt.Errorf("failed to create player_stats table: %w", err)
	}

	slog.InfoContext(ctx, "DB schema verified")
	return nil
}
