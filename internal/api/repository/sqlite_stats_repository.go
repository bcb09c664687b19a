package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// incrementQueries holds one statement per counter so no column name is ever
// built from request input.
var incrementQueries = map[models.Counter]string{
	models.CounterWins:   `UPDATE player_stats SET wins = wins + 1 WHERE player = ?`,
	models.CounterLosses: `UPDATE player_stats SET losses = losses + 1 WHERE player = ?`,
	models.CounterDraws:  `UPDATE player_stats SET draws = draws + 1 WHERE player = ?`,
}

type sqliteStatsRepository struct {
	db *sqlx.DB
}

// NewSQLiteStatsRepository creates a new SQLite-based StatsRepository.
func NewSQLiteStatsRepository(db *sqlx.DB) StatsRepository {
	return &sqliteStatsRepository{db: db}
}

// List retrieves all scoreboard rows.
func (r *sqliteStatsRepository) List(ctx context.Context) ([]models.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "StatsRepository.List")
	defer span.End()

	stats := []models.PlayerStats{}
	query := `SELECT id, player, wins, losses, draws FROM player_stats ORDER BY id`
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list player stats: %w", err)
	}
	return stats, nil
}

// FindByPlayer retrieves a single player's row.
func (r *sqliteStatsRepository) FindByPlayer(ctx context.Context, player string) (*models.PlayerStats, error) {
	ctx, span := tracer.Start(ctx, "StatsRepository.FindByPlayer", trace.WithAttributes(
		attribute.String("player.id", player),
	))
	defer span.End()

	var stats models.PlayerStats
	query := `SELECT id, player, wins, losses, draws FROM player_stats WHERE player = ?`
	if err := r.db.GetContext(ctx, &stats, query, player); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	return &stats, nil
}

// Increment bumps one counter with a single UPDATE statement.
func (r *sqliteStatsRepository) Increment(ctx context.Context, player string, counter models.Counter) error {
	ctx, span := tracer.Start(ctx, "StatsRepository.Increment", trace.WithAttributes(
		attribute.String("player.id", player),
		attribute.String("stats.counter", string(counter)),
	))
	defer span.End()

	query, ok := incrementQueries[counter]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}

	res, err := r.db.ExecContext(ctx, query, player)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to increment %s: %w", counter, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Seed inserts zeroed rows, leaving existing players untouched.
func (r *sqliteStatsRepository) Seed(ctx context.Context, players ...string) error {
	ctx, span := tracer.Start(ctx, "StatsRepository.Seed")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR IGNORE INTO player_stats (player, wins, losses, draws) VALUES (?, 0, 0, 0)`
	for _, player := range players {
		if _, err := tx.ExecContext(ctx, query, player); err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to seed player %s: %w", player, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
