package repository

import (
	"context"
	"errors"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"

	"go.opentelemetry.io/otel"
)

//go:generate mockgen -destination=../mocks/stats_repository.go -package=mocks . StatsRepository

var tracer = otel.Tracer("repository.stats")

var (
	ErrPlayerNotFound = errors.New("player does not exist")
	ErrUnknownCounter = errors.New("unknown counter")
)

// StatsRepository defines the interface for scoreboard data operations.
type StatsRepository interface {
	// List returns every player's stats ordered by id.
	List(ctx context.Context) ([]models.PlayerStats, error)
	// FindByPlayer returns ErrPlayerNotFound for an unknown player.
	FindByPlayer(ctx context.Context, player string) (*models.PlayerStats, error)
	// Increment adds one to a single counter of an existing player.
	Increment(ctx context.Context, player string, counter models.Counter) error
	// Seed creates zeroed rows for players that do not exist yet.
	Seed(ctx context.Context, players ...string) error
}
