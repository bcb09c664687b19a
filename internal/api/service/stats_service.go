package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/repository"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -destination=../mocks/stats_service.go -package=mocks . StatsService

var (
	tracer = otel.Tracer("api.service")
	meter  = otel.Meter("api.service")
)

var ErrNoCounter = errors.New("request does not name a counter")

// StatsService defines the interface for scoreboard business logic.
type StatsService interface {
	ListStats(ctx context.Context) ([]models.PlayerStats, error)
	GetStats(ctx context.Context, player string) (*models.PlayerStats, error)
	RecordResult(ctx context.Context, player string, req *models.UpdateRequest) (models.Counter, error)
}

type statsService struct {
	statsRepo  repository.StatsRepository
	publisher  events.Publisher
	increments metric.Int64Counter
}

// NewStatsService creates a new StatsService. publisher may be nil.
func NewStatsService(statsRepo repository.StatsRepository, publisher events.Publisher) (StatsService, error) {
	increments, err := meter.Int64Counter("scoreboard.increments",
		metric.WithDescription("Scoreboard counter increments"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create increments counter: %w", err)
	}

	return &statsService{
		statsRepo:  statsRepo,
		publisher:  publisher,
		increments: increments,
	}, nil
}

// ListStats returns every scoreboard row.
func (s *statsService) ListStats(ctx context.Context) ([]models.PlayerStats, error) {
	return s.statsRepo.List(ctx)
}

// GetStats returns one player's row.
func (s *statsService) GetStats(ctx context.Context, player string) (*models.PlayerStats, error) {
	return s.statsRepo.FindByPlayer(ctx, player)
}

// RecordResult increments the counter named by req and announces the new totals.
func (s *statsService) RecordResult(ctx context.Context, player string, req *models.UpdateRequest) (models.Counter, error) {
	ctx, span := tracer.Start(ctx, "StatsService.RecordResult", trace.WithAttributes(
		attribute.String("player.id", player),
	))
	defer span.End()

	counter, ok := req.Counter()
	if !ok {
		span.SetStatus(codes.Error, "No counter in request")
		return "", ErrNoCounter
	}
	span.SetAttributes(attribute.String("stats.counter", string(counter)))

	if err := s.statsRepo.Increment(ctx, player, counter); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to increment counter")
		return "", err
	}
	s.increments.Add(ctx, 1, metric.WithAttributes(
		attribute.String("player.id", player),
		attribute.String("stats.counter", string(counter)),
	))

	s.announce(ctx, player, counter)
	return counter, nil
}

// announce publishes the player's new row. Failures are logged only; the
// increment has already been committed.
func (s *statsService) announce(ctx context.Context, player string, counter models.Counter) {
	if s.publisher == nil {
		return
	}

	stats, err := s.statsRepo.FindByPlayer(ctx, player)
	if err != nil {
		slog.WarnContext(ctx, "Could not reload stats for announcement", "player.id", player, "error", err)
		return
	}
	event, err := events.NewScoreUpdated(*stats, counter)
	if err != nil {
		slog.ErrorContext(ctx, "Could not build score_updated event", "player.id", player, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish score_updated event", "player.id", player, "error", err)
		return
	}
	slog.DebugContext(ctx, "Published score_updated event", "player.id", player, "stats.counter", string(counter), "stats.value", stats.Value(counter))
}
