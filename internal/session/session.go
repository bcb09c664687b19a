package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"
	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/scoreclient"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mocks/score_client.go -package=mocks . ScoreClient

var tracer = otel.Tracer("session")

var ErrScoreSync = errors.New("score sync failed")

// ScoreClient reads and updates the persistent scoreboard.
type ScoreClient interface {
	GetPlayerStats(ctx context.Context, player string) (*models.PlayerStats, error)
	UpdatePlayerScore(ctx context.Context, player string, req models.UpdateRequest) (*models.StatusResponse, error)
}

// Session owns the current game, the chosen grid size, both players' cached
// stats and the error banner. It is not safe for concurrent use.
type Session struct {
	client   ScoreClient
	game     *game.Game
	gridSize int
	stats    map[game.PlayerMark]models.PlayerStats
	banner   string
}

// New starts a session with an empty size×size game.
func New(client ScoreClient, size int) (*Session, error) {
	g, err := game.NewGame(size)
	if err != nil {
		return nil, err
	}

	return &Session{
		client:   client,
		game:     g,
		gridSize: size,
		stats: map[game.PlayerMark]models.PlayerStats{
			game.PlayerX: {Player: string(game.PlayerX)},
			game.PlayerO: {Player: string(game.PlayerO)},
		},
	}, nil
}

func (s *Session) Game() *game.Game { return s.game }

func (s *Session) GridSize() int { return s.gridSize }

// Stats returns the last fetched row for mark.
func (s *Session) Stats(mark game.PlayerMark) models.PlayerStats { return s.stats[mark] }

// Banner is the last score error shown to the user, or "".
func (s *Session) Banner() string { return s.banner }

// LoadScores fetches X then O. On success the banner is cleared; on failure it
// is set and the cached stats are kept.
func (s *Session) LoadScores(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Session.LoadScores")
	defer span.End()

	fetched := make(map[game.PlayerMark]models.PlayerStats, 2)
	for _, mark := range []game.PlayerMark{game.PlayerX, game.PlayerO} {
		stats, err := s.client.GetPlayerStats(ctx, string(mark))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to load scores")
			return s.fail(ctx, err)
		}
		fetched[mark] = *stats
	}

	s.stats = fetched
	s.banner = ""
	return nil
}

// Play applies a move for the player to move. When the move ends the game the
// result is recorded on the scoreboard before Play returns. A failed sync keeps
// the finished game, sets the banner and returns an error wrapping ErrScoreSync.
func (s *Session) Play(ctx context.Context, row, col int) (game.Outcome, error) {
	outcome, err := s.game.Move(row, col)
	if err != nil {
		return outcome, err
	}
	if !outcome.IsTerminal() {
		return outcome, nil
	}

	slog.InfoContext(ctx, "Game finished", "game.id", s.game.ID, "game.outcome", string(outcome), "game.moves", s.game.Moves)
	return outcome, s.recordResult(ctx, outcome)
}

// PlayAgain replaces the game with an empty size×size board.
func (s *Session) PlayAgain(size int) error {
	g, err := game.NewGame(size)
	if err != nil {
		return err
	}
	s.game = g
	s.gridSize = size
	return nil
}

// Updates returns the scoreboard updates implied by a terminal outcome.
func Updates(outcome game.Outcome) map[game.PlayerMark]models.UpdateRequest {
	switch outcome {
	case game.XWins, game.OWins:
		return map[game.PlayerMark]models.UpdateRequest{
			outcome.Winner(): {Win: true},
			outcome.Loser():  {Loss: true},
		}
	case game.Draw:
		return map[game.PlayerMark]models.UpdateRequest{
			game.PlayerX: {Draw: true},
			game.PlayerO: {Draw: true},
		}
	}
	return nil
}

// recordResult sends both players' updates concurrently, then refetches the
// totals. A failing update does not cancel the other one.
func (s *Session) recordResult(ctx context.Context, outcome game.Outcome) error {
	ctx, span := tracer.Start(ctx, "Session.recordResult", trace.WithAttributes(
		attribute.String("game.id", s.game.ID),
		attribute.String("game.outcome", string(outcome)),
	))
	defer span.End()

	var g errgroup.Group
	for mark, req := range Updates(outcome) {
		g.Go(func() error {
			if _, err := s.client.UpdatePlayerScore(ctx, string(mark), req); err != nil {
				return fmt.Errorf("update %s: %w", mark, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Score update failed")
		return s.fail(ctx, err)
	}

	return s.LoadScores(ctx)
}

func (s *Session) fail(ctx context.Context, err error) error {
	s.banner = scoreclient.Message(err)
	slog.WarnContext(ctx, "Score sync failed", "game.id", s.game.ID, "error", err)
	return fmt.Errorf("%w: %w", ErrScoreSync, err)
}
