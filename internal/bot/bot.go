package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"
)

// Difficulty selects the bot's strategy.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty accepts easy, medium or hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Bot is a computer player for one mark.
type Bot struct {
	Mark       game.PlayerMark
	Difficulty Difficulty
	// ThinkTime delays each move.
	ThinkTime time.Duration
}

// New creates a bot playing mark.
func New(mark game.PlayerMark, difficulty Difficulty) *Bot {
	return &Bot{Mark: mark, Difficulty: difficulty}
}

// NextMove picks a cell for the bot. It fails when it is not the bot's turn or
// the game is over.
func (b *Bot) NextMove(ctx context.Context, g *game.Game) (game.Cell, error) {
	if g.Outcome.IsTerminal() {
		return game.Cell{}, game.ErrGameFinished
	}
	if g.CurrentTurn != b.Mark {
		return game.Cell{}, fmt.Errorf("not %s's turn", b.Mark)
	}

	if b.ThinkTime > 0 {
		select {
		case <-time.After(b.ThinkTime):
		case <-ctx.Done():
			return game.Cell{}, ctx.Err()
		}
	}

	move, ok := CalculateNextMove(g.Board, b.Mark, b.Difficulty)
	if !ok {
		return game.Cell{}, game.ErrInvalidMove
	}
	slog.DebugContext(ctx, "Bot picked move", "game.id", g.ID, "player.id", string(b.Mark), "bot.difficulty", string(b.Difficulty), "move.row", move.Row, "move.col", move.Col)
	return move, nil
}
