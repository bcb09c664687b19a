package game

import (
	"errors"
	"fmt"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/validator"

	"github.com/google/uuid"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// Outcome is the state of a game as seen by the scoreboard.
type Outcome string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game outcomes
	InProgress Outcome = "in_progress"
	XWins      Outcome = "x_wins"
	OWins      Outcome = "o_wins"
	Draw       Outcome = "draw"

	// Grid size boundaries. Keep the gameOptions tag in step.
	MinSize     = 3
	MaxSize     = 15
	DefaultSize = 3
)

var (
	ErrGameFinished = errors.New("game already finished")
	ErrInvalidMove  = errors.New("invalid move")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrInvalidSize  = errors.New("invalid grid size")
)

// gameOptions mirrors MinSize and MaxSize.
type gameOptions struct {
	Size int `validate:"min=3,max=15"`
}

// Game is the state machine for a single game. It is not safe for concurrent use.
type Game struct {
	ID          string
	Board       Board
	CurrentTurn PlayerMark
	Outcome     Outcome
	Moves       int
}

// NewGame creates an empty size×size game with X to move.
func NewGame(size int) (*Game, error) {
	if err := validator.GetValidator().Struct(gameOptions{Size: size}); err != nil {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidSize, size, MinSize, MaxSize)
	}

	return &Game{
		ID:          uuid.New().String(),
		Board:       NewBoard(size),
		CurrentTurn: PlayerX,
		Outcome:     InProgress,
	}, nil
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.Board.Size()
}

// Move places the current player's mark and returns the resulting outcome.
func (g *Game) Move(row, col int) (Outcome, error) {
	if g.Outcome.IsTerminal() {
		return g.Outcome, ErrGameFinished
	}
	if !g.Board.InBounds(row, col) {
		return g.Outcome, fmt.Errorf("%w: (%d,%d)", ErrInvalidMove, row, col)
	}
	if g.Board[row][col] != None {
		return g.Outcome, fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, row, col)
	}

	g.Board[row][col] = g.CurrentTurn
	g.Moves++

	// No line can be complete before the first player has placed N marks.
	if g.Moves >= MinMovesForWin(g.Size()) {
		g.Outcome = g.evaluate()
	}
	if !g.Outcome.IsTerminal() {
		g.CurrentTurn = g.CurrentTurn.Opponent()
	}

	return g.Outcome, nil
}

func (g *Game) evaluate() Outcome {
	switch CheckWinner(g.Board) {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	}
	if IsBoardFull(g.Board) {
		return Draw
	}
	return InProgress
}

// Winner returns the winning mark, or None for an unfinished game or a draw.
func (g *Game) Winner() PlayerMark {
	return g.Outcome.Winner()
}

// MinMovesForWin is the smallest move count at which a size×size game can be won.
func MinMovesForWin(size int) int {
	return 2*size - 1
}

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// IsTerminal reports whether the game has ended.
func (o Outcome) IsTerminal() bool {
	return o == XWins || o == OWins || o == Draw
}

// Winner returns the winning mark for a won outcome.
func (o Outcome) Winner() PlayerMark {
	switch o {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return None
	}
}

// Loser returns the losing mark for a won outcome.
func (o Outcome) Loser() PlayerMark {
	return o.Winner().Opponent()
}
