package bot

import (
	"testing"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	X = game.PlayerX
	O = game.PlayerO
)

// parse builds a board from rows like "X.O".
func parse(rows ...string) game.Board {
	b := game.NewBoard(len(rows))
	for r, row := range rows {
		for c, ch := range row {
			switch ch {
			case 'X':
				b[r][c] = X
			case 'O':
				b[r][c] = O
			}
		}
	}
	return b
}

// moveIn is a helper function to check if a move is in a list of expected moves.
func moveIn(move game.Cell, list []game.Cell) bool {
	for _, item := range list {
		if item == move {
			return true
		}
	}
	return false
}

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name      string
		board     game.Board
		mark      game.PlayerMark
		want      game.Cell
		wantFound bool
	}{
		{
			name:  "No winning move - empty board",
			board: parse("...", "...", "..."),
			mark:  X,
		},
		{
			name:      "X can win - first row",
			board:     parse("XX.", "OO.", "..."),
			mark:      X,
			want:      game.Cell{Row: 0, Col: 2},
			wantFound: true,
		},
		{
			name:      "O can win - second column",
			board:     parse("XO.", "XO.", "..."),
			mark:      O,
			want:      game.Cell{Row: 2, Col: 1},
			wantFound: true,
		},
		{
			name:      "X can win - main diagonal",
			board:     parse("X..", ".X.", "..."),
			mark:      X,
			want:      game.Cell{Row: 2, Col: 2},
			wantFound: true,
		},
		{
			name:      "O can win - anti-diagonal",
			board:     parse("..O", ".O.", "..."),
			mark:      O,
			want:      game.Cell{Row: 2, Col: 0},
			wantFound: true,
		},
		{
			name:  "Blocked line is not a win",
			board: parse("XXO", "...", "..."),
			mark:  X,
		},
		{
			name:      "Gap in the middle of a 5x5 row",
			board:     parse("XX.XX", "O.O.O", ".....", ".....", "....."),
			mark:      X,
			want:      game.Cell{Row: 0, Col: 2},
			wantFound: true,
		},
		{
			name:  "Three of four is not enough on 5x5 with two gaps",
			board: parse("XX..X", ".....", ".....", ".....", "....."),
			mark:  X,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := findWinningMove(tt.board, tt.mark)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEasyMove(t *testing.T) {
	t.Run("Picks the only empty cell", func(t *testing.T) {
		move, ok := easyMove(parse("XOX", "OXO", "OX."))
		require.True(t, ok)
		assert.Equal(t, game.Cell{Row: 2, Col: 2}, move)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		_, ok := easyMove(parse("XOX", "OXO", "OXO"))
		assert.False(t, ok)
	})

	t.Run("Always picks an empty cell", func(t *testing.T) {
		b := parse("X.O.", ".X..", "O..X", "....")
		for range 50 {
			move, ok := easyMove(b)
			require.True(t, ok)
			assert.Equal(t, game.None, b[move.Row][move.Col])
		}
	})
}

func TestMediumMove(t *testing.T) {
	t.Run("Wins before blocking", func(t *testing.T) {
		move, ok := mediumMove(parse("OO.", "XX.", "X.."), O)
		require.True(t, ok)
		assert.Equal(t, game.Cell{Row: 0, Col: 2}, move)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		move, ok := mediumMove(parse("XX.", "O..", "..."), O)
		require.True(t, ok)
		assert.Equal(t, game.Cell{Row: 0, Col: 2}, move)
	})
}

func TestHardMove(t *testing.T) {
	t.Run("Takes the centre of an odd board", func(t *testing.T) {
		move, ok := hardMove(parse("X....", ".....", ".....", ".....", "....."), O)
		require.True(t, ok)
		assert.Equal(t, game.Cell{Row: 2, Col: 2}, move)
	})

	t.Run("Takes one of the four centres of an even board", func(t *testing.T) {
		move, ok := hardMove(parse("....", "....", "....", "...."), X)
		require.True(t, ok)
		assert.True(t, moveIn(move, centres(4)), "got %v", move)
	})

	t.Run("Takes a corner once the centre is gone", func(t *testing.T) {
		move, ok := hardMove(parse("...", ".X.", "..."), O)
		require.True(t, ok)
		assert.True(t, moveIn(move, corners(3)), "got %v", move)
	})

	t.Run("Full board has no move", func(t *testing.T) {
		_, ok := hardMove(parse("XOX", "OXO", "OXO"), X)
		assert.False(t, ok)
	})
}

func TestBestOpenCell(t *testing.T) {
	// The centre lies on three lines O has not touched; no other cell has more.
	move, ok := bestOpenCell(parse("O..", "...", "..."), X)
	require.True(t, ok)
	assert.Equal(t, game.Cell{Row: 1, Col: 1}, move)

	// Lines X already occupies weigh more.
	move, ok = bestOpenCell(parse("X.X.", "O...", "...O", "O..."), X)
	require.True(t, ok)
	assert.Equal(t, game.Cell{Row: 0, Col: 1}, move)
}

func TestCalculateNextMove_PlaysLegalGamesOnEverySize(t *testing.T) {
	for size := game.MinSize; size <= game.MaxSize; size += 4 {
		for _, d := range []Difficulty{Easy, Medium, Hard} {
			g, err := game.NewGame(size)
			require.NoError(t, err)

			for !g.Outcome.IsTerminal() {
				move, ok := CalculateNextMove(g.Board, g.CurrentTurn, d)
				require.True(t, ok)
				_, err := g.Move(move.Row, move.Col)
				require.NoError(t, err)
			}
			assert.LessOrEqual(t, g.Moves, size*size)
		}
	}
}
