package bot

import (
	"math/rand/v2"

	"ctchen222/Tic-Tac-Toe-Scoreboard/internal/game"
)

// CalculateNextMove determines the bot's next move based on the specified difficulty.
// ok is false when the board has no empty cell.
func CalculateNextMove(board game.Board, botMark game.PlayerMark, difficulty Difficulty) (move game.Cell, ok bool) {
	switch difficulty {
	case Easy:
		return easyMove(board)
	case Medium:
		return mediumMove(board, botMark)
	default:
		return hardMove(board, botMark)
	}
}

func emptyCells(board game.Board) []game.Cell {
	var cells []game.Cell
	for r, rowData := range board {
		for c, cell := range rowData {
			if cell == game.None {
				cells = append(cells, game.Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

func pick(cells []game.Cell) (game.Cell, bool) {
	if len(cells) == 0 {
		return game.Cell{}, false
	}
	return cells[rand.IntN(len(cells))], true
}

// easyMove makes a completely random move.
func easyMove(board game.Board) (game.Cell, bool) {
	return pick(emptyCells(board))
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(board game.Board, botMark game.PlayerMark) (game.Cell, bool) {
	if move, ok := findWinningMove(board, botMark); ok {
		return move, true
	}
	if move, ok := findWinningMove(board, botMark.Opponent()); ok {
		return move, true
	}
	return easyMove(board)
}

// hardMove wins, blocks, takes the centre, then a corner, then the cell that
// extends the most lines still open to the bot.
func hardMove(board game.Board, botMark game.PlayerMark) (game.Cell, bool) {
	if move, ok := findWinningMove(board, botMark); ok {
		return move, true
	}
	if move, ok := findWinningMove(board, botMark.Opponent()); ok {
		return move, true
	}

	size := board.Size()
	if move, ok := pick(free(board, centres(size))); ok {
		return move, true
	}
	if move, ok := pick(free(board, corners(size))); ok {
		return move, true
	}
	return bestOpenCell(board, botMark)
}

// findWinningMove returns the empty cell completing a line in which mark holds
// every other cell.
func findWinningMove(board game.Board, mark game.PlayerMark) (game.Cell, bool) {
	for _, line := range game.Lines(board.Size()) {
		var gap game.Cell
		gaps, owned := 0, 0
		for _, cell := range line {
			switch board[cell.Row][cell.Col] {
			case mark:
				owned++
			case game.None:
				gaps++
				gap = cell
			}
		}
		if owned == len(line)-1 && gaps == 1 {
			return gap, true
		}
	}
	return game.Cell{}, false
}

// bestOpenCell scores each empty cell by the lines through it that the
// opponent has not touched, weighting lines the bot already occupies.
func bestOpenCell(board game.Board, botMark game.PlayerMark) (game.Cell, bool) {
	scores := make(map[game.Cell]int)
	for _, line := range game.Lines(board.Size()) {
		owned, blocked := 0, false
		for _, cell := range line {
			switch board[cell.Row][cell.Col] {
			case botMark:
				owned++
			case botMark.Opponent():
				blocked = true
			}
		}
		if blocked {
			continue
		}
		for _, cell := range line {
			if board[cell.Row][cell.Col] == game.None {
				scores[cell] += 1 + owned*owned
			}
		}
	}

	var best []game.Cell
	top := -1
	for _, cell := range emptyCells(board) {
		switch s := scores[cell]; {
		case s > top:
			top = s
			best = []game.Cell{cell}
		case s == top:
			best = append(best, cell)
		}
	}
	return pick(best)
}

func centres(size int) []game.Cell {
	mid := size / 2
	if size%2 == 1 {
		return []game.Cell{{Row: mid, Col: mid}}
	}
	return []game.Cell{{Row: mid - 1, Col: mid - 1}, {Row: mid - 1, Col: mid}, {Row: mid, Col: mid - 1}, {Row: mid, Col: mid}}
}

func corners(size int) []game.Cell {
	last := size - 1
	return []game.Cell{{Row: 0, Col: 0}, {Row: 0, Col: last}, {Row: last, Col: 0}, {Row: last, Col: last}}
}

func free(board game.Board, cells []game.Cell) []game.Cell {
	var out []game.Cell
	for _, c := range cells {
		if board[c.Row][c.Col] == game.None {
			out = append(out, c)
		}
	}
	return out
}
