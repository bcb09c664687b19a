package game

import "strings"

// Board is a square grid of marks indexed [row][col].
type Board [][]PlayerMark

// Cell addresses a board position.
type Cell struct {
	Row int
	Col int
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	board := make(Board, size)
	for i := range board {
		board[i] = make([]PlayerMark, size)
	}
	return board
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// InBounds reports whether (row, col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(b) && col >= 0 && col < len(b)
}

// Lines returns every winning line of a size×size board in evaluation order:
// rows, columns, main diagonal, anti-diagonal.
func Lines(size int) [][]Cell {
	lines := make([][]Cell, 0, 2*size+2)
	for r := 0; r < size; r++ {
		line := make([]Cell, size)
		for c := 0; c < size; c++ {
			line[c] = Cell{Row: r, Col: c}
		}
		lines = append(lines, line)
	}
	for c := 0; c < size; c++ {
		line := make([]Cell, size)
		for r := 0; r < size; r++ {
			line[r] = Cell{Row: r, Col: c}
		}
		lines = append(lines, line)
	}
	diag := make([]Cell, size)
	anti := make([]Cell, size)
	for i := 0; i < size; i++ {
		diag[i] = Cell{Row: i, Col: i}
		anti[i] = Cell{Row: i, Col: size - 1 - i}
	}
	return append(lines, diag, anti)
}

// CheckWinner returns the mark owning the first uniform line, or None.
func CheckWinner(board Board) PlayerMark {
	if board.Size() == 0 {
		return None
	}
	for _, line := range Lines(board.Size()) {
		first := board[line[0].Row][line[0].Col]
		if first == None {
			continue
		}
		uniform := true
		for _, cell := range line[1:] {
			if board[cell.Row][cell.Col] != first {
				uniform = false
				break
			}
		}
		if uniform {
			return first
		}
	}
	return None
}

// IsBoardFull reports whether no empty cell remains.
func IsBoardFull(board Board) bool {
	for _, row := range board {
		for _, cell := range row {
			if cell == None {
				return false
			}
		}
	}
	return true
}

// String renders the board with '.' for empty cells, one row per line.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if cell == None {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(cell))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
