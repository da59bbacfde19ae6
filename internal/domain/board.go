package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is a rows x cols grid where row 0 is the top and rows-1 the bottom.
// Pieces in a column always form a contiguous run from the bottom up.
type Board struct {
	rows  int
	cols  int
	cells [][]Piece
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	cells := make([][]Piece, rows)
	for i := range cells {
		cells[i] = make([]Piece, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

// ParseDimensions converts textual dimensions, rejecting anything that is not a positive whole number.
func ParseDimensions(rows, cols string) (int, int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q is not a whole number", ErrInvalidDimensions, rows)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cols))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: columns %q is not a whole number", ErrInvalidDimensions, cols)
	}
	if r <= 0 || c <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r, c)
	}
	return r, c, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) At(row, col int) Piece {
	return b.cells[row][col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) IsLegalColumn(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}

	// here cells[0] represents the top row
	return b.cells[0][column] == Empty
}

// Apply drops the piece into the lowest empty row of the column and returns that row.
// The board is left untouched when an error is returned.
func (b *Board) Apply(column int, piece Piece) (int, error) {
	if piece != Red && piece != Yellow {
		return -1, ErrInvalidPiece
	}
	if column < 0 || column >= b.cols {
		return -1, ErrInvalidMove
	}

	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = piece
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) HasEmptyCell() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Empty {
				return true
			}
		}
	}
	return false
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Piece, b.rows)
	for i := range b.cells {
		cells[i] = make([]Piece, b.cols)
		copy(cells[i], b.cells[i])
	}
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// LegalColumns lists playable columns in ascending order.
func (b *Board) LegalColumns() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.IsLegalColumn(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// equal reports whether both boards have the same shape and contents.
func (b *Board) equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// count returns how many cells hold the piece.
func (b *Board) count(piece Piece) int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == piece {
				n++
			}
		}
	}
	return n
}

// Lines renders one string per row, top first, '.' for empty cells.
func (b *Board) Lines() []string {
	lines := make([]string, b.rows)
	buf := make([]byte, b.cols)
	for r, row := range b.cells {
		for c, cell := range row {
			buf[c] = cell.Symbol()
		}
		lines[r] = string(buf)
	}
	return lines
}

func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}

// ParseBoard is the inverse of Lines. Spaces are accepted as empty cells.
// Rows must share a width and respect gravity.
func ParseBoard(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}

	board, err := NewBoard(len(lines), len(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}

	for r, line := range lines {
		if len(line) != board.cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidBoard, r, len(line), board.cols)
		}
		for c := 0; c < len(line); c++ {
			piece, ok := pieceFromSymbol(line[c])
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q at row %d column %d", ErrInvalidBoard, line[c], r, c)
			}
			board.cells[r][c] = piece
		}
	}

	for c := 0; c < board.cols; c++ {
		for r := 0; r < board.rows-1; r++ {
			if board.cells[r][c] != Empty && board.cells[r+1][c] == Empty {
				return nil, fmt.Errorf("%w: floating piece at row %d column %d", ErrInvalidBoard, r, c)
			}
		}
	}

	return board, nil
}
