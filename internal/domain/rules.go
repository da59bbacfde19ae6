package domain

// scan directions: "\" diagonal, "/" diagonal, vertical, horizontal
var directions = [4][2]int{
	{1, 1},
	{1, -1},
	{1, 0},
	{0, 1},
}

// window reach on each side of the centre cell
const reach = ToWin - 1

// Winner returns the owner of a four-in-a-row, or Empty when there is none.
// Every cell is checked against the bounds-clipped window of offsets -3..+3
// along each direction, so the whole board is scanned on each call.
func Winner(b *Board) Piece {
	for col := 0; col < b.cols; col++ {
		for row := 0; row < b.rows; row++ {
			for _, dir := range directions {
				if p := runThrough(b, row, col, dir[0], dir[1]); p != Empty {
					return p
				}
			}
		}
	}
	return Empty
}

func IsWinningState(b *Board) bool {
	return Winner(b) != Empty
}

// runThrough walks the clipped window around (row, col) and reports the piece
// that appears ToWin times consecutively, if any.
func runThrough(b *Board, row, col, dRow, dCol int) Piece {
	count := 0
	last := Empty
	for offset := -reach; offset <= reach; offset++ {
		r, c := row+dRow*offset, col+dCol*offset
		if !b.inBounds(r, c) {
			continue
		}

		cell := b.cells[r][c]
		if cell != Empty && cell == last {
			count++
		} else if cell != Empty {
			count = 1
		} else {
			count = 0
		}
		last = cell

		if count == ToWin {
			return cell
		}
	}
	return Empty
}
