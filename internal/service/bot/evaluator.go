package bot

import (
	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	SCORE_FOUR   = 100 // window fully owned
	SCORE_THREE  = 5   // three owned + one empty
	SCORE_TWO    = 2   // two owned + two empty
	SCORE_CENTER = 3   // per piece in the centre column
)

// Evaluate scores a non-terminal position from forPiece's point of view.
// Positive values favour forPiece.
func Evaluate(board *domain.Board, forPiece domain.Piece) int {
	opponent := forPiece.Opponent()
	rows, cols := board.Rows(), board.Cols()
	score := 0

	centerCol := cols / 2
	for row := 0; row < rows; row++ {
		if board.At(row, centerCol) == forPiece {
			score += SCORE_CENTER
		}
	}

	line := make([]domain.Piece, 0, max(rows, cols))

	for row := 0; row < rows; row++ {
		line = line[:0]
		for col := 0; col < cols; col++ {
			line = append(line, board.At(row, col))
		}
		score += scoreLine(line, forPiece) - scoreLine(line, opponent)
	}

	for col := 0; col < cols; col++ {
		line = line[:0]
		for row := 0; row < rows; row++ {
			line = append(line, board.At(row, col))
		}
		score += scoreLine(line, forPiece) - scoreLine(line, opponent)
	}

	// diagonal windows start at each cell and run down-right or up-right
	var window [domain.ToWin]domain.Piece
	for row := 0; row < rows; row++ {
		for col := 0; col+domain.ToWin-1 < cols; col++ {
			if row+domain.ToWin-1 < rows {
				for i := range window {
					window[i] = board.At(row+i, col+i)
				}
				score += scoreWindow(window[:], forPiece) - scoreWindow(window[:], opponent)
			}
			if row-domain.ToWin+1 >= 0 {
				for i := range window {
					window[i] = board.At(row-i, col+i)
				}
				score += scoreWindow(window[:], forPiece) - scoreWindow(window[:], opponent)
			}
		}
	}

	return score
}

// scoreLine slides a four-cell window along the line.
func scoreLine(line []domain.Piece, piece domain.Piece) int {
	score := 0
	for i := 0; i+domain.ToWin <= len(line); i++ {
		score += scoreWindow(line[i:i+domain.ToWin], piece)
	}
	return score
}

func scoreWindow(window []domain.Piece, piece domain.Piece) int {
	own, empty := 0, 0
	for _, cell := range window {
		switch cell {
		case piece:
			own++
		case domain.Empty:
			empty++
		}
	}

	switch {
	case own == 4:
		return SCORE_FOUR
	case own == 3 && empty == 1:
		return SCORE_THREE
	case own == 2 && empty == 2:
		return SCORE_TWO
	default:
		return 0
	}
}
