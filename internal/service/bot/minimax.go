package bot

import (
	"math"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const (
	MINIMAX_WIN  = 1000
	MINIMAX_LOSS = -1000
	MINIMAX_DRAW = 0
)

// searcher holds the per-branch state of one search. It is never shared
// between goroutines.
type searcher struct {
	maxPiece domain.Piece
	nodes    int64
}

// minimax implements the minimax algorithm with alpha-beta pruning.
// It returns the value of the position and the column achieving it (-1 at terminal nodes).
func (s *searcher) minimax(board *domain.Board, depth int, isMaximizing bool, alpha, beta int) (int, int) {
	s.nodes++

	// Terminal conditions
	if winner := domain.Winner(board); winner != domain.Empty {
		if winner == s.maxPiece {
			return MINIMAX_WIN, -1
		}
		return MINIMAX_LOSS, -1
	}
	if !board.HasEmptyCell() {
		return MINIMAX_DRAW, -1
	}
	if depth == 0 {
		return Evaluate(board, s.maxPiece), -1
	}

	validColumns := board.LegalColumns()
	if len(validColumns) == 0 {
		return MINIMAX_DRAW, -1
	}

	bestCol := validColumns[0]
	if isMaximizing {
		maxEval := math.MinInt
		for _, col := range validColumns {
			child := board.Clone()
			child.Apply(col, s.maxPiece)

			eval, _ := s.minimax(child, depth-1, false, alpha, beta)
			if eval > maxEval {
				maxEval = eval
				bestCol = col
			}
			alpha = max(alpha, maxEval)

			if alpha >= beta {
				break // Beta cutoff
			}
		}
		return maxEval, bestCol
	}

	minEval := math.MaxInt
	opponent := s.maxPiece.Opponent()
	for _, col := range validColumns {
		child := board.Clone()
		child.Apply(col, opponent)

		eval, _ := s.minimax(child, depth-1, true, alpha, beta)
		if eval < minEval {
			minEval = eval
			bestCol = col
		}
		beta = min(beta, minEval)

		if alpha >= beta {
			break // Alpha cutoff
		}
	}
	return minEval, bestCol
}
