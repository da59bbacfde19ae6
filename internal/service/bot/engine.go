package bot

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

const DefaultDepth = 4

type Engine struct {
	depth   int
	workers int
}

type Option func(*Engine)

// WithDepth sets the search depth in plies. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth >= 1 {
			e.depth = depth
		}
	}
}

// WithWorkers searches root moves concurrently on up to n goroutines.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{depth: DefaultDepth, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Depth() int { return e.depth }

type Result struct {
	Column int   `json:"column"`
	Score  int   `json:"score"`
	Nodes  int64 `json:"nodes"`
}

// ChooseColumn picks the column to play for piece. The board is not modified.
func (e *Engine) ChooseColumn(board *domain.Board, piece domain.Piece) (int, error) {
	res, err := e.Search(board, piece)
	if err != nil {
		return -1, err
	}
	return res.Column, nil
}

// Search runs the fixed-depth search with piece as the maximizing side.
func (e *Engine) Search(board *domain.Board, piece domain.Piece) (Result, error) {
	if piece != domain.Red && piece != domain.Yellow {
		return Result{}, domain.ErrInvalidPiece
	}
	if domain.IsWinningState(board) || !board.HasEmptyCell() {
		return Result{}, domain.ErrGameOver
	}

	if e.workers > 1 {
		return e.searchParallel(board, piece)
	}

	s := &searcher{maxPiece: piece}
	score, col := s.minimax(board.Clone(), e.depth, true, math.MinInt, math.MaxInt)
	return Result{Column: col, Score: score, Nodes: s.nodes}, nil
}

// searchParallel scores every root move with a full window on its own clone and
// keeps the first column with the highest value, matching the sequential choice.
func (e *Engine) searchParallel(board *domain.Board, piece domain.Piece) (Result, error) {
	validColumns := board.LegalColumns()
	scores := make([]int, len(validColumns))
	nodes := make([]int64, len(validColumns))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, col := range validColumns {
		i, col := i, col
		g.Go(func() error {
			child := board.Clone()
			if _, err := child.Apply(col, piece); err != nil {
				return fmt.Errorf("root column %d: %w", col, err)
			}

			s := &searcher{maxPiece: piece}
			scores[i], _ = s.minimax(child, e.depth-1, false, math.MinInt, math.MaxInt)
			nodes[i] = s.nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Column: validColumns[0], Score: math.MinInt, Nodes: 1}
	for i, col := range validColumns {
		if scores[i] > res.Score {
			res.Score = scores[i]
			res.Column = col
		}
		res.Nodes += nodes[i]
	}
	return res, nil
}
