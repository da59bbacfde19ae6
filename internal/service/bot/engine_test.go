package bot

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// randomPosition plays up to n random moves from an empty board and returns
// a position that is neither won nor full.
func randomPosition(rng *rand.Rand, rows, cols, n int) *domain.Board {
	for {
		b, _ := domain.NewBoard(rows, cols)
		piece := domain.Red
		for i := 0; i < n; i++ {
			legal := b.LegalColumns()
			if len(legal) == 0 {
				break
			}
			b.Apply(legal[rng.Intn(len(legal))], piece)
			piece = piece.Opponent()
		}
		if !domain.IsWinningState(b) && b.HasEmptyCell() {
			return b
		}
	}
}

// plainMinimax is the unpruned reference search.
func plainMinimax(board *domain.Board, depth int, maximizing bool, maxPiece domain.Piece) (int, int) {
	if winner := domain.Winner(board); winner != domain.Empty {
		if winner == maxPiece {
			return MINIMAX_WIN, -1
		}
		return MINIMAX_LOSS, -1
	}
	if !board.HasEmptyCell() {
		return MINIMAX_DRAW, -1
	}
	if depth == 0 {
		return Evaluate(board, maxPiece), -1
	}

	piece := maxPiece
	best := math.MinInt
	if !maximizing {
		piece = maxPiece.Opponent()
		best = math.MaxInt
	}
	bestCol := -1
	for _, col := range board.LegalColumns() {
		child := board.Clone()
		child.Apply(col, piece)
		v, _ := plainMinimax(child, depth-1, !maximizing, maxPiece)
		if (maximizing && v > best) || (!maximizing && v < best) {
			best = v
			bestCol = col
		}
	}
	return best, bestCol
}

func TestChooseColumnOnEmptyBoard(t *testing.T) {
	b, _ := domain.NewBoard(6, 7)
	before := b.Clone()

	col, err := NewEngine().ChooseColumn(b, domain.Yellow)
	if err != nil {
		t.Fatalf("ChooseColumn: %v", err)
	}
	if col < 0 || col > 6 {
		t.Fatalf("column %d out of [0,6]", col)
	}
	if b.String() != before.String() {
		t.Fatalf("search mutated the real board")
	}
}

func TestChooseColumnCompletesFour(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		"RR.....",
		"YYY...R",
	)
	for _, depth := range []int{1, 2, 3, 4} {
		res, err := NewEngine(WithDepth(depth)).Search(b, domain.Yellow)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if res.Column != 3 || res.Score != MINIMAX_WIN {
			t.Fatalf("depth %d: got column %d score %d, want column 3 score %d", depth, res.Column, res.Score, MINIMAX_WIN)
		}
	}
}

func TestChooseColumnBlocksOpponentFour(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		"YY.....",
		"RRR....",
	)
	for _, depth := range []int{2, 4} {
		col, err := NewEngine(WithDepth(depth)).ChooseColumn(b, domain.Yellow)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		if col != 3 {
			t.Fatalf("depth %d: chose column %d, want block at 3", depth, col)
		}
	}
}

func TestChooseColumnRejectsFinishedPositions(t *testing.T) {
	won := mustBoard(t,
		"....",
		"....",
		"....",
		"RRRR",
	)
	if _, err := NewEngine().ChooseColumn(won, domain.Yellow); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("won board err=%v want ErrGameOver", err)
	}

	full := mustBoard(t,
		"RY",
		"YR",
	)
	if _, err := NewEngine().ChooseColumn(full, domain.Red); !errors.Is(err, domain.ErrGameOver) {
		t.Fatalf("full board err=%v want ErrGameOver", err)
	}

	empty, _ := domain.NewBoard(6, 7)
	if _, err := NewEngine().ChooseColumn(empty, domain.Empty); !errors.Is(err, domain.ErrInvalidPiece) {
		t.Fatalf("empty piece err=%v want ErrInvalidPiece", err)
	}
}

func TestChooseColumnIsAlwaysLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		b := randomPosition(rng, 6, 7, rng.Intn(40))
		piece := domain.PieceForPlayer(rng.Intn(2))
		depth := 1 + rng.Intn(3)

		col, err := NewEngine(WithDepth(depth)).ChooseColumn(b, piece)
		if err != nil {
			t.Fatalf("ChooseColumn: %v\n%s", err, b)
		}
		if !b.IsLegalColumn(col) {
			t.Fatalf("illegal column %d at depth %d\n%s", col, depth, b)
		}
	}
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		b := randomPosition(rng, 4, 4, rng.Intn(12))
		piece := domain.PieceForPlayer(rng.Intn(2))
		depth := 1 + rng.Intn(5)

		wantScore, wantCol := plainMinimax(b, depth, true, piece)
		res, err := NewEngine(WithDepth(depth)).Search(b, piece)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if res.Score != wantScore || res.Column != wantCol {
			t.Fatalf("depth %d piece %v: alpha-beta=(%d,%d) minimax=(%d,%d)\n%s",
				depth, piece, res.Score, res.Column, wantScore, wantCol, b)
		}
	}
}

func TestPruningVisitsFewerNodes(t *testing.T) {
	b, _ := domain.NewBoard(6, 7)
	res, _ := NewEngine(WithDepth(4)).Search(b, domain.Red)

	full := int64(0)
	width := int64(1)
	for d := 0; d <= 4; d++ {
		full += width
		width *= 7
	}
	if res.Nodes >= full {
		t.Fatalf("visited %d nodes, unpruned tree has %d", res.Nodes, full)
	}
}

func TestParallelSearchMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 40; i++ {
		b := randomPosition(rng, 6, 7, rng.Intn(25))
		piece := domain.PieceForPlayer(rng.Intn(2))

		seq, err := NewEngine(WithDepth(3)).Search(b, piece)
		if err != nil {
			t.Fatalf("sequential: %v", err)
		}
		par, err := NewEngine(WithDepth(3), WithWorkers(4)).Search(b, piece)
		if err != nil {
			t.Fatalf("parallel: %v", err)
		}
		if seq.Column != par.Column || seq.Score != par.Score {
			t.Fatalf("sequential=(%d,%d) parallel=(%d,%d)\n%s", seq.Column, seq.Score, par.Column, par.Score, b)
		}
	}
}

func TestParallelSearchSkipsFullColumns(t *testing.T) {
	b := mustBoard(t,
		"R.Y.",
		"Y.R.",
		"R.Y.",
		"Y.R.",
	)
	res, err := NewEngine(WithDepth(3), WithWorkers(4)).Search(b, domain.Red)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if res.Column != 1 && res.Column != 3 {
		t.Fatalf("parallel search picked full column %d", res.Column)
	}
}

func TestEngineOptions(t *testing.T) {
	if d := NewEngine().Depth(); d != DefaultDepth {
		t.Fatalf("default depth=%d want %d", d, DefaultDepth)
	}
	if d := NewEngine(WithDepth(0)).Depth(); d != DefaultDepth {
		t.Fatalf("depth 0 should be ignored, got %d", d)
	}
	if d := NewEngine(WithDepth(6)).Depth(); d != 6 {
		t.Fatalf("depth=%d want 6", d)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]int{
		"easy":   2,
		"medium": DefaultDepth,
		"hard":   6,
		"":       DefaultDepth,
		"insane": DefaultDepth,
	}
	for in, want := range cases {
		if got := ParseDifficulty(in).Depth(); got != want {
			t.Fatalf("ParseDifficulty(%q).Depth()=%d want %d", in, got, want)
		}
	}
}
