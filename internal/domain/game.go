package domain

type MoveRecord struct {
	Player int   `json:"player"`
	Piece  Piece `json:"piece"`
	Column int   `json:"column"`
	Row    int   `json:"row"`
}

type Game struct {
	Board        *Board
	CurrentPiece Piece
	Status       GameStatus
	Winner       Piece
	MoveCount    int
	History      []MoveRecord
}

// NewGame starts an empty game; Red moves first.
func NewGame(rows, cols int) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:        board,
		CurrentPiece: Red,
		Status:       StatusActive,
		Winner:       Empty,
	}, nil
}

// MakeMove plays the current piece into the column. On error the turn does not advance.
func (g *Game) MakeMove(column int) (MoveRecord, error) {
	if g.Status != StatusActive {
		return MoveRecord{}, ErrGameOver
	}

	if !g.Board.IsLegalColumn(column) {
		if column >= 0 && column < g.Board.Cols() {
			return MoveRecord{}, ErrColumnFull
		}
		return MoveRecord{}, ErrInvalidMove
	}

	row, err := g.Board.Apply(column, g.CurrentPiece)
	if err != nil {
		return MoveRecord{}, err
	}

	move := MoveRecord{
		Player: g.CurrentPiece.Player(),
		Piece:  g.CurrentPiece,
		Column: column,
		Row:    row,
	}
	g.MoveCount++
	g.History = append(g.History, move)

	if IsWinningState(g.Board) {
		g.Status = StatusWon
		g.Winner = g.CurrentPiece
		return move, nil
	}

	if !g.Board.HasEmptyCell() {
		g.Status = StatusDraw
		return move, nil
	}

	g.CurrentPiece = g.CurrentPiece.Opponent()
	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
