package domain

// Piece is the content of a single cell. Player 0 plays Red, player 1 plays Yellow.
type Piece int

const (
	Empty  Piece = 0
	Red    Piece = 1
	Yellow Piece = 2
)

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

func (p Piece) Symbol() byte {
	switch p {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	default:
		return '.'
	}
}

func (p Piece) String() string {
	return string(p.Symbol())
}

// Opponent returns the other player's piece. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

// Player is the 0-based seat that owns the piece.
func (p Piece) Player() int {
	if p == Yellow {
		return 1
	}
	return 0
}

func PieceForPlayer(player int) Piece {
	if player == 1 {
		return Yellow
	}
	return Red
}

// ParsePiece accepts "R"/"Y" in either case.
func ParsePiece(s string) (Piece, error) {
	switch s {
	case "R", "r":
		return Red, nil
	case "Y", "y":
		return Yellow, nil
	default:
		return Empty, ErrInvalidPiece
	}
}

func pieceFromSymbol(b byte) (Piece, bool) {
	switch b {
	case 'R', 'r':
		return Red, true
	case 'Y', 'y':
		return Yellow, true
	case '.', ' ':
		return Empty, true
	default:
		return Empty, false
	}
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrInvalidMove       Error = "invalid move"
	ErrColumnFull        Error = "column is full"
	ErrInvalidPiece      Error = "invalid piece"
	ErrInvalidBoard      Error = "invalid board"
	ErrGameOver          Error = "game is over"
	ErrNotYourTurn       Error = "not your turn"
)
