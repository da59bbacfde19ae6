package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/pkg/uid"
)

type Mode string

const (
	ModePvP Mode = "pvp" // human vs human
	ModePvE Mode = "pve" // human vs AI
)

// ParseMode defaults to human vs AI for anything unrecognised.
func ParseMode(mode string) Mode {
	if mode == string(ModePvP) {
		return ModePvP
	}
	return ModePvE
}

// MoveChooser picks a column for the given piece without modifying the board.
type MoveChooser interface {
	ChooseColumn(board *domain.Board, piece domain.Piece) (int, error)
}

type SessionConfig struct {
	Rows    int
	Columns int
	Mode    Mode
	Engine  MoveChooser
	AIFirst bool // AI plays Red and opens the game
}

// Session owns a single game and drives its turns. It is safe for concurrent use.
type Session struct {
	GameID     string
	Mode       Mode
	AIPiece    domain.Piece // Empty in human vs human games
	CreatedAt  time.Time
	FinishedAt time.Time

	game   *domain.Game
	engine MoveChooser
	cfg    SessionConfig
	mu     sync.Mutex
}

func NewSession(cfg SessionConfig) (*Session, error) {
	switch cfg.Mode {
	case "":
		cfg.Mode = ModePvE
	case ModePvE, ModePvP:
	default:
		return nil, fmt.Errorf("unknown game mode %q", cfg.Mode)
	}
	if cfg.Mode == ModePvE && cfg.Engine == nil {
		return nil, fmt.Errorf("human vs AI session requires an engine")
	}

	newGame, err := domain.NewGame(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	s := &Session{
		GameID:    uid.GenerateGameID(),
		Mode:      cfg.Mode,
		AIPiece:   domain.Empty,
		CreatedAt: time.Now(),
		game:      newGame,
		engine:    cfg.Engine,
		cfg:       cfg,
	}
	if cfg.Mode == ModePvE {
		aiSeat := 1
		if cfg.AIFirst {
			aiSeat = 0
		}
		s.AIPiece = domain.PieceForPlayer(aiSeat)
	}

	log.Printf("[SESSION] Created session %s: mode=%s board=%dx%d ai=%v", s.GameID, s.Mode, cfg.Rows, cfg.Columns, s.AIPiece)
	return s, nil
}

// Restart returns a fresh session with the same configuration.
func (s *Session) Restart() (*Session, error) {
	return NewSession(s.cfg)
}

func (s *Session) isAITurnLocked() bool {
	return s.AIPiece != domain.Empty && s.game.CurrentPiece == s.AIPiece && !s.game.IsFinished()
}

func (s *Session) IsAITurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAITurnLocked()
}

// PlayHuman applies the current human player's move. The turn is unchanged on error.
func (s *Session) PlayHuman(column int) (domain.MoveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.IsFinished() {
		return domain.MoveRecord{}, domain.ErrGameOver
	}
	if s.isAITurnLocked() {
		return domain.MoveRecord{}, domain.ErrNotYourTurn
	}
	return s.applyLocked(column)
}

// PlayAI asks the engine for a column and plays it on the real board.
func (s *Session) PlayAI() (domain.MoveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.IsFinished() {
		return domain.MoveRecord{}, domain.ErrGameOver
	}
	if !s.isAITurnLocked() {
		return domain.MoveRecord{}, domain.ErrNotYourTurn
	}

	start := time.Now()
	column, err := s.engine.ChooseColumn(s.game.Board.Clone(), s.AIPiece)
	if err != nil {
		return domain.MoveRecord{}, fmt.Errorf("engine failed to choose a column: %w", err)
	}
	log.Printf("[BOT] Session %s: %v chose column %d in %s", s.GameID, s.AIPiece, column, time.Since(start))

	return s.applyLocked(column)
}

func (s *Session) applyLocked(column int) (domain.MoveRecord, error) {
	move, err := s.game.MakeMove(column)
	if err != nil {
		return domain.MoveRecord{}, err
	}

	if s.game.IsFinished() {
		s.FinishedAt = time.Now()
		duration := s.FinishedAt.Sub(s.CreatedAt).Round(time.Second)
		if s.game.Status == domain.StatusWon {
			log.Printf("[SESSION] Game %s won by player %d (%v) after %d moves in %s",
				s.GameID, s.game.Winner.Player(), s.game.Winner, s.game.MoveCount, duration)
		} else {
			log.Printf("[SESSION] Game %s ended in a draw after %d moves in %s", s.GameID, s.game.MoveCount, duration)
		}
	}
	return move, nil
}

func (s *Session) Status() domain.GameStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status
}

func (s *Session) Winner() domain.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Winner
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.IsFinished()
}

// CurrentPiece is the piece whose turn it is (the last mover once the game is over).
func (s *Session) CurrentPiece() domain.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.CurrentPiece
}

// Board returns a copy of the game board.
func (s *Session) Board() *domain.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board.Clone()
}

func (s *Session) History() []domain.MoveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.MoveRecord(nil), s.game.History...)
}

func (s *Session) MoveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MoveCount
}
