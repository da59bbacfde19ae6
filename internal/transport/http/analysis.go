package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

const (
	MaxDepth   = 8
	MaxRows    = 12
	MaxColumns = 12

	maxBodyBytes = 4 << 10
)

// AnalysisHandler exposes the engine statelessly: every request carries the full position.
type AnalysisHandler struct {
	DefaultDepth int
	Workers      int
}

func NewAnalysisHandler(defaultDepth, workers int) *AnalysisHandler {
	if defaultDepth < 1 || defaultDepth > MaxDepth {
		defaultDepth = bot.DefaultDepth
	}
	return &AnalysisHandler{DefaultDepth: defaultDepth, Workers: workers}
}

type positionRequest struct {
	Board []string `json:"board" binding:"required"`
	Piece string   `json:"piece" binding:"required"`
	Depth int      `json:"depth"`
}

type moveResponse struct {
	Column int   `json:"column"`
	Score  int   `json:"score"`
	Nodes  int64 `json:"nodes"`
	Depth  int   `json:"depth"`
}

type evaluateResponse struct {
	Score        int    `json:"score"`
	Winner       string `json:"winner,omitempty"`
	Terminal     bool   `json:"terminal"`
	LegalColumns []int  `json:"legalColumns"`
}

func (h *AnalysisHandler) parsePosition(c *gin.Context) (*domain.Board, domain.Piece, *positionRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return nil, domain.Empty, nil, false
	}

	if len(req.Board) > MaxRows || (len(req.Board) > 0 && len(req.Board[0]) > MaxColumns) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("board must be at most %dx%d", MaxRows, MaxColumns)})
		return nil, domain.Empty, nil, false
	}

	board, err := domain.ParseBoard(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, domain.Empty, nil, false
	}

	piece, err := domain.ParsePiece(req.Piece)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, domain.Empty, nil, false
	}
	return board, piece, &req, true
}

// BestMove searches the posted position and returns the column to play.
func (h *AnalysisHandler) BestMove(c *gin.Context) {
	board, piece, req, ok := h.parsePosition(c)
	if !ok {
		return
	}

	depth := req.Depth
	if depth == 0 {
		depth = h.DefaultDepth
	}
	if depth < 1 || depth > MaxDepth {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("depth must be between 1 and %d", MaxDepth)})
		return
	}

	engine := bot.NewEngine(bot.WithDepth(depth), bot.WithWorkers(h.Workers))
	res, err := engine.Search(board, piece)
	if err != nil {
		if errors.Is(err, domain.ErrGameOver) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[HTTP] Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, moveResponse{Column: res.Column, Score: res.Score, Nodes: res.Nodes, Depth: depth})
}

// Evaluate returns the static evaluation of the posted position for the piece.
func (h *AnalysisHandler) Evaluate(c *gin.Context) {
	board, piece, _, ok := h.parsePosition(c)
	if !ok {
		return
	}

	resp := evaluateResponse{LegalColumns: board.LegalColumns()}
	if winner := domain.Winner(board); winner != domain.Empty {
		resp.Winner = winner.String()
		resp.Terminal = true
		resp.LegalColumns = []int{}
	} else if !board.HasEmptyCell() {
		resp.Terminal = true
	}
	resp.Score = bot.Evaluate(board, piece)

	c.JSON(http.StatusOK, resp)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
