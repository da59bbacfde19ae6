// Package console runs a game over line-based text input and output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/internal/view"
)

type Client struct {
	session  *game.Session
	in       *bufio.Scanner
	out      io.Writer
	renderer *view.Renderer
}

func NewClient(session *game.Session, in io.Reader, out io.Writer, renderer *view.Renderer) *Client {
	return &Client{
		session:  session,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: renderer,
	}
}

// Run plays the session to completion. Running out of input before the game
// ends returns io.ErrUnexpectedEOF.
func (c *Client) Run() error {
	c.draw()

	for !c.session.IsFinished() {
		if c.session.IsAITurn() {
			move, err := c.session.PlayAI()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Player %d (%v), chooses column %d\n", move.Player, move.Piece, move.Column+1)
		} else {
			accepted, err := c.humanTurn()
			if err != nil {
				return err
			}
			if !accepted {
				continue
			}
		}

		c.draw()
	}

	if c.session.Status() == domain.StatusWon {
		fmt.Fprintf(c.out, "Player %d wins!\n", c.session.Winner().Player())
	} else {
		fmt.Fprintln(c.out, "The game is a tie!")
	}
	return nil
}

// humanTurn prompts once. It reports false when the input was rejected and the
// same player must try again.
func (c *Client) humanTurn() (bool, error) {
	piece := c.session.CurrentPiece()
	cols := c.session.Board().Cols()
	fmt.Fprintf(c.out, "Player %d (%v), choose your column (1-%d): ", piece.Player(), piece, cols)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return false, err
		}
		return false, io.ErrUnexpectedEOF
	}

	position, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
	if err != nil {
		fmt.Fprintln(c.out, "Error: Please enter a valid integer for the column.")
		return false, nil
	}
	if position < 1 || position > cols {
		fmt.Fprintf(c.out, "Error: Column must be between 1 and %d.\n", cols)
		return false, nil
	}

	if _, err := c.session.PlayHuman(position - 1); err != nil {
		if errors.Is(err, domain.ErrColumnFull) {
			fmt.Fprintln(c.out, "Column is full. Choose another column.")
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Client) draw() {
	fmt.Fprint(c.out, c.renderer.Render(c.session.Board()))
}
