// Package view renders boards as text for the console and TUI clients.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

// each column is drawn 4 characters wide: " X |"
const cellWidth = 4

type Renderer struct {
	color  bool
	styles map[domain.Piece]lipgloss.Style
}

// NewRenderer returns a renderer; with color=false the output is plain ASCII.
func NewRenderer(color bool) *Renderer {
	return &Renderer{
		color: color,
		styles: map[domain.Piece]lipgloss.Style{
			domain.Red:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			domain.Yellow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		},
	}
}

// Piece renders a single cell symbol, blank for empty cells.
func (r *Renderer) Piece(p domain.Piece) string {
	if p == domain.Empty {
		return " "
	}
	if !r.color {
		return p.String()
	}
	return r.styles[p].Render(p.String())
}

// Render draws 1-based column labels, then each row framed by separators.
func (r *Renderer) Render(b *domain.Board) string {
	var sb strings.Builder
	separator := strings.TrimRight(strings.Repeat("--- ", b.Cols()), " ")

	for c := 0; c < b.Cols(); c++ {
		sb.WriteString(fmt.Sprintf(" %-*d", cellWidth-1, c+1))
	}
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			sb.WriteString(" ")
			sb.WriteString(r.Piece(b.At(row, col)))
			sb.WriteString(" ")
			if col != b.Cols()-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Marker draws a 'v' above the selected column, aligned with Render.
func Marker(cols, selected int) string {
	line := []byte(strings.Repeat(" ", cols*cellWidth))
	if selected >= 0 && selected < cols {
		line[selected*cellWidth+1] = 'v'
	}
	return strings.TrimRight(string(line), " ")
}
