package view

import (
	"strings"
	"testing"

	"github.com/iamasit07/connect4-engine/internal/domain"
)

func TestRenderPlain(t *testing.T) {
	b, err := domain.ParseBoard([]string{
		"...",
		"R.Y",
	})
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}

	got := NewRenderer(false).Render(b)
	want := strings.Join([]string{
		" 1   2   3  ",
		"--- --- ---",
		"   |   |   ",
		"--- --- ---",
		" R |   | Y ",
		"--- --- ---",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("Render mismatch\n got:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderWideBoardLabels(t *testing.T) {
	b, _ := domain.NewBoard(1, 10)
	header := strings.SplitN(NewRenderer(false).Render(b), "\n", 2)[0]
	if !strings.Contains(header, " 10 ") {
		t.Fatalf("header %q missing column 10", header)
	}
	if len(header) != 10*cellWidth {
		t.Fatalf("header width %d want %d", len(header), 10*cellWidth)
	}
}

func TestMarkerAlignsWithCells(t *testing.T) {
	if got := Marker(3, 2); got != "         v" {
		t.Fatalf("Marker=%q", got)
	}
	if got := Marker(3, -1); got != "" {
		t.Fatalf("Marker out of range=%q want empty", got)
	}
}

func TestPieceBlankForEmpty(t *testing.T) {
	r := NewRenderer(true)
	if r.Piece(domain.Empty) != " " {
		t.Fatalf("empty cell should render blank")
	}
	if !strings.Contains(r.Piece(domain.Red), "R") {
		t.Fatalf("red piece should contain its symbol")
	}
}
