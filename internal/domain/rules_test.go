package domain

import "testing"

func TestWinnerInAllDirections(t *testing.T) {
	cases := []struct {
		name  string
		board []string
		want  Piece
	}{
		{
			name: "horizontal",
			board: []string{
				".......",
				".......",
				".......",
				".......",
				"YYY....",
				"RRRR...",
			},
			want: Red,
		},
		{
			name: "vertical",
			board: []string{
				".......",
				".......",
				"......Y",
				"......Y",
				"R.....Y",
				"RR....Y",
			},
			want: Yellow,
		},
		{
			name: "backslash diagonal",
			board: []string{
				".......",
				".......",
				"R......",
				"YR.....",
				"YYR....",
				"YYRR...",
			},
			want: Red,
		},
		{
			name: "slash diagonal",
			board: []string{
				".......",
				".......",
				"......Y",
				".....YR",
				"....YRR",
				"...YRRY",
			},
			want: Yellow,
		},
		{
			name: "top row edge",
			board: []string{
				"RRRRYYY",
				"YYYRRRY",
				"RRRYYYR",
				"YYYRRRY",
				"RRRYYYR",
				"YYYRRRY",
			},
			want: Red,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustParse(t, tc.board...)
			if got := Winner(b); got != tc.want {
				t.Fatalf("Winner=%v want %v\n%s", got, tc.want, b)
			}
			if !IsWinningState(b) {
				t.Fatalf("IsWinningState=false for a won board")
			}
		})
	}
}

func TestNoWinnerWithThreeInARow(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		"R......",
		"RY.....",
		"RYY.Y..",
		"YRRRYY.",
	)
	if IsWinningState(b) {
		t.Fatalf("three in a row must not win:\n%s", b)
	}
	if Winner(b) != Empty {
		t.Fatalf("Winner should be Empty")
	}
}

func TestRunsDoNotJoinAcrossAGap(t *testing.T) {
	b := mustParse(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"RRR.RRR",
	)
	if IsWinningState(b) {
		t.Fatalf("gap should break the run:\n%s", b)
	}
}

func TestWinOnNarrowBoards(t *testing.T) {
	tall := mustParse(t, ".", "R", "R", "R", "R")
	if Winner(tall) != Red {
		t.Fatalf("vertical four on a one-column board not detected")
	}

	wide := mustParse(t, "YYYY")
	if Winner(wide) != Yellow {
		t.Fatalf("horizontal four on a one-row board not detected")
	}

	tiny := mustParse(t, "RRR")
	if IsWinningState(tiny) {
		t.Fatalf("board narrower than four cannot be won")
	}
}

func TestFullBoardWithoutFourIsATie(t *testing.T) {
	b := mustParse(t,
		"RRYYRRY",
		"YYRRYYR",
		"RRYYRRY",
		"YYRRYYR",
		"RRYYRRY",
		"YYRRYYR",
	)
	if b.HasEmptyCell() {
		t.Fatalf("board should be full")
	}
	if IsWinningState(b) {
		t.Fatalf("drawn board reported as won:\n%s", b)
	}
	if len(b.LegalColumns()) != 0 {
		t.Fatalf("full board should have no legal columns")
	}
}
