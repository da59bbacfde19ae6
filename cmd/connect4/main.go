package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/internal/transport/console"
	"github.com/iamasit07/connect4-engine/internal/transport/tui"
	"github.com/iamasit07/connect4-engine/internal/view"
)

func main() {
	// console output is the game itself; logs are opt-in
	log.SetOutput(io.Discard)
	config.LoadEnvFiles()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows := flag.Int("rows", cfg.Rows, "board rows")
	cols := flag.Int("cols", cfg.Columns, "board columns")
	mode := flag.String("mode", cfg.Mode, "game mode: pve (human vs AI) or pvp (human vs human)")
	difficulty := flag.String("difficulty", cfg.Difficulty, "AI difficulty: easy, medium or hard")
	depth := flag.Int("depth", cfg.SearchDepth, "search depth in plies (overrides -difficulty when > 0)")
	workers := flag.Int("workers", cfg.SearchWorkers, "goroutines used to search root moves")
	aiFirst := flag.Bool("ai-first", cfg.AIFirst, "let the AI open the game as player 0")
	ui := flag.String("ui", cfg.UI, "interface: console or tui")
	plain := flag.Bool("plain", false, "disable coloured pieces")
	verbose := flag.Bool("v", cfg.LogVerbose, "log session and engine events to stderr")
	flag.Parse()

	if *verbose {
		log.SetOutput(os.Stderr)
	}

	searchDepth := *depth
	if searchDepth <= 0 {
		searchDepth = bot.ParseDifficulty(*difficulty).Depth()
	}

	engine := bot.NewEngine(bot.WithDepth(searchDepth), bot.WithWorkers(*workers))
	log.Printf("[BOT] Engine ready: depth=%d workers=%d", engine.Depth(), *workers)

	session, err := game.NewSession(game.SessionConfig{
		Rows:    *rows,
		Columns: *cols,
		Mode:    game.ParseMode(*mode),
		Engine:  engine,
		AIFirst: *aiFirst,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDimensions) {
			fmt.Fprintln(os.Stderr, "Error: rows and columns must be positive integers.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	renderer := view.NewRenderer(!*plain)

	if *ui == "tui" {
		if _, err := tea.NewProgram(tui.New(session, renderer), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := console.NewClient(session, os.Stdin, os.Stdout, renderer).Run(); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			fmt.Fprintln(os.Stderr, "\nInput closed before the game finished.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", err)
		os.Exit(1)
	}
}
