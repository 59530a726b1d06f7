// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Mode selection
	mode  = flag.String("mode", string(config.ModePerft), "Mode: perft, play or board")
	moves = flag.String("moves", "", "Coordinate moves played from the start position first (e.g. \"e2e4 e7e5\")")

	// Perft options
	depth   = flag.Int("depth", 4, "Perft depth")
	divide  = flag.Bool("divide", false, "Print node counts below each root move")
	workers = flag.Int("workers", 1, "Goroutines for perft (0 = one per CPU)")
	verify  = flag.Bool("verify", false, "Compare move generation with the reference generator instead of counting")
	hashMax = flag.Int("hash", 0, "Transposition table entries for perft (0 = off)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Write perft results as JSON")
	showBoard  = flag.Bool("board", false, "Print the board after the setup moves and after each move in play mode")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: debug, info, warn, error")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed command-line flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Mode = config.Mode(*mode)
	cfg.Moves = *moves
	cfg.LogLevel = *logLevel
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.Verify = *verify
	cfg.Perft.HashEntries = *hashMax
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
}
