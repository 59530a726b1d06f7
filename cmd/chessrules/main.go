// chessrules counts, verifies and replays chess move sequences with the
// rules engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// Restore default handling after the first interrupt so a second one
	// kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Error("chessrules failed")
		stop()
		os.Exit(1)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// newLogger returns a cli-formatted logger on cfg.LogFile. cfg must have
// been validated.
func newLogger(cfg *config.Config) *log.Logger {
	return &log.Logger{
		Handler: cli.New(cfg.LogFile),
		Level:   log.MustParseLevel(cfg.LogLevel),
	}
}

// run dispatches to the configured mode.
func run(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	switch cfg.Mode {
	case config.ModePlay:
		return runPlay(ctx, cfg, logger)
	case config.ModeBoard:
		g, err := setupGame(cfg, logger)
		if err != nil {
			return err
		}
		return output.WriteBoard(cfg.OutputFile, g.Board())
	}
	return runPerft(ctx, cfg, logger)
}

// setupGame starts a game and plays the configured setup moves on it.
func setupGame(cfg *config.Config, logger log.Interface) (*game.Game, error) {
	g := game.New()
	logger.WithField("game", g.ID).Debug("new game")

	if err := pushMoves(g, cfg.Moves); err != nil {
		return nil, err
	}
	if g.Ply() > 0 {
		logger.WithFields(log.Fields{"game": g.ID, "plies": g.Ply()}).Debug("setup moves played")
	}
	return g, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts, verifies and replays chess move sequences.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  perft  count the legal move tree to -depth (default)\n")
	fmt.Fprintf(os.Stderr, "  play   read one coordinate move per line from stdin;\n")
	fmt.Fprintf(os.Stderr, "         \"undo\", \"moves\" and \"board\" are also accepted\n")
	fmt.Fprintf(os.Stderr, "  board  print the position after -moves\n")
}
