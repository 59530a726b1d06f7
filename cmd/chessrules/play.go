package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Play mode commands besides moves.
const (
	cmdUndo  = "undo"
	cmdMoves = "moves"
	cmdBoard = "board"
)

// pushMoves plays a whitespace separated move list on g.
func pushMoves(g *game.Game, moves string) error {
	for _, text := range strings.Fields(moves) {
		if err := g.Push(text); err != nil {
			return err
		}
	}
	return nil
}

// runPlay reads moves from cfg.InputFile, one or more per line, and reports
// the game state after each. Rejected moves are logged and skipped. It
// returns ctx.Err() if ctx is done before the input ends.
func runPlay(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	g, err := setupGame(cfg, logger)
	if err != nil {
		return err
	}
	w := cfg.OutputFile
	if cfg.Output.ShowBoard {
		if err := output.WriteBoard(w, g.Board()); err != nil {
			return err
		}
	}

	lines, errc := readLines(ctx, cfg.InputFile)
	for done := false; !done; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				done = true
				continue
			}
			for _, text := range strings.Fields(line) {
				if err := playCommand(cfg, g, text, logger); err != nil {
					return err
				}
			}
		}
	}
	if err := <-errc; err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "result %s after %d plies: %s\n", g.Tags["Result"], g.Ply(), notation.FormatMoves(g.History()))
	return err
}

// readLines scans r on its own goroutine so a blocked read cannot hold up
// cancellation. errc receives the scan result before lines is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// playCommand handles one token of play input. Only write failures are
// returned; rule violations are logged.
func playCommand(cfg *config.Config, g *game.Game, text string, logger log.Interface) error {
	w := cfg.OutputFile
	entry := logger.WithFields(log.Fields{"game": g.ID, "input": text})

	switch strings.ToLower(text) {
	case cmdUndo:
		if err := g.Undo(); err != nil {
			entry.WithError(err).Warn("undo rejected")
			return nil
		}
		_, err := fmt.Fprintf(w, "undo, %s to move\n", g.Board().Turn())
		return err
	case cmdMoves:
		_, err := fmt.Fprintln(w, notation.FormatMoves(g.LegalMoves()))
		return err
	case cmdBoard:
		return output.WriteBoard(w, g.Board())
	}

	if err := g.Push(text); err != nil {
		switch {
		case errors.Is(err, chesserrors.ErrGameOver):
			entry.WithError(err).Warn("game already finished")
		case errors.Is(err, chesserrors.ErrInvalidNotation):
			entry.WithError(err).Warn("could not parse move")
		default:
			entry.WithError(err).Warn("move rejected")
		}
		return nil
	}
	entry.WithField("ply", g.Ply()).Debug("move played")

	if _, err := fmt.Fprintf(w, "%d. %s %s\n", g.Ply(), text, describe(g)); err != nil {
		return err
	}
	if cfg.Output.ShowBoard {
		return output.WriteBoard(w, g.Board())
	}
	return nil
}

// describe summarises the position for the side now to move.
func describe(g *game.Game) string {
	b := g.Board()
	switch g.Status() {
	case game.Checkmate:
		winner, _ := g.Winner()
		return fmt.Sprintf("checkmate, %s wins", winner)
	case game.Stalemate:
		return "stalemate"
	}
	if b.InCheck() {
		return fmt.Sprintf("check, %s to move", b.Turn())
	}
	return fmt.Sprintf("%s to move", b.Turn())
}
