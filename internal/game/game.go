// Package game tracks a single game from the starting position: the moves
// played, the positions they led to, and whether the game has ended.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Status is the state of a game from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Result tag values.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

// Game is a sequence of legal moves from the standard starting position.
type Game struct {
	// ID identifies the game in logs and errors.
	ID string

	// Tags for this game (e.g., Event, White, Black, Result).
	Tags map[string]string

	board   engine.Board
	history []chess.Move

	// snapshots[i] is the board before history[i].
	snapshots []engine.Board
}

// New creates a game in the starting position with a fresh ID.
func New() *Game {
	return &Game{
		ID:    uuid.New().String(),
		Tags:  map[string]string{"Result": ResultUnknown},
		board: *engine.NewBoard(),
	}
}

// Board returns a copy of the current position.
func (g *Game) Board() *engine.Board {
	return g.board.Clone()
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// History returns the moves played so far.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []chess.Move {
	return g.board.GenerateLegalMoves()
}

// Status reports whether the side to move is mated, stalemated, or can play on.
func (g *Game) Status() Status {
	switch {
	case g.board.IsCheckmate():
		return Checkmate
	case g.board.IsStalemate():
		return Stalemate
	}
	return Ongoing
}

// Winner returns the winning colour after checkmate. ok is false while the
// game is ongoing or drawn.
func (g *Game) Winner() (winner chess.Colour, ok bool) {
	if g.Status() != Checkmate {
		return chess.White, false
	}
	return g.board.Turn().Opposite(), true
}

// Push parses a move in coordinate notation and plays it.
func (g *Game) Push(text string) error {
	mv, err := notation.ParseMove(text)
	if err != nil {
		return &errors.MoveError{Err: err, GameID: g.ID, Ply: g.Ply() + 1, MoveText: text}
	}
	return g.push(mv, text)
}

// PushMove plays mv. Illegal moves and moves after the game has ended are
// rejected with a *errors.MoveError and leave the game unchanged.
func (g *Game) PushMove(mv chess.Move) error {
	return g.push(mv, notation.FormatMove(mv))
}

func (g *Game) push(mv chess.Move, text string) error {
	if g.Status() != Ongoing {
		return &errors.MoveError{Err: errors.ErrGameOver, GameID: g.ID, Ply: g.Ply() + 1, MoveText: text}
	}

	before := g.board
	if err := g.board.MakeMove(mv); err != nil {
		return &errors.MoveError{Err: err, GameID: g.ID, Ply: g.Ply() + 1, MoveText: text}
	}
	g.snapshots = append(g.snapshots, before)
	g.history = append(g.history, mv)
	g.updateResult()
	return nil
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	n := len(g.history)
	if n == 0 {
		return &errors.MoveError{Err: errors.ErrNothingToUndo, GameID: g.ID}
	}
	g.board = g.snapshots[n-1]
	g.snapshots = g.snapshots[:n-1]
	g.history = g.history[:n-1]
	g.updateResult()
	return nil
}

// updateResult keeps the Result tag in line with Status.
func (g *Game) updateResult() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	switch g.Status() {
	case Checkmate:
		if g.board.Turn() == chess.White {
			g.Tags["Result"] = ResultBlackWins
		} else {
			g.Tags["Result"] = ResultWhiteWins
		}
	case Stalemate:
		g.Tags["Result"] = ResultDraw
	default:
		g.Tags["Result"] = ResultUnknown
	}
}
