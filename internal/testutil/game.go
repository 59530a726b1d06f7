package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// MustParseMove parses a coordinate move and calls t.Fatal on failure.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	mv, err := notation.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return mv
}

// PlayMoves plays a whitespace separated move list on b. Each move must be
// legal in the position immediately before it; the first one that is not
// aborts the test.
func PlayMoves(t *testing.T, b *engine.Board, moves string) {
	t.Helper()
	for i, text := range strings.Fields(moves) {
		mv := MustParseMove(t, text)
		if !b.IsLegal(mv) {
			t.Fatalf("move %d %q: IsLegal() = false, want true", i+1, text)
		}
		if err := b.MakeMove(mv); err != nil {
			t.Fatalf("move %d %q: MakeMove() error: %v", i+1, text, err)
		}
	}
}

// NewBoardAfter returns a fresh starting board with moves played on it.
func NewBoardAfter(t *testing.T, moves string) *engine.Board {
	t.Helper()
	b := engine.NewBoard()
	PlayMoves(t, b, moves)
	return b
}

// LegalMoveSet returns the legal moves of b in coordinate notation.
func LegalMoveSet(b *engine.Board) map[string]bool {
	set := make(map[string]bool)
	for _, mv := range b.GenerateLegalMoves() {
		set[notation.FormatMove(mv)] = true
	}
	return set
}
