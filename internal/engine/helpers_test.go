package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

var kindByLetter = map[byte]chess.PieceKind{
	'P': chess.Pawn, 'N': chess.Knight, 'B': chess.Bishop,
	'R': chess.Rook, 'Q': chess.Queen, 'K': chess.King,
}

// diagram builds a board from eight ranks, rank 8 first, written with the
// board letters ("rnbqkbnr", "....P..."). Both kings must be present.
// Castling rights are off and no en-passant capture is pending.
func diagram(t *testing.T, turn chess.Colour, ranks ...string) *Board {
	t.Helper()
	if len(ranks) != chess.BoardSize {
		t.Fatalf("diagram has %d ranks, want 8", len(ranks))
	}

	b := &Board{enPassantCol: NoEnPassant, turn: turn}
	kings := 0
	for row, rank := range ranks {
		if len(rank) != chess.BoardSize {
			t.Fatalf("rank %q has %d squares, want 8", rank, len(rank))
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := rank[col]
			if c == '.' {
				continue
			}
			colour := chess.White
			upper := c
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
				upper = c - ('a' - 'A')
			}
			kind, ok := kindByLetter[upper]
			if !ok {
				t.Fatalf("unknown piece %q in rank %q", c, rank)
			}
			pos := chess.Pos(int8(row), int8(col))
			b.set(pos, chess.Piece{Kind: kind, Colour: colour})
			if kind == chess.King {
				kings++
				if colour == chess.White {
					b.whiteKing = pos
				} else {
					b.blackKing = pos
				}
			}
		}
	}
	if kings != 2 {
		t.Fatalf("diagram has %d kings, want 2", kings)
	}
	return b
}

// mv parses a coordinate move.
func mv(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := notation.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

// sq parses a square name.
func sq(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, err := notation.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return pos
}

// play makes each move in a whitespace separated list, failing on the
// first illegal one.
func play(t *testing.T, b *Board, moves string) *Board {
	t.Helper()
	for _, text := range strings.Fields(moves) {
		if err := b.MakeMove(mv(t, text)); err != nil {
			t.Fatalf("MakeMove(%s) error: %v", text, err)
		}
	}
	return b
}

// moveSet formats moves into a set of coordinate strings.
func moveSet(moves []chess.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[notation.FormatMove(m)] = true
	}
	return set
}
