package engine_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func square(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, err := notation.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return pos
}

func assertIllegal(t *testing.T, b *engine.Board, text string) {
	t.Helper()
	if b.IsLegal(testutil.MustParseMove(t, text)) {
		t.Errorf("IsLegal(%s) = true, want false", text)
	}
}

func assertLegalMoves(t *testing.T, b *engine.Board, want ...string) {
	t.Helper()
	wantSet := make(map[string]bool, len(want))
	for _, text := range want {
		wantSet[text] = true
	}
	testutil.AssertEqual(t, testutil.LegalMoveSet(b), wantSet, "legal moves")
}

func TestScenario_BothSidesCastleShort(t *testing.T) {
	b := testutil.NewBoardAfter(t, "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 d2d3 f8c5 e1g1 e8g8")

	pieces := map[string]chess.Piece{
		"g1": chess.W(chess.King),
		"f1": chess.W(chess.Rook),
		"e1": chess.NoPiece,
		"h1": chess.NoPiece,
		"g8": chess.B(chess.King),
		"f8": chess.B(chess.Rook),
		"e8": chess.NoPiece,
		"h8": chess.NoPiece,
	}
	for name, want := range pieces {
		testutil.AssertEqual(t, b.At(square(t, name)), want, "square %s", name)
	}
	testutil.AssertEqual(t, b.KingPosition(chess.White), square(t, "g1"))
	testutil.AssertEqual(t, b.KingPosition(chess.Black), square(t, "g8"))
}

// TestScenario_LongGame replays a game that touches every special rule:
// castling through an attacked square, en passant, checks that must be
// answered, double check, promotion and a final mate.
func TestScenario_LongGame(t *testing.T) {
	b := testutil.NewBoardAfter(t,
		"e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 d2d3 f8c5 b1c3 d7d6 c1e3 c8d7 d1e2 d8e7 "+
			"e1c1 h7h5 f3e5 h5h4 e5f7")

	// The knight on f7 covers d8.
	assertIllegal(t, b, "e8c8")

	testutil.PlayMoves(t, b, "h8h7 g2g4")
	testutil.AssertEqual(t, b.EnPassantCol(), int8(6), "en passant column after g2g4")
	testutil.PlayMoves(t, b, "h4g3")
	testutil.AssertEqual(t, b.At(square(t, "g4")), chess.NoPiece, "pawn taken en passant")
	testutil.PlayMoves(t, b, "f2g3")

	// The h8 rook has moved.
	assertIllegal(t, b, "e8g8")

	testutil.PlayMoves(t, b, "c5e3")
	testutil.AssertTrue(t, b.InCheck(), "white in check from e3")
	assertLegalMoves(t, b, "d1d2", "e2d2", "c1b1", "e2e3")

	testutil.PlayMoves(t, b, "c1b1")
	// f7 is defended by the c4 bishop.
	assertIllegal(t, b, "e8f7")

	testutil.PlayMoves(t, b, "h7h5 e2h5 a7a5 f7d6")
	// Double check: only the king may move.
	assertLegalMoves(t, b, "e8d8", "e8f8")

	testutil.PlayMoves(t, b, "e8f8 h5g6")
	assertIllegal(t, b, "b7b7")

	testutil.PlayMoves(t, b, "b7b6 h2h4 b6b5 h4h5 b5b4 h5h6 b4b3 h6h7 a5a4")
	assertIllegal(t, b, "h7h8")
	testutil.PlayMoves(t, b, "h7h8q")
	testutil.AssertEqual(t, b.At(square(t, "h8")), chess.W(chess.Queen), "promoted piece")
	assertLegalMoves(t, b, "f6g8")

	testutil.PlayMoves(t, b, "f6g8 h8g8")
	assertLegalMoves(t, b)
	testutil.AssertTrue(t, b.IsCheckmate(), "IsCheckmate()")
	testutil.AssertFalse(t, b.IsStalemate(), "IsStalemate()")
}

type castlingRights [4]bool

func rightsOf(b *engine.Board) castlingRights {
	return castlingRights{
		b.CanCastle(chess.White, true),
		b.CanCastle(chess.White, false),
		b.CanCastle(chess.Black, true),
		b.CanCastle(chess.Black, false),
	}
}

func kingSquare(b *engine.Board, colour chess.Colour) chess.Position {
	grid := b.Grid()
	for row := range grid {
		for col, piece := range grid[row] {
			if piece.Is(colour, chess.King) {
				return chess.Pos(int8(row), int8(col))
			}
		}
	}
	return chess.Position{Row: -1, Col: -1}
}

func TestScenario_RandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	const games, maxPlies = 40, 200

	for g := 0; g < games; g++ {
		b := engine.NewBoard()
		for ply := 0; ply < maxPlies; ply++ {
			moves := b.GenerateLegalMoves()
			if len(moves) == 0 {
				if b.InCheck() != b.IsCheckmate() {
					t.Fatalf("game %d ply %d: InCheck() = %v but IsCheckmate() = %v", g, ply, b.InCheck(), b.IsCheckmate())
				}
				break
			}

			before := rightsOf(b)
			mover := b.Turn()
			mv := moves[rng.Intn(len(moves))]
			if err := b.MakeMove(mv); err != nil {
				t.Fatalf("game %d ply %d: MakeMove(%s) error: %v", g, ply, notation.FormatMove(mv), err)
			}

			if b.Turn() != mover.Opposite() {
				t.Fatalf("game %d ply %d: turn did not pass", g, ply)
			}
			if b.IsAttacked(b.KingPosition(mover), mover.Opposite()) {
				t.Fatalf("game %d ply %d: %s left its own king in check with %s", g, ply, mover, notation.FormatMove(mv))
			}
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				if diff := cmp.Diff(kingSquare(b, colour), b.KingPosition(colour)); diff != "" {
					t.Fatalf("game %d ply %d: %s king cache mismatch (-grid +cache):\n%s", g, ply, colour, diff)
				}
			}
			after := rightsOf(b)
			for i := range after {
				if after[i] && !before[i] {
					t.Fatalf("game %d ply %d: castling right %d restored by %s", g, ply, i, notation.FormatMove(mv))
				}
			}
		}
	}
}
