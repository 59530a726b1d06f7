package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// isLegalKing accepts a single step onto an empty or enemy square, or a
// two-column castling move along the home rank.
func (b *Board) isLegalKing(mv chess.Move) bool {
	d := mv.Delta().Abs()
	if d.Row <= 1 && d.Col <= 1 {
		return b.isEnemyOrEmpty(mv.To)
	}
	if d.Row == 0 && d.Col == 2 {
		return b.canCastle(mv)
	}
	return false
}

// canCastle checks the castling right for the wing, that the king is not in
// check and does not cross an attacked square, and that nothing stands
// between king and rook. Safety of the destination is left to the general
// post-move king test.
func (b *Board) canCastle(mv chess.Move) bool {
	short := mv.To.Col > mv.From.Col
	if !b.CanCastle(b.turn, short) {
		return false
	}

	opponent := b.opponent()
	// Castling out of check is refused on top of the rights and path tests.
	if b.IsAttacked(mv.From, opponent) {
		return false
	}
	if b.IsAttacked(mv.From.Add(mv.To).Div(2), opponent) {
		return false
	}

	// The rook must be at home and able to slide along the rank onto the
	// king's square.
	rook := rookHome(b.turn, short)
	if !b.At(rook).Is(b.turn, chess.Rook) {
		return false
	}
	king := b.KingPosition(b.turn)
	return slices.Contains(b.appendLineMoves(nil, rook, rankDirs), chess.Move{From: rook, To: king})
}

// rookHome returns the starting square of the colour's rook on a wing.
func rookHome(colour chess.Colour, short bool) chess.Position {
	switch {
	case colour == chess.White && short:
		return whiteRookShort
	case colour == chess.White:
		return whiteRookLong
	case short:
		return blackRookShort
	default:
		return blackRookLong
	}
}

// castleRookMove returns where the rook goes when the king castles with mv.
func castleRookMove(colour chess.Colour, mv chess.Move) (from, to chess.Position) {
	short := mv.To.Col > mv.From.Col
	from = rookHome(colour, short)
	to = mv.To
	if short {
		to.Col--
	} else {
		to.Col++
	}
	return from, to
}

// revokeCastlingFor clears the right tied to a rook home square whenever a
// move starts or ends there, whatever piece is involved.
func (b *Board) revokeCastlingFor(pos chess.Position) {
	switch pos {
	case whiteRookShort:
		b.whiteShort = false
	case whiteRookLong:
		b.whiteLong = false
	case blackRookShort:
		b.blackShort = false
	case blackRookLong:
		b.blackLong = false
	}
}

// revokeCastling clears both rights of a colour after its king moves.
func (b *Board) revokeCastling(colour chess.Colour) {
	if colour == chess.White {
		b.whiteShort = false
		b.whiteLong = false
		return
	}
	b.blackShort = false
	b.blackLong = false
}
