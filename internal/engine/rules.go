package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsLegal reports whether mv is a legal move for the side to move.
// Checks run in order and the first failure rejects the move: bounds,
// ownership of the origin square, the piece's movement rules, and finally
// whether the mover's own king would be left attacked.
func (b *Board) IsLegal(mv chess.Move) bool {
	if mv.From.OutOfBounds() || mv.To.OutOfBounds() {
		return false
	}
	if mv.From == mv.To {
		return false
	}

	piece := b.At(mv.From)
	if piece.IsEmpty() || piece.Colour != b.turn {
		return false
	}

	if !b.canPieceMove(piece.Kind, mv) {
		return false
	}
	return !b.isOwnKingAttackedAfterMove(mv)
}

// canPieceMove applies the movement rules of the given piece kind.
func (b *Board) canPieceMove(kind chess.PieceKind, mv chess.Move) bool {
	switch kind {
	case chess.Pawn:
		return b.isLegalPawn(mv)
	case chess.Knight:
		return b.isLegalKnight(mv)
	case chess.Bishop:
		return b.isLegalBishop(mv)
	case chess.Rook:
		return b.isLegalRook(mv)
	case chess.Queen:
		return b.isLegalBishop(mv) || b.isLegalRook(mv)
	case chess.King:
		return b.isLegalKing(mv)
	}
	return false
}

// isOwnKingAttackedAfterMove plays mv on a copy of the board and tests the
// mover's king there. The real board is never touched.
func (b *Board) isOwnKingAttackedAfterMove(mv chess.Move) bool {
	probe := *b
	probe.applyMove(mv)
	return probe.IsAttacked(probe.KingPosition(b.turn), b.opponent())
}
