package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isLegalPawn applies the pawn movement rules for the side to move.
func (b *Board) isLegalPawn(mv chess.Move) bool {
	// A pawn reaching the last rank must name what it becomes.
	if isLastRow(mv.To.Row) && !mv.Promotion.CanPromoteTo() {
		return false
	}

	dir := b.turn.Forward()
	dcol := chess.Abs(mv.To.Col - mv.From.Col)
	drow := mv.To.Row - mv.From.Row

	switch {
	case dcol == 0 && drow == dir:
		return b.At(mv.To).IsEmpty()

	case dcol == 0 && drow == 2*dir:
		mid := mv.From.Add(mv.To).Div(2)
		return mv.From.Row == pawnRow(b.turn) &&
			b.At(mid).IsEmpty() &&
			b.At(mv.To).IsEmpty()

	case dcol == 1 && drow == dir:
		target := b.At(mv.To)
		if !target.IsEmpty() {
			return target.Colour != b.turn
		}
		return b.isEnPassant(mv)
	}
	return false
}

// isEnPassant reports whether a diagonal pawn step onto mv.To would capture
// the pawn that just double-stepped.
func (b *Board) isEnPassant(mv chess.Move) bool {
	return mv.To.Col == b.enPassantCol && mv.From.Row == enPassantRow(b.turn)
}
