package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MakeMove plays mv if it is legal. An illegal move returns
// errors.ErrIllegalMove and leaves the board unchanged.
func (b *Board) MakeMove(mv chess.Move) error {
	if !b.IsLegal(mv) {
		return errors.ErrIllegalMove
	}
	b.applyMove(mv)
	return nil
}

// applyMove commits mv without checking legality and updates all derived
// state. The legality filter also calls it on a copy to probe king safety.
func (b *Board) applyMove(mv chess.Move) {
	mover := b.turn
	piece := b.At(mv.From)

	b.turn = mover.Opposite()
	b.enPassantCol = NoEnPassant

	switch piece.Kind {
	case chess.Pawn:
		if chess.Abs(mv.To.Row-mv.From.Row) == 2 {
			b.enPassantCol = mv.To.Col
		}
		// A diagonal step onto an empty square captures en passant; the
		// victim sits beside the origin, not on the destination.
		if mv.To.Col != mv.From.Col && b.At(mv.To).IsEmpty() {
			b.take(chess.Pos(mv.From.Row, mv.To.Col))
		}
		if isLastRow(mv.To.Row) && mv.Promotion.CanPromoteTo() {
			piece.Kind = mv.Promotion
		}

	case chess.King:
		if mover == chess.White {
			b.whiteKing = mv.To
		} else {
			b.blackKing = mv.To
		}
		b.revokeCastling(mover)
		if chess.Abs(mv.To.Col-mv.From.Col) >= 2 {
			rookFrom, rookTo := castleRookMove(mover, mv)
			b.set(rookTo, b.take(rookFrom))
		}
	}

	b.revokeCastlingFor(mv.From)
	b.revokeCastlingFor(mv.To)

	b.take(mv.From)
	b.set(mv.To, piece)
}

// IsCapture reports whether mv, played on this board, removes an enemy
// piece. Unlike the capturing-move filter it counts en passant.
func (b *Board) IsCapture(mv chess.Move) bool {
	if !b.At(mv.To).IsEmpty() {
		return true
	}
	return b.IsEnPassant(mv)
}

// IsEnPassant reports whether mv is a pawn changing column onto an empty
// square.
func (b *Board) IsEnPassant(mv chess.Move) bool {
	return b.At(mv.From).Kind == chess.Pawn &&
		mv.To.Col != mv.From.Col &&
		b.At(mv.To).IsEmpty()
}

// IsCastle reports whether mv is a king moving two columns.
func (b *Board) IsCastle(mv chess.Move) bool {
	return b.At(mv.From).Kind == chess.King && chess.Abs(mv.To.Col-mv.From.Col) == 2
}

// IsPromotion reports whether mv takes a pawn to the last rank.
func (b *Board) IsPromotion(mv chess.Move) bool {
	return b.At(mv.From).Kind == chess.Pawn && isLastRow(mv.To.Row)
}
