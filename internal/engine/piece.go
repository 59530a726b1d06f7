package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isLegalKnight accepts a (1,2) or (2,1) jump onto an empty or enemy square.
func (b *Board) isLegalKnight(mv chess.Move) bool {
	d := mv.Delta().Abs()
	if !(d.Row == 1 && d.Col == 2) && !(d.Row == 2 && d.Col == 1) {
		return false
	}
	return b.isEnemyOrEmpty(mv.To)
}

// isLegalRook accepts a clear horizontal or vertical slide.
func (b *Board) isLegalRook(mv chess.Move) bool {
	d := mv.Delta()
	if (d.Row == 0) == (d.Col == 0) {
		return false
	}
	steps := chess.Abs(d.Row + d.Col)
	return b.isPathClear(mv.From, mv.To, steps) && b.isEnemyOrEmpty(mv.To)
}

// isLegalBishop accepts a clear diagonal slide.
func (b *Board) isLegalBishop(mv chess.Move) bool {
	d := mv.Delta()
	if chess.Abs(d.Row) != chess.Abs(d.Col) {
		return false
	}
	steps := chess.Abs(d.Col)
	if steps == 0 {
		return false
	}
	return b.isPathClear(mv.From, mv.To, steps) && b.isEnemyOrEmpty(mv.To)
}
