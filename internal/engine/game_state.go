package engine

// IsCheckmate returns true if the position is checkmate for the side to move.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}
