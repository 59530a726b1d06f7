package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction tables as {row, col} deltas.
var (
	orthogonalDirs = []chess.Position{{Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: -1, Col: 0}, {Row: 0, Col: -1}}
	diagonalDirs   = []chess.Position{{Row: 1, Col: 1}, {Row: -1, Col: -1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}}
	rankDirs       = []chess.Position{{Row: 0, Col: 1}, {Row: 0, Col: -1}}

	// Upward knight jumps; the downward ones are their negations.
	knightJumps = []chess.Position{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: -2}, {Row: 2, Col: -1}}
)

// opponent returns the colour not on move.
func (b *Board) opponent() chess.Colour {
	return b.turn.Opposite()
}

// isEnemyOrEmpty reports whether the side to move may land on pos.
func (b *Board) isEnemyOrEmpty(pos chess.Position) bool {
	target := b.At(pos)
	return target.IsEmpty() || target.Colour != b.turn
}
