package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func (b *Board) isPathClear(from, to chess.Position, steps int8) bool {
	step := to.Sub(from).Div(steps)
	pos := from
	for i := int8(0); i < steps-1; i++ {
		pos = pos.Add(step)
		if !b.At(pos).IsEmpty() {
			return false
		}
	}
	return true
}
