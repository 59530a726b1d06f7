package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsAttacked reports whether any piece of byColour attacks pos. It does not
// depend on whose turn it is. pos must be on the board.
func (b *Board) IsAttacked(pos chess.Position, byColour chess.Colour) bool {
	return b.isAttackedByPawn(pos, byColour) ||
		b.isAttackedByKnight(pos, byColour) ||
		b.isAttackedByKing(pos, byColour) ||
		b.isAttackedAlong(pos, byColour, orthogonalDirs, chess.Rook) ||
		b.isAttackedAlong(pos, byColour, diagonalDirs, chess.Bishop)
}

// InCheck reports whether the side to move has its king attacked.
func (b *Board) InCheck() bool {
	return b.IsAttacked(b.KingPosition(b.turn), b.opponent())
}

// isAttackedByPawn checks the two squares a pawn of byColour would have to
// stand on to capture pos. When pos holds the pawn that just double-stepped,
// pawns of byColour beside it attack it en passant as well.
func (b *Board) isAttackedByPawn(pos chess.Position, byColour chess.Colour) bool {
	behind := -byColour.Forward()
	attackers := make([]chess.Position, 0, 4)
	attackers = append(attackers,
		chess.Pos(pos.Row+behind, pos.Col-1),
		chess.Pos(pos.Row+behind, pos.Col+1),
	)
	if pos.Col == b.enPassantCol && pos.Row == enPassantRow(byColour) {
		attackers = append(attackers,
			chess.Pos(pos.Row, pos.Col-1),
			chess.Pos(pos.Row, pos.Col+1),
		)
	}

	for _, sq := range attackers {
		if sq.OutOfBounds() {
			continue
		}
		if b.At(sq).Is(byColour, chess.Pawn) {
			return true
		}
	}
	return false
}

// isAttackedByKnight reuses the knight jump generator from pos.
func (b *Board) isAttackedByKnight(pos chess.Position, byColour chess.Colour) bool {
	for _, mv := range b.retainCapturing(appendKnightMoves(nil, pos)) {
		if b.At(mv.To).Is(byColour, chess.Knight) {
			return true
		}
	}
	return false
}

// isAttackedByKing uses the cached king square.
func (b *Board) isAttackedByKing(pos chess.Position, byColour chess.Colour) bool {
	d := pos.Sub(b.KingPosition(byColour)).Abs()
	return d.Row <= 1 && d.Col <= 1
}

// isAttackedAlong casts rays from pos; the first piece met on each ray
// attacks pos if it belongs to byColour and is a queen or the given slider.
func (b *Board) isAttackedAlong(pos chess.Position, byColour chess.Colour, dirs []chess.Position, slider chess.PieceKind) bool {
	for _, mv := range b.retainCapturing(b.appendLineMoves(nil, pos, dirs)) {
		target := b.At(mv.To)
		if target.Colour == byColour && (target.Kind == slider || target.Kind == chess.Queen) {
			return true
		}
	}
	return false
}
