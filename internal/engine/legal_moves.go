package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GenerateLegalMoves returns every legal move for the side to move.
func (b *Board) GenerateLegalMoves() []chess.Move {
	return b.retainLegal(b.GeneratePseudoMoves())
}

// GenerateLegalCapturingMoves returns the legal moves whose destination is
// occupied by an opponent piece. En-passant captures land on an empty
// square and are therefore not included.
func (b *Board) GenerateLegalCapturingMoves() []chess.Move {
	return b.retainLegal(b.retainCapturing(b.GeneratePseudoMoves()))
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	for _, mv := range b.GeneratePseudoMoves() {
		if b.IsLegal(mv) {
			return true
		}
	}
	return false
}

// GeneratePseudoMoves enumerates candidate moves for every piece of the side
// to move. Sliding rays stop at the first occupied square (which is
// included); nothing else is checked, so the list contains moves onto own
// pieces, off the board, and moves that leave the king in check.
func (b *Board) GeneratePseudoMoves() []chess.Move {
	moves := make([]chess.Move, 0, 128)
	for row := int8(0); row < chess.BoardSize; row++ {
		for col := int8(0); col < chess.BoardSize; col++ {
			pos := chess.Pos(row, col)
			piece := b.At(pos)
			if piece.IsEmpty() || piece.Colour != b.turn {
				continue
			}
			moves = b.appendPieceMoves(moves, pos, piece.Kind)
		}
	}
	return moves
}

// appendPieceMoves appends the pseudo-moves of the piece on from.
func (b *Board) appendPieceMoves(moves []chess.Move, from chess.Position, kind chess.PieceKind) []chess.Move {
	switch kind {
	case chess.Pawn:
		return b.appendPawnMoves(moves, from)
	case chess.Knight:
		return appendKnightMoves(moves, from)
	case chess.Bishop:
		return b.appendLineMoves(moves, from, diagonalDirs)
	case chess.Rook:
		return b.appendLineMoves(moves, from, orthogonalDirs)
	case chess.Queen:
		moves = b.appendLineMoves(moves, from, diagonalDirs)
		return b.appendLineMoves(moves, from, orthogonalDirs)
	case chess.King:
		return appendKingMoves(moves, from)
	}
	return moves
}

// appendKnightMoves appends all eight jumps, on the board or not.
func appendKnightMoves(moves []chess.Move, from chess.Position) []chess.Move {
	for _, jump := range knightJumps {
		moves = append(moves,
			chess.Move{From: from, To: from.Add(jump)},
			chess.Move{From: from, To: from.Sub(jump)},
		)
	}
	return moves
}

// appendPawnMoves appends the single push, the double push and both
// diagonal captures. The double push is emitted from any row; the legality
// filter decides whether it is allowed. Moves onto the last rank carry a
// queen promotion; under-promotions are never generated.
func (b *Board) appendPawnMoves(moves []chess.Move, from chess.Position) []chess.Move {
	dir := b.turn.Forward()
	targets := [4]chess.Position{
		{Row: from.Row + dir, Col: from.Col},
		{Row: from.Row + 2*dir, Col: from.Col},
		{Row: from.Row + dir, Col: from.Col + 1},
		{Row: from.Row + dir, Col: from.Col - 1},
	}
	for _, to := range targets {
		mv := chess.Move{From: from, To: to}
		if isLastRow(to.Row) {
			mv.Promotion = chess.Queen
		}
		moves = append(moves, mv)
	}
	return moves
}

// appendKingMoves appends the king steps plus both castling candidates.
func appendKingMoves(moves []chess.Move, from chess.Position) []chess.Move {
	for dr := int8(-1); dr <= 1; dr++ {
		for dc := int8(-1); dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			moves = append(moves, chess.Move{From: from, To: from.Add(chess.Pos(dr, dc))})
		}
	}
	return append(moves,
		chess.Move{From: from, To: from.Add(chess.Pos(0, 2))},
		chess.Move{From: from, To: from.Add(chess.Pos(0, -2))},
	)
}

// appendLineMoves walks each direction from from, emitting every square up
// to and including the first occupied one.
func (b *Board) appendLineMoves(moves []chess.Move, from chess.Position, dirs []chess.Position) []chess.Move {
	for _, dir := range dirs {
		for to := from.Add(dir); !to.OutOfBounds(); to = to.Add(dir) {
			moves = append(moves, chess.Move{From: from, To: to})
			if !b.At(to).IsEmpty() {
				break
			}
		}
	}
	return moves
}

// retainCapturing keeps the moves whose destination is on the board and
// occupied, regardless of colour.
func (b *Board) retainCapturing(moves []chess.Move) []chess.Move {
	kept := moves[:0]
	for _, mv := range moves {
		if !mv.To.OutOfBounds() && !b.At(mv.To).IsEmpty() {
			kept = append(kept, mv)
		}
	}
	return kept
}

// retainLegal keeps the moves that pass the legality filter.
func (b *Board) retainLegal(moves []chess.Move) []chess.Move {
	kept := moves[:0]
	for _, mv := range moves {
		if b.IsLegal(mv) {
			kept = append(kept, mv)
		}
	}
	return kept
}
