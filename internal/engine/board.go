// Package engine implements the chess rules: board state, pseudo-legal move
// generation, attack detection, legality filtering and move application.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// NoEnPassant is the en-passant column value meaning no capture is available.
const NoEnPassant int8 = -1

// Starting squares fixed by the standard setup.
var (
	whiteKingStart = chess.Pos(chess.WhiteBackRow, 4)
	blackKingStart = chess.Pos(chess.BlackBackRow, 4)

	whiteRookShort = chess.Pos(chess.WhiteBackRow, 7)
	whiteRookLong  = chess.Pos(chess.WhiteBackRow, 0)
	blackRookShort = chess.Pos(chess.BlackBackRow, 7)
	blackRookLong  = chess.Pos(chess.BlackBackRow, 0)
)

// Board is a complete game position.
//
// Board is a plain value: assigning or calling Clone yields an independent
// copy, which is how the legality filter simulates moves. The fields are
// only changed by move application so the cached king squares, castling
// rights and en-passant column always agree with the grid.
type Board struct {
	// grid[row][col]; row 0 is Black's back rank.
	grid [chess.BoardSize][chess.BoardSize]chess.Piece

	// Cached king squares for check detection.
	whiteKing chess.Position
	blackKing chess.Position

	// Castling rights. Cleared permanently once the king or the
	// corresponding rook leaves its home square (or the rook is captured).
	whiteShort bool
	whiteLong  bool
	blackShort bool
	blackLong  bool

	// Column of a pawn that just double-stepped, or NoEnPassant.
	enPassantCol int8

	turn chess.Colour
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{
		whiteKing:    whiteKingStart,
		blackKing:    blackKingStart,
		whiteShort:   true,
		whiteLong:    true,
		blackShort:   true,
		blackLong:    true,
		enPassantCol: NoEnPassant,
		turn:         chess.White,
	}

	backRank := []chess.PieceKind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for col := 0; col < chess.BoardSize; col++ {
		b.grid[chess.BlackBackRow][col] = chess.B(backRank[col])
		b.grid[chess.BlackPawnRow][col] = chess.B(chess.Pawn)
		b.grid[chess.WhitePawnRow][col] = chess.W(chess.Pawn)
		b.grid[chess.WhiteBackRow][col] = chess.W(backRank[col])
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Turn returns the side to move.
func (b *Board) Turn() chess.Colour {
	return b.turn
}

// At returns the content of an in-bounds square.
func (b *Board) At(pos chess.Position) chess.Piece {
	return b.grid[pos.Row][pos.Col]
}

// Grid returns a snapshot of the squares, indexed [row][col].
func (b *Board) Grid() [chess.BoardSize][chess.BoardSize]chess.Piece {
	return b.grid
}

// KingPosition returns the square of the given colour's king.
func (b *Board) KingPosition(colour chess.Colour) chess.Position {
	if colour == chess.White {
		return b.whiteKing
	}
	return b.blackKing
}

// CanCastle reports whether the colour still holds the castling right on
// the given wing. It says nothing about whether castling is legal now.
func (b *Board) CanCastle(colour chess.Colour, short bool) bool {
	switch {
	case colour == chess.White && short:
		return b.whiteShort
	case colour == chess.White:
		return b.whiteLong
	case short:
		return b.blackShort
	default:
		return b.blackLong
	}
}

// EnPassantCol returns the column open to en-passant capture, or NoEnPassant.
func (b *Board) EnPassantCol() int8 {
	return b.enPassantCol
}

// set places a piece on a square. Only move application writes the grid.
func (b *Board) set(pos chess.Position, piece chess.Piece) {
	b.grid[pos.Row][pos.Col] = piece
}

// take empties a square and returns what was on it.
func (b *Board) take(pos chess.Position) chess.Piece {
	piece := b.grid[pos.Row][pos.Col]
	b.grid[pos.Row][pos.Col] = chess.NoPiece
	return piece
}

// enPassantRow returns the row from which the colour captures en passant.
func enPassantRow(colour chess.Colour) int8 {
	if colour == chess.White {
		return chess.WhiteEnPassantRow
	}
	return chess.BlackEnPassantRow
}

// pawnRow returns the starting row of the colour's pawns.
func pawnRow(colour chess.Colour) int8 {
	if colour == chess.White {
		return chess.WhitePawnRow
	}
	return chess.BlackPawnRow
}

// isLastRow reports whether row is a promotion row.
func isLastRow(row int8) bool {
	return row == chess.BlackBackRow || row == chess.WhiteBackRow
}
