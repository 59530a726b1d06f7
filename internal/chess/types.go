// Package chess provides the value types shared by the rules engine and its
// collaborators: colours, piece kinds, squares, positions and moves.
package chess

import "golang.org/x/exp/constraints"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn step for the colour.
// White advances toward row 0, Black toward row 7.
func (c Colour) Forward() int8 {
	if c == White {
		return -1
	}
	return 1
}

// PieceKind is the kind of a chess piece. Empty marks an unoccupied square.
type PieceKind int

const (
	Empty PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// CanPromoteTo reports whether a pawn may be promoted to this kind.
func (k PieceKind) CanPromoteTo() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is reports whether the square holds a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the board letter: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.IsEmpty() || p.Colour == White {
		return l
	}
	return l + ('a' - 'A')
}

// Board geometry.
const (
	BoardSize = 8

	// Row 0 is Black's back rank, row 7 is White's.
	WhiteBackRow      int8 = 7
	BlackBackRow      int8 = 0
	WhitePawnRow      int8 = 6
	BlackPawnRow      int8 = 1
	WhiteEnPassantRow int8 = 3 // row a White pawn captures en passant from
	BlackEnPassantRow int8 = 4 // row a Black pawn captures en passant from
)

// Position is a board coordinate or a delta between two coordinates.
type Position struct {
	Row int8
	Col int8
}

// Pos is shorthand for a Position literal.
func Pos(row, col int8) Position {
	return Position{Row: row, Col: col}
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return Position{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Abs returns the component-wise absolute value.
func (p Position) Abs() Position {
	return Position{Row: Abs(p.Row), Col: Abs(p.Col)}
}

// Div divides both components by n, truncating toward zero.
func (p Position) Div(n int8) Position {
	return Position{Row: p.Row / n, Col: p.Col / n}
}

// OutOfBounds reports whether either coordinate lies outside [0, BoardSize).
func (p Position) OutOfBounds() bool {
	return p.Row < 0 || p.Row >= BoardSize || p.Col < 0 || p.Col >= BoardSize
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns the sign of x: -1, 0, or 1.
func Sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Move is a request to move the piece on From to To.
// Promotion names the replacement kind when a pawn reaches the last rank;
// it is ignored for every other move. Empty means no promotion requested.
type Move struct {
	From      Position
	To        Position
	Promotion PieceKind
}

// Delta returns To - From.
func (m Move) Delta() Position {
	return m.To.Sub(m.From)
}
