package chess

import "testing"

func TestColour(t *testing.T) {
	tests := []struct {
		colour   Colour
		name     string
		opposite Colour
		forward  int8
	}{
		{White, "White", Black, -1},
		{Black, "Black", White, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.colour.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.colour.Opposite(); got != tt.opposite {
				t.Errorf("Opposite() = %v, want %v", got, tt.opposite)
			}
			if got := tt.colour.Forward(); got != tt.forward {
				t.Errorf("Forward() = %d, want %d", got, tt.forward)
			}
		})
	}
}

func TestPieceKind(t *testing.T) {
	tests := []struct {
		kind       PieceKind
		name       string
		letter     byte
		canPromote bool
	}{
		{Empty, "Empty", '.', false},
		{Pawn, "Pawn", 'P', false},
		{Knight, "Knight", 'N', true},
		{Bishop, "Bishop", 'B', true},
		{Rook, "Rook", 'R', true},
		{Queen, "Queen", 'Q', true},
		{King, "King", 'K', false},
		{NumPieceKinds, "Unknown", '?', false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q, want %q", got, tt.letter)
			}
			if got := tt.kind.CanPromoteTo(); got != tt.canPromote {
				t.Errorf("CanPromoteTo() = %v, want %v", got, tt.canPromote)
			}
		})
	}
}

func TestPiece(t *testing.T) {
	tests := []struct {
		name   string
		piece  Piece
		letter byte
		empty  bool
	}{
		{"empty", NoPiece, '.', true},
		{"white knight", W(Knight), 'N', false},
		{"black knight", B(Knight), 'n', false},
		{"black king", B(King), 'k', false},
		{"white pawn", W(Pawn), 'P', false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.piece.Letter(); got != tt.letter {
				t.Errorf("Letter() = %q, want %q", got, tt.letter)
			}
			if got := tt.piece.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}

	if !B(Rook).Is(Black, Rook) {
		t.Error("B(Rook).Is(Black, Rook) = false, want true")
	}
	if W(Rook).Is(Black, Rook) {
		t.Error("W(Rook).Is(Black, Rook) = true, want false")
	}
	if !NoPiece.Is(Black, Empty) {
		t.Error("NoPiece.Is(Black, Empty) = false, want true")
	}
}

func TestPosition(t *testing.T) {
	p, q := Pos(6, 4), Pos(-2, 1)

	if got := p.Add(q); got != Pos(4, 5) {
		t.Errorf("Add() = %v, want %v", got, Pos(4, 5))
	}
	if got := p.Sub(Pos(4, 6)); got != Pos(2, -2) {
		t.Errorf("Sub() = %v, want %v", got, Pos(2, -2))
	}
	if got := Pos(-3, 2).Abs(); got != Pos(3, 2) {
		t.Errorf("Abs() = %v, want %v", got, Pos(3, 2))
	}
	if got := Pos(-6, 6).Div(3); got != Pos(-2, 2) {
		t.Errorf("Div() = %v, want %v", got, Pos(-2, 2))
	}
}

func TestPosition_OutOfBounds(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), false},
		{Pos(7, 7), false},
		{Pos(-1, 0), true},
		{Pos(0, -1), true},
		{Pos(8, 3), true},
		{Pos(3, 8), true},
	}

	for _, tt := range tests {
		if got := tt.pos.OutOfBounds(); got != tt.want {
			t.Errorf("%v.OutOfBounds() = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestAbsSign(t *testing.T) {
	for _, tt := range []struct{ x, abs, sign int8 }{
		{-5, 5, -1},
		{0, 0, 0},
		{3, 3, 1},
	} {
		if got := Abs(tt.x); got != tt.abs {
			t.Errorf("Abs(%d) = %d, want %d", tt.x, got, tt.abs)
		}
		if got := Sign(tt.x); got != tt.sign {
			t.Errorf("Sign(%d) = %d, want %d", tt.x, got, tt.sign)
		}
	}
}

func TestMove_Delta(t *testing.T) {
	mv := Move{From: Pos(6, 4), To: Pos(4, 4)}
	if got := mv.Delta(); got != Pos(-2, 0) {
		t.Errorf("Delta() = %v, want %v", got, Pos(-2, 0))
	}
}
