package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestTerminalStates(t *testing.T) {
	stalemate := func(t *testing.T) *Board {
		return diagram(t, chess.Black,
			"k.......",
			"..Q.....",
			"..K.....",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
	}

	tests := []struct {
		name          string
		board         func(t *testing.T) *Board
		wantCheck     bool
		wantCheckmate bool
		wantStalemate bool
	}{
		{"start", func(t *testing.T) *Board { return NewBoard() }, false, false, false},
		{"check with a block", func(t *testing.T) *Board { return play(t, NewBoard(), "e2e4 f7f6 d1h5") }, true, false, false},
		{"fool's mate", func(t *testing.T) *Board { return play(t, NewBoard(), "f2f3 e7e5 g2g4 d8h4") }, true, true, false},
		{"scholar's mate", func(t *testing.T) *Board {
			return play(t, NewBoard(), "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7")
		}, true, true, false},
		{"stalemate", stalemate, false, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := tt.board(t)
			if got := b.InCheck(); got != tt.wantCheck {
				t.Errorf("InCheck() = %v, want %v", got, tt.wantCheck)
			}
			if got := b.IsCheckmate(); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.wantCheckmate)
			}
			if got := b.IsStalemate(); got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.wantStalemate)
			}
		})
	}
}
