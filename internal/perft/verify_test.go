package perft

import (
	"context"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name  string
		setup string
		depth int
	}{
		{"start position", "", 3},
		{"open centre", "e2e4 d7d5", 3},
		{"en passant available", "e2e4 a7a6 e4e5 d7d5", 2},
		{"castling available", "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6", 2},
		{"promotion race", "h2h4 g7g5 h4g5 h7h6 g5h6 f8g7 h6h7 a7a6", 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			setup, err := notation.ParseMoves(tt.setup)
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, Verify(context.Background(), setup, tt.depth))
		})
	}
}

func TestVerify_IllegalSetup(t *testing.T) {
	t.Parallel()
	setup := []chess.Move{{From: chess.Pos(6, 4), To: chess.Pos(3, 4)}}
	err := Verify(context.Background(), setup, 1)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
}

func TestVerify_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Verify(ctx, nil, 6)
	testutil.AssertErrorIs(t, err, context.Canceled)
}
