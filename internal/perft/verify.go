package perft

import (
	"context"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Verify plays setup from the starting position and then walks the legal
// move tree to depth, comparing the move list of every position with the
// dragontoothmg generator. The first position where the lists differ is
// reported as an error wrapping errors.ErrReferenceMismatch.
//
// The engine only generates queen promotions, so the reference's
// under-promotions are left out of the comparison. Verify returns ctx.Err()
// if ctx is done before the walk completes.
func Verify(ctx context.Context, setup []chess.Move, depth int) error {
	b := engine.NewBoard()
	ref := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	for i, mv := range setup {
		text := notation.FormatMove(mv)
		if err := b.MakeMove(mv); err != nil {
			return &errors.MoveError{Err: err, Ply: i + 1, MoveText: text}
		}
		refMove, ok := referenceMoves(&ref)[text]
		if !ok {
			return &errors.MoveError{Err: errors.ErrReferenceMismatch, Ply: i + 1, MoveText: text}
		}
		ref.Apply(refMove)
	}

	v := verifier{ctx: ctx, path: make([]string, 0, len(setup)+depth)}
	for _, mv := range setup {
		v.path = append(v.path, notation.FormatMove(mv))
	}
	return v.compare(b, &ref, depth)
}

type verifier struct {
	ctx  context.Context
	path []string
}

func (v *verifier) compare(b *engine.Board, ref *dragontoothmg.Board, depth int) error {
	if depth <= 0 {
		return nil
	}
	if err := v.ctx.Err(); err != nil {
		return err
	}

	refMoves := referenceMoves(ref)
	ours := b.GenerateLegalMoves()

	var missing, extra []string
	seen := make(map[string]bool, len(ours))
	for _, mv := range ours {
		text := notation.FormatMove(mv)
		seen[text] = true
		if _, ok := refMoves[text]; !ok {
			extra = append(extra, text)
		}
	}
	for text := range refMoves {
		if !seen[text] {
			missing = append(missing, text)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return errors.Wrapf(errors.ErrReferenceMismatch,
			"after %q: missing [%s] extra [%s]",
			strings.Join(v.path, " "), strings.Join(missing, " "), strings.Join(extra, " "))
	}

	for _, mv := range ours {
		text := notation.FormatMove(mv)
		child := *b
		if err := child.MakeMove(mv); err != nil {
			return fmt.Errorf("generated move %s rejected: %w", text, err)
		}
		unapply := ref.Apply(refMoves[text])
		v.path = append(v.path, text)
		err := v.compare(&child, ref, depth-1)
		v.path = v.path[:len(v.path)-1]
		unapply()
		if err != nil {
			return err
		}
	}
	return nil
}

// referenceMoves returns the reference generator's legal moves keyed by
// coordinate notation, without under-promotions.
func referenceMoves(ref *dragontoothmg.Board) map[string]dragontoothmg.Move {
	moves := ref.GenerateLegalMoves()
	byText := make(map[string]dragontoothmg.Move, len(moves))
	for _, m := range moves {
		m := m
		text := m.String()
		if len(text) == 5 && text[4] != 'q' {
			continue
		}
		byText[text] = m
	}
	return byText
}
