// Package output renders boards and perft reports for the command line.
package output

import (
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// FormatBoard draws b as eight ranks from rank 8 down, White in uppercase,
// Black in lowercase and '.' for empty squares, followed by the file letters
// and the side to move. A pending en-passant file is shown when set.
func FormatBoard(b *engine.Board) string {
	var sb strings.Builder
	grid := b.Grid()
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteByte(byte(notation.LastRank - row))
		sb.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(grid[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")

	sb.WriteString(b.Turn().String())
	sb.WriteString(" to move")
	if col := b.EnPassantCol(); col != engine.NoEnPassant {
		sb.WriteString(", en passant on ")
		sb.WriteByte(byte(notation.FirstFile + col))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// WriteBoard writes FormatBoard(b) to w.
func WriteBoard(w io.Writer, b *engine.Board) error {
	_, err := io.WriteString(w, FormatBoard(b))
	return err
}
