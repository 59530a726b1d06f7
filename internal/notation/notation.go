// Package notation converts between coordinate notation ("e2e4", "e7e8q")
// and chess.Move values.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Coordinate characters.
const (
	FirstFile = 'a'
	LastFile  = 'h'
	FirstRank = '1'
	LastRank  = '8'
)

// promotionKinds maps the optional fifth character of a move.
var promotionKinds = map[byte]chess.PieceKind{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// FileToCol converts a file letter to a column index.
func FileToCol(file byte) int8 {
	return int8(file - FirstFile)
}

// RankToRow converts a rank digit to a row index. Rank 8 is row 0.
func RankToRow(rank byte) int8 {
	return chess.BoardSize - 1 - int8(rank-FirstRank)
}

// SquareName returns the name of an in-bounds square, e.g. "e4".
func SquareName(pos chess.Position) string {
	return string([]byte{
		byte(FirstFile + pos.Col),
		byte(LastRank - pos.Row),
	})
}

// ParseSquare parses a two-character square name.
func ParseSquare(s string) (chess.Position, error) {
	if len(s) != 2 {
		return chess.Position{}, &errors.ParseError{
			Err: errors.ErrInvalidNotation, Input: s, Offset: -1,
			Expected: "two characters",
		}
	}
	return parseSquareAt(s, 0)
}

// parseSquareAt parses the square starting at s[i].
func parseSquareAt(s string, i int) (chess.Position, error) {
	file, rank := s[i], s[i+1]
	if file < FirstFile || file > LastFile {
		return chess.Position{}, &errors.ParseError{
			Err: errors.ErrInvalidNotation, Input: s, Offset: i,
			Expected: "file a-h", Got: quoteByte(file),
		}
	}
	if rank < FirstRank || rank > LastRank {
		return chess.Position{}, &errors.ParseError{
			Err: errors.ErrInvalidNotation, Input: s, Offset: i + 1,
			Expected: "rank 1-8", Got: quoteByte(rank),
		}
	}
	return chess.Pos(RankToRow(rank), FileToCol(file)), nil
}

// ParseMove parses origin and destination squares followed by an optional
// promotion letter (q, r, b or n, either case).
func ParseMove(s string) (chess.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, &errors.ParseError{
			Err: errors.ErrInvalidNotation, Input: s, Offset: -1,
			Expected: "4 or 5 characters",
		}
	}

	from, err := parseSquareAt(s, 0)
	if err != nil {
		return chess.Move{}, err
	}
	to, err := parseSquareAt(s, 2)
	if err != nil {
		return chess.Move{}, err
	}

	mv := chess.Move{From: from, To: to}
	if len(s) == 5 {
		kind, ok := promotionKinds[lower(s[4])]
		if !ok {
			return chess.Move{}, &errors.ParseError{
				Err: errors.ErrInvalidNotation, Input: s, Offset: 4,
				Expected: "promotion q, r, b or n", Got: quoteByte(s[4]),
			}
		}
		mv.Promotion = kind
	}
	return mv, nil
}

// ParseMoves parses a whitespace separated list of moves.
func ParseMoves(s string) ([]chess.Move, error) {
	fields := strings.Fields(s)
	moves := make([]chess.Move, 0, len(fields))
	for i, field := range fields {
		mv, err := ParseMove(field)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

// FormatMove returns the coordinate notation of mv. A promotion letter is
// appended only when one is set.
func FormatMove(mv chess.Move) string {
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(SquareName(mv.From))
	sb.WriteString(SquareName(mv.To))
	if mv.Promotion != chess.Empty {
		sb.WriteByte(lower(mv.Promotion.Letter()))
	}
	return sb.String()
}

// FormatMoves formats each move and joins them with single spaces.
func FormatMoves(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, mv := range moves {
		parts[i] = FormatMove(mv)
	}
	return strings.Join(parts, " ")
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func quoteByte(c byte) string {
	return "'" + string(c) + "'"
}
