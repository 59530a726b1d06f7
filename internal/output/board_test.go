package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestFormatBoard_Start(t *testing.T) {
	t.Parallel()
	want := strings.Join([]string{
		"8  r n b q k b n r",
		"7  p p p p p p p p",
		"6  . . . . . . . .",
		"5  . . . . . . . .",
		"4  . . . . . . . .",
		"3  . . . . . . . .",
		"2  P P P P P P P P",
		"1  R N B Q K B N R",
		"",
		"   a b c d e f g h",
		"White to move",
		"",
	}, "\n")

	testutil.AssertEqual(t, FormatBoard(engine.NewBoard()), want)
}

func TestFormatBoard_AfterDoublePush(t *testing.T) {
	t.Parallel()
	got := FormatBoard(testutil.NewBoardAfter(t, "e2e4"))

	testutil.AssertContains(t, got, "4  . . . . P . . .")
	testutil.AssertContains(t, got, "2  P P P P . P P P")
	testutil.AssertContains(t, got, "Black to move, en passant on e")
}

func TestWriteBoard(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	b := engine.NewBoard()
	testutil.AssertNoError(t, WriteBoard(&buf, b))
	testutil.AssertEqual(t, buf.String(), FormatBoard(b))
}
