package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// ReportWriter is the interface for writing perft results.
// Implementations decide whether rows are written immediately or batched.
type ReportWriter interface {
	// WriteDepth records the totals for one depth.
	WriteDepth(depth int, counts perft.Counts, elapsed time.Duration) error

	// WriteDivide records the per-root-move breakdown of a depth.
	WriteDivide(depth int, entries []perft.DivideEntry) error

	// Close writes anything still pending.
	Close() error
}

// TextWriter writes a fixed-width table, one row per depth.
type TextWriter struct {
	w             io.Writer
	headerWritten bool
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

const textRow = "%5v %12v %10v %8v %8v %10v %8v %10v %10v\n"

// WriteDepth writes a table row, preceded by the header on first use.
func (tw *TextWriter) WriteDepth(depth int, c perft.Counts, elapsed time.Duration) error {
	if !tw.headerWritten {
		if _, err := fmt.Fprintf(tw.w, textRow,
			"depth", "nodes", "captures", "e.p.", "castles", "promotions", "checks", "checkmates", "time"); err != nil {
			return err
		}
		tw.headerWritten = true
	}
	_, err := fmt.Fprintf(tw.w, textRow,
		depth, c.Nodes, c.Captures, c.EnPassant, c.Castles, c.Promotions, c.Checks, c.Checkmates,
		elapsed.Round(time.Millisecond))
	return err
}

// WriteDivide writes "move: nodes" lines followed by the total.
func (tw *TextWriter) WriteDivide(depth int, entries []perft.DivideEntry) error {
	var total uint64
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw.w, "%s: %d\n", notation.FormatMove(e.Move), e.Counts.Nodes); err != nil {
			return err
		}
		total += e.Counts.Nodes
	}
	_, err := fmt.Fprintf(tw.w, "\nmoves: %d, depth %d nodes: %d\n", len(entries), depth, total)
	return err
}

// Close is a no-op; rows are written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONDepth is one depth of a perft run in JSON form.
type JSONDepth struct {
	Depth     int          `json:"depth"`
	Counts    perft.Counts `json:"counts"`
	ElapsedMS int64        `json:"elapsedMs"`
}

// JSONDivide is one root move of a divide run.
type JSONDivide struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	Depths      []JSONDepth  `json:"depths"`
	DivideDepth int          `json:"divideDepth,omitempty"`
	Divide      []JSONDivide `json:"divide,omitempty"`
}

// JSONWriter buffers results and writes one JSON document on Close.
type JSONWriter struct {
	w      io.Writer
	report JSONReport
}

// NewJSONWriter creates a new JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, report: JSONReport{Depths: make([]JSONDepth, 0)}}
}

// WriteDepth buffers the totals for a depth.
func (jw *JSONWriter) WriteDepth(depth int, c perft.Counts, elapsed time.Duration) error {
	jw.report.Depths = append(jw.report.Depths, JSONDepth{
		Depth:     depth,
		Counts:    c,
		ElapsedMS: elapsed.Milliseconds(),
	})
	return nil
}

// WriteDivide buffers a divide breakdown, replacing any earlier one.
func (jw *JSONWriter) WriteDivide(depth int, entries []perft.DivideEntry) error {
	jw.report.DivideDepth = depth
	jw.report.Divide = make([]JSONDivide, 0, len(entries))
	for _, e := range entries {
		jw.report.Divide = append(jw.report.Divide, JSONDivide{
			Move:  notation.FormatMove(e.Move),
			Nodes: e.Counts.Nodes,
		})
	}
	return nil
}

// Close encodes the buffered report.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jw.report)
}
