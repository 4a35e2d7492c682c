package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/copperfishgh/testy/internal/engine"
	"github.com/copperfishgh/testy/internal/testutil"
)

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3"} {
		ow.Write(s)
	}
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "1. e4 e5\n2. Nf3\n")
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name     string
		report   *Report
		contains []string
	}{
		{
			name:     "moves from the start",
			report:   NewReport(newGame(t, engine.InitialFEN, "f2f3", "e7e5", "g2g4", "d8h4")),
			contains: []string{"Status: checkmate(Black) (check)", "1. f3 e5 2. g4 Qh4#"},
		},
		{
			name:     "black first",
			report:   NewReport(newGame(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", "c7c5")),
			contains: []string{"1... c5"},
		},
		{
			name:     "hanging",
			report:   NewReport(newGame(t, "q3k3/8/8/8/8/8/8/R3K3 w - - 0 1")),
			contains: []string{"Hanging: a8(9) a1(5)"},
		},
		{
			name:     "error",
			report:   &Report{FEN: "bad", Error: "invalid FEN string"},
			contains: []string{"bad\terror: invalid FEN string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			WriteText(&buf, tt.report, 80)
			for _, s := range tt.contains {
				testutil.AssertContains(t, buf.String(), s)
			}
		})
	}
}

// TestJSONWriter_Batch verifies reports are buffered until Close
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	testutil.AssertNoError(t, w.WriteReport(NewReport(newGame(t, engine.InitialFEN))))
	testutil.AssertNoError(t, w.WriteReport(&Report{FEN: "bad", Error: "invalid FEN string"}))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer must not write before Close")

	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	testutil.AssertEqual(t, len(out.Reports), 2)
	testutil.AssertEqual(t, out.Reports[1].Error, "invalid FEN string")

	// A second Close writes nothing more
	n := buf.Len()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), n)
}

// TestJSONWriter_Single verifies each report is written immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)

	testutil.AssertNoError(t, w.WriteReport(NewReport(newGame(t, engine.InitialFEN))))
	testutil.AssertContains(t, buf.String(), `"sideToMove": "white"`)
	testutil.AssertNoError(t, w.Close())
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	var w ReportWriter = NewTextWriter(&buf, 80)

	testutil.AssertNoError(t, w.WriteReport(NewReport(newGame(t, engine.InitialFEN))))
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertTrue(t, strings.HasSuffix(buf.String(), "\n\n"))
	testutil.AssertContains(t, buf.String(), "FEN:    "+engine.InitialFEN)
}
