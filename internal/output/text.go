package output

import (
	"fmt"
	"io"
	"strings"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteText writes a report as readable text: FEN, status, the move
// list in numbered SAN and the hanging pieces.
func WriteText(w io.Writer, r *Report, maxLineLength int) {
	if r.Error != "" {
		fmt.Fprintf(w, "%s\terror: %s\n", r.FEN, r.Error)
		return
	}

	fmt.Fprintf(w, "FEN:    %s\n", r.FEN)
	fmt.Fprintf(w, "Status: %s", r.Status)
	if r.InCheck {
		fmt.Fprint(w, " (check)")
	}
	fmt.Fprintln(w)

	if len(r.History) > 0 {
		writeHistory(NewOutputWriter(w, maxLineLength), r.History)
	}

	if len(r.Hanging) > 0 {
		parts := make([]string, len(r.Hanging))
		for i, h := range r.Hanging {
			parts[i] = fmt.Sprintf("%s(%d)", h.Square, h.Value)
		}
		fmt.Fprintf(w, "Hanging: %s\n", strings.Join(parts, " "))
	}
	if len(r.Forks) > 0 {
		fmt.Fprintf(w, "Forks:   %s\n", strings.Join(r.Forks, " "))
	}
}

// writeHistory writes numbered SAN, e.g. "1. e4 e5 2. Nf3" or "7... Rd8".
func writeHistory(ow *OutputWriter, history []JSONHistory) {
	for i, h := range history {
		if h.Color == "white" {
			ow.Write(fmt.Sprintf("%d.", h.MoveNumber))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", h.MoveNumber))
		}
		ow.Write(h.SAN)
	}
	ow.NewLine()
}
