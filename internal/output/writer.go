package output

import (
	"encoding/json"
	"io"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes reports as readable text.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WriteReport writes a report followed by a blank line.
func (tw *TextWriter) WriteReport(r *Report) error {
	WriteText(tw.w, r, tw.maxLineLength)
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*Report `json:"reports"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return WriteJSON(jw.w, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	err := WriteJSON(jw.w, &JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
