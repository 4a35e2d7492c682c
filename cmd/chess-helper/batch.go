package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/hashing"
	"github.com/copperfishgh/testy/internal/output"
	"github.com/copperfishgh/testy/internal/worker"
)

// batchStats counts the outcome of a batch run.
type batchStats struct {
	Total      int
	Analysed   int
	Duplicates int
	Errors     int
}

// readInput reads FENs from the named file, or stdin for "-".
func readInput(name string) ([]string, error) {
	if name == "-" {
		return readFENs(os.Stdin)
	}
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readFENs(file)
}

// readFENs returns one FEN per non-empty line. Lines starting with '#'
// are comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// runBatch analyses fens on the worker pool and writes the reports in
// input order. Malformed positions produce error reports; with dedupe,
// repeated positions are skipped.
func runBatch(ctx context.Context, cfg *config.Config, fens []string, w output.ReportWriter, dedupe bool) (batchStats, error) {
	stats := batchStats{Total: len(fens)}

	var seen *hashing.SeenPositions
	if dedupe {
		seen = hashing.NewSeenPositions()
	}

	results, err := worker.Batch(ctx, fens, worker.Analyzer(cfg, seen), worker.WithWorkers(cfg.Server.Workers))
	if err != nil {
		return stats, err
	}

	for _, r := range results {
		switch {
		case r.Duplicate:
			stats.Duplicates++
			continue
		case r.Error != nil:
			stats.Errors++
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "line %d: %v\n", r.Index+1, r.Error)
			}
		default:
			stats.Analysed++
		}
		if err := w.WriteReport(r.Report); err != nil {
			return stats, err
		}
	}
	return stats, w.Close()
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats batchStats) {
	fmt.Fprintf(w, "%d position(s) analysed, %d duplicate(s), %d error(s) out of %d.\n",
		stats.Analysed, stats.Duplicates, stats.Errors, stats.Total)
}
