// chess-helper analyses chess positions for hanging pieces, exchanges and
// forks, either one FEN at a time, in batches, or as an HTTP bridge for a
// board display.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/output"
	"github.com/copperfishgh/testy/internal/server"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-helper version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the mode selected by the flags.
func run(ctx context.Context, cfg *config.Config) error {
	switch {
	case *serveAddr != "":
		return server.New(cfg).Run(ctx)

	case *fenArg != "":
		w, err := newReportWriter(*outputFormat, cfg.OutputFile, *lineLength, true)
		if err != nil {
			return err
		}
		return analyzeOne(cfg, *fenArg, w)

	case *inputFile != "":
		fens, err := readInput(*inputFile)
		if err != nil {
			return err
		}
		w, err := newReportWriter(*outputFormat, cfg.OutputFile, *lineLength, false)
		if err != nil {
			return err
		}
		stats, err := runBatch(ctx, cfg, fens, w, *dedupe)
		if cfg.Verbosity > 0 {
			reportStatistics(cfg.LogFile, stats)
		}
		return err
	}

	usage()
	return fmt.Errorf("one of -fen, -input or -serve is required")
}

// newReportWriter creates the writer for format. single makes JSON output
// one object per report instead of one array at the end.
func newReportWriter(format string, w io.Writer, maxLineLength int, single bool) (output.ReportWriter, error) {
	switch format {
	case "json":
		if single {
			return output.NewJSONWriterSingle(w), nil
		}
		return output.NewJSONWriter(w), nil
	case "text":
		return output.NewTextWriter(w, maxLineLength), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// analyzeOne writes the report for a single position. A malformed FEN is
// an error rather than an error report.
func analyzeOne(cfg *config.Config, fen string, w output.ReportWriter) error {
	report, err := output.AnalyzeFEN(cfg, fen)
	if err != nil {
		return err
	}
	if err := w.WriteReport(report); err != nil {
		return err
	}
	return w.Close()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-helper [options]\n\n")
	fmt.Fprintf(os.Stderr, "Tactical overlays for chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Modes:\n")
	fmt.Fprintf(os.Stderr, "  -fen FEN        analyse one position\n")
	fmt.Fprintf(os.Stderr, "  -input FILE     analyse one position per line\n")
	fmt.Fprintf(os.Stderr, "  -serve ADDR     serve the HTTP and websocket bridge\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
