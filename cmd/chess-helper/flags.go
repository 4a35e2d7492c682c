// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/notation"
)

var (
	// Input options
	fenArg    = flag.String("fen", "", "Analyse a single FEN position")
	inputFile = flag.String("input", "", "File with one FEN per line (- for stdin)")
	dedupe    = flag.Bool("D", false, "Skip positions already seen in the input")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "json", "Output format: json, text")
	lineLength   = flag.Int("w", 80, "Maximum line length for text output")

	// Game options
	undoLimit  = flag.Int("undo-limit", config.DefaultUndoLimit, "Maximum number of moves that can be undone")
	promotion  = flag.String("promote", "q", "Default promotion piece: q, r, b, n")
	helperList = flag.String("helpers", "", "Comma-separated overlays to enable (hanging, exchange, forks, legal_moves)")

	// Server and worker options
	serveAddr  = flag.String("serve", "", "Serve the HTTP bridge on this address (e.g. :8080)")
	origins    = flag.String("origins", "", "Comma-separated CORS origins for -serve")
	numWorkers = flag.Int("workers", 1, "Number of analysis workers")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity level (0 = silent)")
	logFile   = flag.String("log", "", "Write log messages to this file (default: stderr)")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the command-line flags into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity
	cfg.Game.UndoLimit = *undoLimit
	cfg.Server.Workers = *numWorkers

	kind, err := notation.ParsePromotion(*promotion)
	if err != nil {
		return fmt.Errorf("-promote: %w", err)
	}
	if kind.IsPromotionKind() {
		cfg.Game.DefaultPromotion = kind
	}

	if err := applyHelperFlags(cfg.Helpers); err != nil {
		return err
	}

	if *serveAddr != "" {
		cfg.Server.ListenAddr = *serveAddr
	}
	cfg.Server.AllowedOrigins = splitList(*origins)

	return cfg.Validate()
}

// applyHelperFlags enables exactly the helpers named by -helpers.
// Without the flag the defaults stay.
func applyHelperFlags(h *config.HelperConfig) error {
	names := splitList(*helperList)
	if len(names) == 0 {
		return nil
	}

	for _, helper := range config.AllHelpers {
		h.Enabled[helper] = false
	}
	for _, name := range names {
		helper, err := config.ParseHelper(name)
		if err != nil {
			return fmt.Errorf("-helpers: %w", err)
		}
		if err := h.Set(helper, true); err != nil {
			return err
		}
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
