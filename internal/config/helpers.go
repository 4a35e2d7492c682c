package config

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/copperfishgh/testy/internal/errors"
)

// Helper names an overlay the display can switch on and off.
type Helper string

const (
	HelperHanging    Helper = "hanging"
	HelperExchange   Helper = "exchange"
	HelperForks      Helper = "forks"
	HelperLegalMoves Helper = "legal_moves"
)

// AllHelpers lists every helper in display order.
var AllHelpers = [...]Helper{HelperHanging, HelperExchange, HelperForks, HelperLegalMoves}

// ParseHelper converts a helper id to a Helper.
func ParseHelper(s string) (Helper, error) {
	for _, h := range AllHelpers {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("helper %q: %w", s, errors.ErrUnknownHelper)
}

// HelperConfig holds which helper overlays are enabled.
type HelperConfig struct {
	Enabled map[Helper]bool
}

// NewHelperConfig creates a HelperConfig with hanging pieces and
// legal-move dots on.
func NewHelperConfig() *HelperConfig {
	return &HelperConfig{
		Enabled: map[Helper]bool{
			HelperHanging:    true,
			HelperExchange:   false,
			HelperForks:      false,
			HelperLegalMoves: true,
		},
	}
}

// IsEnabled reports whether h is on.
func (h *HelperConfig) IsEnabled(helper Helper) bool {
	return h.Enabled[helper]
}

// Set switches a helper on or off.
func (h *HelperConfig) Set(helper Helper, enabled bool) error {
	if _, err := ParseHelper(string(helper)); err != nil {
		return err
	}
	h.Enabled[helper] = enabled
	return nil
}

// Clone returns an independent copy.
func (h *HelperConfig) Clone() *HelperConfig {
	return &HelperConfig{Enabled: maps.Clone(h.Enabled)}
}
