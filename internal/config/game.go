package config

import (
	"fmt"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/errors"
)

// DefaultUndoLimit is how many applied moves can be taken back.
const DefaultUndoLimit = 50

// GameConfig holds settings for a single game's state.
type GameConfig struct {
	// UndoLimit bounds the undo history; older moves are dropped.
	UndoLimit int

	// DefaultPromotion is used when a promoting move names no piece.
	DefaultPromotion chess.Kind
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		UndoLimit:        DefaultUndoLimit,
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.UndoLimit < 1 {
		return fmt.Errorf("undo limit %d < 1: %w", g.UndoLimit, errors.ErrInvalidConfig)
	}
	if !g.DefaultPromotion.IsPromotionKind() {
		return fmt.Errorf("default promotion %v: %w", g.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
