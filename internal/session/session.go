// Package session is the command surface a display drives: selecting
// pieces, attempting moves, hovering for tactical overlays and toggling
// which overlays are shown. Perspective and selection live here and
// never reach the game state.
package session

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/engine"
	"github.com/copperfishgh/testy/internal/errors"
	"github.com/copperfishgh/testy/internal/game"
	"github.com/copperfishgh/testy/internal/tactics"
)

// Session wraps one game with display state.
// It is not safe for concurrent use.
type Session struct {
	cfg     *config.Config
	state   *game.State
	helpers *config.HelperConfig

	selected chess.Square
	flipped  bool
}

// New creates a session at the starting position. The session takes its
// own copy of the helper flags in cfg.
func New(cfg *config.Config) *Session {
	return &Session{
		cfg:      cfg,
		state:    game.New(cfg),
		helpers:  cfg.Helpers.Clone(),
		selected: chess.NoSquare,
	}
}

// State returns the underlying game.
func (s *Session) State() *game.State {
	return s.state
}

// Select picks up the piece on sq and returns its legal destinations.
// Selecting an empty square or an opponent's piece clears the selection.
func (s *Session) Select(sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("select %v: %w", sq, errors.ErrInvalidSquare)
	}
	dests, err := s.state.LegalDestinations(sq)
	if err != nil {
		return nil, err
	}
	b := s.state.Board()
	if p := b.Get(sq); p.IsEmpty() || p.Colour != b.ToMove {
		s.selected = chess.NoSquare
		return nil, nil
	}
	s.selected = sq
	return dests, nil
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (chess.Square, bool) {
	return s.selected, s.selected.Valid()
}

// AttemptMove plays from-to. A nil promotion means the configured
// default for promoting moves and none otherwise. The selection is
// cleared on success and kept on failure.
func (s *Session) AttemptMove(from, to chess.Square, promotion *chess.Kind) (chess.Move, error) {
	kind := chess.NoKind
	switch {
	case promotion != nil:
		kind = *promotion
	case s.isPromotion(from, to):
		kind = s.cfg.Game.DefaultPromotion
	}

	played, err := s.state.Apply(chess.Move{From: from, To: to, Promotion: kind})
	if err != nil {
		return chess.Move{}, err
	}
	s.selected = chess.NoSquare
	return played, nil
}

// isPromotion reports whether from-to moves a pawn onto its last rank.
func (s *Session) isPromotion(from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	p := s.state.Board().Get(from)
	if p.Kind != chess.Pawn {
		return false
	}
	if p.Colour == chess.White {
		return to.Row == 0
	}
	return to.Row == chess.BoardSize-1
}

// Undo takes back the last move and clears the selection.
func (s *Session) Undo() (chess.Move, error) {
	s.selected = chess.NoSquare
	return s.state.Undo()
}

// Redo replays the last undone move and clears the selection.
func (s *Session) Redo() (chess.Move, error) {
	s.selected = chess.NoSquare
	return s.state.Redo()
}

// Reset starts a new game. Perspective and helper flags are kept.
func (s *Session) Reset() {
	s.selected = chess.NoSquare
	s.state.Reset()
}

// FlipPerspective turns the board around and returns whether black is
// now at the bottom.
func (s *Session) FlipPerspective() bool {
	s.flipped = !s.flipped
	return s.flipped
}

// Flipped reports whether black is at the bottom.
func (s *Session) Flipped() bool {
	return s.flipped
}

// SetHelperEnabled switches an overlay on or off by id.
func (s *Session) SetHelperEnabled(id string, enabled bool) error {
	helper, err := config.ParseHelper(id)
	if err != nil {
		return err
	}
	return s.helpers.Set(helper, enabled)
}

// Helpers returns a copy of the overlay flags.
func (s *Session) Helpers() map[config.Helper]bool {
	return maps.Clone(s.helpers.Enabled)
}

// FEN encodes the current position.
func (s *Session) FEN() string {
	return s.state.FEN()
}

// LoadFEN replaces the game, clearing the selection on success.
func (s *Session) LoadFEN(fen string) error {
	if err := s.state.LoadFEN(fen); err != nil {
		return err
	}
	s.selected = chess.NoSquare
	return nil
}

// Status returns the status of the current position.
func (s *Session) Status() chess.Status {
	return s.state.Status()
}

// Overlay is the tactical picture to draw while hovering a square.
// Fields of disabled helpers are left empty.
type Overlay struct {
	Square chess.Square

	// Preview is set when the overlay describes the position after the
	// selected piece moves to Square.
	Preview bool
	FEN     string

	Hanging      map[chess.Square]tactics.Hanging
	Exchange     *tactics.Exchange
	Interesting  []chess.Square
	Forks        []chess.Square
	Destinations []chess.Square
}

// Hover returns the overlay for sq. With a piece selected and sq one of
// its destinations, the overlay shows the position after that move.
func (s *Session) Hover(sq chess.Square) (Overlay, error) {
	if !sq.Valid() {
		return Overlay{}, fmt.Errorf("hover %v: %w", sq, errors.ErrInvalidSquare)
	}

	live := s.state.Board()
	board := live
	ov := Overlay{Square: sq}

	var dests []chess.Square
	if s.selected.Valid() {
		dests = engine.LegalDestinations(live, s.selected)
		if containsSquare(dests, sq) {
			m := chess.Move{From: s.selected, To: sq}
			if s.isPromotion(s.selected, sq) {
				m.Promotion = s.cfg.Game.DefaultPromotion
			}
			preview, err := s.state.Preview(m)
			if err != nil {
				return Overlay{}, err
			}
			board = preview
			ov.Preview = true
		}
	}
	ov.FEN = engine.BoardToFEN(board)

	cache := s.state.Cache()
	if s.helpers.IsEnabled(config.HelperHanging) {
		ov.Hanging = cache.HangingPieces(board)
	}
	if s.helpers.IsEnabled(config.HelperExchange) {
		ex, err := cache.ExchangeInfo(board, sq)
		if err != nil {
			return Overlay{}, err
		}
		ov.Exchange = &ex
		ov.Interesting = cache.InterestingSquares(board)
	}
	if s.helpers.IsEnabled(config.HelperForks) {
		ov.Forks = cache.KnightForkSquares(board, live.ToMove)
	}
	if s.helpers.IsEnabled(config.HelperLegalMoves) {
		ov.Destinations = dests
	}
	return ov, nil
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
