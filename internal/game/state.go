// Package game owns the live position of one game: its move history,
// undo and redo, draw bookkeeping and the tactical overlay cache.
//
// A State is not safe for concurrent use; callers serialize access.
package game

import (
	"fmt"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/config"
	"github.com/copperfishgh/testy/internal/engine"
	"github.com/copperfishgh/testy/internal/errors"
	"github.com/copperfishgh/testy/internal/hashing"
	"github.com/copperfishgh/testy/internal/notation"
	"github.com/copperfishgh/testy/internal/tactics"
)

// State is the single source of truth for the current position.
type State struct {
	cfg *config.Config

	board chess.Board

	// undo holds at most cfg.Game.UndoLimit moves, most recent last.
	undo []chess.Move
	redo []chess.Move

	// moveText is the SAN of every move since the start position,
	// including moves that have dropped off the undo stack.
	moveText []string

	reps  *hashing.RepetitionTable
	cache *tactics.Cache
}

// New creates a game at the standard starting position.
func New(cfg *config.Config) *State {
	s := &State{
		cfg:   cfg,
		reps:  hashing.NewRepetitionTable(),
		cache: tactics.NewCache(),
	}
	s.start(*chess.NewInitialBoard())
	return s
}

// start makes b the new baseline position and clears all history.
func (s *State) start(b chess.Board) {
	s.board = b
	s.undo = nil
	s.redo = nil
	s.moveText = nil
	s.reps.Reset()
	s.reps.Add(hashing.Zobrist(&s.board))
	s.cache.Invalidate()
}

// Board returns a detached copy of the current position.
func (s *State) Board() *chess.Board {
	b := s.board
	return &b
}

// Ply returns the number of moves played since the baseline position.
func (s *State) Ply() int {
	return len(s.moveText)
}

// UndoDepth returns how many moves can currently be undone.
func (s *State) UndoDepth() int {
	return len(s.undo)
}

// RedoDepth returns how many moves can currently be redone.
func (s *State) RedoDepth() int {
	return len(s.redo)
}

// Apply plays the legal move matching m's From, To and Promotion.
// It returns the move as played, with its SAN text and recorded side
// effects. The redo history is discarded.
func (s *State) Apply(m chess.Move) (chess.Move, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return chess.Move{}, s.moveError(fmt.Errorf("%w: %w", errors.ErrIllegalMove, errors.ErrInvalidSquare), m)
	}
	if st := s.Status(); st.IsOver() {
		return chess.Move{}, s.moveError(fmt.Errorf("game is over (%s): %w", st, errors.ErrIllegalMove), m)
	}
	legal, ok := engine.FindLegalMove(&s.board, m.From, m.To, m.Promotion)
	if !ok {
		return chess.Move{}, s.moveError(errors.ErrIllegalMove, m)
	}

	played, err := s.commit(legal)
	if err != nil {
		return chess.Move{}, err
	}
	s.redo = nil
	return played, nil
}

// commit plays a move already known to be legal. The position is only
// replaced once the result passes validation.
func (s *State) commit(legal chess.Move) (chess.Move, error) {
	text, err := notation.SAN(&s.board, legal)
	if err != nil {
		if s.cfg.Verbosity > 1 {
			fmt.Fprintf(s.cfg.LogFile, "SAN for %s failed: %v\n", legal.UCI(), err)
		}
		text = legal.UCI()
	}
	legal.Text = text

	next := s.board
	played := engine.MakeMove(&next, legal)
	if err := next.Validate(); err != nil {
		return chess.Move{}, s.moveError(err, legal)
	}
	s.board = next

	if len(s.undo) >= s.cfg.Game.UndoLimit {
		s.undo = append(s.undo[:0], s.undo[len(s.undo)-s.cfg.Game.UndoLimit+1:]...)
	}
	s.undo = append(s.undo, played)
	s.moveText = append(s.moveText, played.Text)
	s.reps.Add(hashing.Zobrist(&s.board))
	s.cache.Invalidate()

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "ply %d: %s\n", len(s.moveText), played.Text)
	}
	if s.cfg.Verbosity > 0 {
		if st := s.Status(); st.IsOver() {
			fmt.Fprintf(s.cfg.LogFile, "game over: %s\n", st)
		}
	}
	return played, nil
}

// Undo takes back the most recent move.
func (s *State) Undo() (chess.Move, error) {
	if len(s.undo) == 0 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrNoHistory, PlyNum: s.Ply()}
	}
	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	s.reps.Remove(hashing.Zobrist(&s.board))
	engine.UnmakeMove(&s.board, last)
	s.moveText = s.moveText[:len(s.moveText)-1]
	s.redo = append(s.redo, last)
	s.cache.Invalidate()

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "undo %s\n", last.Text)
	}
	return last, nil
}

// Redo replays the most recently undone move. Further redo entries
// are kept.
func (s *State) Redo() (chess.Move, error) {
	if len(s.redo) == 0 {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrNoHistory, PlyNum: s.Ply()}
	}
	next := s.redo[len(s.redo)-1]
	legal, ok := engine.FindLegalMove(&s.board, next.From, next.To, next.Promotion)
	if !ok {
		return chess.Move{}, s.moveError(fmt.Errorf("redo no longer legal: %w", errors.ErrInvariantViolation), next)
	}

	played, err := s.commit(legal)
	if err != nil {
		return chess.Move{}, err
	}
	s.redo = s.redo[:len(s.redo)-1]

	if s.cfg.Verbosity > 1 {
		fmt.Fprintf(s.cfg.LogFile, "redo %s\n", played.Text)
	}
	return played, nil
}

// Reset returns to the standard starting position.
func (s *State) Reset() {
	s.start(*chess.NewInitialBoard())
	if s.cfg.Verbosity > 0 {
		fmt.Fprintln(s.cfg.LogFile, "reset to starting position")
	}
}

// Preview returns a detached board with m applied, leaving the game
// untouched. m should come from LegalMoves; only its squares are checked.
func (s *State) Preview(m chess.Move) (*chess.Board, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return nil, s.moveError(fmt.Errorf("%w: %w", errors.ErrIllegalMove, errors.ErrInvalidSquare), m)
	}
	if s.board.Get(m.From).IsEmpty() {
		return nil, s.moveError(fmt.Errorf("empty source square: %w", errors.ErrIllegalMove), m)
	}
	preview := s.board
	engine.MakeMove(&preview, m)
	return &preview, nil
}

// moveError attaches the next ply number and the move text to err.
func (s *State) moveError(err error, m chess.Move) error {
	return &errors.MoveError{Err: err, PlyNum: s.Ply() + 1, MoveText: m.UCI()}
}
