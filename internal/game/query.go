package game

import (
	"fmt"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/engine"
	"github.com/copperfishgh/testy/internal/errors"
	"github.com/copperfishgh/testy/internal/hashing"
	"github.com/copperfishgh/testy/internal/tactics"
)

// RepetitionLimit is the number of occurrences that draws the game.
const RepetitionLimit = 3

// Status classifies the current position. Checkmate and stalemate come
// first, then the fifty-move rule, insufficient material and repetition.
func (s *State) Status() chess.Status {
	if st := engine.Classify(&s.board); st.IsOver() {
		return st
	}
	if s.reps.Count(hashing.Zobrist(&s.board)) >= RepetitionLimit {
		return chess.Status{Kind: chess.Draw, Reason: chess.DrawThreefoldRepetition}
	}
	return chess.Status{}
}

// InCheck reports whether the side to move is in check.
func (s *State) InCheck() bool {
	return engine.IsInCheck(&s.board, s.board.ToMove)
}

// LastMove returns the most recent undoable move.
func (s *State) LastMove() (chess.Move, bool) {
	if len(s.undo) == 0 {
		return chess.Move{}, false
	}
	return s.undo[len(s.undo)-1], true
}

// MoveList returns the SAN of every move since the baseline position.
func (s *State) MoveList() []string {
	return append([]string(nil), s.moveText...)
}

// LegalMoves returns the legal moves of the side to move.
func (s *State) LegalMoves() []chess.Move {
	return engine.LegalMoves(&s.board, s.board.ToMove)
}

// LegalDestinations returns where the piece on sq may move. Pieces of
// the side not to move have no destinations.
func (s *State) LegalDestinations(sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("destinations of %v: %w", sq, errors.ErrInvalidSquare)
	}
	if p := s.board.Get(sq); p.IsEmpty() || p.Colour != s.board.ToMove {
		return nil, nil
	}
	return engine.LegalDestinations(&s.board, sq), nil
}

// FEN encodes the current position.
func (s *State) FEN() string {
	return engine.BoardToFEN(&s.board)
}

// LoadFEN replaces the game with the decoded position. On any error the
// game is left as it was.
func (s *State) LoadFEN(fen string) error {
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	s.start(*b)
	if s.cfg.Verbosity > 0 {
		fmt.Fprintf(s.cfg.LogFile, "loaded %s\n", fen)
	}
	return nil
}

// Hanging returns the hanging pieces of the current position.
func (s *State) Hanging() map[chess.Square]tactics.Hanging {
	return s.cache.HangingPieces(&s.board)
}

// Exchange returns the attackers and defenders of sq.
func (s *State) Exchange(sq chess.Square) (tactics.Exchange, error) {
	return s.cache.ExchangeInfo(&s.board, sq)
}

// InterestingSquares returns the occupied squares under attack.
func (s *State) InterestingSquares() []chess.Square {
	return s.cache.InterestingSquares(&s.board)
}

// ForkSquares returns the knight fork squares for colour.
func (s *State) ForkSquares(colour chess.Colour) []chess.Square {
	return s.cache.KnightForkSquares(&s.board, colour)
}

// Cache returns the tactical cache so that previewed boards share the
// memo with the live position.
func (s *State) Cache() *tactics.Cache {
	return s.cache
}

// CacheStats reports memo hits and misses of the tactical cache.
func (s *State) CacheStats() tactics.Stats {
	return s.cache.Stats()
}
