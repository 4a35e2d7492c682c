// Package notation converts moves to and from text.
package notation

import (
	"fmt"

	corentings "github.com/corentings/chess/v2"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/engine"
	"github.com/copperfishgh/testy/internal/errors"
)

// ParseUCI parses long algebraic move text such as "e2e4" or "e7e8q".
func ParseUCI(s string) (from, to chess.Square, promotion chess.Kind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoKind,
			fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	if from, err = chess.ParseSquare(s[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if to, err = chess.ParseSquare(s[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if len(s) == 5 {
		promotion, err = ParsePromotion(s[4:])
		if err != nil {
			return chess.NoSquare, chess.NoSquare, chess.NoKind, err
		}
	}
	return from, to, promotion, nil
}

// ParsePromotion parses a promotion piece letter in either case.
// The empty string yields NoKind.
func ParsePromotion(s string) (chess.Kind, error) {
	if s == "" {
		return chess.NoKind, nil
	}
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind.IsPromotionKind() {
			return kind, nil
		}
	}
	return chess.NoKind, fmt.Errorf("promotion %q: %w", s, errors.ErrIllegalMove)
}

// SAN renders m in standard algebraic notation, with "+" or "#" for check
// and mate. before is the board the move is played from; it is not modified.
func SAN(before *chess.Board, m chess.Move) (string, error) {
	opt, err := corentings.FEN(engine.BoardToFEN(before))
	if err != nil {
		return "", fmt.Errorf("san for %s: %w", m.UCI(), err)
	}
	g := corentings.NewGame(opt)

	decoded, err := corentings.UCINotation{}.Decode(nil, m.UCI())
	if err != nil {
		return "", fmt.Errorf("san for %s: %w", m.UCI(), err)
	}

	// Only the generated moves carry the castling tags
	for _, candidate := range g.ValidMoves() {
		if candidate.S1() == decoded.S1() && candidate.S2() == decoded.S2() && candidate.Promo() == decoded.Promo() {
			return corentings.AlgebraicNotation{}.Encode(g.Position(), &candidate), nil
		}
	}
	return "", fmt.Errorf("san for %s: %w", m.UCI(), errors.ErrIllegalMove)
}
