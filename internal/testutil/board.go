package testutil

import (
	"testing"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/engine"
)

// MustBoard decodes a FEN string into a board.
// It calls t.Fatal if the FEN is malformed.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("MustBoard(%q): %v", fen, err)
	}
	return b
}

// MustPlay makes each UCI move on b in turn.
// It calls t.Fatal if a move is malformed or not legal.
func MustPlay(t testing.TB, b *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if len(text) != 4 && len(text) != 5 {
			t.Fatalf("MustPlay(%q): malformed move", text)
		}
		from, to := chess.MustSquare(text[0:2]), chess.MustSquare(text[2:4])
		promo := chess.NoKind
		if len(text) == 5 {
			promo = chess.KindFromLetter(text[4])
		}
		m, ok := engine.FindLegalMove(b, from, to, promo)
		if !ok {
			t.Fatalf("MustPlay(%q): not legal in %s", text, engine.BoardToFEN(b))
		}
		engine.MakeMove(b, m)
	}
}

// Squares converts algebraic names such as "e4" to squares.
// It returns nil for no names, matching what the engine returns for
// an empty result.
func Squares(names ...string) []chess.Square {
	if len(names) == 0 {
		return nil
	}
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = chess.MustSquare(n)
	}
	return out
}
