package testutil

import (
	"fmt"
	"testing"

	"github.com/copperfishgh/testy/internal/chess"
	chesserrors "github.com/copperfishgh/testy/internal/errors"
)

// Failure paths cannot be observed without a fake *testing.T, so these
// cover the passing cases and the message formatting.

func TestAssertEqual_Values(t *testing.T) {
	AssertEqual(t, chess.MustSquare("e4"), chess.Square{Row: 4, Col: 4})
	AssertEqual(t, chess.W(chess.Queen), chess.Piece{Kind: chess.Queen, Colour: chess.White})
	AssertEqual(t, []chess.Square{chess.MustSquare("a8")}, []chess.Square{{Row: 0, Col: 0}})
	AssertEqual(t, map[chess.Square]int{chess.MustSquare("h1"): 5}, map[chess.Square]int{{Row: 7, Col: 7}: 5})
	AssertEqual(t, nil, nil)
}

func TestAssertEqual_WithMessage(t *testing.T) {
	AssertEqual(t, chess.NewInitialBoard().ToMove, chess.White, "initial side to move")
	AssertEqual(t, chess.NewBoard().MoveNumber, 1, "move number should start at %d", 1)
}

func TestAssertErrorHelpers(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "loading %s", "position")
	AssertError(t, chesserrors.ErrIllegalMove)
	AssertError(t, fmt.Errorf("apply: %w", chesserrors.ErrNoHistory), "undo on empty stack")
}

func TestAssertStringHelpers(t *testing.T) {
	board := chess.NewInitialBoard().String()
	AssertContains(t, board, "r n b q k b n r")
	AssertContains(t, board, "")
	AssertNotContains(t, board, "x")
}

func TestAssertBoolAndNilHelpers(t *testing.T) {
	AssertTrue(t, chess.MustSquare("a8").IsLight())
	AssertFalse(t, chess.NoSquare.Valid())

	var b *chess.Board
	AssertNil(t, b)
	AssertNil(t, nil)
	AssertNotNil(t, chess.NewBoard())
	AssertNotNil(t, []chess.Move{{}})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"after e2e4"}, "after e2e4"},
		{"single int", []interface{}{20}, "20"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format int", []interface{}{"ply %d", 3}, "ply 3"},
		{"format multiple", []interface{}{"%s to %s at ply %d", "e2", "e4", 1}, "e2 to e4 at ply 1"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
