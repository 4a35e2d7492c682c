package engine

import (
	"errors"
	"testing"

	"github.com/copperfishgh/testy/internal/chess"
	chesserrors "github.com/copperfishgh/testy/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.MustSquare("e1")) == chess.W(chess.King) &&
					b.Get(chess.MustSquare("e8")) == chess.B(chess.King) &&
					b.Get(chess.MustSquare("e2")) == chess.W(chess.Pawn) &&
					b.Get(chess.MustSquare("e7")) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.Castling == chess.AllCastling
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					b.Get(chess.MustSquare("e2")).IsEmpty() &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPSquare == chess.MustSquare("e3")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling == chess.NoCastling
			},
		},
		{
			name: "partial castling rights and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 17 42",
			checkFn: func(b *chess.Board) bool {
				return b.Castling == chess.WhiteKingSide|chess.BlackQueenSide &&
					b.HalfmoveClock == 17 &&
					b.MoveNumber == 42
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen)
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) board check failed:\n%s", tt.fen, board)
			}
		})
	}
}

func TestNewBoardFromFEN_InitialMatchesSetup(t *testing.T) {
	if diff := cmp.Diff(chess.NewInitialBoard(), mustFEN(t, InitialFEN)); diff != "" {
		t.Errorf("initial FEN board mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBoardFromFEN_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty string", "", "fields"},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "fields"},
		{"too many fields", InitialFEN + " 7", "fields"},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"rank too long", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"rank overflows", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", fieldPlacement},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", fieldSide},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", fieldCastling},
		{"duplicate castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKq - 0 1", fieldCastling},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", fieldEnPassant},
		{"en passant on wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e3 0 1", fieldEnPassant},
		{"non-numeric halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", fieldHalfmove},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", fieldHalfmove},
		{"non-numeric fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 y", fieldFullmove},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", fieldFullmove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			if err == nil {
				t.Fatalf("NewBoardFromFEN(%q) = %v, want error", tt.fen, board)
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
			var fenErr *chesserrors.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("error %v is not a FENError", err)
			}
			if fenErr.Field != tt.field {
				t.Errorf("FENError.Field = %q, want %q", fenErr.Field, tt.field)
			}
		})
	}
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"8/8/8/8/8/8/8/k1K5 b - - 99 120",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			if got := BoardToFEN(mustFEN(t, fen)); got != fen {
				t.Errorf("BoardToFEN(NewBoardFromFEN(%q)) = %q", fen, got)
			}
		})
	}
}

// Boards reached by play must survive encode then decode unchanged,
// en passant and castling state included.
func TestBoardToFEN_PlayedPositions(t *testing.T) {
	board := chess.NewInitialBoard()
	lines := [][]string{
		{"e2e4"},
		{"c7c5"},
		{"g1f3"},
		{"d7d6"},
		{"e4e5"},
		{"f7f5"},
		{"f1e2"},
		{"g8f6"},
		{"e1g1"},
	}
	for _, line := range lines {
		play(t, board, line...)
		decoded := mustFEN(t, BoardToFEN(board))
		if diff := cmp.Diff(board, decoded); diff != "" {
			t.Fatalf("after %v: decode(encode(board)) mismatch (-want +got):\n%s", line, diff)
		}
	}
	if want := chess.BlackKingSide | chess.BlackQueenSide; board.Castling != want {
		t.Errorf("Castling = %s, want %s", board.Castling, want)
	}
}
