package engine

import (
	"testing"

	"github.com/copperfishgh/testy/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   kiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board := mustFEN(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board, board.ToMove)
			}
		})
	}
}

func BenchmarkMakeUnmake(b *testing.B) {
	board := mustFEN(b, kiwipeteFEN)
	moves := LegalMoves(board, board.ToMove)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		played := MakeMove(board, moves[i%len(moves)])
		UnmakeMove(board, played)
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	board := mustFEN(b, kiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsInCheck(board, chess.White)
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := chess.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}
