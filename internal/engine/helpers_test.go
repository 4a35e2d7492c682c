package engine

import (
	"sort"
	"testing"

	"github.com/copperfishgh/testy/internal/chess"
)

// Well-known perft positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func mustFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// play makes each UCI move in turn, failing the test if one is not legal.
func play(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for _, uci := range moves {
		m, ok := findUCI(board, uci)
		if !ok {
			t.Fatalf("move %s is not legal in %s", uci, BoardToFEN(board))
		}
		MakeMove(board, m)
	}
}

func findUCI(board *chess.Board, uci string) (chess.Move, bool) {
	for _, m := range LegalMoves(board, board.ToMove) {
		if m.UCI() == uci {
			return m, true
		}
	}
	return chess.Move{}, false
}

func uciList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

func sortedUCI(moves []chess.Move) []string {
	out := uciList(moves)
	sort.Strings(out)
	return out
}

func squareList(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}
