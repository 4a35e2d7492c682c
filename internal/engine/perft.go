package engine

import "github.com/copperfishgh/testy/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth.
// The board is restored before returning.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		played := MakeMove(board, m)
		nodes += Perft(board, depth-1)
		UnmakeMove(board, played)
	}
	return nodes
}

// Divide returns the perft count below each legal move, keyed by UCI text.
func Divide(board *chess.Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range LegalMoves(board, board.ToMove) {
		played := MakeMove(board, m)
		counts[m.UCI()] = Perft(board, depth-1)
		UnmakeMove(board, played)
	}
	return counts
}
