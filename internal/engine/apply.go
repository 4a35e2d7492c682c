package engine

import "github.com/copperfishgh/testy/internal/chess"

// MakeMove applies m to board in place and returns the move as played,
// with the moved and captured pieces, special-move flags and the prior
// board state filled in. Only From, To and Promotion are read from m, and
// m must be legal for the piece on From. Castling is recognised by a king
// moving two files and en passant by a pawn moving diagonally onto an
// empty square.
func MakeMove(board *chess.Board, m chess.Move) chess.Move {
	piece := board.Get(m.From)
	played := chess.Move{
		From:       m.From,
		To:         m.To,
		Piece:      piece,
		Captured:   board.Get(m.To),
		Promotion:  m.Promotion,
		GivesCheck: m.GivesCheck,
		Text:       m.Text,
		Prior: chess.PriorState{
			Castling:      board.Castling,
			EnPassant:     board.EnPassant,
			EPSquare:      board.EPSquare,
			HalfmoveClock: board.HalfmoveClock,
		},
	}
	colour := piece.Colour

	board.EnPassant = false
	board.EPSquare = chess.NoSquare

	switch {
	case piece.Kind == chess.King && abs(m.To.Col-m.From.Col) == 2:
		played.Promotion = chess.NoKind
		played.Castle = applyCastle(board, m.From, m.To, piece)
	case piece.Kind == chess.Pawn:
		applyPawnMove(board, &played)
	default:
		played.Promotion = chess.NoKind
		board.Set(m.From, chess.Empty)
		board.Set(m.To, piece)
	}

	board.Castling = board.Castling.
		Without(castlingRightsTouching(m.From)).
		Without(castlingRightsTouching(m.To))

	if piece.Kind == chess.Pawn || played.IsCapture() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
	return played
}

// UnmakeMove reverses a move returned by MakeMove. The board must be in
// exactly the state MakeMove left it in.
func UnmakeMove(board *chess.Board, played chess.Move) {
	colour := played.Piece.Colour

	board.Set(played.To, chess.Empty)
	board.Set(played.From, played.Piece)
	switch {
	case played.EnPassant:
		board.Set(chess.Square{Row: played.From.Row, Col: played.To.Col}, played.Captured)
	case played.IsCastle():
		undoCastle(board, played)
	default:
		board.Set(played.To, played.Captured)
	}

	board.Castling = played.Prior.Castling
	board.EnPassant = played.Prior.EnPassant
	board.EPSquare = played.Prior.EPSquare
	board.HalfmoveClock = played.Prior.HalfmoveClock
	if colour == chess.Black {
		board.MoveNumber--
	}
	board.ToMove = colour
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
