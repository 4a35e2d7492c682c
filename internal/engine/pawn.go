package engine

import "github.com/copperfishgh/testy/internal/chess"

// pawnDirection returns the row step of a pawn: white moves towards row 0.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnHomeRow returns the row from which pawns may double-step.
func pawnHomeRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// promotionRow returns the last rank for pawns of the given colour.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

// appendPawnMoves appends the pseudo-legal moves of the pawn on from.
func appendPawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece, moves []chess.Move) []chess.Move {
	dir := pawnDirection(pawn.Colour)

	// Pushes: single, then double from the home rank with both squares empty
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = appendPawnAdvance(moves, chess.Move{From: from, To: one, Piece: pawn})
		two := one.Offset(dir, 0)
		if from.Row == pawnHomeRow(pawn.Colour) && board.Get(two).IsEmpty() {
			moves = append(moves, chess.Move{From: from, To: two, Piece: pawn})
		}
	}

	// Captures
	for _, dc := range [...]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		switch {
		case !target.IsEmpty() && target.Colour != pawn.Colour:
			moves = appendPawnAdvance(moves, chess.Move{From: from, To: to, Piece: pawn, Captured: target})
		case isEnPassantCapture(board, from, to, pawn.Colour):
			moves = append(moves, chess.Move{
				From:      from,
				To:        to,
				Piece:     pawn,
				Captured:  chess.Piece{Kind: chess.Pawn, Colour: pawn.Colour.Opposite()},
				EnPassant: true,
			})
		}
	}
	return moves
}

// appendPawnAdvance appends m, expanded into one move per promotion kind
// when it reaches the last rank.
func appendPawnAdvance(moves []chess.Move, m chess.Move) []chess.Move {
	if m.To.Row != promotionRow(m.Piece.Colour) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionKinds {
		m.Promotion = kind
		moves = append(moves, m)
	}
	return moves
}

// isEnPassantCapture reports whether a pawn of colour on from may capture
// en passant onto to. Only the side to move may use the target, and only
// while the skipping pawn is still beside the capturer.
func isEnPassantCapture(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	if !board.EnPassant || board.ToMove != colour || board.EPSquare != to {
		return false
	}
	if !board.Get(to).IsEmpty() {
		return false
	}
	victim := chess.Square{Row: from.Row, Col: to.Col}
	return board.Get(victim) == chess.Piece{Kind: chess.Pawn, Colour: colour.Opposite()}
}

// applyPawnMove moves the pawn of played, handling en passant removal,
// promotion and the new en passant target.
func applyPawnMove(board *chess.Board, played *chess.Move) {
	from, to := played.From, played.To
	pawn := played.Piece

	// A diagonal step onto an empty square can only be en passant
	if from.Col != to.Col && played.Captured.IsEmpty() {
		victim := chess.Square{Row: from.Row, Col: to.Col}
		played.Captured = board.Get(victim)
		played.EnPassant = true
		board.Set(victim, chess.Empty)
	}

	board.Set(from, chess.Empty)

	if to.Row == promotionRow(pawn.Colour) {
		if played.Promotion == chess.NoKind {
			played.Promotion = chess.Queen // Default to queen
		}
		board.Set(to, chess.Piece{Kind: played.Promotion, Colour: pawn.Colour})
	} else {
		played.Promotion = chess.NoKind
		board.Set(to, pawn)
	}

	if abs(to.Row-from.Row) == 2 {
		board.EnPassant = true
		board.EPSquare = chess.Square{Row: (from.Row + to.Row) / 2, Col: from.Col}
	}
}
