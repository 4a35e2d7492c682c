package engine

import "github.com/copperfishgh/testy/internal/chess"

// PseudoLegalMoves generates every move of colour that obeys piece movement,
// without checking whether the mover's king is left in check. Moves are
// ordered by source square (a8 first, row-major), then by direction.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		from := chess.SquareFromIndex(i)
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		moves = appendPseudoLegal(board, from, piece, moves)
	}
	return moves
}

func appendPseudoLegal(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return appendPawnMoves(board, from, piece, moves)
	case chess.King:
		moves = appendRuleMoves(board, from, piece, moves)
		return appendCastlingMoves(board, from, piece, moves)
	default:
		return appendRuleMoves(board, from, piece, moves)
	}
}

// LegalMoves generates every legal move of colour, with GivesCheck set.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return filterLegal(board, PseudoLegalMoves(board, colour))
}

// LegalMovesFrom generates the legal moves of the piece on from.
// An empty or off-board square has none.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return filterLegal(board, appendPseudoLegal(board, from, piece, nil))
}

// LegalDestinations returns the distinct destination squares of the piece
// on from, in generation order. The four promotions to one square count once.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	var dests []chess.Square
	for _, m := range LegalMovesFrom(board, from) {
		if n := len(dests); n > 0 && dests[n-1] == m.To {
			continue
		}
		dests = append(dests, m.To)
	}
	return dests
}

// FindLegalMove returns the legal move of the side to move that matches
// from, to and promotion.
func FindLegalMove(board *chess.Board, from, to chess.Square, promotion chess.Kind) (chess.Move, bool) {
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return chess.Move{}, false
	}
	for _, m := range LegalMovesFrom(board, from) {
		if m.Matches(from, to, promotion) {
			return m, true
		}
	}
	return chess.Move{}, false
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		from := chess.SquareFromIndex(i)
		piece := board.Get(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		for _, m := range appendPseudoLegal(board, from, piece, nil) {
			if legal, _ := tryMove(board, m); legal {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover in check,
// reusing the backing array of moves.
func filterLegal(board *chess.Board, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		ok, check := tryMove(board, m)
		if !ok {
			continue
		}
		m.GivesCheck = check
		legal = append(legal, m)
	}
	return legal
}

// tryMove makes m on a scratch copy of board and reports whether the
// mover's king is safe afterwards and whether the opponent is in check.
func tryMove(board *chess.Board, m chess.Move) (legal, givesCheck bool) {
	scratch := *board
	MakeMove(&scratch, m)
	colour := m.Piece.Colour
	if IsInCheck(&scratch, colour) {
		return false, false
	}
	return true, IsInCheck(&scratch, colour.Opposite())
}
