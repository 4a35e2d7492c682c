package engine

import "github.com/copperfishgh/testy/internal/chess"

// kingHomeCol is the king's starting file (e).
const kingHomeCol = 4

// castlingPath describes one castling option on a home rank, in columns.
type castlingPath struct {
	side    chess.CastleSide
	rookCol int
	kingTo  int
	rookTo  int
	empty   []int // must be unoccupied
	transit []int // the king crosses or lands on these, so they must not be attacked
}

// castlingPaths is ordered king side first, which fixes generation order.
var castlingPaths = [...]castlingPath{
	{side: chess.KingSide, rookCol: 7, kingTo: 6, rookTo: 5, empty: []int{5, 6}, transit: []int{5, 6}},
	{side: chess.QueenSide, rookCol: 0, kingTo: 2, rookTo: 3, empty: []int{1, 2, 3}, transit: []int{3, 2}},
}

// homeRow returns the back rank row for a colour.
func homeRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

// pathFor returns the castling path whose king destination is kingTo.
func pathFor(kingTo int) castlingPath {
	if kingTo == castlingPaths[0].kingTo {
		return castlingPaths[0]
	}
	return castlingPaths[1]
}

// pathForSide returns the castling path of a side.
func pathForSide(side chess.CastleSide) castlingPath {
	if side == chess.KingSide {
		return castlingPaths[0]
	}
	return castlingPaths[1]
}

// appendCastlingMoves appends every castling move available to the king on
// from. Each needs its right, the king and rook on their home squares, an
// empty path, and a king that is not in check and does not cross or land on
// an attacked square.
func appendCastlingMoves(board *chess.Board, from chess.Square, king chess.Piece, moves []chess.Move) []chess.Move {
	row := homeRow(king.Colour)
	if from != (chess.Square{Row: row, Col: kingHomeCol}) {
		return moves
	}
	rights := chess.CastlingRight(king.Colour, chess.KingSide) | chess.CastlingRight(king.Colour, chess.QueenSide)
	if board.Castling&rights == 0 {
		return moves
	}
	enemy := king.Colour.Opposite()
	if IsSquareAttacked(board, from, enemy) {
		return moves
	}

	rook := chess.Piece{Kind: chess.Rook, Colour: king.Colour}
	for _, path := range castlingPaths {
		if !board.Castling.Has(chess.CastlingRight(king.Colour, path.side)) {
			continue
		}
		if board.Get(chess.Square{Row: row, Col: path.rookCol}) != rook {
			continue
		}
		if !pathClear(board, row, path, enemy) {
			continue
		}
		moves = append(moves, chess.Move{
			From:   from,
			To:     chess.Square{Row: row, Col: path.kingTo},
			Piece:  king,
			Castle: path.side,
		})
	}
	return moves
}

func pathClear(board *chess.Board, row int, path castlingPath, enemy chess.Colour) bool {
	for _, col := range path.empty {
		if !board.Get(chess.Square{Row: row, Col: col}).IsEmpty() {
			return false
		}
	}
	for _, col := range path.transit {
		if IsSquareAttacked(board, chess.Square{Row: row, Col: col}, enemy) {
			return false
		}
	}
	return true
}

// applyCastle moves king and rook for a castling move and returns its side.
func applyCastle(board *chess.Board, from, to chess.Square, king chess.Piece) chess.CastleSide {
	path := pathFor(to.Col)
	rookFrom := chess.Square{Row: from.Row, Col: path.rookCol}
	rookTo := chess.Square{Row: from.Row, Col: path.rookTo}

	board.Set(from, chess.Empty)
	board.Set(to, king)
	board.Set(rookTo, board.Get(rookFrom))
	board.Set(rookFrom, chess.Empty)
	return path.side
}

// undoCastle puts the rook of a castling move back on its corner.
func undoCastle(board *chess.Board, played chess.Move) {
	path := pathForSide(played.Castle)
	row := played.From.Row
	rookFrom := chess.Square{Row: row, Col: path.rookCol}
	rookTo := chess.Square{Row: row, Col: path.rookTo}
	board.Set(rookFrom, board.Get(rookTo))
	board.Set(rookTo, chess.Empty)
}

// castlingRightsTouching returns the rights lost when a move starts or ends on sq.
func castlingRightsTouching(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.Square{Row: 7, Col: kingHomeCol}:
		return chess.WhiteKingSide | chess.WhiteQueenSide
	case chess.Square{Row: 7, Col: 7}:
		return chess.WhiteKingSide
	case chess.Square{Row: 7, Col: 0}:
		return chess.WhiteQueenSide
	case chess.Square{Row: 0, Col: kingHomeCol}:
		return chess.BlackKingSide | chess.BlackQueenSide
	case chess.Square{Row: 0, Col: 7}:
		return chess.BlackKingSide
	case chess.Square{Row: 0, Col: 0}:
		return chess.BlackQueenSide
	}
	return chess.NoCastling
}
