package engine

import "github.com/copperfishgh/testy/internal/chess"

// offset is a (row, col) step on the board.
type offset struct {
	dRow, dCol int
}

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// movementRule describes how a non-pawn piece moves: a fixed set of steps,
// repeated until blocked when slides is set.
type movementRule struct {
	offsets []offset
	slides  bool
}

// movementRules maps every non-pawn kind to its movement. Pawns have
// direction- and occupancy-dependent rules and are handled in pawn.go.
var movementRules = [chess.NumKinds]movementRule{
	chess.Knight: {offsets: knightOffsets},
	chess.Bishop: {offsets: diagonalDirs, slides: true},
	chess.Rook:   {offsets: straightDirs, slides: true},
	chess.Queen:  {offsets: queenDirs, slides: true},
	chess.King:   {offsets: kingOffsets},
}

// appendRuleMoves appends the table-driven moves of a knight, bishop, rook,
// queen or king standing on from. Sliders stop at the first occupied
// square, capturing it if it holds an enemy piece.
func appendRuleMoves(board *chess.Board, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	rule := movementRules[piece.Kind]
	for _, o := range rule.offsets {
		to := from.Offset(o.dRow, o.dCol)
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != piece.Colour {
					moves = append(moves, chess.Move{From: from, To: to, Piece: piece, Captured: target})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to, Piece: piece})
			if !rule.slides {
				break
			}
			to = to.Offset(o.dRow, o.dCol)
		}
	}
	return moves
}

// forEachAttack calls visit for every square the piece on from attacks,
// whether that square is empty, friendly or hostile. Castling and pawn
// pushes are not attacks.
func forEachAttack(board *chess.Board, from chess.Square, piece chess.Piece, visit func(chess.Square)) {
	if piece.Kind == chess.Pawn {
		dir := pawnDirection(piece.Colour)
		for _, dc := range [...]int{-1, 1} {
			if sq := from.Offset(dir, dc); sq.Valid() {
				visit(sq)
			}
		}
		return
	}

	rule := movementRules[piece.Kind]
	for _, o := range rule.offsets {
		sq := from.Offset(o.dRow, o.dCol)
		for sq.Valid() {
			visit(sq)
			if !rule.slides || !board.Get(sq).IsEmpty() {
				break
			}
			sq = sq.Offset(o.dRow, o.dCol)
		}
	}
}

// AttackedSquares returns the squares attacked by the piece on from.
func AttackedSquares(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	var squares []chess.Square
	forEachAttack(board, from, piece, func(sq chess.Square) {
		squares = append(squares, sq)
	})
	return squares
}
