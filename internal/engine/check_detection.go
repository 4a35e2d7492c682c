package engine

import "github.com/copperfishgh/testy/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A colour without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	attacked := false
	scanAttackers(board, sq, byColour, func(chess.Square) bool {
		attacked = true
		return false
	})
	return attacked
}

// Attackers returns the squares of every piece of byColour that attacks sq.
// The occupant of sq itself is never included, and the piece on sq does
// not block anything, so for a friendly occupant this yields its defenders.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var squares []chess.Square
	scanAttackers(board, sq, byColour, func(from chess.Square) bool {
		squares = append(squares, from)
		return true
	})
	return squares
}

// sliderRays pairs each ray family with the non-queen kind that moves along it.
var sliderRays = [...]struct {
	dirs []offset
	kind chess.Kind
}{
	{dirs: diagonalDirs, kind: chess.Bishop},
	{dirs: straightDirs, kind: chess.Rook},
}

// scanAttackers looks outward from target for pieces of byColour that
// attack it, calling visit for each one until visit returns false.
func scanAttackers(board *chess.Board, target chess.Square, byColour chess.Colour, visit func(chess.Square) bool) {
	if !target.Valid() {
		return
	}

	// Pawns attack from one row behind the target, relative to their direction
	pawn := chess.Piece{Kind: chess.Pawn, Colour: byColour}
	behind := -pawnDirection(byColour)
	for _, dc := range [...]int{-1, 1} {
		if sq := target.Offset(behind, dc); board.Get(sq) == pawn {
			if !visit(sq) {
				return
			}
		}
	}

	// Knight and king offsets are symmetric
	for _, kind := range [...]chess.Kind{chess.Knight, chess.King} {
		piece := chess.Piece{Kind: kind, Colour: byColour}
		for _, o := range movementRules[kind].offsets {
			if sq := target.Offset(o.dRow, o.dCol); board.Get(sq) == piece {
				if !visit(sq) {
					return
				}
			}
		}
	}

	// Sliding pieces
	for _, ray := range sliderRays {
		for _, dir := range ray.dirs {
			sq := target.Offset(dir.dRow, dir.dCol)
			for sq.Valid() {
				piece := board.Get(sq)
				if !piece.IsEmpty() {
					if piece.Colour == byColour && (piece.Kind == ray.kind || piece.Kind == chess.Queen) {
						if !visit(sq) {
							return
						}
					}
					break // Blocked
				}
				sq = sq.Offset(dir.dRow, dir.dCol)
			}
		}
	}
}
