package engine

import "github.com/copperfishgh/testy/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Classify returns the status of the position for the side to move.
// Checkmate and stalemate take precedence over draws by rule. Repetition
// needs the game history and is left to the caller.
func Classify(board *chess.Board) chess.Status {
	colour := board.ToMove
	if !HasLegalMoves(board, colour) {
		if IsInCheck(board, colour) {
			return chess.Status{Kind: chess.Checkmate, Winner: colour.Opposite()}
		}
		return chess.Status{Kind: chess.Stalemate}
	}
	if IsFiftyMoveDraw(board) {
		return chess.Status{Kind: chess.Draw, Reason: chess.DrawFiftyMoveRule}
	}
	if HasInsufficientMaterial(board) {
		return chess.Status{Kind: chess.Draw, Reason: chess.DrawInsufficientMaterial}
	}
	return chess.Status{}
}
