// Package engine provides chess move generation and board manipulation.
package engine

import "github.com/copperfishgh/testy/internal/chess"

// FiftyMoveHalfmoves is the halfmove clock value at which the game is drawn.
const FiftyMoveHalfmoves = 100

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		sq := chess.SquareFromIndex(i)
		piece := board.Get(sq)
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// IsFiftyMoveDraw returns true once 50 full moves have passed without a
// pawn move or capture.
func IsFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveHalfmoves
}
