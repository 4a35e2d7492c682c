package chess

import (
	"fmt"
	"strings"

	"github.com/copperfishgh/testy/internal/errors"
)

// Board is the position grid: the 64 squares plus all state needed to
// continue the game. It is a plain value; copying a Board copies every
// square, so copies never share storage.
type Board struct {
	// Squares is indexed [row][col], row 0 being rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling options.
	Castling CastlingRights

	// Is en passant capture possible? If so then EPSquare is the square
	// the double-stepping pawn skipped.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current full move number, starting at 1.
	MoveNumber int
}

// NewBoard creates a new empty board with white to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		MoveNumber: 1,
		EPSquare:   NoSquare,
	}
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
	b.ToMove = White
	b.Castling = AllCastling
	b.EnPassant = false
	b.EPSquare = NoSquare
	b.HalfmoveClock = 0
	b.MoveNumber = 1
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// Get returns the piece on sq. Off-board squares read as Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// SameSquares reports whether both boards hold identical pieces everywhere.
func (b *Board) SameSquares(other *Board) bool {
	return b.Squares == other.Squares
}

// KingSquare finds the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: colour}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many copies of p are on the board.
func (b *Board) Count(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				n++
			}
		}
	}
	return n
}

// HasKind returns true if colour still has a piece of the given kind.
func (b *Board) HasKind(colour Colour, kind Kind) bool {
	return b.Count(Piece{Kind: kind, Colour: colour}) > 0
}

// Validate checks the one-king-per-colour invariant.
func (b *Board) Validate() error {
	for _, colour := range [...]Colour{White, Black} {
		if n := b.Count(Piece{Kind: King, Colour: colour}); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvariantViolation)
		}
	}
	return nil
}

// String renders the board as text, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < BoardSize; row++ {
		rank := byte('8' - row)
		sb.WriteByte(rank)
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
			sb.WriteByte(' ')
		}
		sb.WriteByte(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
