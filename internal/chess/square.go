package chess

import (
	"fmt"

	"github.com/copperfishgh/testy/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square addresses a board cell. Row 0 is rank 8 (top), Col 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare is an off-board sentinel.
var NoSquare = Square{Row: -1, Col: -1}

// Valid returns true if both coordinates are in [0,7].
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Index returns the row-major index (a8 = 0, h1 = 63).
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) Square {
	return Square{Row: i / BoardSize, Col: i % BoardSize}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// Offset returns the square shifted by the given deltas. The result may be invalid.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// IsLight returns true for light squares (a8 and h1 are light).
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// String returns algebraic coordinates such as "e4", or "-" when invalid.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// Sq builds a square from a file letter and rank digit, e.g. Sq('e', '4').
func Sq(file, rank byte) Square {
	return Square{Row: int('8') - int(rank), Col: int(file) - int('a')}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	sq := Sq(s[0], s[1])
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on bad input. Intended for
// package-level fixtures and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
