// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind uint8

const (
	NoKind Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [NumKinds]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := [NumKinds]byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k < NumKinds {
		return letters[k]
	}
	return '?'
}

// Value returns the material face value of a kind: pawn=1 ... queen=9.
// Kings have no material value.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// KindFromLetter converts a FEN/SAN letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotionKind reports whether a pawn may promote to k.
func (k Kind) IsPromotionKind() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PromotionKinds lists promotion targets in generation order.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// Piece is an immutable piece value. The zero Piece is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the value stored on unoccupied squares.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true if the piece value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the FEN letter of the piece: uppercase for white.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Rook".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a FEN piece letter to a piece.
// It returns Empty for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// CastleSide identifies the wing of a castling move.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	KingSide
	QueenSide
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case KingSide:
		return "O-O"
	case QueenSide:
		return "O-O-O"
	default:
		return ""
	}
}

// CastlingRights is a set of the four castling options.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// CastlingRight returns the single right for a colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == KingSide:
		return WhiteKingSide
	case colour == White && side == QueenSide:
		return WhiteQueenSide
	case colour == Black && side == KingSide:
		return BlackKingSide
	case colour == Black && side == QueenSide:
		return BlackQueenSide
	}
	return NoCastling
}

// Has returns true if every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != NoCastling && c&r == r
}

// Without returns the rights with r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var buf [4]byte
	n := 0
	for _, r := range []struct {
		right  CastlingRights
		letter byte
	}{{WhiteKingSide, 'K'}, {WhiteQueenSide, 'Q'}, {BlackKingSide, 'k'}, {BlackQueenSide, 'q'}} {
		if c.Has(r.right) {
			buf[n] = r.letter
			n++
		}
	}
	return string(buf[:n])
}

// StatusKind classifies the state of a game.
type StatusKind int

const (
	InProgress StatusKind = iota
	Checkmate
	Stalemate
	Draw
)

// DrawReason identifies the rule that drew the game.
type DrawReason int

const (
	NoDraw DrawReason = iota
	DrawFiftyMoveRule
	DrawInsufficientMaterial
	DrawThreefoldRepetition
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	switch r {
	case DrawFiftyMoveRule:
		return "fifty_move_rule"
	case DrawInsufficientMaterial:
		return "insufficient_material"
	case DrawThreefoldRepetition:
		return "threefold_repetition"
	default:
		return ""
	}
}

// Status is the outcome classification of a position.
// Winner is only meaningful for Checkmate, Reason only for Draw.
type Status struct {
	Kind   StatusKind
	Winner Colour
	Reason DrawReason
}

// IsOver returns true once the game can no longer continue.
func (s Status) IsOver() bool {
	return s.Kind != InProgress
}

// String returns e.g. "checkmate(White)" or "draw(fifty_move_rule)".
func (s Status) String() string {
	switch s.Kind {
	case Checkmate:
		return "checkmate(" + s.Winner.String() + ")"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw(" + s.Reason.String() + ")"
	default:
		return "in_progress"
	}
}
