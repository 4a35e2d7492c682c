package chess

// PriorState holds the parts of a Board that a move overwrites and that
// cannot be derived back from the move itself.
type PriorState struct {
	Castling      CastlingRights
	EnPassant     bool
	EPSquare      Square
	HalfmoveClock int
}

// Move represents a single chess move. It is a value, never a reference
// into a board: From, To and Promotion are enough to apply it to the
// board it was generated against. The remaining fields are recorded for
// undo and display.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved (the pawn, for promotions).
	Piece Piece

	// The piece captured (Empty if no capture).
	Captured Piece

	// The kind promoted to (NoKind if not a promotion).
	Promotion Kind

	// Whether this is an en passant capture.
	EnPassant bool

	// Which side the king castles to (NoCastle otherwise).
	Castle CastleSide

	// Whether this move gives check.
	GivesCheck bool

	// SAN text, filled in once the move has been played.
	Text string

	// Board state overwritten by the move; set when the move is made.
	Prior PriorState
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Castle != NoCastle
}

// Matches reports whether m has the given squares and promotion.
func (m Move) Matches(from, to Square, promotion Kind) bool {
	return m.From == from && m.To == to && m.Promotion == promotion
}

// UCI returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String returns the SAN text when known, the UCI form otherwise.
func (m Move) String() string {
	if m.Text != "" {
		return m.Text
	}
	return m.UCI()
}
