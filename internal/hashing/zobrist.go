package hashing

import "github.com/copperfishgh/testy/internal/chess"

// Zobrist keys, generated once from a fixed seed so hashes are stable
// across runs.
var (
	zobristPiece      [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // one per file
	zobristCastling   [16]uint64              // every castling rights combination
	zobristSideToMove uint64                  // XORed in when white is to move
)

func init() {
	rng := prng{state: 0x98F107A2BEEF1234}

	for c := range zobristPiece {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			for sq := range zobristPiece[c][kind] {
				zobristPiece[c][kind][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Zobrist computes the position hash of a board: piece placement, side to
// move, castling rights and en passant file. The en passant file only
// counts when a pawn of the side to move can make the capture. Clocks are
// not included, so positions that differ only in move counters hash alike.
func Zobrist(b *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristPiece[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}
	if b.ToMove == chess.White {
		hash ^= zobristSideToMove
	}
	hash ^= zobristCastling[b.Castling&chess.AllCastling]
	if b.EnPassant && b.EPSquare.Valid() && canCaptureEnPassant(b) {
		hash ^= zobristEnPassant[b.EPSquare.Col]
	}
	return hash
}

// canCaptureEnPassant reports whether a pawn of the side to move stands
// beside the pawn that just made its double push.
func canCaptureEnPassant(b *chess.Board) bool {
	// The capturing pawn sits one rank behind the target, from the mover's view.
	row := b.EPSquare.Row + 1
	if b.ToMove == chess.Black {
		row = b.EPSquare.Row - 1
	}
	if row < 0 || row >= chess.BoardSize {
		return false
	}
	pawn := chess.Piece{Kind: chess.Pawn, Colour: b.ToMove}
	for _, col := range [...]int{b.EPSquare.Col - 1, b.EPSquare.Col + 1} {
		if col >= 0 && col < chess.BoardSize && b.Squares[row][col] == pawn {
			return true
		}
	}
	return false
}
