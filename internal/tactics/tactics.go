// Package tactics computes the tactical overlays of a position: hanging
// pieces, attacker/defender sets, interesting squares and knight forks.
// Every function treats the supplied board as the only truth, so a
// previewed board yields exactly the picture it warrants.
package tactics

import (
	"sort"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/engine"
)

// kingExchangeValue orders kings after every other piece.
const kingExchangeValue = 100

// Hanging describes a piece that loses material if captured.
type Hanging struct {
	Owner chess.Colour
	Value int // face value of the piece, pawn=1 … queen=9
}

// Exchange lists the pieces bearing on a square, cheapest first.
type Exchange struct {
	Attackers []chess.Square
	Defenders []chess.Square
}

func (e Exchange) clone() Exchange {
	return Exchange{
		Attackers: append([]chess.Square(nil), e.Attackers...),
		Defenders: append([]chess.Square(nil), e.Defenders...),
	}
}

// Analysis is the tactical picture of one board.
type Analysis struct {
	Hanging     map[chess.Square]Hanging
	Exchanges   map[chess.Square]Exchange // occupied squares only
	Interesting []chess.Square            // occupied squares with an attacker, row-major
	Forks       [2][]chess.Square         // indexed by chess.Colour
}

// Analyze computes the full tactical picture of b.
func Analyze(b *chess.Board) Analysis {
	a := Analysis{
		Hanging:   make(map[chess.Square]Hanging),
		Exchanges: make(map[chess.Square]Exchange),
	}

	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		sq := chess.SquareFromIndex(i)
		piece := b.Get(sq)
		if piece.IsEmpty() {
			continue
		}

		ex := occupiedExchange(b, sq, piece)
		a.Exchanges[sq] = ex
		if len(ex.Attackers) > 0 {
			a.Interesting = append(a.Interesting, sq)
		}
		if isHanging(b, piece, ex) {
			a.Hanging[sq] = Hanging{Owner: piece.Colour, Value: piece.Kind.Value()}
		}
	}

	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		a.Forks[colour] = KnightForkSquares(b, colour)
	}
	return a
}

// ExchangeInfo returns the attackers and defenders of sq. For an occupied
// square, attackers are the enemies of its occupant and defenders its
// friends. For an empty square every piece bearing on it is an attacker.
func ExchangeInfo(b *chess.Board, sq chess.Square) Exchange {
	piece := b.Get(sq)
	if !piece.IsEmpty() {
		return occupiedExchange(b, sq, piece)
	}
	attackers := append(
		engine.Attackers(b, sq, chess.White),
		engine.Attackers(b, sq, chess.Black)...,
	)
	sortByExchangeValue(b, attackers)
	return Exchange{Attackers: attackers}
}

func occupiedExchange(b *chess.Board, sq chess.Square, piece chess.Piece) Exchange {
	ex := Exchange{
		Attackers: engine.Attackers(b, sq, piece.Colour.Opposite()),
		Defenders: engine.Attackers(b, sq, piece.Colour),
	}
	sortByExchangeValue(b, ex.Attackers)
	sortByExchangeValue(b, ex.Defenders)
	return ex
}

// isHanging applies the simplified static exchange test: an attacked piece
// hangs when nothing defends it or when its cheapest attacker is worth
// less than it. Kings never hang.
func isHanging(b *chess.Board, piece chess.Piece, ex Exchange) bool {
	if piece.Kind == chess.King || len(ex.Attackers) == 0 {
		return false
	}
	if len(ex.Defenders) == 0 {
		return true
	}
	cheapest := exchangeValue(b.Get(ex.Attackers[0]).Kind)
	return cheapest < piece.Kind.Value()
}

func exchangeValue(kind chess.Kind) int {
	if kind == chess.King {
		return kingExchangeValue
	}
	return kind.Value()
}

// sortByExchangeValue orders squares by ascending value of their occupant,
// then by board index.
func sortByExchangeValue(b *chess.Board, squares []chess.Square) {
	sort.Slice(squares, func(i, j int) bool {
		vi, vj := exchangeValue(b.Get(squares[i]).Kind), exchangeValue(b.Get(squares[j]).Kind)
		if vi != vj {
			return vi < vj
		}
		return squares[i].Index() < squares[j].Index()
	})
}

// KnightForkSquares returns the squares, empty or holding an enemy piece,
// from which a knight of colour would attack two or more of the enemy
// king, queens and rooks. A colour without knights has none.
func KnightForkSquares(b *chess.Board, colour chess.Colour) []chess.Square {
	if !b.HasKind(colour, chess.Knight) {
		return nil
	}

	knight := chess.Piece{Kind: chess.Knight, Colour: colour}
	scratch := *b
	var forks []chess.Square
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		sq := chess.SquareFromIndex(i)
		occupant := scratch.Get(sq)
		if !occupant.IsEmpty() && occupant.Colour == colour {
			continue
		}

		scratch.Set(sq, knight)
		targets := 0
		for _, target := range engine.AttackedSquares(&scratch, sq) {
			if isForkTarget(scratch.Get(target), colour) {
				targets++
			}
		}
		scratch.Set(sq, occupant)

		if targets >= 2 {
			forks = append(forks, sq)
		}
	}
	return forks
}

func isForkTarget(p chess.Piece, forker chess.Colour) bool {
	if p.IsEmpty() || p.Colour == forker {
		return false
	}
	return p.Kind == chess.King || p.Kind == chess.Queen || p.Kind == chess.Rook
}
