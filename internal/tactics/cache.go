package tactics

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/errors"
	"github.com/copperfishgh/testy/internal/hashing"
)

// Stats counts memo hits and misses.
type Stats struct {
	Hits   int
	Misses int
}

// Cache memoizes the Analysis of the most recently queried board. The key
// is the board's Zobrist hash confirmed by an exact comparison of the
// squares, so a stale entry can never be served for a different grid.
// A Cache is not safe for concurrent use.
type Cache struct {
	entry   *Analysis
	hash    uint64
	squares [chess.BoardSize][chess.BoardSize]chess.Piece
	stats   Stats
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Analysis returns the tactical picture of b, computing it only when b
// differs from the last board queried. The result must not be modified.
func (c *Cache) Analysis(b *chess.Board) *Analysis {
	hash := hashing.Zobrist(b)
	if c.entry != nil && c.hash == hash && c.squares == b.Squares {
		c.stats.Hits++
		return c.entry
	}

	c.stats.Misses++
	a := Analyze(b)
	c.entry = &a
	c.hash = hash
	c.squares = b.Squares
	return c.entry
}

// HangingPieces returns the hanging pieces of b keyed by square.
func (c *Cache) HangingPieces(b *chess.Board) map[chess.Square]Hanging {
	return maps.Clone(c.Analysis(b).Hanging)
}

// ExchangeInfo returns the attackers and defenders of sq on b.
func (c *Cache) ExchangeInfo(b *chess.Board, sq chess.Square) (Exchange, error) {
	if !sq.Valid() {
		return Exchange{}, fmt.Errorf("exchange info for %v: %w", sq, errors.ErrInvalidSquare)
	}
	if ex, ok := c.Analysis(b).Exchanges[sq]; ok {
		return ex.clone(), nil
	}
	return ExchangeInfo(b, sq), nil
}

// InterestingSquares returns the occupied squares of b that are attacked.
func (c *Cache) InterestingSquares(b *chess.Board) []chess.Square {
	return append([]chess.Square(nil), c.Analysis(b).Interesting...)
}

// KnightForkSquares returns the knight fork squares of colour on b.
func (c *Cache) KnightForkSquares(b *chess.Board, colour chess.Colour) []chess.Square {
	return append([]chess.Square(nil), c.Analysis(b).Forks[colour]...)
}

// Invalidate drops the memoized entry.
func (c *Cache) Invalidate() {
	c.entry = nil
}

// Stats returns the hit and miss counts since creation.
func (c *Cache) Stats() Stats {
	return c.stats
}
