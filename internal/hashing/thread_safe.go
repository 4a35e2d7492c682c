package hashing

import (
	"sync"

	"github.com/copperfishgh/testy/internal/chess"
)

// SeenPositions is a RepetitionTable guarded for concurrent use. Batch
// workers share one to flag positions that were already analysed.
type SeenPositions struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewSeenPositions creates an empty set.
func NewSeenPositions() *SeenPositions {
	return &SeenPositions{table: NewRepetitionTable()}
}

// CheckAndAdd atomically records the board's position and reports whether
// it had been seen before.
func (s *SeenPositions) CheckAndAdd(b *chess.Board) bool {
	hash := Zobrist(b)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Add(hash) > 1
}

// DuplicateCount returns the number of repeated positions seen.
func (s *SeenPositions) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.RepeatCount()
}

// UniqueCount returns the number of distinct positions seen.
func (s *SeenPositions) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.UniqueCount()
}
