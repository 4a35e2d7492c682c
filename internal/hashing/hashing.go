// Package hashing provides position hashing and repetition tracking.
package hashing

// RepetitionTable counts how often each position hash has occurred.
type RepetitionTable struct {
	// counts maps a Zobrist hash to its number of occurrences
	counts map[uint64]int
	// repeats tracks the number of Add calls that hit a known position
	repeats int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one occurrence of hash and returns its new count.
func (r *RepetitionTable) Add(hash uint64) int {
	r.counts[hash]++
	n := r.counts[hash]
	if n > 1 {
		r.repeats++
	}
	return n
}

// Remove forgets one occurrence of hash. Removing an unknown hash is a no-op.
func (r *RepetitionTable) Remove(hash uint64) {
	n, ok := r.counts[hash]
	if !ok {
		return
	}
	if n > 1 {
		r.repeats--
	}
	if n <= 1 {
		delete(r.counts, hash)
		return
	}
	r.counts[hash] = n - 1
}

// Count returns how often hash has occurred.
func (r *RepetitionTable) Count(hash uint64) int {
	return r.counts[hash]
}

// RepeatCount returns the number of recorded occurrences beyond the first.
func (r *RepetitionTable) RepeatCount() int {
	return r.repeats
}

// UniqueCount returns the number of distinct positions.
func (r *RepetitionTable) UniqueCount() int {
	return len(r.counts)
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.counts = make(map[uint64]int)
	r.repeats = 0
}
