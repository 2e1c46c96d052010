package ecs

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports an entity id or dense index beyond a structure's
// fixed bounds. Always a caller bug, never retried.
var ErrOutOfRange = errors.New("out of range")

// none marks an empty sparse slot.
const none = -1

// SparseSet is a fixed-capacity bidirectional mapping between entity ids in
// [0, cap) and positions in a densely packed id array. Membership tests,
// inserts and erases are all O(1). Erase swaps the victim's dense slot with
// the last element and truncates, so dense order changes after any removal.
type SparseSet struct {
	sparse []int // id -> dense index, or none
	dense  []int // packed ids
}

// NewSparseSet creates an empty set for ids in [0, capacity).
func NewSparseSet(capacity int) *SparseSet {
	s := &SparseSet{
		sparse: make([]int, capacity),
		dense:  make([]int, 0, 64),
	}
	for i := range s.sparse {
		s.sparse[i] = none
	}
	return s
}

// Cap returns the id capacity fixed at construction.
func (s *SparseSet) Cap() int { return len(s.sparse) }

// Len returns the number of ids currently present.
func (s *SparseSet) Len() int { return len(s.dense) }

// Insert adds id to the set. Present ids are a no-op.
func (s *SparseSet) Insert(id int) error {
	if id < 0 || id >= len(s.sparse) {
		return fmt.Errorf("sparse set insert id %d (cap %d): %w", id, len(s.sparse), ErrOutOfRange)
	}
	if s.sparse[id] != none {
		return nil
	}
	s.dense = append(s.dense, id)
	s.sparse[id] = len(s.dense) - 1
	return nil
}

// Erase removes id from the set by swapping its dense slot with the last
// element and truncating. Absent ids are a no-op (idempotent).
func (s *SparseSet) Erase(id int) error {
	if id < 0 || id >= len(s.sparse) {
		return fmt.Errorf("sparse set erase id %d (cap %d): %w", id, len(s.sparse), ErrOutOfRange)
	}
	idx := s.sparse[id]
	if idx == none {
		return nil
	}
	last := s.dense[len(s.dense)-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.dense = s.dense[:len(s.dense)-1]
	s.sparse[id] = none
	return nil
}

// Contains reports whether id is present. Out-of-range ids return false
// rather than failing.
func (s *SparseSet) Contains(id int) bool {
	if id < 0 || id >= len(s.sparse) {
		return false
	}
	return s.sparse[id] != none
}

// IndexFor returns the dense position of a present id. The result for an
// absent (but in-range) id is meaningless; check Contains first.
func (s *SparseSet) IndexFor(id int) (int, error) {
	if id < 0 || id >= len(s.sparse) {
		return 0, fmt.Errorf("sparse set index for id %d (cap %d): %w", id, len(s.sparse), ErrOutOfRange)
	}
	return s.sparse[id], nil
}

// IDFor is the inverse lookup: the id stored at a dense position.
func (s *SparseSet) IDFor(index int) (int, error) {
	if index < 0 || index >= len(s.dense) {
		return 0, fmt.Errorf("sparse set id for index %d (len %d): %w", index, len(s.dense), ErrOutOfRange)
	}
	return s.dense[index], nil
}

// Clear resets the set to empty. O(cap).
func (s *SparseSet) Clear() {
	for i := range s.sparse {
		s.sparse[i] = none
	}
	s.dense = s.dense[:0]
}

// Each visits every present id in current dense order. The order is
// unspecified and changes after erases. Inserting or erasing during
// iteration invalidates the walk.
func (s *SparseSet) Each(fn func(id int)) {
	for _, id := range s.dense {
		fn(id)
	}
}
