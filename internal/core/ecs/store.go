package ecs

// Store is a typed component store: one SparseSet plus a dense value slice
// kept index-aligned with the set's dense id array. Both arrays must be
// permuted identically on every insert and erase; that alignment is the
// load-bearing invariant of the whole storage layer.
// No reflect and no interface{}; pure generics.
type Store[T any] struct {
	ids    *SparseSet
	values []T
}

// NewStore creates an empty store for entity ids in [0, capacity).
func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{
		ids:    NewSparseSet(capacity),
		values: make([]T, 0, 64),
	}
}

// Insert registers id and appends its value. It does NOT deduplicate:
// inserting a present id no-ops the set registration while the value still
// appends, desynchronizing the two arrays. Callers must check Contains
// first; Put does that for you.
func (s *Store[T]) Insert(id int, v T) error {
	if err := s.ids.Insert(id); err != nil {
		return err
	}
	s.values = append(s.values, v)
	return nil
}

// Put is the overwrite-or-insert write. Unlike Insert it is safe to call on
// a present id, which makes it the atomic primitive for boundary writes.
func (s *Store[T]) Put(id int, v T) error {
	if s.ids.Contains(id) {
		idx, err := s.ids.IndexFor(id)
		if err != nil {
			return err
		}
		s.values[idx] = v
		return nil
	}
	return s.Insert(id, v)
}

// Erase removes id and its value. The value swap-pop must use the dense
// index as it was before the set mutates it. Absent ids are a no-op.
func (s *Store[T]) Erase(id int) error {
	if !s.ids.Contains(id) {
		if id < 0 || id >= s.ids.Cap() {
			return s.ids.Erase(id) // surface the range error
		}
		return nil
	}
	idx, err := s.ids.IndexFor(id)
	if err != nil {
		return err
	}
	last := len(s.values) - 1
	if idx < last {
		s.values[idx] = s.values[last]
	}
	s.values = s.values[:last]
	return s.ids.Erase(id)
}

// Get returns a pointer to id's value, valid until the next insert or
// erase on this store. Never hold it across a structural mutation.
func (s *Store[T]) Get(id int) (*T, bool) {
	if !s.ids.Contains(id) {
		return nil, false
	}
	idx, err := s.ids.IndexFor(id)
	if err != nil {
		return nil, false
	}
	return &s.values[idx], true
}

// Contains reports whether id has a value in this store.
func (s *Store[T]) Contains(id int) bool { return s.ids.Contains(id) }

// Len returns the number of stored values.
func (s *Store[T]) Len() int { return s.ids.Len() }

// Clear removes every value.
func (s *Store[T]) Clear() {
	s.ids.Clear()
	s.values = s.values[:0]
}

// Each visits every (id, value) pair in dense order. Mutating the store
// during iteration invalidates the walk.
func (s *Store[T]) Each(fn func(id int, v *T)) {
	for i, id := range s.ids.dense {
		fn(id, &s.values[i])
	}
}
