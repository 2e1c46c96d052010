package ecs

import (
	"errors"
	"testing"
)

func TestSparseSetInsertContains(t *testing.T) {
	s := NewSparseSet(16)
	if err := s.Insert(5); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !s.Contains(5) {
		t.Fatalf("expected 5 to be present")
	}
	if s.Contains(4) {
		t.Fatalf("4 was never inserted")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}

	// Duplicate insert is a no-op.
	if err := s.Insert(5); err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("duplicate insert changed len to %d", s.Len())
	}
}

func TestSparseSetInsertOutOfRange(t *testing.T) {
	s := NewSparseSet(8)
	if err := s.Insert(8); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("insert(8) err = %v, want ErrOutOfRange", err)
	}
	if err := s.Insert(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("insert(-1) err = %v, want ErrOutOfRange", err)
	}
	if err := s.Erase(8); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("erase(8) err = %v, want ErrOutOfRange", err)
	}
	if s.Contains(8) {
		t.Fatalf("contains(8) must be false, not an error")
	}
	if _, err := s.IndexFor(8); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("indexFor(8) err = %v, want ErrOutOfRange", err)
	}
}

func TestSparseSetEraseSwapAndPop(t *testing.T) {
	s := NewSparseSet(20)
	for _, id := range []int{7, 3, 15} {
		if err := s.Insert(id); err != nil {
			t.Fatalf("insert %d: %v", id, err)
		}
	}
	if err := s.Erase(3); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if !s.Contains(7) || s.Contains(3) || !s.Contains(15) {
		t.Fatalf("unexpected membership after erase: 7=%v 3=%v 15=%v",
			s.Contains(7), s.Contains(3), s.Contains(15))
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}

	// The survivor that got swapped into 3's slot must still resolve.
	idx, err := s.IndexFor(15)
	if err != nil {
		t.Fatalf("indexFor(15): %v", err)
	}
	id, err := s.IDFor(idx)
	if err != nil {
		t.Fatalf("idFor(%d): %v", idx, err)
	}
	if id != 15 {
		t.Fatalf("dense[sparse[15]] = %d, want 15", id)
	}
}

func TestSparseSetEraseIdempotent(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(2)
	s.Insert(4)
	if err := s.Erase(2); err != nil {
		t.Fatalf("first erase: %v", err)
	}
	if err := s.Erase(2); err != nil {
		t.Fatalf("second erase: %v", err)
	}
	if s.Len() != 1 || !s.Contains(4) {
		t.Fatalf("double erase corrupted state: len=%d contains(4)=%v", s.Len(), s.Contains(4))
	}
}

func TestSparseSetIDForOutOfRange(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	if _, err := s.IDFor(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("idFor(1) on size-1 set err = %v, want ErrOutOfRange", err)
	}
}

func TestSparseSetClearAndEach(t *testing.T) {
	s := NewSparseSet(10)
	for _, id := range []int{1, 5, 9} {
		s.Insert(id)
	}
	seen := map[int]bool{}
	s.Each(func(id int) { seen[id] = true })
	if len(seen) != 3 || !seen[1] || !seen[5] || !seen[9] {
		t.Fatalf("each visited %v", seen)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("len after clear = %d", s.Len())
	}
	if s.Contains(5) {
		t.Fatalf("contains(5) after clear")
	}
	// The set must be reusable after clear.
	if err := s.Insert(5); err != nil {
		t.Fatalf("insert after clear: %v", err)
	}
	if !s.Contains(5) {
		t.Fatalf("insert after clear lost the id")
	}
}

func TestSparseSetSizeMatchesDistinctIDs(t *testing.T) {
	s := NewSparseSet(32)
	ops := []struct {
		insert bool
		id     int
	}{
		{true, 1}, {true, 2}, {true, 2}, {true, 30},
		{false, 2}, {false, 2}, {true, 4}, {false, 30},
	}
	present := map[int]bool{}
	for _, op := range ops {
		if op.insert {
			if err := s.Insert(op.id); err != nil {
				t.Fatalf("insert %d: %v", op.id, err)
			}
			present[op.id] = true
		} else {
			if err := s.Erase(op.id); err != nil {
				t.Fatalf("erase %d: %v", op.id, err)
			}
			delete(present, op.id)
		}
		if s.Len() != len(present) {
			t.Fatalf("len = %d, want %d after op %+v", s.Len(), len(present), op)
		}
	}
}
