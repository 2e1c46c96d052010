package world

import (
	"math"
	"sync"
	"testing"
)

func TestComponentsEraseAllAndClearAll(t *testing.T) {
	c := NewComponents()
	c.Positions.Insert(1, Position{1, 1})
	c.Velocities.Insert(1, Velocity{2, 2})
	c.Polygons.Insert(1, Polygon{Vertices: []Vec2{{0, 0}, {1, 0}, {0, 1}}})
	c.Positions.Insert(2, Position{5, 5})

	if err := c.EraseAll(1); err != nil {
		t.Fatalf("erase all: %v", err)
	}
	if c.Positions.Contains(1) || c.Velocities.Contains(1) || c.Polygons.Contains(1) {
		t.Fatalf("entity 1 survived EraseAll")
	}
	if !c.Positions.Contains(2) {
		t.Fatalf("EraseAll touched entity 2")
	}

	c.ClearAll()
	if c.Positions.Len() != 0 {
		t.Fatalf("ClearAll left %d positions", c.Positions.Len())
	}
}

func TestApplyInputInsertsThenOverwrites(t *testing.T) {
	s := NewState(NewComponents())

	if err := s.ApplyInput(1, 0); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := s.ApplyInput(0, -2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	s.Tick(func(c *Components) {
		if c.Inputs.Len() != 1 {
			t.Fatalf("inputs len = %d, want 1", c.Inputs.Len())
		}
		in, ok := c.Inputs.Get(PlayerEntity)
		if !ok {
			t.Fatalf("player entity has no input")
		}
		if *in != (PlayerInput{X: 0, Y: -2}) {
			t.Fatalf("input = %+v, want {0 -2}", *in)
		}
	})
}

func TestApplyInputRejectsNonFinite(t *testing.T) {
	s := NewState(NewComponents())

	if err := s.ApplyInput(math.NaN(), 0); err == nil {
		t.Fatalf("NaN input accepted")
	}
	if err := s.ApplyInput(0, math.Inf(1)); err == nil {
		t.Fatalf("Inf input accepted")
	}

	// Rejection must leave the store untouched.
	s.Tick(func(c *Components) {
		if c.Inputs.Len() != 0 {
			t.Fatalf("rejected input mutated the store: len = %d", c.Inputs.Len())
		}
	})
}

func TestSnapshotCopiesScene(t *testing.T) {
	c := NewComponents()
	s := NewState(c)
	tri := Polygon{Vertices: []Vec2{{0, 0}, {2, 0}, {1, 2}}}
	c.Polygons.Insert(0, tri)
	c.Positions.Insert(0, Position{3, 4})
	c.Polygons.Insert(5, tri) // no position

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d geometries, want 2", len(snap))
	}

	var withPos, withoutPos int
	for _, g := range snap {
		if len(g.Vertices) != 3 {
			t.Fatalf("geometry has %d vertices, want 3", len(g.Vertices))
		}
		if g.Position != nil {
			withPos++
			if *g.Position != (Position{3, 4}) {
				t.Fatalf("position = %+v", *g.Position)
			}
		} else {
			withoutPos++
		}
	}
	if withPos != 1 || withoutPos != 1 {
		t.Fatalf("positions: %d with, %d without", withPos, withoutPos)
	}

	// Mutating the snapshot must not write through into the world.
	snap[0].Vertices[0] = Vec2{99, 99}
	s.Tick(func(c *Components) {
		p, _ := c.Polygons.Get(0)
		if p.Vertices[0] == (Vec2{99, 99}) {
			t.Fatalf("snapshot aliases world vertices")
		}
	})
}

func TestStateConcurrentAccess(t *testing.T) {
	c := NewComponents()
	s := NewState(c)
	c.Polygons.Insert(0, Polygon{Vertices: []Vec2{{0, 0}, {1, 0}, {0, 1}}})
	c.Positions.Insert(0, Position{})
	c.Velocities.Insert(0, Velocity{})

	// A tick actor and a request actor hammering the same state; run with
	// -race to verify the lock discipline.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.Tick(func(c *Components) {
				if pos, ok := c.Positions.Get(0); ok {
					pos.X++
				}
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.ApplyInput(float64(i), 0)
			s.Snapshot()
		}
	}()
	wg.Wait()
}
