package world

import (
	"fmt"
	"math"
	"sync"
)

// State is the single shared world. Exactly two actors touch it: the
// simulation loop (one full tick per Tick call) and the HTTP boundary (one
// full request per ApplyInput/Snapshot call). One coarse mutex guards the
// registry; it is held for the whole tick or the whole request, never
// released mid-operation, so a reader always observes the result of a
// complete tick or no tick. The O(n²) collision phase runs under this lock,
// so scene size directly bounds the boundary's worst-case wait, a known
// limit of the coarse-lock design.
type State struct {
	mu    sync.Mutex
	comps *Components
}

// NewState wraps comps in a lock-guarded world. The caller may keep the
// comps pointer for wiring systems, but after the loop starts all access
// must go through the State accessors.
func NewState(comps *Components) *State {
	return &State{comps: comps}
}

// Tick runs fn with exclusive access to the world, releasing the lock on
// every exit path. The simulation loop calls this once per tick around the
// full system pipeline.
func (s *State) Tick(fn func(*Components)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.comps)
}

// ApplyInput writes (x, y) as the player entity's input vector, inserting
// if absent and overwriting if present. Non-finite coordinates are rejected
// before any store is touched, so a failed write never mutates the world.
func (s *State) ApplyInput(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("apply input: non-finite vector (%v, %v)", x, y)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comps.Inputs.Put(PlayerEntity, PlayerInput{X: x, Y: y})
}

// Geometry is one entry of a scene snapshot: an entity's local vertex list
// and, when the entity has one, its world position. Entity ids themselves
// never cross the boundary.
type Geometry struct {
	Vertices []Vec2
	Position *Position
}

// Snapshot copies out the renderable scene: one Geometry per polygon-
// bearing entity. The copies are owned by the caller and stay valid after
// the lock is released.
func (s *State) Snapshot() []Geometry {
	s.mu.Lock()
	defer s.mu.Unlock()

	scene := make([]Geometry, 0, s.comps.Polygons.Len())
	s.comps.Polygons.Each(func(id int, p *Polygon) {
		g := Geometry{Vertices: make([]Vec2, len(p.Vertices))}
		copy(g.Vertices, p.Vertices)
		if pos, ok := s.comps.Positions.Get(id); ok {
			at := *pos
			g.Position = &at
		}
		scene = append(scene, g)
	})
	return scene
}
