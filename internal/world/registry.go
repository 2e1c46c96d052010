package world

import "github.com/botworld/server/internal/core/ecs"

// store is the erased view a Components registry keeps of each typed store
// for bulk sweeps.
type store interface {
	Erase(id int) error
	Clear()
}

// Components aggregates one typed store per component kind used in this
// world. The set is fixed at construction (no dynamic registration) and
// the registry exclusively owns all stores. An entity id
// is shared across stores only by convention; an entity may have a Position
// but no Velocity, and systems check for that explicitly.
type Components struct {
	Positions  *ecs.Store[Position]
	Velocities *ecs.Store[Velocity]
	Inputs     *ecs.Store[PlayerInput]
	Hits       *ecs.Store[HitCounter]
	Polygons   *ecs.Store[Polygon]

	all []store
}

func NewComponents() *Components {
	c := &Components{
		Positions:  ecs.NewStore[Position](MaxEntities),
		Velocities: ecs.NewStore[Velocity](MaxEntities),
		Inputs:     ecs.NewStore[PlayerInput](MaxEntities),
		Hits:       ecs.NewStore[HitCounter](MaxEntities),
		Polygons:   ecs.NewStore[Polygon](MaxEntities),
	}
	c.all = []store{c.Positions, c.Velocities, c.Inputs, c.Hits, c.Polygons}
	return c
}

// EraseAll removes the entity's data from every store.
func (c *Components) EraseAll(id int) error {
	for _, s := range c.all {
		if err := s.Erase(id); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll empties every store.
func (c *Components) ClearAll() {
	for _, s := range c.all {
		s.Clear()
	}
}
