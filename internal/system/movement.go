package system

import (
	"time"

	coresys "github.com/botworld/server/internal/core/system"
	"github.com/botworld/server/internal/world"
)

// MovementSystem integrates positions by velocity, one implicit time unit
// per tick, then wraps each axis independently into the closed-open world
// bounds. Entities with a Velocity but no Position are skipped.
// Phase 2 (PostUpdate).
type MovementSystem struct {
	comps *world.Components
}

func NewMovementSystem(comps *world.Components) *MovementSystem {
	return &MovementSystem{comps: comps}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	s.comps.Velocities.Each(func(id int, v *world.Velocity) {
		pos, ok := s.comps.Positions.Get(id)
		if !ok {
			return
		}
		pos.X = wrapCoordinate(pos.X+v.DX, world.WorldMinX, world.WorldMaxX)
		pos.Y = wrapCoordinate(pos.Y+v.DY, world.WorldMinY, world.WorldMaxY)
	})
}

// wrapCoordinate folds value into [min, max) by repeated range shifts,
// sign-correct for values far below min.
func wrapCoordinate(value, min, max float64) float64 {
	r := max - min
	if r <= 0 {
		return value
	}
	for value < min {
		value += r
	}
	for value >= max {
		value -= r
	}
	return value
}
