package system

import (
	"time"

	coresys "github.com/botworld/server/internal/core/system"
	"github.com/botworld/server/internal/world"
	"go.uber.org/zap"
)

// InputSystem copies each entity's PlayerInput vector into its Velocity,
// verbatim, with no smoothing or clamping. Phase 0 (Input).
type InputSystem struct {
	comps *world.Components
	log   *zap.Logger
}

func NewInputSystem(comps *world.Components, log *zap.Logger) *InputSystem {
	return &InputSystem{comps: comps, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	s.comps.Inputs.Each(func(id int, in *world.PlayerInput) {
		v, ok := s.comps.Velocities.Get(id)
		if !ok {
			// Inconsistent scene setup. Not fatal, the tick continues.
			s.log.Warn("entity has PlayerInput but no Velocity",
				zap.Int("entity", id))
			return
		}
		*v = world.Velocity{DX: in.X, DY: in.Y}
	})
}
