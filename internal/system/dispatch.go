package system

import (
	"time"

	"github.com/botworld/server/internal/core/event"
	coresys "github.com/botworld/server/internal/core/system"
)

// DispatchSystem rotates the event bus buffers and delivers last tick's
// events to subscribers. Registered first so it runs at tick start, before
// input is applied. Phase 0 (Input).
type DispatchSystem struct {
	bus *event.Bus
}

func NewDispatchSystem(bus *event.Bus) *DispatchSystem {
	return &DispatchSystem{bus: bus}
}

func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *DispatchSystem) Update(dt time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
