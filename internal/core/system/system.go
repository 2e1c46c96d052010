package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: apply queued player input
	PhaseUpdate                  // 1: collision detection
	PhasePostUpdate              // 2: integration + world wrap
)

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
