package event

// Simulation event types.

// EntityHit records a confirmed collision credited to an entity during a
// collision pass. Hits carries the counter value after the increment.
type EntityHit struct {
	Entity int
	Hits   uint32
}
