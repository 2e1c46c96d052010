package world

// World bounds: each axis spans 240 units centered at 0, closed-open.
const (
	WorldMinX = -120.0
	WorldMaxX = 120.0
	WorldMinY = -120.0
	WorldMaxY = 120.0
)

// MaxEntities bounds the id range [0, MaxEntities) of every store.
const MaxEntities = 1000

// PlayerEntity is the id the boundary writes player input to.
const PlayerEntity = 0

// Position is an entity's location in world space.
type Position struct {
	X, Y float64
}

// Velocity is applied to Position once per tick, one implicit time unit.
type Velocity struct {
	DX, DY float64
}

// PlayerInput is the last input vector written by the network boundary.
// InputSystem copies it verbatim into the entity's Velocity each tick.
type PlayerInput struct {
	X, Y float64
}

// HitCounter counts confirmed collisions credited to an entity. Only the
// collision system increments it; it never decreases.
type HitCounter struct {
	Hits uint32
}
