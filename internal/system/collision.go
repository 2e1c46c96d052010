package system

import (
	"time"

	"github.com/botworld/server/internal/core/event"
	coresys "github.com/botworld/server/internal/core/system"
	"github.com/botworld/server/internal/world"
	"go.uber.org/zap"
)

// CollisionSystem runs two-phase collision detection over every pair of
// polygon-bearing entities: world-space AABB rejection first, then the
// Separating Axis Theorem. Pairs are ordered (a < b), so each pair is
// tested once and an entity never collides with itself.
//
// On a confirmed hit, only the lower-indexed entity of the pair is
// credited: its HitCounter increments and its Velocity, if any, is zeroed.
// The higher-indexed entity is never touched even when it also owns a
// HitCounter. That asymmetry is deliberate, inherited behavior.
// Phase 1 (Update).
type CollisionSystem struct {
	comps *world.Components
	bus   *event.Bus
	log   *zap.Logger
}

// NewCollisionSystem creates the system. bus may be nil when no one
// consumes hit events.
func NewCollisionSystem(comps *world.Components, bus *event.Bus, log *zap.Logger) *CollisionSystem {
	return &CollisionSystem{comps: comps, bus: bus, log: log}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

// collider is a polygon entity prepared for the broad phase.
type collider struct {
	id   int
	poly *world.Polygon
	at   world.Vec2
	box  world.AABB
}

func (s *CollisionSystem) Update(dt time.Duration) {
	colliders := make([]collider, 0, s.comps.Polygons.Len())
	s.comps.Polygons.Each(func(id int, p *world.Polygon) {
		if !p.Collidable() {
			s.log.Warn("skipping non-collidable polygon",
				zap.Int("entity", id),
				zap.Int("vertices", len(p.Vertices)))
			return
		}
		at := world.Vec2{}
		if pos, ok := s.comps.Positions.Get(id); ok {
			at = world.Vec2{X: pos.X, Y: pos.Y}
		}
		box, err := p.WorldBounds(at)
		if err != nil {
			s.log.Warn("skipping polygon with degenerate bounds",
				zap.Int("entity", id), zap.Error(err))
			return
		}
		colliders = append(colliders, collider{id: id, poly: p, at: at, box: box})
	})

	for i := range colliders {
		for j := range colliders {
			a, b := &colliders[i], &colliders[j]
			if a.id >= b.id {
				continue // one test per pair, no self-collision
			}
			if !a.box.Overlaps(b.box) {
				continue // broad phase reject
			}
			if !a.poly.IntersectsAt(a.at, *b.poly, b.at) {
				continue
			}
			hc, ok := s.comps.Hits.Get(a.id)
			if !ok {
				continue
			}
			hc.Hits++
			if v, ok := s.comps.Velocities.Get(a.id); ok {
				*v = world.Velocity{}
			}
			if s.bus != nil {
				event.Emit(s.bus, event.EntityHit{Entity: a.id, Hits: hc.Hits})
			}
		}
	}
}
