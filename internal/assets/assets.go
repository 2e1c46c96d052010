// Package assets procedurally generates the scene at boot. A real game
// would load authored content; here the world is rebuilt deterministically
// from a string key, with the base shapes coming from the YAML catalog and
// the layout parameters from the Lua scene script.
package assets

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/botworld/server/internal/data"
	"github.com/botworld/server/internal/world"
)

// Params tune the procedural layout. Defaults may be overridden by the
// scene script.
type Params struct {
	Obstacles  int     // static convex obstacles
	Drifters   int     // moving triangles
	RadiusMin  float64 // obstacle circumradius range
	RadiusMax  float64
	Spread     float64 // positions drawn uniformly from [-Spread, Spread]
	DriftSpeed float64 // drifter velocity drawn from [-DriftSpeed, DriftSpeed] per axis
}

func DefaultParams() Params {
	return Params{
		Obstacles:  10,
		Drifters:   10,
		RadiusMin:  5,
		RadiusMax:  20,
		Spread:     100,
		DriftSpeed: 0.5,
	}
}

// Entity id layout: the player robot is entity 0 (the boundary contract),
// decorations follow, then obstacles and drifters.
const (
	robotEntity  = world.PlayerEntity
	firstDecorID = 1
	baseEntityID = 3
)

// Build wipes the registry and populates the scene: the robot with its
// decorations, then static obstacles, then drifting triangles. The same
// key always produces the same scene.
func Build(c *world.Components, shapes *data.ShapeTable, p Params, key string) error {
	body := shapes.Get("robot_body")
	if body == nil {
		return fmt.Errorf("build scene: shape catalog has no robot_body")
	}
	drifter := shapes.Get("drifter")
	if drifter == nil {
		return fmt.Errorf("build scene: shape catalog has no drifter")
	}

	h := fnv.New64a()
	h.Write([]byte(key))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	dist := func() float64 { return rng.Float64()*2*p.Spread - p.Spread }

	c.ClearAll()

	// Robot at the world center, able to move and to take hits.
	if err := c.Positions.Insert(robotEntity, world.Position{}); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if err := c.Velocities.Insert(robotEntity, world.Velocity{}); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if err := c.Hits.Insert(robotEntity, world.HitCounter{}); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if err := c.Polygons.Insert(robotEntity, body.Polygon()); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	// Decorative sensor squares. Static polygons with no Position; they
	// stay where the robot spawned.
	for i, name := range []string{"sensor_left", "sensor_right"} {
		s := shapes.Get(name)
		if s == nil {
			continue
		}
		if err := c.Polygons.Insert(firstDecorID+i, s.Polygon()); err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
	}

	// Static obstacles: random convex polygons, vertices laid out on a
	// circle so they cannot self-intersect.
	id := baseEntityID
	for i := 0; i < p.Obstacles; i++ {
		n := 3 + rng.Intn(5)
		radius := p.RadiusMin + rng.Float64()*(p.RadiusMax-p.RadiusMin)
		verts := make([]world.Vec2, n)
		for j := 0; j < n; j++ {
			angle := 2 * math.Pi * float64(j) / float64(n)
			verts[j] = world.Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
		}
		if err := c.Polygons.Insert(id, world.Polygon{Vertices: verts}); err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
		if err := c.Positions.Insert(id, world.Position{X: dist(), Y: dist()}); err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
		id++
	}

	// Drifters: triangles with a random constant velocity.
	for i := 0; i < p.Drifters; i++ {
		if err := c.Polygons.Insert(id, drifter.Polygon()); err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
		if err := c.Positions.Insert(id, world.Position{X: dist(), Y: dist()}); err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
		vel := world.Velocity{
			DX: (rng.Float64()*2 - 1) * p.DriftSpeed,
			DY: (rng.Float64()*2 - 1) * p.DriftSpeed,
		}
		if err := c.Velocities.Insert(id, vel); err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
		id++
	}

	return nil
}
