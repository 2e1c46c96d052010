package world

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegeneratePolygon reports a polygon with an empty vertex list, whose
// bounding box would otherwise be a min/max over nothing.
var ErrDegeneratePolygon = errors.New("degenerate polygon: no vertices")

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Perp returns the unnormalized perpendicular, the candidate separating
// axis for the edge v.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec2
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func (b AABB) Overlaps(o AABB) bool {
	return !(b.Max.X < o.Min.X || b.Min.X > o.Max.X ||
		b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y)
}

// Translate returns the box shifted by offset.
func (b AABB) Translate(offset Vec2) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Polygon is an ordered vertex list in entity-local space. Combined with
// the entity's Position it yields world-space geometry. Fewer than three
// vertices is not collidable.
type Polygon struct {
	Vertices []Vec2
}

// Collidable reports whether the polygon has enough vertices to take part
// in collision detection.
func (p Polygon) Collidable() bool { return len(p.Vertices) >= 3 }

// Bounds computes the local-space AABB over the vertex list. Empty vertex
// lists fail fast instead of producing ±Inf extrema.
func (p Polygon) Bounds() (AABB, error) {
	if len(p.Vertices) == 0 {
		return AABB{}, ErrDegeneratePolygon
	}
	box := AABB{Min: p.Vertices[0], Max: p.Vertices[0]}
	for _, v := range p.Vertices[1:] {
		box.Min.X = math.Min(box.Min.X, v.X)
		box.Min.Y = math.Min(box.Min.Y, v.Y)
		box.Max.X = math.Max(box.Max.X, v.X)
		box.Max.Y = math.Max(box.Max.Y, v.Y)
	}
	return box, nil
}

// WorldBounds is the local AABB translated to the entity's world position.
func (p Polygon) WorldBounds(at Vec2) (AABB, error) {
	box, err := p.Bounds()
	if err != nil {
		return AABB{}, fmt.Errorf("world bounds: %w", err)
	}
	return box.Translate(at), nil
}

// edgeAxis returns the unnormalized perpendicular of edge i, wrapping from
// the last vertex back to the first.
func (p Polygon) edgeAxis(i int) Vec2 {
	n := len(p.Vertices)
	a := p.Vertices[i]
	b := p.Vertices[(i+1)%n]
	return Vec2{b.X - a.X, b.Y - a.Y}.Perp()
}

// project returns the min and max projection of the polygon, placed at
// offset, onto axis.
func (p Polygon) project(axis, offset Vec2) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range p.Vertices {
		d := axis.Dot(v.Add(offset))
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// IntersectsAt runs the Separating Axis Theorem over both polygons placed
// at their world positions: every edge perpendicular of either polygon is a
// candidate axis, and the polygons intersect iff the projected intervals
// overlap on all of them. Exact edge-touching counts as intersecting.
func (p Polygon) IntersectsAt(at Vec2, q Polygon, qat Vec2) bool {
	return !p.separatedFrom(at, q, qat) && !q.separatedFrom(qat, p, at)
}

// separatedFrom reports whether any of p's edge axes separates p from q.
func (p Polygon) separatedFrom(at Vec2, q Polygon, qat Vec2) bool {
	for i := range p.Vertices {
		axis := p.edgeAxis(i)
		loA, hiA := p.project(axis, at)
		loB, hiB := q.project(axis, qat)
		if hiA < loB || hiB < loA {
			return true
		}
	}
	return false
}
