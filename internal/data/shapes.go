package data

import (
	"fmt"
	"os"

	"github.com/botworld/server/internal/world"
	"gopkg.in/yaml.v3"
)

// Shape is a named polygon template loaded from YAML, vertices in
// entity-local space.
type Shape struct {
	Name     string       `yaml:"name"`
	Vertices [][2]float64 `yaml:"vertices"`
}

// Polygon converts the template into a world polygon. The vertex slice is
// freshly allocated, so callers may mutate the result.
func (s *Shape) Polygon() world.Polygon {
	verts := make([]world.Vec2, len(s.Vertices))
	for i, v := range s.Vertices {
		verts[i] = world.Vec2{X: v[0], Y: v[1]}
	}
	return world.Polygon{Vertices: verts}
}

type shapeListFile struct {
	Shapes []Shape `yaml:"shapes"`
}

// ShapeTable holds all shape templates indexed by name.
type ShapeTable struct {
	shapes map[string]*Shape
}

// LoadShapeTable loads shape templates from a YAML file.
func LoadShapeTable(path string) (*ShapeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shape list: %w", err)
	}
	var f shapeListFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse shape list: %w", err)
	}
	t := &ShapeTable{shapes: make(map[string]*Shape, len(f.Shapes))}
	for i := range f.Shapes {
		s := &f.Shapes[i]
		if len(s.Vertices) < 3 {
			return nil, fmt.Errorf("shape %q: need at least 3 vertices, got %d", s.Name, len(s.Vertices))
		}
		t.shapes[s.Name] = s
	}
	return t, nil
}

// Get returns the shape named name, or nil.
func (t *ShapeTable) Get(name string) *Shape {
	return t.shapes[name]
}

func (t *ShapeTable) Count() int {
	return len(t.shapes)
}
