package web

import "github.com/botworld/server/internal/world"

// ScenePacket is the wire form of a world snapshot, rendered client-side
// by an HTML canvas. Entity ids are deliberately absent.
type ScenePacket struct {
	Geometries []SceneGeometry `json:"geometries"`
}

// SceneGeometry is one polygon: its local vertex list as [x, y] pairs and,
// when the entity has one, its world position.
type SceneGeometry struct {
	Vertices [][2]float64 `json:"vertices"`
	Position *[2]float64  `json:"position,omitempty"`
}

func buildScenePacket(snap []world.Geometry) ScenePacket {
	pkt := ScenePacket{Geometries: make([]SceneGeometry, 0, len(snap))}
	for _, g := range snap {
		geo := SceneGeometry{Vertices: make([][2]float64, len(g.Vertices))}
		for i, v := range g.Vertices {
			geo.Vertices[i] = [2]float64{v.X, v.Y}
		}
		if g.Position != nil {
			geo.Position = &[2]float64{g.Position.X, g.Position.Y}
		}
		pkt.Geometries = append(pkt.Geometries, geo)
	}
	return pkt
}
