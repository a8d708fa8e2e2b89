package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoVertices is returned when a model is built from an empty vertex list.
	ErrNoVertices = errors.New("model has no vertices")
	// ErrEdgeOutOfRange is returned when an edge references a vertex that does not exist.
	ErrEdgeOutOfRange = errors.New("edge index out of range")
	// ErrDegenerateEdge is returned when an edge connects a vertex to itself.
	ErrDegenerateEdge = errors.New("edge connects a vertex to itself")
)

// Edge connects two vertices of a Model by index.
type Edge struct {
	From, To int
}

// Model is a wireframe: a point cloud and the edges between its points.
// It exclusively owns both slices. Edges never change after construction;
// only Translate and Rotate move the vertices.
type Model struct {
	vertices []Vector3
	edges    []Edge
}

// NewModel validates the definition, copies it and recenters the copy so its
// centroid is the origin.
func NewModel(vertices []Vector3, edges []Edge) (*Model, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= len(vertices) || e.To < 0 || e.To >= len(vertices) {
			return nil, fmt.Errorf("edge %d (%d,%d) with %d vertices: %w", i, e.From, e.To, len(vertices), ErrEdgeOutOfRange)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, e.From, e.To, ErrDegenerateEdge)
		}
	}
	m := &Model{
		vertices: append([]Vector3(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
	}
	m.Recenter()
	return m, nil
}

// Vertices returns a copy of the current vertex positions.
func (m *Model) Vertices() []Vector3 {
	out := make([]Vector3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Edges returns a copy of the edge list.
func (m *Model) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// Centroid returns the mean position of all vertices.
func (m *Model) Centroid() Vector3 {
	var sum Vector3
	for _, v := range m.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(m.vertices)))
}

// Translate moves every vertex by (dx, dy, dz).
func (m *Model) Translate(dx, dy, dz float64) {
	d := NewVector3(dx, dy, dz)
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].Add(d)
	}
}

// Recenter translates the model so its centroid sits at the origin.
// Calling it again on a centered model only moves vertices by rounding noise.
func (m *Model) Recenter() {
	c := m.Centroid().Negate()
	m.Translate(c.X, c.Y, c.Z)
}

// Rotate turns the model in place by dx, dy and dz radians about the X, Y
// and Z axes. Each vertex is multiplied by Rx, then Ry, then Rz, starting
// from its current position, so successive calls accumulate.
func (m *Model) Rotate(dx, dy, dz float64) {
	rx, ry, rz := RotationX(dx), RotationY(dy), RotationZ(dz)
	for i, v := range m.vertices {
		v = rx.MulVec(v)
		v = ry.MulVec(v)
		m.vertices[i] = rz.MulVec(v)
	}
}

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Line is a segment between two screen points.
type Line struct {
	From, To Point
}

// DrawList holds the primitives for one frame: one point per vertex, in
// vertex order, and one line per edge, in edge order.
type DrawList struct {
	Points []Point
	Lines  []Line
}

// Project drops Z and shifts the rounded XY onto the screen origin (cx, cy).
func Project(v Vector3, cx, cy int) Point {
	return Point{
		X: cx + int(math.Round(v.X)),
		Y: cy + int(math.Round(v.Y)),
	}
}

// DrawList projects the model orthographically onto the XY plane around the
// viewport center (cx, cy). It does not modify the model.
func (m *Model) DrawList(cx, cy int) DrawList {
	dl := DrawList{
		Points: make([]Point, len(m.vertices)),
		Lines:  make([]Line, len(m.edges)),
	}
	for i, v := range m.vertices {
		dl.Points[i] = Project(v, cx, cy)
	}
	for i, e := range m.edges {
		dl.Lines[i] = Line{From: dl.Points[e.From], To: dl.Points[e.To]}
	}
	return dl
}
