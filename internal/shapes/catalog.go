package shapes

import (
	"errors"
	"fmt"
	"math"

	"wireframe-viewer/internal/geometry"
)

// ErrInvalidSize is returned when a shape is built with a size that is not a positive finite number.
var ErrInvalidSize = errors.New("shape size must be positive")

// table is the static definition of one shape: vertices scaled by size and a fixed edge list.
type table struct {
	name     string
	vertices func(size float64) []geometry.Vector3
	edges    []geometry.Edge
}

// catalog maps each Kind to its definition. Vertices need not be centered;
// geometry.NewModel recenters them.
var catalog = map[Kind]table{
	Cube: {
		name: "Cube",
		vertices: func(size float64) []geometry.Vector3 {
			h := size / 2
			return []geometry.Vector3{
				{X: -h, Y: -h, Z: -h},
				{X: h, Y: -h, Z: -h},
				{X: -h, Y: h, Z: -h},
				{X: -h, Y: -h, Z: h},
				{X: h, Y: -h, Z: h},
				{X: -h, Y: h, Z: h},
				{X: h, Y: h, Z: -h},
				{X: h, Y: h, Z: h},
			}
		},
		edges: []geometry.Edge{
			{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
			{From: 1, To: 4}, {From: 1, To: 6}, {From: 2, To: 6},
			{From: 3, To: 5}, {From: 3, To: 4}, {From: 4, To: 7},
			{From: 5, To: 7}, {From: 6, To: 7}, {From: 2, To: 5},
		},
	},
	Tetrahedron: {
		name: "Tetrahedron",
		vertices: func(size float64) []geometry.Vector3 {
			h := size / 2
			return []geometry.Vector3{
				{X: -h, Y: -h, Z: -h},
				{X: h, Y: -h, Z: -h},
				{X: h, Y: h, Z: -h},
				{X: 0, Y: 0, Z: h}, // apex
			}
		},
		edges: []geometry.Edge{
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0},
			{From: 0, To: 3}, {From: 1, To: 3}, {From: 2, To: 3},
		},
	},
	Pyramid: {
		name: "Pyramid",
		vertices: func(size float64) []geometry.Vector3 {
			h := size / 2
			return []geometry.Vector3{
				{X: -h, Y: -h, Z: 0},
				{X: h, Y: -h, Z: 0},
				{X: h, Y: h, Z: 0},
				{X: -h, Y: h, Z: 0},
				{X: 0, Y: 0, Z: size}, // apex
			}
		},
		edges: []geometry.Edge{
			// base
			{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0},
			// sides
			{From: 0, To: 4}, {From: 1, To: 4}, {From: 2, To: 4}, {From: 3, To: 4},
		},
	},
	Octahedron: {
		name: "Octahedron",
		vertices: func(size float64) []geometry.Vector3 {
			h := size / 2
			return []geometry.Vector3{
				{X: 0, Y: 0, Z: h},  // top
				{X: h, Y: 0, Z: 0},  // right
				{X: 0, Y: h, Z: 0},  // front
				{X: -h, Y: 0, Z: 0}, // left
				{X: 0, Y: -h, Z: 0}, // back
				{X: 0, Y: 0, Z: -h}, // bottom
			}
		},
		// Each equatorial vertex (1..4) meets both poles and its two neighbours.
		edges: []geometry.Edge{
			{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3}, {From: 0, To: 4},
			{From: 5, To: 1}, {From: 5, To: 2}, {From: 5, To: 3}, {From: 5, To: 4},
			{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 1},
		},
	},
}

// Build returns a centered, ready-to-draw model of the given shape.
func Build(k Kind, size float64) (*geometry.Model, error) {
	t, ok := catalog[k]
	if !ok {
		return nil, fmt.Errorf("build %v: %w", k, ErrUnknownShape)
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("build %s with size %v: %w", t.name, size, ErrInvalidSize)
	}
	m, err := geometry.NewModel(t.vertices(size), t.edges)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", t.name, err)
	}
	return m, nil
}

// Counts reports how many vertices and edges a shape has without building it.
func Counts(k Kind) (vertices, edges int, err error) {
	t, ok := catalog[k]
	if !ok {
		return 0, 0, fmt.Errorf("%v: %w", k, ErrUnknownShape)
	}
	return len(t.vertices(1)), len(t.edges), nil
}
