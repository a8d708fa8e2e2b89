package geometry

// Vector3 is a point or direction in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Column returns v as a 3×1 matrix, the shape Product expects on its right.
func (v Vector3) Column() Matrix {
	return Matrix{{v.X}, {v.Y}, {v.Z}}
}

// VectorFromColumn reads a 3×1 matrix back into a Vector3.
func VectorFromColumn(m Matrix) (Vector3, error) {
	if m.Rows() != 3 || m.Cols() != 1 {
		return Vector3{}, dimensionError("column vector", m.Rows(), m.Cols(), 3, 1)
	}
	return Vector3{X: m[0][0], Y: m[1][0], Z: m[2][0]}, nil
}
