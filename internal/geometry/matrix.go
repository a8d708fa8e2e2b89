package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when matrix operands have incompatible shapes.
var ErrDimensionMismatch = errors.New("matrix dimension mismatch")

// Matrix is a dense row-major matrix. All rows must have the same length.
type Matrix [][]float64

// NewMatrix returns a zero matrix with the given shape.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Matrix) rectangular() bool {
	c := m.Cols()
	for _, row := range m {
		if len(row) != c {
			return false
		}
	}
	return true
}

func dimensionError(op string, rows, cols, wantRows, wantCols int) error {
	return fmt.Errorf("%s: got %dx%d, want %dx%d: %w", op, rows, cols, wantRows, wantCols, ErrDimensionMismatch)
}

// Product multiplies an n×r matrix a by an r×m matrix b and returns the n×m result.
// It fails with ErrDimensionMismatch when a's column count differs from b's row
// count, or when either operand is ragged or empty.
func Product(a, b Matrix) (Matrix, error) {
	if a.Rows() == 0 || b.Rows() == 0 || b.Cols() == 0 {
		return nil, fmt.Errorf("product of empty matrix: %w", ErrDimensionMismatch)
	}
	if !a.rectangular() || !b.rectangular() {
		return nil, fmt.Errorf("product of ragged matrix: %w", ErrDimensionMismatch)
	}
	n, r, m := a.Rows(), b.Rows(), b.Cols()
	if a.Cols() != r {
		return nil, fmt.Errorf("product %dx%d by %dx%d: %w", n, a.Cols(), r, m, ErrDimensionMismatch)
	}
	out := NewMatrix(n, m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			for k := 0; k < r; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out, nil
}

// Matrix3 is a 3×3 rotation operator. Values are built fresh per rotation and never mutated.
type Matrix3 [3][3]float64

// Matrix returns a copy of m as a general Matrix.
func (m Matrix3) Matrix() Matrix {
	out := NewMatrix(3, 3)
	for i := range m {
		copy(out[i], m[i][:])
	}
	return out
}

// MulVec returns m·v. The operand shapes are fixed, so a mismatch here is a
// programming error and panics.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	p, err := Product(m.Matrix(), v.Column())
	if err != nil {
		panic(err)
	}
	out, err := VectorFromColumn(p)
	if err != nil {
		panic(err)
	}
	return out
}

// RotationX returns the right-handed rotation by angle radians about the X axis.
func RotationX(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}
}

// RotationY returns the right-handed rotation by angle radians about the Y axis.
func RotationY(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	}
}

// RotationZ returns the right-handed rotation by angle radians about the Z axis.
func RotationZ(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}
