package types

import (
	"bytes"
	"fmt"

	"golang.org/x/image/math/f64"
)

// Matrices are stored in row-major order.
type Mat2 [4]float64
type Mat3 f64.Mat3
type Mat4 f64.Mat4

// The Matrix interface is implemented by Mat2, Mat3 and Mat4 and allows
// working with matrices whose dimension is only known at runtime.
type Matrix interface {
	// Number of rows (and columns).
	Dim() int

	// Get the element at row, col.
	At(row, col int) float64

	// Calculate the determinant using cofactor expansion.
	Det() float64

	// Returns true if the determinant is not zero.
	IsInvertible() bool
}

// Create a 2x2 identity matrix.
func Ident2() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Create a 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Create a 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Build a matrix from a list of rows. The row count selects the matrix
// dimension; each row must have as many columns as there are rows.
func FromRows(rows ...[]float64) (Matrix, error) {
	dim := len(rows)
	for idx, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has %d columns; expected %d", ErrDimensionMismatch, idx, len(row), dim)
		}
	}

	switch dim {
	case 2:
		var m Mat2
		for r := 0; r < dim; r++ {
			copy(m[r*dim:], rows[r])
		}
		return m, nil
	case 3:
		var m Mat3
		for r := 0; r < dim; r++ {
			copy(m[r*dim:], rows[r])
		}
		return m, nil
	case 4:
		var m Mat4
		for r := 0; r < dim; r++ {
			copy(m[r*dim:], rows[r])
		}
		return m, nil
	}

	return nil, fmt.Errorf("%w: unsupported matrix dimension %d", ErrDimensionMismatch, dim)
}

// Multiply two matrices of the same dimension. Multiplying matrices of
// different dimensions is a programming error and panics.
func MulMatrix(a, b Matrix) Matrix {
	switch ma := a.(type) {
	case Mat2:
		if mb, ok := b.(Mat2); ok {
			return ma.Mul2(mb)
		}
	case Mat3:
		if mb, ok := b.(Mat3); ok {
			return ma.Mul3(mb)
		}
	case Mat4:
		if mb, ok := b.(Mat4); ok {
			return ma.Mul4(mb)
		}
	}
	panic(fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, a.Dim(), a.Dim(), b.Dim(), b.Dim()))
}

// Remove a row and a column from a 3x3 or 4x4 matrix. A 2x2 matrix has no
// submatrix; requesting one panics.
func Submatrix(m Matrix, row, col int) Matrix {
	switch mt := m.(type) {
	case Mat3:
		return mt.Submatrix(row, col)
	case Mat4:
		return mt.Submatrix(row, col)
	}
	panic(fmt.Errorf("%w: %dx%d matrix has no submatrix", ErrDegenerateOperation, m.Dim(), m.Dim()))
}

// Transpose a matrix of any supported dimension.
func Transpose(m Matrix) Matrix {
	switch mt := m.(type) {
	case Mat2:
		return mt.Transpose()
	case Mat3:
		return mt.Transpose()
	case Mat4:
		return mt.Transpose()
	}
	panic(fmt.Errorf("%w: unsupported matrix type %T", ErrDimensionMismatch, m))
}

func cofactorSign(row, col int) float64 {
	if (row+col)%2 == 1 {
		return -1
	}
	return 1
}

func (m Mat2) Dim() int { return 2 }

func (m Mat2) At(row, col int) float64 {
	return m[row*2+col]
}

// Multiply with another 2x2 matrix.
func (m Mat2) Mul2(m2 Mat2) Mat2 {
	return Mat2{
		m[0]*m2[0] + m[1]*m2[2], m[0]*m2[1] + m[1]*m2[3],
		m[2]*m2[0] + m[3]*m2[2], m[2]*m2[1] + m[3]*m2[3],
	}
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// The minor of a 2x2 element is the single element left after removing
// its row and column.
func (m Mat2) Minor(row, col int) float64 {
	return m.At(1-row, 1-col)
}

func (m Mat2) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

func (m Mat2) IsInvertible() bool {
	return m.Det() != 0
}

// Invert matrix.
func (m Mat2) Inv() (Mat2, error) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, ErrSingularMatrix
	}
	var out Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[c*2+r] = m.Cofactor(r, c) / det
		}
	}
	return out, nil
}

func (m Mat3) Dim() int { return 3 }

func (m Mat3) At(row, col int) float64 {
	return m[row*3+col]
}

// Multiply with another 3x3 matrix.
func (m Mat3) Mul3(m2 Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*m2[c] + m[r*3+1]*m2[3+c] + m[r*3+2]*m2[6+c]
		}
	}
	return out
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Remove the given row and column.
func (m Mat3) Submatrix(row, col int) Mat2 {
	var out Mat2
	idx := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			out[idx] = m[r*3+c]
			idx++
		}
	}
	return out
}

func (m Mat3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Det()
}

func (m Mat3) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

func (m Mat3) Det() float64 {
	var det float64
	for c := 0; c < 3; c++ {
		det += m[c] * m.Cofactor(0, c)
	}
	return det
}

func (m Mat3) IsInvertible() bool {
	return m.Det() != 0
}

// Invert matrix.
func (m Mat3) Inv() (Mat3, error) {
	det := m.Det()
	if det == 0 {
		return Mat3{}, ErrSingularMatrix
	}
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[c*3+r] = m.Cofactor(r, c) / det
		}
	}
	return out, nil
}

func (m Mat4) Dim() int { return 4 }

func (m Mat4) At(row, col int) float64 {
	return m[row*4+col]
}

// Multiply with another 4x4 matrix.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r*4]*m2[c] +
				m[r*4+1]*m2[4+c] +
				m[r*4+2]*m2[8+c] +
				m[r*4+3]*m2[12+c]
		}
	}
	return out
}

// Multiply with a 4 component tuple.
func (m Mat4) Mul4x1(t Tuple) Tuple {
	return Tuple{
		m[0]*t[0] + m[1]*t[1] + m[2]*t[2] + m[3]*t[3],
		m[4]*t[0] + m[5]*t[1] + m[6]*t[2] + m[7]*t[3],
		m[8]*t[0] + m[9]*t[1] + m[10]*t[2] + m[11]*t[3],
		m[12]*t[0] + m[13]*t[1] + m[14]*t[2] + m[15]*t[3],
	}
}

// Transform a point (w = 1).
func (m Mat4) MulPoint(p Point) Point {
	t := m.Mul4x1(p.Tuple())
	return Point{t[0], t[1], t[2]}
}

// Transform a vector (w = 0). The w component of the result is discarded so
// that the inverse transpose of an affine matrix can be used for normals.
func (m Mat4) MulVec(v Vector) Vector {
	t := m.Mul4x1(v.Tuple())
	return Vector{t[0], t[1], t[2]}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Remove the given row and column.
func (m Mat4) Submatrix(row, col int) Mat3 {
	var out Mat3
	idx := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			out[idx] = m[r*4+c]
			idx++
		}
	}
	return out
}

func (m Mat4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Det()
}

func (m Mat4) Cofactor(row, col int) float64 {
	return cofactorSign(row, col) * m.Minor(row, col)
}

func (m Mat4) Det() float64 {
	var det float64
	for c := 0; c < 4; c++ {
		det += m[c] * m.Cofactor(0, c)
	}
	return det
}

func (m Mat4) IsInvertible() bool {
	return m.Det() != 0
}

// Invert matrix. Returns ErrSingularMatrix if the determinant is zero.
func (m Mat4) Inv() (Mat4, error) {
	det := m.Det()
	if det == 0 {
		return Mat4{}, ErrSingularMatrix
	}
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// Transposed store
			out[c*4+r] = m.Cofactor(r, c) / det
		}
	}
	return out, nil
}

// Invert matrix and panic if it is singular.
func (m Mat4) MustInv() Mat4 {
	inv, err := m.Inv()
	if err != nil {
		panic(err)
	}
	return inv
}

// Compare two matrices using a fixed tolerance.
func (m Mat4) ApproxEqual(m2 Mat4) bool {
	for i := range m {
		if !FloatEqual(m[i], m2[i]) {
			return false
		}
	}
	return true
}

func (m Mat4) String() string {
	var buf bytes.Buffer
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&buf, "| %9.5f %9.5f %9.5f %9.5f |\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return buf.String()
}
