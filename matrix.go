package tint

import "fmt"

// Matrix3 is an immutable 3x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
//
// A Matrix3 always has exactly three rows: the only constructors take all
// three at once. The zero value is the zero matrix.
type Matrix3 struct {
	m [3][3]float64
}

// NewMatrix3 creates a matrix from its three rows.
func NewMatrix3(row1, row2, row3 Vec3) Matrix3 {
	return Matrix3{m: [3][3]float64{
		{row1.X, row1.Y, row1.Z},
		{row2.X, row2.Y, row2.Z},
		{row3.X, row3.Y, row3.Z},
	}}
}

// M3 creates a matrix from nine entries given row by row.
func M3(a, b, c, d, e, f, g, h, i float64) Matrix3 {
	return Matrix3{m: [3][3]float64{
		{a, b, c},
		{d, e, f},
		{g, h, i},
	}}
}

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return M3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// At returns the entry at row i, column j. It panics if either index is
// outside [0, 2].
func (m Matrix3) At(i, j int) float64 {
	return m.m[i][j]
}

// Row returns row i as a vector. It panics if i is outside [0, 2].
func (m Matrix3) Row(i int) Vec3 {
	r := m.m[i]
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// Transform returns the product m·v: result[i] = Σ_j m[i][j]·v[j].
func (m Matrix3) Transform(v Vec3) Vec3 {
	return Vec3{
		X: m.m[0][0]*v.X + m.m[0][1]*v.Y + m.m[0][2]*v.Z,
		Y: m.m[1][0]*v.X + m.m[1][1]*v.Y + m.m[1][2]*v.Z,
		Z: m.m[2][0]*v.X + m.m[2][1]*v.Y + m.m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m·n, which applies n first and then m
// when used with Transform.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.m[i][j] = m.m[i][0]*n.m[0][j] + m.m[i][1]*n.m[1][j] + m.m[i][2]*n.m[2][j]
		}
	}
	return r
}

// Transpose returns the transposed matrix.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.m[j][i] = m.m[i][j]
		}
	}
	return r
}

// Determinant returns the determinant of the matrix, expanded along the
// first column.
func (m Matrix3) Determinant() float64 {
	a, b, c := m.m[0][0], m.m[0][1], m.m[0][2]
	d, e, f := m.m[1][0], m.m[1][1], m.m[1][2]
	g, h, i := m.m[2][0], m.m[2][1], m.m[2][2]
	return a*(e*i-h*f) - d*(b*i-h*c) + g*(b*f-e*c)
}

// Invertible reports whether the determinant is non-zero.
func (m Matrix3) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix computed as adjugate / determinant.
//
// A singular matrix (determinant exactly zero) has no inverse; Inverse then
// returns the zero matrix instead of dividing by zero. Check Invertible
// when the input may be singular.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}
	}
	r := 1 / det

	a, b, c := m.m[0][0], m.m[0][1], m.m[0][2]
	d, e, f := m.m[1][0], m.m[1][1], m.m[1][2]
	g, h, i := m.m[2][0], m.m[2][1], m.m[2][2]

	return M3(
		r*(e*i-h*f), -r*(b*i-h*c), r*(b*f-e*c),
		-r*(d*i-g*f), r*(a*i-g*c), -r*(a*f-d*c),
		r*(d*h-g*e), -r*(a*h-g*b), r*(a*e-d*b),
	)
}

// String returns a string representation of the matrix.
func (m Matrix3) String() string {
	return fmt.Sprintf("Matrix3[%v %v %v]", m.m[0], m.m[1], m.m[2])
}
