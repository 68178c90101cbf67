// Package vecmat holds the 3-vector and 3x3 matrix algebra shared by the
// time and frame packages.
//
// Matrices are stored row-major. Compose is the ordinary matrix product and
// Apply multiplies a column vector on the right, so that
//
//	a.Compose(b).Apply(v) == a.Apply(b.Apply(v))
//
// Rotation matrices follow the IAU SOFA rx/ry/rz convention: they rotate the
// coordinate frame, not the vector.
package vecmat

import (
	"math"
)

const (
	TwoPi            = 6.283185307179586476925287
	Degree           = math.Pi / 180
	ArcsecToRad      = 4.848136811095359935899141e-6
	MilliarcsecToRad = ArcsecToRad / 1e3
	TurnArcsec       = 1296000.0 // arcseconds in a full circle
)

const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

type Vec3 [3]float64

type Mat3 [3]Vec3

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

func (v Vec3) Scale(c float64) Vec3 {
	return Vec3{c * v[0], c * v[1], c * v[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns the unit vector along v. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Angle returns the angle between v and u in radians.
func (v Vec3) Angle(u Vec3) float64 {
	c := v.Normalize().Dot(u.Normalize())
	// rounding can push the cosine of (anti)parallel vectors past 1
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

func Zero() Mat3 {
	return Mat3{}
}

func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Rotation returns the matrix rotating the reference frame by theta
// radians about the given axis:
//
//	X: [ 1  0  0 ]   Y: [ C  0 -S ]   Z: [ C  S  0 ]
//	   [ 0  C  S ]      [ 0  1  0 ]      [-S  C  0 ]
//	   [ 0 -S  C ]      [ S  0  C ]      [ 0  0  1 ]
func Rotation(axis int, theta float64) Mat3 {
	s := math.Sin(theta)
	c := math.Cos(theta)
	i0 := (axis + 1) % 3
	i1 := (axis + 2) % 3

	var r Mat3
	r[axis][axis] = 1
	r[i0][i0] = c
	r[i0][i1] = s
	r[i1][i0] = -s
	r[i1][i1] = c
	return r
}

// Compose returns the product m x b. Applying the result to a vector is
// the same as applying b first and then m.
func (m Mat3) Compose(b Mat3) Mat3 {
	var c Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * b[k][j]
			}
			c[i][j] = s
		}
	}
	return c
}

// Rotate is shorthand for Rotation(axis, theta).Compose(m), the SOFA
// idiom of rotating an existing r-matrix in place.
func (m Mat3) Rotate(axis int, theta float64) Mat3 {
	return Rotation(axis, theta).Compose(m)
}

func (m Mat3) Transpose() Mat3 {
	var c Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = m[j][i]
		}
	}
	return c
}

// Apply returns m x v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Anp normalizes an angle into the range [0, 2pi).
func Anp(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if w < 0 {
		w += TwoPi
	}
	return w
}
