// Package mat provides the double-precision 3x3 basis matrix and the
// axis-angle rotation used by the frame propagator. It generalises the
// teacher's principal-axis-only RotationX/Y/Z into a single Rodrigues
// rotation about an arbitrary world-space axis, which the chain needs
// because each joint's rotation axis is itself the image of a parent row.
package mat

import (
	"math"

	"github.com/kinemach/arm5/x/math/vec"
)

// Matrix3 holds three rows — local X, local Y, local Z — expressed in
// world coordinates. This mirrors the teacher's Matrix3x3 row convention.
type Matrix3 [3]vec.Vector3

// Identity returns the world-aligned basis.
func Identity() Matrix3 {
	return Matrix3{
		vec.New(1, 0, 0),
		vec.New(0, 1, 0),
		vec.New(0, 0, 1),
	}
}

func (m Matrix3) Row(i int) vec.Vector3 { return m[i] }

// SetRow returns a copy of m with row i replaced.
func (m Matrix3) SetRow(i int, v vec.Vector3) Matrix3 {
	m[i] = v
	return m
}

// IsFinite reports whether every row is finite.
func (m Matrix3) IsFinite() bool {
	return m[0].IsFinite() && m[1].IsFinite() && m[2].IsFinite()
}

// Orthonormal reports whether the rows are pairwise orthogonal and unit
// length within tol, per spec.md invariant 1.
func (m Matrix3) Orthonormal(tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(m[i].Magnitude()-1) > tol {
			return false
		}
	}
	if math.Abs(m[0].Dot(m[1])) > tol {
		return false
	}
	if math.Abs(m[1].Dot(m[2])) > tol {
		return false
	}
	if math.Abs(m[0].Dot(m[2])) > tol {
		return false
	}
	return true
}

// RotateAboutAxis rotates vector v by angleRad (right-hand rule) about the
// unit vector axis, using Rodrigues' rotation formula:
//
//	v' = v*cos(θ) + (axis × v)*sin(θ) + axis*(axis·v)*(1-cos(θ))
func RotateAboutAxis(v, axis vec.Vector3, angleRad float64) vec.Vector3 {
	c := math.Cos(angleRad)
	s := math.Sin(angleRad)
	term1 := v.MulC(c)
	term2 := axis.Cross(v).MulC(s)
	term3 := axis.MulC(axis.Dot(v) * (1 - c))
	return term1.Add(term2).Add(term3)
}

// RotateAboutZ rotates v by angleRad about the world +Z axis. Used by the
// planarizer to rotate a target into the arm plane.
func RotateAboutZ(v vec.Vector3, angleRad float64) vec.Vector3 {
	return RotateAboutAxis(v, vec.New(0, 0, 1), angleRad)
}
