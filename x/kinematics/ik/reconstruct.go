package ik

import (
	"math"

	"github.com/kinemach/arm5/x/kinematics/chain"
	"github.com/kinemach/arm5/x/math/vec"
)

// Reconstruct converts the solved planar sequence [P5, P4, P3, Tip] into
// per-joint native angles for J5, J4, J3 (spec.md §4.5).
func Reconstruct(p Planar) (j5, j4, j3 float64) {
	points := [4]vec.Vector2{p.P5, p.P4, p.P3, p.Tip}

	cumRot := 0.0
	var angles [3]float64
	for i := 0; i < 3; i++ {
		curr, next := points[i], points[i+1]
		delta := next.Sub(curr)
		v := delta.Normalized()
		rot := math.Atan2(v.X(), v.Z()) - cumRot
		angles[i] = rot/math.Pi*0.5 + 1
		cumRot += rot
	}
	return angles[0], angles[1], angles[2]
}

// Solve takes an already planarized target and its planar solution, sets
// J6 from pz and reconstructs J5, J4, J3 from planar, writing them into a
// fresh chain.State seeded from prior so the base entry is preserved.
// Compute is the function that runs the whole pipeline.
func Solve(model *chain.Model, prior chain.State, pz Planarized, planar Planar) chain.State {
	next := prior
	next[chain.J6] = pz.J6Angle
	j5, j4, j3 := Reconstruct(planar)
	next[chain.J5] = j5
	next[chain.J4] = j4
	next[chain.J3] = j3
	return next
}
