// Package ik implements inverse kinematics: the planarizer, the planar
// multi-link solver with its posture-shaping policy, and the angle
// reconstructor (spec.md §4.3–§4.5). Grounded on the teacher's
// joints/planar two- and three-DOF solvers
// (x/math/control/kinematics/joints/planar/planar2dof.go,
// planar3dof.go), generalised from a fixed 2/3-link planar arm to this
// chain's base-yaw-plus-planar-chain decomposition.
package ik

import (
	"math"

	"github.com/kinemach/arm5/x/kinematics/chain"
	"github.com/kinemach/arm5/x/kinematics/fk"
	"github.com/kinemach/arm5/x/math/mat"
	"github.com/kinemach/arm5/x/math/vec"
)

// Planarized is the result of reducing a 3D target to the arm's vertical
// half-plane: the base-yaw joint angle plus the 2D target expressed with
// J5's origin at the plane's origin.
type Planarized struct {
	J6Angle float64     // native turns value for J6
	Target  vec.Vector2 // (horizontal-reach, vertical) in the arm plane
}

// Planarize reduces target to the arm plane, choosing J6's yaw so the
// remaining chain lies in the vertical half-plane containing target
// (spec.md §4.3).
func Planarize(model *chain.Model, frames fk.Frames, target vec.Vector3) Planarized {
	s5 := frames[chain.J5].Origin

	yaw := math.Atan2(target.Y()-s5.Y(), target.X()-s5.X())
	// Same 1.0-centred turns convention as Reconstruct and chain.Neutral:
	// yaw=0 (straight ahead) is J6=1.0, not the raw [0,1) fraction the
	// source's deg_6 computed before its compensating +180 offset.
	j6 := yaw/(2*math.Pi) + 1

	translated := target.Sub(s5)
	rotated := mat.RotateAboutZ(translated, -yaw)

	return Planarized{
		J6Angle: j6,
		Target:  vec.New2(rotated.X(), rotated.Z()),
	}
}
