package ik

import (
	"github.com/kinemach/arm5/x/kinematics/chain"
	"github.com/kinemach/arm5/x/kinematics/fk"
	kintypes "github.com/kinemach/arm5/x/kinematics/types"
	"github.com/kinemach/arm5/x/math/vec"
)

// Result is the outcome of a full solve_ik invocation (spec.md §5's tick
// pseudocode): either a feasible joint state, or Infeasible with the
// previous commanded joints left untouched.
type Result struct {
	Class  kintypes.Classification
	Joints chain.State
	Planar Planar
}

// Compute runs the whole inverse-kinematics pipeline for one tick:
// planarize the 3D target against the current J5 origin, solve the planar
// chain under the posture-shaping policy, and reconstruct native joint
// angles. If the planar solve is infeasible, prior is echoed back
// unchanged and the caller must not treat Joints as a new commanded pose.
func Compute(model *chain.Model, frames fk.Frames, prior chain.State, target vec.Vector3, pol Policy) Result {
	pz := Planarize(model, frames, target)
	planar := SolvePlanar(model, pz.Target, pol)

	if planar.Class == kintypes.Infeasible {
		return Result{Class: kintypes.Infeasible, Joints: prior, Planar: planar}
	}

	next := Solve(model, prior, pz, planar)
	class := kintypes.Solved
	for _, lbl := range planar.Branches {
		if lbl == "default-clamped" || lbl == "natural" {
			continue
		}
		if lbl != "" {
			class = kintypes.Clamped
		}
	}
	return Result{Class: class, Joints: next, Planar: planar}
}
