// Package fk implements the frame propagator: forward kinematics down the
// five-joint chain (spec.md §4.2). It walks the chain parent-first,
// rotating each parent basis row about the world-space image of the
// child's rotation axis via mat.RotateAboutAxis, and folds in the two
// named lateral-offset exceptions from the chain model.
//
// Grounded on the teacher's rigidbody frame-walk
// (x/math/control/kinematics/rigidbody/model.go), generalised from
// principal-axis-only rotation to an arbitrary world-space axis per joint.
package fk

import (
	"math"

	"github.com/kinemach/arm5/x/kinematics/chain"
	kintypes "github.com/kinemach/arm5/x/kinematics/types"
	"github.com/kinemach/arm5/x/math/mat"
	"github.com/kinemach/arm5/x/math/vec"
)

// degenerateTol is the minimum row magnitude below which renormalisation is
// considered to have failed (spec.md §4.2's "zero-length row").
const degenerateTol = 1e-12

// Pose is a joint's computed world-space origin and orthonormal basis.
type Pose struct {
	Origin vec.Vector3
	Basis  mat.Matrix3
}

// Frames holds one Pose per joint, indexed by chain.JointID.
type Frames [chain.NumJoints]Pose

// axisIndex decomposes a unit axis-of-rotation vector (one of ±X, ±Y, ±Z)
// into a row index and sign.
func axisIndex(axis vec.Vector3) (idx int, sign float64) {
	for i := 0; i < 3; i++ {
		if axis[i] > 0.5 {
			return i, 1
		}
		if axis[i] < -0.5 {
			return i, -1
		}
	}
	return 2, 1 // default to Z; construction-time data is trusted to be a principal axis
}

// lateralOffset returns the named per-joint constant offset (spec.md §3,
// §4.2). Base's riser offset is folded into the caller's general
// parent-origin-plus-basis term instead, since Base has no parent frame to
// offset from; this function only covers J6 and J5's offsets.
func lateralOffset(id chain.JointID, ownBasis mat.Matrix3) vec.Vector3 {
	switch id {
	case chain.J6:
		return vec.New(chain.BaseLateralX, 0, 0)
	case chain.J5:
		localY := ownBasis.Row(1)
		rotated := mat.RotateAboutZ(localY, math.Pi/2)
		return rotated.MulC(chain.J5LateralOffsetSign * chain.J5LateralMagnitude)
	default:
		return vec.Zero
	}
}

// Propagate computes every joint's world-space pose from the joint-state
// vector, in parent-first order (spec.md §4.2).
func Propagate(model *chain.Model, state chain.State) (Frames, error) {
	var frames Frames
	frames[chain.Base] = Pose{Origin: vec.Zero, Basis: mat.Identity()}

	order := [...]chain.JointID{chain.J6, chain.J5, chain.J4, chain.J3}
	for _, id := range order {
		desc := model.Descriptor(id)
		parentDesc := model.Descriptor(desc.Parent)
		parent := frames[desc.Parent]

		axisIdx, axisSign := axisIndex(desc.AxisOfRotation)
		worldAxis := parent.Basis.Row(axisIdx).MulC(axisSign).Normalized()

		angleRad := state[id] * 2 * math.Pi

		var own mat.Matrix3
		for i := 0; i < 3; i++ {
			if i == axisIdx {
				own = own.SetRow(i, parent.Basis.Row(i))
				continue
			}
			rotated := mat.RotateAboutAxis(parent.Basis.Row(i), worldAxis, angleRad)
			mag := rotated.Magnitude()
			if mag < degenerateTol {
				return Frames{}, kintypes.ErrDegenerateBasis
			}
			own = own.SetRow(i, rotated.MulC(1/mag))
		}

		origin := parent.Origin.
			Add(parent.Basis.Row(2).MulC(parentDesc.Length)).
			Add(lateralOffset(id, own))

		frames[id] = Pose{Origin: origin, Basis: own}
	}

	return frames, nil
}

// EndEffector returns the tip position: J3's origin plus its local-Z row
// scaled by its length (spec.md §4.2 step 3).
func EndEffector(model *chain.Model, frames Frames) vec.Vector3 {
	j3 := frames[chain.J3]
	return j3.Origin.Add(j3.Basis.Row(2).MulC(model.Descriptor(chain.J3).Length))
}
