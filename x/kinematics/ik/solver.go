package ik

import (
	"math"

	"github.com/kinemach/arm5/x/kinematics/chain"
	kintypes "github.com/kinemach/arm5/x/kinematics/types"
	"github.com/kinemach/arm5/x/math/vec"
)

// closureTol is the 10-unit chain-length / tip-closure tolerance from
// spec.md §4.4's feasibility classification.
const closureTol = 10.0

// link is one entry of the inward-processing list: its own radius and the
// joint it determines.
type link struct {
	id JointID
	r  float64
}

// JointID aliases chain.JointID so solver call sites don't need both
// imports merely to label a point.
type JointID = chain.JointID

// Planar is the planar multi-link solver's result (spec.md §4.4).
type Planar struct {
	Class      kintypes.Classification
	P5, P4, P3 vec.Vector2 // P5 is always (0,0)
	Tip        vec.Vector2 // the planar target, echoed back
	Branches   [2]string   // posture label chosen for each generative step (P3 then P4)
}

// caseCount returns, for the step currently processing idx of total links,
// how many list entries (current plus not-yet-processed) remain — the
// gate spec.md §4.4 uses to admit the graded and default-clamp cases.
func caseCount(total, idx int) int {
	return total - idx
}

// candidate runs the two-circle construction plus posture-shaping policy
// for one step, returning the chosen mp, the perpendicular half-chord h,
// the posture label, and whether the raw (pre-clamp) rem already declares
// infeasibility.
func candidate(d, r, lRem float64, pol Policy, allowGraded bool) (mp, h float64, label string, overReach bool) {
	mpNatural := (d*d - r*r + lRem*lRem) / (2 * d)
	remNatural := d - mpNatural
	remExtend := pol.RemExtendFactor * r

	switch {
	case d < r:
		mp = d - (remExtend - (r - d))
		label = "close-to-origin"
	case remNatural < remExtend && lRem > d:
		mp = d - remExtend
		label = "center-of-gravity"
	case remNatural < 0 && lRem > d:
		mp = d
		label = "reduce-length"
	case allowGraded && remExtend <= remNatural && remNatural < pol.GradedUpperFactor*remExtend && lRem > d:
		v := (remNatural - remExtend) / (pol.GradedSpanFactor * r)
		if v > pol.BlendTrimThreshold {
			v = v - (v - pol.BlendTrim)
		}
		mp = d - (v*r + remExtend)
		label = "graded"
	case allowGraded:
		remMin := -pol.RemMinFactor * r
		remMax := pol.RemMaxFactor * r
		rem := remNatural
		if rem < remMin {
			rem = remMin
		} else if rem > remMax {
			rem = remMax
		}
		mp = d - rem
		label = "default-clamped"
		overReach = remNatural > remMax
	default:
		mp = mpNatural
		label = "natural"
		overReach = remNatural > pol.RemMaxFactor*r
	}

	hSq := r*r - (d-mp)*(d-mp)
	if hSq < 0 {
		overReach = true
		hSq = 0
	}
	h = math.Sqrt(hSq)
	return mp, h, label, overReach
}

// SolvePlanar places P4 and P3 given the planarized target and the
// chain's J5/J4/J3 link lengths, applying the posture-shaping policy from
// outermost (tip-adjacent) link inward (spec.md §4.4).
func SolvePlanar(model *chain.Model, target vec.Vector2, pol Policy) Planar {
	l5 := model.Descriptor(chain.J5).Length
	l4 := model.Descriptor(chain.J4).Length
	l3 := model.Descriptor(chain.J3).Length

	links := [3]link{{chain.J3, l3}, {chain.J4, l4}, {chain.J5, l5}}

	prev := target
	bad := false
	var labels [2]string
	var placed [2]vec.Vector2

	for i, lk := range links {
		d := prev.Magnitude()
		if d == 0 {
			// Target sits exactly at the origin; no azimuth to build a
			// perpendicular from. Treated as unreachable for this link.
			bad = true
			break
		}
		lRem := 0.0
		for j := i + 1; j < len(links); j++ {
			lRem += links[j].r
		}
		allowGraded := caseCount(len(links), i) >= 3

		mp, h, label, overReach := candidate(d, lk.r, lRem, pol, allowGraded)
		if overReach {
			bad = true
		}

		mag := prev.Normalized()
		perpAngle := math.Atan2(mag.Z(), mag.X()) - math.Pi/2
		perp := vec.New2(math.Cos(perpAngle), math.Sin(perpAngle))

		next := mag.MulC(mp).Add(perp.MulC(h))

		if math.Abs(next.Sub(prev).Magnitude()-lk.r) > closureTol {
			bad = true
		}

		if i < 2 {
			placed[i] = next
			labels[i] = label
		}
		prev = next
	}

	class := kintypes.Solved
	if bad {
		class = kintypes.Infeasible
	}

	return Planar{
		Class:    class,
		P5:       vec.New2(0, 0),
		P4:       placed[1],
		P3:       placed[0],
		Tip:      target,
		Branches: labels,
	}
}
