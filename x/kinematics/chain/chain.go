// Package chain describes the static five-joint manipulator chain: parent
// links, rotation axes, lengths and the two named lateral-offset
// exceptions (spec.md §3, §4.1). It is the parent-first array-of-descriptors
// representation spec.md §9 calls for, grounded on the teacher's
// joints/planar Config (immutable per-joint geometry struct with a Limit
// helper) generalised from a flat N-link arm to this specific five-joint
// tree.
package chain

import "github.com/kinemach/arm5/x/math/vec"

// JointID indexes the five joints in parent-first order, matching
// spec.md §3's state-vector ordering [Base, J6, J5, J4, J3].
type JointID int

const (
	Base JointID = iota
	J6
	J5
	J4
	J3

	NumJoints = int(J3) + 1
)

func (id JointID) String() string {
	switch id {
	case Base:
		return "Base"
	case J6:
		return "J6"
	case J5:
		return "J5"
	case J4:
		return "J4"
	case J3:
		return "J3"
	default:
		return "?"
	}
}

// noParent is the sentinel used by Base, the chain's root.
const noParent = JointID(-1)

// Joint is the immutable, construction-time descriptor of a single joint.
type Joint struct {
	ID               JointID
	Parent           JointID // noParent for the root
	AxisOfRotation   vec.Vector3
	InitialDirection vec.Vector3
	Length           float64
}

// HasParent reports whether this joint is not the chain root.
func (j Joint) HasParent() bool { return j.Parent != noParent }

// Limits are the operator-facing bounds for a driven joint's angle, in
// turns (1.0 = 360°). The Model stores an entry for Base as well, though
// Base is a passive riser.
type Limits struct {
	Min float64
	Max float64
}

// Clamp bounds a in [l.Min, l.Max].
func (l Limits) Clamp(a float64) float64 {
	switch {
	case a < l.Min:
		return l.Min
	case a > l.Max:
		return l.Max
	default:
		return a
	}
}

// DefaultLimits is the operator range from spec.md §3: ±0.370 turns
// (±133.2°) around the neutral value 1.0 turns.
var DefaultLimits = Limits{Min: 0.630, Max: 1.370}

// Model is the static description of all five joints plus the per-joint
// operator limits. Descriptors are set once at construction and never
// mutated; only JointState (angle, per tick) varies.
type Model struct {
	joints [NumJoints]Joint
	limits [NumJoints]Limits
}

// Seed geometry (spec.md §8's "seed test data for FK"): lengths in
// millimetres, lateral offsets (2.54, 0, L_base) at Base→J6 and
// -2.54 along J5's rotated local Y at J6→J5.
const (
	LBase = 46.19
	LJ6   = 35.98
	LJ5   = 98
	LJ4   = 96
	LJ3   = 150

	// BaseLateralX is the constant riser offset's X component
	// (spec.md §3: "[2.54, 0, length]").
	BaseLateralX = 2.54

	// J5LateralOffsetSign resolves spec.md §9's open question: the source
	// revisions disagree on the sign of J5's extra lateral offset. This
	// module assumes -2.54, per spec.md §4.1/§4.2, and surfaces the sign
	// here so a physical-measurement correction is a one-line change.
	J5LateralOffsetSign = -1.0
	J5LateralMagnitude  = 2.54
)

// Lengths is the overridable subset of the chain's geometry: each joint's
// link length. Zero entries are not special-cased by New/NewWithLengths
// callers that want partial overrides should start from DefaultLengths.
type Lengths struct {
	Base, J6, J5, J4, J3 float64
}

// DefaultLengths is the seed geometry from spec.md §8.
var DefaultLengths = Lengths{Base: LBase, J6: LJ6, J5: LJ5, J4: LJ4, J3: LJ3}

// New builds the standard five-joint chain with the seed geometry and
// DefaultLimits stored for every joint, Base included.
func New() *Model {
	return NewWithLengths(DefaultLengths)
}

// NewWithLengths builds the chain using l in place of the package
// defaults, e.g. after loading a physical-measurement override from
// config. All joints get the default operator limits.
func NewWithLengths(l Lengths) *Model {
	m := &Model{
		joints: [NumJoints]Joint{
			Base: {ID: Base, Parent: noParent, AxisOfRotation: vec.New(0, 0, 1), InitialDirection: vec.New(0, 0, 1), Length: l.Base},
			J6:   {ID: J6, Parent: Base, AxisOfRotation: vec.New(0, 0, 1), InitialDirection: vec.New(0, 0, 1), Length: l.J6},
			J5:   {ID: J5, Parent: J6, AxisOfRotation: vec.New(0, 1, 0), InitialDirection: vec.New(0, 0, 1), Length: l.J5},
			J4:   {ID: J4, Parent: J5, AxisOfRotation: vec.New(0, 1, 0), InitialDirection: vec.New(0, 0, 1), Length: l.J4},
			J3:   {ID: J3, Parent: J4, AxisOfRotation: vec.New(0, 1, 0), InitialDirection: vec.New(0, 0, 1), Length: l.J3},
		},
	}
	for i := range m.limits {
		m.limits[i] = DefaultLimits
	}
	return m
}

// SetLimits overrides the operator angle limits for one joint.
func (m *Model) SetLimits(id JointID, l Limits) {
	m.limits[id] = l
}

// Descriptor returns the immutable joint descriptor for id.
func (m *Model) Descriptor(id JointID) Joint {
	return m.joints[id]
}

// Limits returns the operator angle limits for id.
func (m *Model) Limits(id JointID) Limits {
	return m.limits[id]
}

// RMax is the chain's total geometric reach: the sum of the J5, J4, J3
// link lengths (spec.md §4.1).
func (m *Model) RMax() float64 {
	return m.joints[J5].Length + m.joints[J4].Length + m.joints[J3].Length
}

// RMin is |L5 − L4 − L3|, the lower bound of the reach range stated in
// spec.md §8 invariant 3. The planar solver's feasibility classification
// does not consult it.
func (m *Model) RMin() float64 {
	l5, l4, l3 := m.joints[J5].Length, m.joints[J4].Length, m.joints[J3].Length
	r := l5 - l4 - l3
	if r < 0 {
		r = -r
	}
	return r
}

// State is the five-entry joint-angle vector, in turns, indexed
// [Base, J6, J5, J4, J3]. Base is a passive riser; only J6, J5, J4, J3 are
// driven by the IK solver or operator overrides.
type State [NumJoints]float64

// Neutral returns the chain's resting pose: every driven joint at 1.0
// turns (the neutral angle spec.md §3 centres the operator range on).
func Neutral() State {
	return State{Base: 0, J6: 1.0, J5: 1.0, J4: 1.0, J3: 1.0}
}

// IsFinite reports whether every entry is free of NaN/Inf, per spec.md §7's
// NonFinite quarantine.
func (s State) IsFinite() bool {
	for _, a := range s {
		if a != a || a > 1e300 || a < -1e300 { // NaN / overflow guard without importing math twice
			return false
		}
	}
	return true
}
