package fk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinemach/arm5/x/kinematics/chain"
)

func TestPropagate_NeutralPoseMatchesSeedGeometry(t *testing.T) {
	model := chain.New()
	frames, err := Propagate(model, chain.Neutral())
	require.NoError(t, err)

	j6 := frames[chain.J6].Origin
	assert.InDelta(t, 2.54, j6.X(), 1e-6)
	assert.InDelta(t, 0.0, j6.Y(), 1e-6)
	assert.InDelta(t, chain.LBase, j6.Z(), 1e-6)

	j5 := frames[chain.J5].Origin
	assert.InDelta(t, 5.08, j5.X(), 1e-6)
	assert.InDelta(t, 0.0, j5.Y(), 1e-6)
	assert.InDelta(t, chain.LBase+chain.LJ6, j5.Z(), 1e-6)

	tip := EndEffector(model, frames)
	assert.InDelta(t, 5.08, tip.X(), 1e-6)
	assert.InDelta(t, chain.LBase+chain.LJ6+chain.LJ5+chain.LJ4+chain.LJ3, tip.Z(), 1e-6)
}

func TestPropagate_BasisOrthonormal(t *testing.T) {
	model := chain.New()
	states := []chain.State{
		chain.Neutral(),
		{Base: 0, J6: 1.25, J5: 0.9, J4: 1.1, J3: 0.75},
		{Base: 0, J6: 0.630, J5: 1.370, J4: 0.630, J3: 1.370},
	}

	for _, s := range states {
		frames, err := Propagate(model, s)
		require.NoError(t, err)
		for _, id := range [...]chain.JointID{chain.J6, chain.J5, chain.J4, chain.J3} {
			assert.Truef(t, frames[id].Basis.Orthonormal(1e-9), "joint %v basis not orthonormal for state %v", id, s)
		}
	}
}

func TestPropagate_ChainClosure(t *testing.T) {
	model := chain.New()
	s := chain.State{Base: 0, J6: 1.1, J5: 0.95, J4: 1.05, J3: 0.9}
	frames, err := Propagate(model, s)
	require.NoError(t, err)

	// J5->J4 and J4->J3 carry no lateral offset, so consecutive origin
	// distance must equal the parent link length exactly.
	d54 := frames[chain.J4].Origin.Distance(frames[chain.J5].Origin)
	assert.InDelta(t, chain.LJ5, d54, 1e-6)

	d43 := frames[chain.J3].Origin.Distance(frames[chain.J4].Origin)
	assert.InDelta(t, chain.LJ4, d43, 1e-6)
}

func TestPropagate_J6YawSweepsJ5sOwnOffsetButNotBasesRiser(t *testing.T) {
	model := chain.New()
	s := chain.Neutral()
	s[chain.J6] = 1.25 // 450 degrees of raw angle, i.e. 90 degrees net

	frames, err := Propagate(model, s)
	require.NoError(t, err)

	j5 := frames[chain.J5].Origin
	// Base's [2.54,0,L_base] contribution is fixed in the world frame and
	// does not sweep with J6; J5's own -2.54*local-Y offset does, since it
	// is computed from J5's own basis, which inherits J6's rotation.
	assert.InDelta(t, chain.BaseLateralX, j5.X(), 1e-6)
	assert.InDelta(t, chain.J5LateralMagnitude, j5.Y(), 1e-6)
}
