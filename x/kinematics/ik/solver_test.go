package ik

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinemach/arm5/x/kinematics/chain"
	kintypes "github.com/kinemach/arm5/x/kinematics/types"
	"github.com/kinemach/arm5/x/math/vec"
)

func TestSolvePlanar_CloseToOriginBranch(t *testing.T) {
	model := chain.New()
	// Well inside L3's own reach, matching scenario 5's inner target.
	target := vec.New2(10, 60)

	got := SolvePlanar(model, target, DefaultPolicy)
	assert.Equal(t, "close-to-origin", got.Branches[0])
	assert.NotEqual(t, kintypes.Infeasible, got.Class)
}

func TestSolvePlanar_BeyondMaxReachIsInfeasible(t *testing.T) {
	model := chain.New()
	rMax := model.RMax()
	target := vec.New2(rMax*2, rMax*2)

	got := SolvePlanar(model, target, DefaultPolicy)
	assert.Equal(t, kintypes.Infeasible, got.Class)
}

func TestSolvePlanar_SolvedResultSatisfiesChainLengths(t *testing.T) {
	model := chain.New()
	l5 := model.Descriptor(chain.J5).Length
	l4 := model.Descriptor(chain.J4).Length
	l3 := model.Descriptor(chain.J3).Length

	targets := []vec.Vector2{
		vec.New2(200, 100),
		vec.New2(300, 50),
		vec.New2(50, 180),
	}

	for _, target := range targets {
		got := SolvePlanar(model, target, DefaultPolicy)
		if got.Class == kintypes.Infeasible {
			continue
		}
		assert.InDelta(t, l5, got.P4.Sub(got.P5).Magnitude(), closureTol)
		assert.InDelta(t, l4, got.P3.Sub(got.P4).Magnitude(), closureTol)
		assert.InDelta(t, l3, got.Tip.Sub(got.P3).Magnitude(), closureTol)
	}
}
