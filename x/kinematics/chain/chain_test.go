package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_RMax(t *testing.T) {
	m := New()
	assert.InDelta(t, LJ5+LJ4+LJ3, m.RMax(), 1e-9)
}

func TestModel_Descriptor(t *testing.T) {
	m := New()
	j5 := m.Descriptor(J5)
	assert.Equal(t, J6, j5.Parent)
	assert.InDelta(t, LJ5, j5.Length, 1e-9)
}

func TestNeutral_AllDrivenJointsAtOne(t *testing.T) {
	s := Neutral()
	assert.InDelta(t, 1.0, s[J6], 1e-9)
	assert.InDelta(t, 1.0, s[J5], 1e-9)
	assert.InDelta(t, 1.0, s[J4], 1e-9)
	assert.InDelta(t, 1.0, s[J3], 1e-9)
	assert.InDelta(t, 0.0, s[Base], 1e-9)
}

func TestState_IsFinite(t *testing.T) {
	assert.True(t, Neutral().IsFinite())
}

func TestNewWithLengths_Override(t *testing.T) {
	m := NewWithLengths(Lengths{Base: 1, J6: 2, J5: 3, J4: 4, J3: 5})
	assert.InDelta(t, 3+4+5, m.RMax(), 1e-9)
	assert.InDelta(t, 2, m.Descriptor(J6).Length, 1e-9)
}
