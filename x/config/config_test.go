package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinemach/arm5/x/kinematics/chain"
)

const sampleYAML = `
lengths:
  base: 46.19
  j6: 35.98
  j5: 98
  j4: 96
  j3: 150
limits:
  j6:
    min: 0.7
    max: 1.3
`

func TestLoader_LoadFromReader(t *testing.T) {
	l := NewLoader()
	g, err := l.LoadFromReader(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.InDelta(t, 98, g.Lengths.J5, 1e-9)
	assert.InDelta(t, 0.7, g.Limits["j6"].Min, 1e-9)
}

func TestApplyTo_OverridesLengthsAndLimits(t *testing.T) {
	l := NewLoader()
	g, err := l.LoadFromReader(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	m := ApplyTo(g)
	assert.InDelta(t, 98, m.Descriptor(chain.J5).Length, 1e-9)
	assert.InDelta(t, 0.7, m.Limits(chain.J6).Min, 1e-9)
}

func TestApplyTo_NilFallsBackToDefaults(t *testing.T) {
	m := ApplyTo(nil)
	assert.InDelta(t, chain.LJ5, m.Descriptor(chain.J5).Length, 1e-9)
}
