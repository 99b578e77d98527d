package mat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinemach/arm5/x/math/vec"
)

func TestIdentity_Orthonormal(t *testing.T) {
	assert.True(t, Identity().Orthonormal(1e-9))
}

func TestRotateAboutAxis_Z90(t *testing.T) {
	got := RotateAboutAxis(vec.New(1, 0, 0), vec.New(0, 0, 1), math.Pi/2)
	assert.InDelta(t, 0.0, got.X(), 1e-9)
	assert.InDelta(t, 1.0, got.Y(), 1e-9)
	assert.InDelta(t, 0.0, got.Z(), 1e-9)
}

func TestRotateAboutAxis_PreservesLength(t *testing.T) {
	tests := []struct {
		name  string
		v     vec.Vector3
		axis  vec.Vector3
		angle float64
	}{
		{"X about Y by 30deg", vec.New(1, 0, 0), vec.New(0, 1, 0), math.Pi / 6},
		{"arbitrary about Z", vec.New(2, 3, 0), vec.New(0, 0, 1), 1.234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateAboutAxis(tt.v, tt.axis, tt.angle)
			assert.InDelta(t, tt.v.Magnitude(), got.Magnitude(), 1e-9)
		})
	}
}

func TestMatrix3_SetRowIsImmutableCopy(t *testing.T) {
	m := Identity()
	m2 := m.SetRow(0, vec.New(9, 9, 9))
	assert.Equal(t, vec.New(1, 0, 0), m.Row(0))
	assert.Equal(t, vec.New(9, 9, 9), m2.Row(0))
}

func TestOrthonormal_DetectsNonUnitRow(t *testing.T) {
	m := Identity().SetRow(1, vec.New(0, 2, 0))
	assert.False(t, m.Orthonormal(1e-9))
}
