package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinemach/arm5/x/math/vec"
)

func TestStream_NilDiscardsEverything(t *testing.T) {
	var s *Stream
	s.Line(vec.Zero, vec.Zero, ColorOK, "x")
	assert.Equal(t, Frame{}, s.Snapshot())
}

func TestStream_DisabledDiscardsEverything(t *testing.T) {
	s := New()
	s.Line(vec.Zero, vec.Zero, ColorOK, "x")
	assert.Empty(t, s.Snapshot().Lines)
}

func TestStream_EnabledCollectsPrimitives(t *testing.T) {
	s := New()
	s.Enabled = true
	s.Point(vec.New(1, 2, 3), ColorInfeasible, "tip")
	s.Label(vec.Zero, "note")

	snap := s.Snapshot()
	assert.Len(t, snap.Points, 1)
	assert.Len(t, snap.Labels, 1)

	s.Reset()
	assert.Empty(t, s.Snapshot().Points)
}
