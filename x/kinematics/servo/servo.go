// Package servo implements the boundary mapping from the core's native
// turns representation into the transport's absolute-angle device units,
// plus the base joint's rate limiter (spec.md §4.6). Grounded on the
// teacher's actuator layer (pkg/robot/actuator/servos/servos.go), which
// also sits at the normalise-then-send boundary between a pure model and
// a physical channel.
package servo

import (
	"math"

	kintypes "github.com/kinemach/arm5/x/kinematics/types"
)

// NumChannels is the ServoSink's channel count: 4 arm joints plus the
// passive wrist and gripper (spec.md §6).
const NumChannels = 6

// flipSign is the fixed per-joint sign table for [J6, J5, J4, J3]
// (spec.md §4.6).
var flipSign = [4]float64{+1, +1, -1, +1}

// deviceFullTurn is the device's native full-turn half-range: commanded
// values are mapped to [-1.8, 1.8].
const deviceFullTurn = 1.8

// ToDeviceUnits converts one driven joint's native angle (turns, neutral
// 1.0) into the transport's signed device units.
//
//	deg = (angle - 1) * 360, wrapped to [0, 360), then scaled into
//	[-1.8, 1.8] and sign-flipped per joint.
func ToDeviceUnits(jointIndex int, angleTurns float64) float64 {
	deg := (angleTurns - 1) * 360
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	units := (deg / 360) * (2 * deviceFullTurn)
	if units > deviceFullTurn {
		units -= 2 * deviceFullTurn
	}
	return units * flipSign[jointIndex]
}

// Limiter rate-limits the base joint's (J6) commanded device value across
// ticks: |Δ| ≤ Δt/1000s (spec.md §4.6). spec.md §9 flags it open whether
// J5/J4/J3 should also be limited; this implementation only limits J6, per
// the source's documented behaviour.
type Limiter struct {
	lastJ6    float64
	hasLastJ6 bool
}

// NewLimiter returns a limiter with no prior commanded value: the first
// Apply call passes its input through unchanged.
func NewLimiter() *Limiter {
	return &Limiter{}
}

// Apply bounds the change in j6Units since the previous call to at most
// deltaMs/1000 units, and remembers the result for the next call.
func (l *Limiter) Apply(j6Units float64, deltaMs float64) float64 {
	if !l.hasLastJ6 {
		l.lastJ6 = j6Units
		l.hasLastJ6 = true
		return j6Units
	}
	maxDelta := deltaMs / 1000.0
	delta := j6Units - l.lastJ6
	if delta > maxDelta {
		delta = maxDelta
	} else if delta < -maxDelta {
		delta = -maxDelta
	}
	l.lastJ6 = l.lastJ6 + delta
	return l.lastJ6
}

// Frame is one tick's 6-channel command ready for a ServoSink.
type Frame struct {
	Values     [NumChannels]float64
	DurationMs uint32
}

// Map converts the four driven joint angles plus the passive wrist/gripper
// accumulators into a servo Frame, applying the rate limiter to J6 and
// quarantining the whole tick if any input is non-finite (spec.md §7's
// NonFinite error kind).
func Map(limiter *Limiter, j6, j5, j4, j3, wrist, gripper, deltaMs float64, durationMs uint32) (Frame, error) {
	inputs := [6]float64{j6, j5, j4, j3, wrist, gripper}
	for _, v := range inputs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Frame{}, kintypes.ErrNonFinite
		}
	}

	var f Frame
	f.DurationMs = durationMs
	f.Values[0] = limiter.Apply(ToDeviceUnits(0, j6), deltaMs)
	f.Values[1] = ToDeviceUnits(1, j5)
	f.Values[2] = ToDeviceUnits(2, j4)
	f.Values[3] = ToDeviceUnits(3, j3)
	f.Values[4] = wrist
	f.Values[5] = gripper
	return f, nil
}
