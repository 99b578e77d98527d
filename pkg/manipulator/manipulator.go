// Package manipulator is the driver loop that ties the kinematics core to
// operator input and a servo.Sink, per spec.md §5's tick pseudocode.
// Grounded on the teacher's cmd/manipulator/main.go interactive loop and
// pkg/robot/actuator driver pattern, adapted from a DNDM message-bus
// client into a direct in-process driver invoked once per tick.
package manipulator

import (
	"time"

	"github.com/kinemach/arm5/x/kinematics/chain"
	"github.com/kinemach/arm5/x/kinematics/debug"
	"github.com/kinemach/arm5/x/kinematics/fk"
	"github.com/kinemach/arm5/x/kinematics/ik"
	"github.com/kinemach/arm5/x/kinematics/servo"
	kintypes "github.com/kinemach/arm5/x/kinematics/types"
	"github.com/kinemach/arm5/x/logger"
	"github.com/kinemach/arm5/x/math/vec"
)

// axisDeadzone is the per-axis operator deadzone (spec.md §6).
const axisDeadzone = 0.2

// coordLim scales a per-tick axis step into millimetres (spec.md §6).
const coordLim = 500.0

// axisGain is the per-tick fraction of coordLim an axis at full deflection
// moves the target (spec.md §6: "target += axis * 0.01 * coordlim").
const axisGain = 0.01

// passiveGain is the per-tick accumulator rate for the wrist/gripper
// channels (spec.md §6).
const passiveGain = 0.05

// defaultMoveDurationMs is the duration passed to ServoSink.MoveAll for
// each tick's command.
const defaultMoveDurationMs = 50

// Input is one tick's operator sample (spec.md §6).
type Input struct {
	AxisX, AxisY, AxisZ float64 // each in [-1, 1]
	Wrist, Gripper      float64 // passive accumulator inputs, in [-1, 1]
}

func deadzone(v float64) float64 {
	if v > -axisDeadzone && v < axisDeadzone {
		return 0
	}
	return v
}

func saturate(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

// Manipulator owns the state retained between ticks: the last committed
// joint vector, the J6 rate limiter (which keeps the last commanded J6
// device value), the operator target and the passive wrist/gripper
// accumulators. No send time is stored; each Tick receives the elapsed
// interval as its dt argument.
type Manipulator struct {
	Model  *chain.Model
	Policy ik.Policy
	Sink   servo.Sink
	Debug  *debug.Stream

	target  vec.Vector3
	wrist   float64
	gripper float64

	lastJoints  chain.State
	lastFrames  fk.Frames
	limiter     *servo.Limiter
	initialized bool
}

// New builds a Manipulator at the chain's neutral pose, with the target
// seeded at the neutral pose's end effector so the first tick is a no-op
// reach.
func New(model *chain.Model, sink servo.Sink) *Manipulator {
	neutral := chain.Neutral()
	frames, err := fk.Propagate(model, neutral)
	m := &Manipulator{
		Model:      model,
		Policy:     ik.DefaultPolicy,
		Sink:       sink,
		Debug:      debug.New(),
		lastJoints: neutral,
		limiter:    servo.NewLimiter(),
	}
	if err == nil {
		m.lastFrames = frames
		m.target = fk.EndEffector(model, frames)
	}
	return m
}

// Tick runs one iteration of spec.md §5's loop: shape the operator input
// into an updated target, solve IK, propagate FK on success, and emit the
// result to the ServoSink. dt is the wall-clock interval since the
// previous tick.
func (m *Manipulator) Tick(in Input, dt time.Duration) error {
	m.Debug.Reset()

	ax, ay, az := deadzone(in.AxisX), deadzone(in.AxisY), deadzone(in.AxisZ)
	m.target = m.target.Add(vec.New(
		ax*axisGain*coordLim,
		ay*axisGain*coordLim,
		az*axisGain*coordLim,
	))

	m.wrist = saturate(m.wrist + passiveGain*in.Wrist)
	m.gripper = saturate(m.gripper + passiveGain*in.Gripper)

	result := ik.Compute(m.Model, m.lastFrames, m.lastJoints, m.target, m.Policy)

	switch result.Class {
	case kintypes.Infeasible:
		m.Debug.Point(m.target, debug.ColorInfeasible, "target")
		logger.Log.Debug().Msg("ik infeasible; holding last pose")
	default:
		frames, err := fk.Propagate(m.Model, result.Joints)
		if err != nil {
			return err
		}
		m.lastJoints = result.Joints
		m.lastFrames = frames
	}

	deltaMs := float64(dt.Milliseconds())
	frame, err := servo.Map(m.limiter,
		m.lastJoints[chain.J6], m.lastJoints[chain.J5], m.lastJoints[chain.J4], m.lastJoints[chain.J3],
		m.wrist, m.gripper, deltaMs, defaultMoveDurationMs)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("non-finite joint vector; skipping send")
		return nil
	}

	return m.Sink.MoveAll(frame.Values, frame.DurationMs)
}

// Rest commands the ServoSink to its safe parked pose.
func (m *Manipulator) Rest() error {
	return m.Sink.Rest()
}

// LastJoints returns the most recently committed joint state.
func (m *Manipulator) LastJoints() chain.State {
	return m.lastJoints
}

// Target returns the current operator target.
func (m *Manipulator) Target() vec.Vector3 {
	return m.target
}
