package servo

import "errors"

// ErrRest is returned by a Sink that cannot reach its parked pose; callers
// treat it like any other transport failure (spec.md §7: TransportError is
// bubbled up, never retried by the core).
var ErrRest = errors.New("servo: rest failed")

// Sink is the consumed boundary collaborator that actually moves the
// physical servos (spec.md §6). The core never retries a failed call; the
// driver loop decides what to do with the error.
type Sink interface {
	// MoveAll commands all six channels to reach values over durationMs.
	MoveAll(values [NumChannels]float64, durationMs uint32) error
	// Rest commands the safe parked pose.
	Rest() error
}

// NullSink discards every command. Useful for dry runs and tests that
// exercise the driver loop without a physical arm attached.
type NullSink struct {
	LastValues [NumChannels]float64
	LastDur    uint32
	RestCalls  int
}

func (s *NullSink) MoveAll(values [NumChannels]float64, durationMs uint32) error {
	s.LastValues = values
	s.LastDur = durationMs
	return nil
}

func (s *NullSink) Rest() error {
	s.RestCalls++
	return nil
}
