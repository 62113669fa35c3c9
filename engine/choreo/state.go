package choreo

import (
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/frostpine/garland/engine/gesture"
	kmath "github.com/frostpine/garland/engine/math"
)

// Mode is the process-wide display state. Exactly one value at any time;
// transitions happen only through State.Apply.
type Mode uint8

const (
	ModeTree Mode = iota
	ModeScatter
	ModeFocus
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "SCATTER"
	case ModeFocus:
		return "FOCUS"
	}
	return "TREE"
}

// State is the single piece of shared mutable choreography state: the
// current mode, the locked focus target (if any) and the latest pointer.
// It is an explicit value threaded through classifier → state machine →
// animator calls, never ambient package state. The hand-sample path is its
// only writer; the animator and camera rig only read it.
type State struct {
	Mode Mode

	// FocusID is an identity handle into the registry, uuid.Nil when no
	// focus target is held. A handle rather than a particle pointer, so
	// clearing focus can never dangle. Valid only while Mode is FOCUS.
	FocusID uuid.UUID

	// Pointer is the latest hand pointer in [-1,1] display space; it keeps
	// its last value when the hand disappears.
	Pointer     kmath.Vec2
	HandPresent bool
}

func NewState() *State {
	return &State{Mode: ModeTree}
}

// Apply consumes one classified hand sample and performs at most one mode
// transition. Returns true if the mode changed.
//
// Transition table: PINCH→FOCUS (locking one random photo particle if none
// is held; the lock is sticky across repeated PINCH samples), FIST→TREE,
// OPEN_PALM→SCATTER (both clear the focus lock), UNKNOWN→no-op. An absent
// sample is "no gesture evidence": the mode stays whatever it was.
func (s *State) Apply(res gesture.Result, reg *Registry, rng *rand.Rand) bool {
	if !res.Present {
		s.HandPresent = false
		return false
	}
	s.HandPresent = true
	s.Pointer = res.Pointer

	prev := s.Mode
	switch res.Gesture {
	case gesture.GesturePinch:
		// Lock the target before flipping the mode so a concurrent tick
		// can never observe FOCUS without its target.
		if s.FocusID == uuid.Nil {
			if p := reg.RandomPhoto(rng); p != nil {
				s.FocusID = p.ID
			}
		}
		s.Mode = ModeFocus
	case gesture.GestureFist:
		s.FocusID = uuid.Nil
		s.Mode = ModeTree
	case gesture.GestureOpenPalm:
		s.FocusID = uuid.Nil
		s.Mode = ModeScatter
	case gesture.GestureUnknown:
		// Dead zone between fist and open palm: hold the current mode so
		// the display cannot chatter at the threshold boundary.
	}
	return s.Mode != prev
}
