package space

import (
	"fmt"
	"math/bits"
)

// State names a single candidate value a position may take.
type State uint8

// NoState is returned by set queries that find nothing.
const NoState State = 0xFF

// MaxStates is the largest supported state universe.
const MaxStates = 16

// StateSet represents a candidate set as a 16-bit board where each bit
// corresponds to a state. Bit 0 = state 0, bit 15 = state 15.
type StateSet uint16

// FullSet returns a set containing every state below count.
func FullSet(count int) StateSet {
	return StateSet(1<<count) - 1
}

// SingleSet returns a set containing only the given state.
func SingleSet(s State) StateSet {
	return 1 << s
}

// Set sets the bit for the given state.
func (ss StateSet) Set(s State) StateSet {
	return ss | (1 << s)
}

// Clear clears the bit for the given state.
func (ss StateSet) Clear(s State) StateSet {
	return ss &^ (1 << s)
}

// IsSet returns true if the bit for the given state is set.
func (ss StateSet) IsSet(s State) bool {
	return ss&(1<<s) != 0
}

// PopCount returns the number of set bits (population count).
func (ss StateSet) PopCount() int {
	return bits.OnesCount16(uint16(ss))
}

// LSB returns the lowest set state.
func (ss StateSet) LSB() State {
	if ss == 0 {
		return NoState
	}
	return State(bits.TrailingZeros16(uint16(ss)))
}

// PopLSB removes and returns the lowest set state.
func (ss *StateSet) PopLSB() State {
	s := ss.LSB()
	*ss &= *ss - 1 // Clear the LSB
	return s
}

// Empty returns true if no bits are set.
func (ss StateSet) Empty() bool {
	return ss == 0
}

// ForEach calls the function for each set state in ascending order.
func (ss StateSet) ForEach(f func(State)) {
	for ss != 0 {
		f(ss.PopLSB())
	}
}

// States returns a slice of all set states in ascending order.
func (ss StateSet) States() []State {
	states := make([]State, 0, ss.PopCount())
	for ss != 0 {
		states = append(states, ss.PopLSB())
	}
	return states
}

// String returns a visual representation of the state set.
func (ss StateSet) String() string {
	s := "{"
	for v := ss; v != 0; {
		s += fmt.Sprintf("%d", v.PopLSB())
		if v != 0 {
			s += " "
		}
	}
	return s + "}"
}
