// Package space implements the cell, grid, and propagation bookkeeping
// that the solver searches over.
package space

// Position is a cell holding the set of states it could still take.
// Narrowing is monotone: no operation ever re-adds a removed state.
// Backtracking restores state by discarding a copy, never by un-removal.
type Position struct {
	set StateSet
}

// NewPosition creates an unconstrained position over a universe of the
// given size.
func NewPosition(count int) Position {
	return Position{set: FullSet(count)}
}

// Count returns the number of states this position could be in.
func (p *Position) Count() int {
	return p.set.PopCount()
}

// IsSolved returns true if the position can only be in one state.
func (p *Position) IsSolved() bool {
	return p.set.PopCount() == 1
}

// Has returns true if the position can be in the given state.
func (p *Position) Has(s State) bool {
	return p.set.IsSet(s)
}

// Remove removes the given states from the position. States that are
// already absent are ignored. The result may be empty; emptiness is
// signaled upward by the space layer, not here.
func (p *Position) Remove(states ...State) {
	for _, s := range states {
		p.set = p.set.Clear(s)
	}
}

// Solve removes all but the given state from the position. If the state
// was not a candidate the position becomes empty and IsSolved reports
// false; the caller must treat that as a contradiction.
func (p *Position) Solve(s State) {
	p.set &= SingleSet(s)
}

// State returns the single remaining state. Calling it on an unsolved
// position is a programmer error.
func (p *Position) State() State {
	if !p.IsSolved() {
		panic("space: State called on unsolved position")
	}
	return p.set.LSB()
}

// States returns all current candidates in ascending order. The slice is
// a snapshot and stays valid across later narrowing.
func (p *Position) States() []State {
	return p.set.States()
}

// ForEach calls the function for each current candidate in ascending order.
func (p *Position) ForEach(f func(State)) {
	p.set.ForEach(f)
}

// Copy returns an independent copy of this position.
func (p *Position) Copy() Position {
	return Position{set: p.set}
}

// String renders the sole candidate one-based, or a blank when unsolved.
func (p *Position) String() string {
	if !p.IsSolved() {
		return " "
	}
	return string(rune('1' + p.set.LSB()))
}
