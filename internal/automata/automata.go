// Package automata defines reverse reconstruction of Rule-30 cellular
// automaton histories. The state universe is 0 and 1 for cell values
// plus four marker states, one per window role, whose removal records
// that the cell cannot be pinned under that role.
package automata

import "github.com/hailam/wavespace/internal/space"

// StateCount covers the binary states plus the four role markers 2..5.
const StateCount = 6

// rule30 lists each 3-to-1 predecessor window as (left, center, right,
// successor).
var rule30 = [8][4]space.State{
	{1, 1, 1, 0},
	{1, 1, 0, 0},
	{1, 0, 1, 0},
	{1, 0, 0, 1},
	{0, 1, 1, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{0, 0, 0, 0},
}

// roleOffsets places a cell in each of the four roles of a window: the
// three predecessors on the row above and the successor itself.
var roleOffsets = [4]space.Index{
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 0, Y: 0},
}

// Pin outcomes accumulated across compatible rule rows.
const (
	pinUnset = -1 // No row has implied a value yet
	pinMixed = -2 // Rows disagree; the cell must stay unpinned
)

// Scene is a grid of automaton cells over a planar space.
type Scene struct {
	*space.Planar
}

// NewScene creates a fully unconstrained scene of the given size.
func NewScene(width, height int) *Scene {
	return &Scene{space.NewPlanar(StateCount, width, height, propagate)}
}

// SeedEdge marks an index as the initial branching frontier. Most of
// the grid is unconstrained at start, so a seed keeps reconstruction
// growing outward from one point.
func (sc *Scene) SeedEdge(index space.Index) {
	sc.MarkEdge(index)
}

func (sc *Scene) inBounds(index space.Index) bool {
	return index.X >= 0 && index.X < sc.Width() && index.Y >= 0 && index.Y < sc.Height()
}

func propagate(s *space.Planar, index space.Index) bool {
	sc := Scene{s}
	if s.Get(index).State() > 1 {
		// Narrowed down to a marker state; no cell value fits here.
		return false
	}
	outside := space.NewPosition(StateCount)
	for _, offset := range roleOffsets {
		var indices [4]space.Index
		var known [4]int
		for i, off := range roleOffsets {
			indices[i] = space.Index{
				X: index.X + off.X - offset.X,
				Y: index.Y + off.Y - offset.Y,
			}
			position := &outside
			if sc.inBounds(indices[i]) {
				position = s.Get(indices[i])
			}
			known[i] = pinUnset
			if position.IsSolved() {
				known[i] = int(position.State())
			}
		}

		// Union the implied cell values across every rule row that is
		// compatible with the known cells.
		pins := [4]int{pinUnset, pinUnset, pinUnset, pinUnset}
		found := false
		for _, rule := range rule30 {
			matches := true
			for i, part := range rule {
				if known[i] != pinUnset && known[i] != int(part) {
					matches = false
					break
				}
			}
			if !matches {
				continue
			}
			found = true
			for i, part := range rule {
				if known[i] != pinUnset {
					continue
				}
				switch pins[i] {
				case pinUnset, int(part):
					pins[i] = int(part)
				default:
					pins[i] = pinMixed
				}
			}
		}
		if !found {
			return false
		}

		for i, pin := range pins {
			if !sc.inBounds(indices[i]) {
				continue
			}
			switch pin {
			case 0, 1:
				if !s.Solve(indices[i], space.State(pin)) {
					return false
				}
			case pinMixed:
				if !s.Remove(indices[i], space.State(2+i)) {
					return false
				}
			}
		}
	}
	return true
}

// IsValid reports whether every cell is solved to a binary value and
// every fully interior window agrees with some Rule-30 row.
func (sc *Scene) IsValid() bool {
	valid := true
	sc.ForEach(func(_ space.Index, position *space.Position) bool {
		valid = position.IsSolved() && position.State() <= 1
		return valid
	})
	if !valid {
		return false
	}
	for y := 1; y < sc.Height(); y++ {
		for x := 1; x < sc.Width()-1; x++ {
			window := [4]space.State{
				sc.Get(space.Index{X: x - 1, Y: y - 1}).State(),
				sc.Get(space.Index{X: x, Y: y - 1}).State(),
				sc.Get(space.Index{X: x + 1, Y: y - 1}).State(),
				sc.Get(space.Index{X: x, Y: y}).State(),
			}
			if window != rule30[successorIndex(window)] {
				return false
			}
		}
	}
	return true
}

// successorIndex returns the rule30 row selected by the three
// predecessor cells of the window.
func successorIndex(window [4]space.State) int {
	return 7 - (int(window[0])<<2 | int(window[1])<<1 | int(window[2]))
}
