// Package loops defines the quarter-arc tiling domain: four tile
// rotations that must meet their neighbors without joining the same
// face pair.
package loops

import (
	"strings"

	"github.com/hailam/wavespace/internal/space"
)

// StateCount is the number of tile rotations.
const StateCount = 4

// Rotations 0..3 place the quarter arc in one corner of the tile. A
// rotation connects to a side when its arc touches that side.
func connectsLeft(s space.State) bool  { return s == 0 || s == 1 }
func connectsRight(s space.State) bool { return s == 2 || s == 3 }
func connectsUp(s space.State) bool    { return s == 0 || s == 3 }
func connectsDown(s space.State) bool  { return s == 1 || s == 2 }

// Scene is a grid of arc tiles over a planar space.
type Scene struct {
	*space.Planar
}

// NewScene creates a fully unconstrained scene of the given size.
func NewScene(width, height int) *Scene {
	return &Scene{space.NewPlanar(StateCount, width, height, propagate)}
}

// propagate forbids the neighbor rotations that break face parity: two
// tiles agree across a face when both arcs reach it or neither does.
func propagate(s *space.Planar, index space.Index) bool {
	x, y := index.X, index.Y
	state := s.Get(index).State()
	if x > 0 {
		left := space.Index{X: x - 1, Y: y}
		if connectsLeft(state) {
			// Our arc reaches the face, so the left tile's must too.
			if !s.Remove(left, 0, 1) {
				return false
			}
		} else if !s.Remove(left, 2, 3) {
			return false
		}
	}
	if x < s.Width()-1 {
		right := space.Index{X: x + 1, Y: y}
		if connectsRight(state) {
			if !s.Remove(right, 2, 3) {
				return false
			}
		} else if !s.Remove(right, 0, 1) {
			return false
		}
	}
	if y > 0 {
		up := space.Index{X: x, Y: y - 1}
		if connectsUp(state) {
			if !s.Remove(up, 0, 3) {
				return false
			}
		} else if !s.Remove(up, 1, 2) {
			return false
		}
	}
	if y < s.Height()-1 {
		down := space.Index{X: x, Y: y + 1}
		if connectsDown(state) {
			if !s.Remove(down, 1, 2) {
				return false
			}
		} else if !s.Remove(down, 0, 3) {
			return false
		}
	}
	return true
}

// IsValid reports whether every tile is solved and every shared face
// keeps parity: adjacent arcs either meet at it or both avoid it.
func (sc *Scene) IsValid() bool {
	for y := 0; y < sc.Height(); y++ {
		for x := 0; x < sc.Width(); x++ {
			position := sc.Get(space.Index{X: x, Y: y})
			if !position.IsSolved() {
				return false
			}
			state := position.State()
			if x < sc.Width()-1 {
				right := sc.Get(space.Index{X: x + 1, Y: y})
				if !right.IsSolved() || connectsRight(state) != connectsLeft(right.State()) {
					return false
				}
			}
			if y < sc.Height()-1 {
				down := sc.Get(space.Index{X: x, Y: y + 1})
				if !down.IsSolved() || connectsDown(state) != connectsUp(down.State()) {
					return false
				}
			}
		}
	}
	return true
}

// String renders solved rotations as digits 1-4, blanks otherwise.
func (sc *Scene) String() string {
	rows := make([]string, sc.Height())
	for y := 0; y < sc.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < sc.Width(); x++ {
			sb.WriteString(sc.Get(space.Index{X: x, Y: y}).String())
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
