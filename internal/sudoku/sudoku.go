// Package sudoku defines the 9×9 latin-square domain with 3×3 blocks.
package sudoku

import (
	"fmt"
	"os"
	"strings"

	"github.com/hailam/wavespace/internal/space"
)

// Board dimensions
const (
	Count = 9 // Digits per row, column, and block
	Sub   = 3 // Block size
)

// Table is a sudoku grid over a planar space. State s represents the
// digit s+1.
type Table struct {
	*space.Planar
}

// NewTable creates an empty table with every cell unconstrained.
func NewTable() *Table {
	return &Table{space.NewPlanar(Count, Count, Count, propagate)}
}

// Load seeds givens from fixture text: one row per line, a digit 1-9 is
// a given, a space is a blank. Ragged or over-long rows are tolerated;
// characters outside the grid are ignored. A given that contradicts an
// earlier given in the same cell returns an error; conflicts between
// different cells are not checked here and surface during propagation.
func (t *Table) Load(text string) error {
	for y, row := range strings.Split(text, "\n") {
		if y >= Count {
			break
		}
		for x, c := range row {
			if x >= Count {
				break
			}
			if c == ' ' {
				continue
			}
			if c < '1' || c > '9' {
				return fmt.Errorf("invalid cell character %q at %d,%d", c, x, y)
			}
			if !t.Solve(space.Index{X: x, Y: y}, space.State(c-'1')) {
				return fmt.Errorf("conflicting given %c at %d,%d", c, x, y)
			}
		}
	}
	return nil
}

// LoadFile reads a fixture file and loads it.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return t.Load(string(data))
}

// propagate removes the solved digit at index from every other cell in
// its row, column, and 3×3 block.
func propagate(s *space.Planar, index space.Index) bool {
	x, y := index.X, index.Y
	state := s.Get(index).State()
	for xx := 0; xx < Count; xx++ {
		if xx != x && !s.Remove(space.Index{X: xx, Y: y}, state) {
			return false
		}
	}
	for yy := 0; yy < Count; yy++ {
		if yy != y && !s.Remove(space.Index{X: x, Y: yy}, state) {
			return false
		}
	}
	blockX, blockY := x/Sub*Sub, y/Sub*Sub
	for xx := blockX; xx < blockX+Sub; xx++ {
		for yy := blockY; yy < blockY+Sub; yy++ {
			if xx != x && yy != y && !s.Remove(space.Index{X: xx, Y: yy}, state) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether the table is fully solved and every row,
// column, and block holds each digit exactly once.
func (t *Table) IsValid() bool {
	solved := true
	t.ForEach(func(_ space.Index, position *space.Position) bool {
		solved = position.IsSolved()
		return solved
	})
	if !solved {
		return false
	}
	full := space.FullSet(Count)
	for y := 0; y < Count; y++ {
		var row space.StateSet
		for x := 0; x < Count; x++ {
			row = row.Set(t.Get(space.Index{X: x, Y: y}).State())
		}
		if row != full {
			return false
		}
	}
	for x := 0; x < Count; x++ {
		var col space.StateSet
		for y := 0; y < Count; y++ {
			col = col.Set(t.Get(space.Index{X: x, Y: y}).State())
		}
		if col != full {
			return false
		}
	}
	for blockX := 0; blockX < Count; blockX += Sub {
		for blockY := 0; blockY < Count; blockY += Sub {
			var block space.StateSet
			for xx := 0; xx < Sub; xx++ {
				for yy := 0; yy < Sub; yy++ {
					block = block.Set(t.Get(space.Index{X: blockX + xx, Y: blockY + yy}).State())
				}
			}
			if block != full {
				return false
			}
		}
	}
	return true
}

// Row returns row y as a string of digits, blanks for unsolved cells.
func (t *Table) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < Count; x++ {
		sb.WriteString(t.Get(space.Index{X: x, Y: y}).String())
	}
	return sb.String()
}

// String renders the table in the fixture format.
func (t *Table) String() string {
	rows := make([]string, Count)
	for y := 0; y < Count; y++ {
		rows[y] = t.Row(y)
	}
	return strings.Join(rows, "\n")
}
