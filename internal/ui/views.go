package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/wavespace/internal/space"
	"github.com/hailam/wavespace/internal/sudoku"
)

// Shared view colors
var (
	fillColor     = color.RGBA{255, 255, 255, 255}
	lineColor     = color.RGBA{0, 0, 0, 255}
	textColor     = color.RGBA{0, 0, 0, 255}
	ambiguousGray = color.RGBA{128, 128, 128, 255}
	edgeOrange    = color.RGBA{255, 128, 0, 255}
)

// View draws snapshots of a solving space.
type View interface {
	// Size returns the pixel size of the drawing area.
	Size() (int, int)

	// Draw renders the snapshot. The snapshot is a deep copy owned by
	// the UI; its edge set marks the branching frontier.
	Draw(screen *ebiten.Image, snapshot space.Space)
}

// onEdge reports whether the index is on the snapshot's frontier.
func onEdge(snapshot space.Space, index space.Index) bool {
	if planar, ok := snapshot.(*space.Planar); ok {
		return planar.OnEdge(index)
	}
	for _, e := range snapshot.Edge() {
		if e == index {
			return true
		}
	}
	return false
}

// SudokuView draws a 9×9 digit grid with small candidate marks in
// unsolved cells.
type SudokuView struct {
	cellSize int
}

// NewSudokuView creates a sudoku view.
func NewSudokuView(cellSize int) *SudokuView {
	return &SudokuView{cellSize: cellSize}
}

// Size returns the pixel size of the drawing area.
func (v *SudokuView) Size() (int, int) {
	return sudoku.Count * v.cellSize, sudoku.Count * v.cellSize
}

// Draw renders the snapshot.
func (v *SudokuView) Draw(screen *ebiten.Image, snapshot space.Space) {
	w, h := v.Size()
	screen.Fill(fillColor)

	// Grid lines, thick on block boundaries
	for i := 0; i <= sudoku.Count; i++ {
		width := float32(1)
		if i%sudoku.Sub == 0 {
			width = 3
		}
		p := float32(i * v.cellSize)
		vector.StrokeLine(screen, p, 0, p, float32(h), width, lineColor, true)
		vector.StrokeLine(screen, 0, p, float32(w), p, width, lineColor, true)
	}

	digitFace := boldFaceWithSize(float64(v.cellSize) * 3 / 4)
	markFace := faceWithSize(float64(v.cellSize) / 4)
	snapshot.ForEach(func(index space.Index, position *space.Position) bool {
		cx := float64(index.X*v.cellSize) + float64(v.cellSize)/2
		cy := float64(index.Y*v.cellSize) + float64(v.cellSize)/2
		if position.IsSolved() {
			drawCentered(screen, fmt.Sprintf("%d", position.State()+1), digitFace, cx, cy, textColor)
			return true
		}
		c := ambiguousGray
		if onEdge(snapshot, index) {
			c = edgeOrange
		}
		position.ForEach(func(state space.State) {
			sub := int(state)
			mx := float64(index.X*v.cellSize) + (float64(sub%sudoku.Sub)+0.5)*float64(v.cellSize)/sudoku.Sub
			my := float64(index.Y*v.cellSize) + (float64(sub/sudoku.Sub)+0.5)*float64(v.cellSize)/sudoku.Sub
			drawCentered(screen, fmt.Sprintf("%d", state+1), markFace, mx, my, c)
		})
		return true
	})
}

// LoopsView draws every remaining arc rotation of every tile: black
// when solved, orange on the frontier, gray otherwise.
type LoopsView struct {
	sprites *SpriteManager
	width   int
	height  int
}

// NewLoopsView creates a loops view for a grid of the given size.
func NewLoopsView(width, height, cellSize int) *LoopsView {
	return &LoopsView{
		sprites: NewSpriteManager(cellSize),
		width:   width,
		height:  height,
	}
}

// Size returns the pixel size of the drawing area.
func (v *LoopsView) Size() (int, int) {
	return v.width * v.sprites.Size(), v.height * v.sprites.Size()
}

// Draw renders the snapshot.
func (v *LoopsView) Draw(screen *ebiten.Image, snapshot space.Space) {
	screen.Fill(fillColor)
	cell := v.sprites.Size()
	snapshot.ForEach(func(index space.Index, position *space.Position) bool {
		var r, g, b float32 // Solved tiles draw black
		if !position.IsSolved() {
			if onEdge(snapshot, index) {
				r, g, b = 1, 0.5, 0
			} else {
				r, g, b = 0.5, 0.5, 0.5
			}
		}
		position.ForEach(func(state space.State) {
			v.sprites.DrawTileAt(screen, state, index.X*cell, index.Y*cell, r, g, b)
		})
		return true
	})
}

// AutomataView draws one filled square per cell: white for 0, black
// for 1, gray while ambiguous, orange on the frontier.
type AutomataView struct {
	width    int
	height   int
	cellSize int
}

// NewAutomataView creates an automata view for a grid of the given size.
func NewAutomataView(width, height, cellSize int) *AutomataView {
	return &AutomataView{width: width, height: height, cellSize: cellSize}
}

// Size returns the pixel size of the drawing area.
func (v *AutomataView) Size() (int, int) {
	return v.width * v.cellSize, v.height * v.cellSize
}

// Draw renders the snapshot.
func (v *AutomataView) Draw(screen *ebiten.Image, snapshot space.Space) {
	screen.Fill(fillColor)
	snapshot.ForEach(func(index space.Index, position *space.Position) bool {
		var c color.RGBA
		switch {
		case onEdge(snapshot, index):
			c = edgeOrange
		case !position.IsSolved():
			c = ambiguousGray
		case position.State() == 0:
			c = fillColor
		default:
			c = lineColor
		}
		vector.DrawFilledRect(screen,
			float32(index.X*v.cellSize), float32(index.Y*v.cellSize),
			float32(v.cellSize), float32(v.cellSize), c, false)
		return true
	})
}

// drawCentered draws text centered on the given point.
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.RGBA) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
