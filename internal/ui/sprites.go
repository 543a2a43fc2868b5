package ui

import (
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/wavespace/internal/space"
)

// tilePaths holds one quarter-arc path per rotation: rotation 0 is
// centered on the top-left corner joining the left and top faces, then
// counterclockwise through bottom-left, bottom-right, top-right.
var tilePaths = [4]string{
	`M50,0 A50,50 0 0 1 0,50`,
	`M0,50 A50,50 0 0 1 50,100`,
	`M50,100 A50,50 0 0 1 100,50`,
	`M100,50 A50,50 0 0 1 50,0`,
}

const tileSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<path d="%PATH%" fill="none" stroke="#ffffff" stroke-width="10" stroke-linecap="round"/></svg>`

// SpriteManager renders and caches the arc tile sprites. Sprites are
// rendered white and tinted at draw time.
type SpriteManager struct {
	tiles       [4]*ebiten.Image
	size        int     // Display size in pixels
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a sprite manager with tiles of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadTiles()
	return sm
}

// loadTiles rasterizes the four rotations from their SVG paths.
func (sm *SpriteManager) loadTiles() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for rotation, path := range tilePaths {
		svg := strings.Replace(tileSVG, "%PATH%", path, 1)

		icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
		if err != nil {
			log.Printf("Failed to parse tile SVG %d: %v", rotation, err)
			continue
		}
		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.tiles[rotation] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawTileAt draws the tile for a rotation at the given pixel
// coordinates, tinted with the given color components.
func (sm *SpriteManager) DrawTileAt(screen *ebiten.Image, rotation space.State, x, y int, r, g, b float32) {
	tile := sm.tiles[rotation]
	if tile == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(r, g, b, 1)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tile, op)
}

// Size returns the display size of tile sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
