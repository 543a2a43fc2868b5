// Wavespace - an animated constraint solver built with Ebitengine
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/wavespace/internal/automata"
	"github.com/hailam/wavespace/internal/loops"
	"github.com/hailam/wavespace/internal/space"
	"github.com/hailam/wavespace/internal/sudoku"
	"github.com/hailam/wavespace/internal/ui"
)

// Scene dimensions
const (
	sudokuCellSize   = 56
	loopsGridSize    = 25
	loopsCellSize    = 40
	automataGridSize = 100
	automataCellSize = 5
)

var (
	seed  = flag.Int64("seed", 0, "solver random seed")
	delay = flag.Duration("delay", 0, "frame delay between solver steps")
	step  = flag.Bool("step", false, "advance one step per Space keypress")
)

func main() {
	flag.Parse()

	verb := flag.Arg(0)
	var (
		sp       space.Space
		view     ui.View
		validate func() bool
	)
	switch verb {
	case "sudoku":
		table := sudoku.NewTable()
		if path := flag.Arg(1); path != "" {
			if err := table.LoadFile(path); err != nil {
				log.Fatalf("Failed to load puzzle: %v", err)
			}
		}
		sp = table
		view = ui.NewSudokuView(sudokuCellSize)
		validate = table.IsValid
	case "loops":
		scene := loops.NewScene(loopsGridSize, loopsGridSize)
		sp = scene
		view = ui.NewLoopsView(loopsGridSize, loopsGridSize, loopsCellSize)
		validate = scene.IsValid
	case "automata":
		scene := automata.NewScene(automataGridSize, automataGridSize)
		scene.SeedEdge(space.Index{X: automataGridSize / 2, Y: automataGridSize / 2})
		sp = scene
		view = ui.NewAutomataView(automataGridSize, automataGridSize, automataCellSize)
		validate = scene.IsValid
	default:
		fmt.Fprintf(os.Stderr, "Usage: wavespace [flags] sudoku [path] | loops | automata\n")
		os.Exit(1)
	}

	app := ui.NewApp(ui.Config{
		Scene:    verb,
		Seed:     *seed,
		Delay:    *delay,
		StepMode: *step,
	}, sp, view, validate)
	defer app.Close()

	w, h := view.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Wavespace - " + verb)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Enable smooth scaling when window is resized or fullscreen
	ebiten.SetScreenFilterEnabled(true)

	if err := ebiten.RunGame(app); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
