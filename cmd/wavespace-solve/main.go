package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/hailam/wavespace/internal/automata"
	"github.com/hailam/wavespace/internal/loops"
	"github.com/hailam/wavespace/internal/solver"
	"github.com/hailam/wavespace/internal/space"
	"github.com/hailam/wavespace/internal/storage"
	"github.com/hailam/wavespace/internal/sudoku"
)

// Headless scene dimensions
const (
	loopsGridSize    = 25
	automataGridSize = 100
)

var (
	seed       = flag.Int64("seed", 0, "solver random seed")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: wavespace-solve [flags] sudoku [path] | sudoku_mini <path> | loops | automata\n")
	os.Exit(1)
}

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	verb := flag.Arg(0)
	var (
		sp       space.Space
		validate func() bool
		render   func() string
	)
	switch verb {
	case "sudoku", "sudoku_mini":
		table := sudoku.NewTable()
		path := flag.Arg(1)
		if verb == "sudoku_mini" && path == "" {
			usage()
		}
		if path != "" {
			if err := table.LoadFile(path); err != nil {
				log.Fatalf("Failed to load puzzle: %v", err)
			}
		}
		sp = table
		validate = table.IsValid
		render = table.String
	case "loops":
		scene := loops.NewScene(loopsGridSize, loopsGridSize)
		sp = scene
		validate = scene.IsValid
		render = scene.String
	case "automata":
		scene := automata.NewScene(automataGridSize, automataGridSize)
		scene.SeedEdge(space.Index{X: automataGridSize / 2, Y: automataGridSize / 2})
		sp = scene
		validate = scene.IsValid
		render = func() string { return "" }
	default:
		usage()
	}

	s := solver.New(solver.WithSeed(*seed))
	start := time.Now()
	solved := s.Solve(sp)
	elapsed := time.Since(start)
	valid := validate()

	status := "UNSOLVED"
	switch {
	case solved && valid:
		status = "SOLVED"
	case !valid && solved:
		status = "INVALID"
	}
	if grid := render(); grid != "" {
		fmt.Fprintf(os.Stderr, "%s\n%s\n", status, grid)
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", status)
	}
	log.Printf("%s: %s in %d steps, %v", verb, status, s.Steps(), elapsed)

	recordRun(verb, solved && valid, s.Steps(), elapsed)

	if !solved {
		os.Exit(2)
	}
}

// recordRun stores the outcome in the run statistics database. A
// storage failure only warns; solving is still useful without it.
func recordRun(scene string, solved bool, steps uint64, elapsed time.Duration) {
	store, err := storage.New()
	if err != nil {
		log.Printf("Warning: Failed to open storage: %v", err)
		return
	}
	defer store.Close()

	if err := store.RecordRun(storage.RunResult{
		Scene:    scene,
		Solved:   solved,
		Steps:    steps,
		Duration: elapsed,
	}); err != nil {
		log.Printf("Warning: Failed to record run: %v", err)
	}

	stats, err := store.LoadStats()
	if err != nil {
		return
	}
	log.Printf("lifetime: %d runs, %.0f%% solved", stats.Runs, stats.SolveRate())
}
