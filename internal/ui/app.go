package ui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hailam/wavespace/internal/solver"
	"github.com/hailam/wavespace/internal/space"
	"github.com/hailam/wavespace/internal/storage"
)

// Config selects the scene and pacing for an App.
type Config struct {
	Scene    string        // Scene name, used for the caption and stats
	Seed     int64         // Solver seed
	Delay    time.Duration // Frame delay between steps; prefs default when zero
	StepMode bool          // Advance one step per Space keypress instead of by delay
}

// App runs the solver on a worker goroutine and animates its progress.
// The solver's observer publishes deep-copied snapshots; the Ebitengine
// loop only ever draws the latest snapshot.
type App struct {
	cfg      Config
	sp       space.Space
	view     View
	validate func() bool

	solver *solver.Solver
	store  *storage.Storage

	mu       sync.Mutex
	snapshot space.Space
	finished bool
	solved   bool
	valid    bool

	stepCh     chan struct{}
	started    bool
	captionSet bool
}

// NewApp creates an app solving the given space. The validate hook is
// consulted after the run for the caption; it may be nil.
func NewApp(cfg Config, sp space.Space, view View, validate func() bool) *App {
	a := &App{
		cfg:      cfg,
		sp:       sp,
		view:     view,
		validate: validate,
		stepCh:   make(chan struct{}, 1),
	}

	var err error
	a.store, err = storage.New()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	if a.cfg.Delay == 0 {
		a.cfg.Delay = storage.DefaultPreferences().FrameDelay
		if a.store != nil {
			if prefs, err := a.store.LoadPreferences(); err == nil {
				a.cfg.Delay = prefs.FrameDelay
			}
		}
	}

	a.solver = solver.New(
		solver.WithSeed(cfg.Seed),
		solver.WithObserver(a.observe),
	)
	return a
}

// observe publishes a snapshot of the solving space and paces the run.
// It blocks the solver goroutine, never the render loop.
func (a *App) observe(sp space.Space) {
	a.mu.Lock()
	a.snapshot = sp.Copy()
	a.mu.Unlock()

	if a.cfg.StepMode {
		<-a.stepCh
	} else {
		time.Sleep(a.cfg.Delay)
	}
}

// run solves the space, then records the outcome.
func (a *App) run() {
	start := time.Now()
	solved := a.solver.Solve(a.sp)
	valid := solved
	if a.validate != nil {
		valid = a.validate()
	}

	a.mu.Lock()
	a.snapshot = a.sp.Copy()
	a.finished = true
	a.solved = solved
	a.valid = valid
	a.mu.Unlock()

	if a.store == nil {
		return
	}
	if err := a.store.RecordRun(storage.RunResult{
		Scene:    a.cfg.Scene,
		Solved:   solved && valid,
		Steps:    a.solver.Steps(),
		Duration: time.Since(start),
	}); err != nil {
		log.Printf("Warning: Failed to record run: %v", err)
	}
	if err := a.store.SavePreferences(&storage.UserPreferences{
		Seed:       a.cfg.Seed,
		FrameDelay: a.cfg.Delay,
		AutoStep:   !a.cfg.StepMode,
		LastScene:  a.cfg.Scene,
	}); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if !a.started {
		a.started = true
		go a.run()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		select {
		case a.stepCh <- struct{}{}:
		default:
		}
	}

	a.mu.Lock()
	finished, solved, valid := a.finished, a.solved, a.valid
	a.mu.Unlock()
	if finished && !a.captionSet {
		a.captionSet = true
		caption := "UNSOLVED"
		switch {
		case solved && valid:
			caption = "SOLVED"
		case solved && !valid:
			caption = "INVALID"
		}
		ebiten.SetWindowTitle(fmt.Sprintf("%s - %s (ESC to exit)", a.cfg.Scene, caption))
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.mu.Lock()
	snapshot := a.snapshot
	a.mu.Unlock()
	if snapshot != nil {
		a.view.Draw(screen, snapshot)
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.view.Size()
}

// Close releases the app's storage.
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
}
