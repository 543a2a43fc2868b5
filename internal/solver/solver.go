// Package solver implements the propagate/branch/backtrack loop that
// drives a space to a consistent, fully determined assignment.
package solver

import (
	"math/rand"

	"github.com/hailam/wavespace/internal/space"
)

// Observer is invoked with the current space once per recursion entry.
// It runs on the solver's goroutine and may block; the solver holds no
// resources across the call other than the space itself.
type Observer func(space.Space)

// Option configures a solver.
type Option func(*Solver)

// WithSeed sets the seed of the solver's random source. Runs with the
// same seed on the same space are reproducible.
func WithSeed(seed int64) Option {
	return func(s *Solver) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithObserver sets the per-step observer callback.
func WithObserver(observer Observer) Option {
	return func(s *Solver) {
		s.observer = observer
	}
}

// Solver performs depth-first search with unit propagation and
// minimum-remaining-values branching over the edge frontier. It is
// single-threaded; every branch works on its own copy of the space, so
// abandoning a branch is just dropping the copy.
type Solver struct {
	rng      *rand.Rand
	observer Observer
	steps    uint64
}

// New creates a solver. Without options it is seeded with 0 and has no
// observer.
func New(opts ...Option) *Solver {
	s := &Solver{
		rng: rand.New(rand.NewSource(0)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Steps returns the number of recursion entries since the last Reset.
func (s *Solver) Steps() uint64 {
	return s.steps
}

// Reset clears the step counter.
func (s *Solver) Reset() {
	s.steps = 0
}

// Solve drives the space to a fully determined consistent assignment.
// It returns false when every branch ends in contradiction. Branches run
// on copies and only a successful one is assigned back, but the queue is
// drained on the given space itself, so a false return may leave it
// partially narrowed.
func (s *Solver) Solve(sp space.Space) bool {
	s.steps++
	if s.observer != nil {
		s.observer(sp)
	}
	if !s.propagateQueue(sp) {
		return false
	}
	index, found := s.selectPosition(sp)
	if !found {
		return true
	}
	return s.solveIndex(sp, index)
}

// propagateQueue drains the propagation queue in FIFO order, applying
// the domain rule to each recently solved index.
func (s *Solver) propagateQueue(sp space.Space) bool {
	for {
		index, ok := sp.PopQueue()
		if !ok {
			return true
		}
		if !sp.Propagate(index) {
			return false
		}
	}
}

// selectPosition picks the next position to branch on: the edge index
// with the fewest remaining candidates, ties broken uniformly at
// random. The second result is false when the space is fully
// determined.
func (s *Solver) selectPosition(sp space.Space) (space.Index, bool) {
	s.ensureEdge(sp)

	minimum := 0
	var indices []space.Index
	for _, index := range sp.Edge() {
		count := sp.Get(index).Count()
		if count <= 1 {
			continue
		}
		switch {
		case minimum == 0 || count < minimum:
			minimum = count
			indices = indices[:0]
			indices = append(indices, index)
		case count == minimum:
			indices = append(indices, index)
		}
	}
	if len(indices) == 0 {
		return space.Index{}, false
	}
	return indices[s.rng.Intn(len(indices))], true
}

// ensureEdge seeds the frontier with one random ambiguous index when it
// is empty, so MRV selection grows a connected region instead of
// re-picking arbitrary far-apart cells.
func (s *Solver) ensureEdge(sp space.Space) {
	if sp.EdgeLen() > 0 {
		return
	}
	var ambiguous []space.Index
	sp.ForEach(func(index space.Index, position *space.Position) bool {
		if position.Count() > 1 {
			ambiguous = append(ambiguous, index)
		}
		return true
	})
	if len(ambiguous) == 0 {
		return
	}
	sp.MarkEdge(ambiguous[s.rng.Intn(len(ambiguous))])
}

// solveIndex tries each remaining candidate of the position at index in
// ascending order on a copy of the space, recursing on each. The first
// branch to succeed is committed with Assign; a false return means all
// candidates were contradicted.
func (s *Solver) solveIndex(sp space.Space, index space.Index) bool {
	// Snapshot before branching; the copies mutate the position.
	states := sp.Get(index).States()
	for _, state := range states {
		branch := sp.Copy()
		branch.Solve(index, state)
		if s.Solve(branch) {
			sp.Assign(branch)
			return true
		}
	}
	return false
}
