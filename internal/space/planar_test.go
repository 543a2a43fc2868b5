package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passRule accepts every propagation.
func passRule(*Planar, Index) bool { return true }

func TestPlanarGet(t *testing.T) {
	s := NewPlanar(4, 3, 2, passRule)
	require.True(t, s.Solve(Index{X: 2, Y: 1}, 3))
	assert.True(t, s.Get(Index{X: 2, Y: 1}).IsSolved())
	assert.False(t, s.Get(Index{X: 1, Y: 1}).IsSolved())

	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
}

func TestPlanarSolveEnqueues(t *testing.T) {
	s := NewPlanar(4, 2, 2, passRule)
	index := Index{X: 1, Y: 0}
	require.True(t, s.Solve(index, 2))

	popped, ok := s.PopQueue()
	require.True(t, ok)
	assert.Equal(t, index, popped)
	assert.True(t, s.Get(popped).IsSolved(), "queued index must be solved at pop time")
}

func TestPlanarSolveAbsentContradicts(t *testing.T) {
	s := NewPlanar(4, 2, 2, passRule)
	index := Index{X: 0, Y: 0}
	require.True(t, s.Remove(index, 1))
	assert.False(t, s.Solve(index, 1))
}

func TestPlanarQueueFIFO(t *testing.T) {
	s := NewPlanar(4, 4, 1, passRule)
	order := []Index{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: 3, Y: 0}}
	for i, index := range order {
		require.True(t, s.Solve(index, State(i)))
	}
	for _, want := range order {
		got, ok := s.PopQueue()
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.True(t, s.Get(got).IsSolved())
	}
	_, ok := s.PopQueue()
	assert.False(t, ok)
}

func TestPlanarRemoveMaintainsEdge(t *testing.T) {
	s := NewPlanar(4, 2, 2, passRule)
	index := Index{X: 0, Y: 1}

	// Narrowed but unsolved: joins the edge.
	require.True(t, s.Remove(index, 0))
	assert.Equal(t, []Index{index}, s.Edge())

	// Narrowed to one state: enqueued and off the edge.
	require.True(t, s.Remove(index, 1, 2))
	assert.Empty(t, s.Edge())
	popped, ok := s.PopQueue()
	require.True(t, ok)
	assert.Equal(t, index, popped)
}

func TestPlanarEdgeNeverContainsSolved(t *testing.T) {
	s := NewPlanar(4, 3, 3, passRule)
	for _, index := range s.Indices() {
		require.True(t, s.Remove(index, 0))
	}
	index := Index{X: 1, Y: 1}
	require.True(t, s.Solve(index, 3))
	assert.NotContains(t, s.Edge(), index)
}

func TestPlanarRemoveSolvedAsymmetry(t *testing.T) {
	s := NewPlanar(4, 2, 1, passRule)
	index := Index{X: 0, Y: 0}
	require.True(t, s.Solve(index, 2))

	// Removing a state the position no longer has silently succeeds.
	assert.True(t, s.Remove(index, 0))

	// Removing the sole remaining state is a contradiction.
	assert.False(t, s.Remove(index, 2))
	assert.True(t, s.Get(index).IsSolved(), "failed remove must not empty the position")
}

func TestPlanarEdgeSnapshotSorted(t *testing.T) {
	s := NewPlanar(4, 3, 3, passRule)
	for _, index := range []Index{{X: 2, Y: 2}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}} {
		s.MarkEdge(index)
	}
	assert.Equal(t, []Index{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 2}}, s.Edge())
}

func TestPlanarCopyIndependence(t *testing.T) {
	a := NewPlanar(4, 2, 2, passRule)
	require.True(t, a.Remove(Index{X: 0, Y: 0}, 0))
	require.True(t, a.Solve(Index{X: 1, Y: 1}, 1))

	b := a.Copy()
	require.True(t, b.Solve(Index{X: 0, Y: 0}, 3))
	b.MarkEdge(Index{X: 1, Y: 0})
	b.PopQueue()

	assert.Equal(t, 3, a.Get(Index{X: 0, Y: 0}).Count())
	assert.Equal(t, []Index{{X: 0, Y: 0}}, a.Edge())
	assert.Equal(t, 1, a.QueueLen())
}

func TestPlanarAssign(t *testing.T) {
	a := NewPlanar(4, 2, 2, passRule)
	b := a.Copy()
	require.True(t, b.Solve(Index{X: 0, Y: 1}, 2))

	a.Assign(b)
	assert.True(t, a.Get(Index{X: 0, Y: 1}).IsSolved())
	assert.Equal(t, 1, a.QueueLen())
}

func TestPlanarAssignShapeMismatchPanics(t *testing.T) {
	a := NewPlanar(4, 2, 2, passRule)
	b := NewPlanar(4, 3, 2, passRule)
	require.Panics(t, func() { a.Assign(b) })
}

func TestPlanarFromMatrix(t *testing.T) {
	matrix := [][]Position{
		{NewPosition(3), NewPosition(3)},
		{NewPosition(3), NewPosition(3)},
	}
	matrix[1][0].Solve(1)
	s := NewPlanarFromMatrix(matrix, passRule)
	assert.Equal(t, 2, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.True(t, s.Get(Index{X: 0, Y: 1}).IsSolved())
	assert.Equal(t, 3, s.Get(Index{X: 1, Y: 1}).Count())
}

func TestPlanarForEachOrder(t *testing.T) {
	s := NewPlanar(2, 2, 2, passRule)
	var visited []Index
	s.ForEach(func(index Index, _ *Position) bool {
		visited = append(visited, index)
		return true
	})
	assert.Equal(t, s.Indices(), visited)
}
