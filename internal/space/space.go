package space

// Index addresses a position in a planar space.
type Index struct {
	X, Y int
}

// Less orders indices row-major. Edge snapshots are sorted with it so
// random selection never depends on map iteration order.
func (i Index) Less(j Index) bool {
	if i.Y != j.Y {
		return i.Y < j.Y
	}
	return i.X < j.X
}

// Rule is the domain propagation hook. Given the index of a position
// that just became solved, it tightens the affected neighbors via Solve
// and Remove and returns false on contradiction. A rule is shared by
// every copy of the space it was constructed with.
type Rule func(s *Planar, index Index) bool

// Space is the surface the solver drives. All narrowing goes through
// Solve and Remove so the queue and edge invariants hold:
//
//   - every index in the queue was solved at enqueue time
//   - the edge never contains a solved index
//
// Solve, Remove, and Propagate return false on contradiction, meaning
// the current search branch must be abandoned.
type Space interface {
	// Get returns the position at the given index. Out-of-range
	// indices are a programmer error.
	Get(index Index) *Position

	// ForEach calls the function for every index-position pair until
	// it returns false.
	ForEach(f func(Index, *Position) bool)

	// Indices returns every index in row-major order.
	Indices() []Index

	// Solve narrows the position at index to a single state, enqueues
	// it for propagation, and drops it from the edge. Returns false if
	// the state was not a candidate.
	Solve(index Index, state State) bool

	// Remove removes the given states from the position at index.
	// Removing the sole state of a solved position fails; states the
	// position does not have are ignored. A position that becomes
	// solved is enqueued and leaves the edge, otherwise the index
	// joins the edge.
	Remove(index Index, states ...State) bool

	// Propagate applies the domain rule to a recently solved index.
	Propagate(index Index) bool

	// PopQueue removes and returns the front of the propagation queue.
	PopQueue() (Index, bool)

	// QueueLen returns the number of indices awaiting propagation.
	QueueLen() int

	// Edge returns a row-major sorted snapshot of the branching
	// frontier.
	Edge() []Index

	// MarkEdge adds the index to the branching frontier.
	MarkEdge(index Index)

	// EdgeLen returns the size of the branching frontier.
	EdgeLen() int

	// Copy returns a deeply independent space: positions, queue, and
	// edge are all detached from the receiver.
	Copy() Space

	// Assign replaces this space's contents with another's. Assigning
	// from a space of a different shape is a programmer error.
	Assign(other Space)
}
