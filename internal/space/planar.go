package space

import "sort"

// Planar is a 2D space over a W×H matrix of positions, stored row-major.
type Planar struct {
	cells  []Position
	width  int
	height int
	queue  []Index
	edge   map[Index]struct{}
	rule   Rule
}

// NewPlanar creates a planar space of the given size with every position
// unconstrained over a universe of count states.
func NewPlanar(count, width, height int, rule Rule) *Planar {
	if count <= 0 || count > MaxStates {
		panic("space: state count out of range")
	}
	cells := make([]Position, width*height)
	for i := range cells {
		cells[i] = NewPosition(count)
	}
	return &Planar{
		cells:  cells,
		width:  width,
		height: height,
		edge:   make(map[Index]struct{}),
		rule:   rule,
	}
}

// NewPlanarFromMatrix creates a planar space from pre-built rows of
// positions. All rows must have the same length.
func NewPlanarFromMatrix(matrix [][]Position, rule Rule) *Planar {
	height := len(matrix)
	width := 0
	if height > 0 {
		width = len(matrix[0])
	}
	cells := make([]Position, 0, width*height)
	for _, row := range matrix {
		if len(row) != width {
			panic("space: ragged position matrix")
		}
		cells = append(cells, row...)
	}
	return &Planar{
		cells:  cells,
		width:  width,
		height: height,
		edge:   make(map[Index]struct{}),
		rule:   rule,
	}
}

// Width returns the horizontal size.
func (s *Planar) Width() int { return s.width }

// Height returns the vertical size.
func (s *Planar) Height() int { return s.height }

// Get returns the position at the given index.
func (s *Planar) Get(index Index) *Position {
	return &s.cells[index.Y*s.width+index.X]
}

// ForEach calls the function for every index-position pair in row-major
// order until it returns false.
func (s *Planar) ForEach(f func(Index, *Position) bool) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if !f(Index{x, y}, &s.cells[y*s.width+x]) {
				return
			}
		}
	}
}

// Indices returns every index in row-major order.
func (s *Planar) Indices() []Index {
	indices := make([]Index, 0, len(s.cells))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			indices = append(indices, Index{x, y})
		}
	}
	return indices
}

// Solve narrows the position at index to a single state. On success the
// index is enqueued for propagation and dropped from the edge.
func (s *Planar) Solve(index Index, state State) bool {
	position := s.Get(index)
	position.Solve(state)
	if !position.IsSolved() {
		return false
	}
	s.queue = append(s.queue, index)
	delete(s.edge, index)
	return true
}

// Remove removes the given states from the position at index, keeping
// the queue and edge in step with every narrowing. Removing the sole
// state of a solved position fails; absent states are ignored.
func (s *Planar) Remove(index Index, states ...State) bool {
	position := s.Get(index)
	for _, state := range states {
		if !position.Has(state) {
			continue
		}
		if position.IsSolved() {
			return false
		}
		position.Remove(state)
		if position.IsSolved() {
			s.queue = append(s.queue, index)
			delete(s.edge, index)
		} else {
			s.edge[index] = struct{}{}
		}
	}
	return true
}

// Propagate applies the domain rule to a recently solved index.
func (s *Planar) Propagate(index Index) bool {
	return s.rule(s, index)
}

// PopQueue removes and returns the front of the propagation queue.
func (s *Planar) PopQueue() (Index, bool) {
	if len(s.queue) == 0 {
		return Index{}, false
	}
	index := s.queue[0]
	s.queue = s.queue[1:]
	return index, true
}

// QueueLen returns the number of indices awaiting propagation.
func (s *Planar) QueueLen() int { return len(s.queue) }

// Edge returns a row-major sorted snapshot of the branching frontier.
func (s *Planar) Edge() []Index {
	edge := make([]Index, 0, len(s.edge))
	for index := range s.edge {
		edge = append(edge, index)
	}
	sort.Slice(edge, func(i, j int) bool { return edge[i].Less(edge[j]) })
	return edge
}

// MarkEdge adds the index to the branching frontier.
func (s *Planar) MarkEdge(index Index) {
	s.edge[index] = struct{}{}
}

// EdgeLen returns the size of the branching frontier.
func (s *Planar) EdgeLen() int { return len(s.edge) }

// OnEdge returns true if the index is currently on the frontier.
func (s *Planar) OnEdge(index Index) bool {
	_, ok := s.edge[index]
	return ok
}

// Copy returns a deep copy: positions, queue, and edge are detached.
// The rule is shared; it carries no mutable state.
func (s *Planar) Copy() Space {
	cells := make([]Position, len(s.cells))
	copy(cells, s.cells)
	queue := make([]Index, len(s.queue))
	copy(queue, s.queue)
	edge := make(map[Index]struct{}, len(s.edge))
	for index := range s.edge {
		edge[index] = struct{}{}
	}
	return &Planar{
		cells:  cells,
		width:  s.width,
		height: s.height,
		queue:  queue,
		edge:   edge,
		rule:   s.rule,
	}
}

// Assign moves another planar space's contents into this one. Used by
// the solver to commit a successful branch.
func (s *Planar) Assign(other Space) {
	source, ok := other.(*Planar)
	if !ok {
		panic("space: assign from non-planar space")
	}
	if source.width != s.width || source.height != s.height {
		panic("space: assign from mismatched shape")
	}
	s.cells = source.cells
	s.queue = source.queue
	s.edge = source.edge
	s.rule = source.rule
}
