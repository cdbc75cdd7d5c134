// SPDX-License-Identifier: MIT
package astar

// slotState is the membership of a node in the current run.
// Nodes without a slot are unseen.
type slotState uint8

const (
	stateOpen slotState = iota + 1
	stateClosed
)

// noSlot marks an absent predecessor or a slot outside the heap.
const noSlot int32 = -1

// arena owns all per-run bookkeeping. Each node gets a dense slot on first
// discovery, so slot order is also discovery order and doubles as the
// frontier tie-break.
type arena[N comparable] struct {
	index   map[N]int32 // node → slot
	nodes   []N         // slot → node
	g       []float64   // best known cost from start
	f       []float64   // g + estimate to goal
	from    []int32     // predecessor slot or noSlot
	state   []slotState // open or closed
	heapPos []int32     // position in the frontier heap or noSlot
}

func newArena[N comparable](capacity int) *arena[N] {
	return &arena[N]{
		index:   make(map[N]int32, capacity),
		nodes:   make([]N, 0, capacity),
		g:       make([]float64, 0, capacity),
		f:       make([]float64, 0, capacity),
		from:    make([]int32, 0, capacity),
		state:   make([]slotState, 0, capacity),
		heapPos: make([]int32, 0, capacity),
	}
}

// lookup returns the slot of n if n was ever discovered.
func (a *arena[N]) lookup(n N) (int32, bool) {
	s, ok := a.index[n]
	return s, ok
}

// open allocates a slot for a newly discovered node.
func (a *arena[N]) open(n N, g, f float64, from int32) int32 {
	s := int32(len(a.nodes))
	a.index[n] = s
	a.nodes = append(a.nodes, n)
	a.g = append(a.g, g)
	a.f = append(a.f, f)
	a.from = append(a.from, from)
	a.state = append(a.state, stateOpen)
	a.heapPos = append(a.heapPos, noSlot)
	return s
}

// len is the number of nodes ever opened.
func (a *arena[N]) len() int { return len(a.nodes) }

// pathTo walks predecessor links from s to the root and returns the nodes in
// root→s order. The walk is capped at the number of slots; exceeding it means
// the links contain a cycle.
func (a *arena[N]) pathTo(s int32) ([]N, error) {
	limit := a.len()
	rev := make([]int32, 0, 16)
	for cur := s; cur != noSlot; cur = a.from[cur] {
		if len(rev) == limit {
			return nil, ErrBackpointerCycle
		}
		rev = append(rev, cur)
	}
	path := make([]N, len(rev))
	for i, slot := range rev {
		path[len(rev)-1-i] = a.nodes[slot]
	}
	return path, nil
}
