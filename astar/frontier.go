// SPDX-License-Identifier: MIT
package astar

import (
	"container/heap"
	"slices"
)

// frontier is a min-heap of open slots ordered by f ascending, ties broken by
// slot (discovery order). Positions are mirrored into arena.heapPos so a
// decreased f can be restored with heap.Fix.
type frontier[N comparable] struct {
	a     *arena[N]
	slots []int32
}

func newFrontier[N comparable](a *arena[N], capacity int) *frontier[N] {
	return &frontier[N]{a: a, slots: make([]int32, 0, capacity)}
}

// Len returns the number of open slots.
func (fr *frontier[N]) Len() int { return len(fr.slots) }

// Less orders by f, then by discovery.
func (fr *frontier[N]) Less(i, j int) bool {
	return before(fr.a, fr.slots[i], fr.slots[j])
}

// Swap swaps two slots and their recorded positions.
func (fr *frontier[N]) Swap(i, j int) {
	fr.slots[i], fr.slots[j] = fr.slots[j], fr.slots[i]
	fr.a.heapPos[fr.slots[i]] = int32(i)
	fr.a.heapPos[fr.slots[j]] = int32(j)
}

// Push is called by heap.Push; x must be an int32 slot.
func (fr *frontier[N]) Push(x any) {
	s := x.(int32)
	fr.a.heapPos[s] = int32(len(fr.slots))
	fr.slots = append(fr.slots, s)
}

// Pop is called by heap.Pop and returns the last slot.
func (fr *frontier[N]) Pop() any {
	n := len(fr.slots)
	s := fr.slots[n-1]
	fr.slots = fr.slots[:n-1]
	fr.a.heapPos[s] = noSlot
	return s
}

func (fr *frontier[N]) push(s int32) { heap.Push(fr, s) }

func (fr *frontier[N]) pop() int32 { return heap.Pop(fr).(int32) }

// fix restores heap order after the f of s decreased.
func (fr *frontier[N]) fix(s int32) { heap.Fix(fr, int(fr.a.heapPos[s])) }

// head returns the slot that pop would return.
func (fr *frontier[N]) head() (int32, bool) {
	if len(fr.slots) == 0 {
		return noSlot, false
	}
	return fr.slots[0], true
}

// ordered returns the open slots in pop order without disturbing the heap.
func (fr *frontier[N]) ordered() []int32 {
	out := slices.Clone(fr.slots)
	slices.SortFunc(out, func(x, y int32) int {
		switch {
		case before(fr.a, x, y):
			return -1
		case before(fr.a, y, x):
			return 1
		}
		return 0
	})
	return out
}

func before[N comparable](a *arena[N], x, y int32) bool {
	if a.f[x] != a.f[y] {
		return a.f[x] < a.f[y]
	}
	return x < y
}
