// SPDX-License-Identifier: MIT
// File: arena.go
// Role: Node identities as arena slots addressed by stable index.
// Invariants:
//   - slot.refs == number of edge endpoints holding the index (a self-loop holds it twice).
//   - A slot is recycled only when it is no longer live AND refs == 0.
//   - Relabeling a node writes slot.label; edges keep their indices untouched.

package core

// slot is one node identity.
type slot[N any] struct {
	label N
	refs  int
	live  bool
}

// arena owns every node identity of one Graph.
type arena[N any] struct {
	slots []slot[N]
	free  []int
}

func newArena[N any](capacity int) *arena[N] {
	return &arena[N]{slots: make([]slot[N], 0, capacity)}
}

// acquire stores label in a free slot (or a new one) and returns its index.
func (a *arena[N]) acquire(label N) int {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = slot[N]{label: label, live: true}
		return idx
	}
	a.slots = append(a.slots, slot[N]{label: label, live: true})

	return len(a.slots) - 1
}

func (a *arena[N]) label(idx int) N { return a.slots[idx].label }

func (a *arena[N]) relabel(idx int, label N) { a.slots[idx].label = label }

func (a *arena[N]) ref(idx int) { a.slots[idx].refs++ }

// unref drops one edge reference and recycles the slot if it became unreachable.
func (a *arena[N]) unref(idx int) {
	a.slots[idx].refs--
	a.release(idx)
}

// retire marks the slot as removed from the node registry.
func (a *arena[N]) retire(idx int) {
	a.slots[idx].live = false
	a.release(idx)
}

func (a *arena[N]) release(idx int) {
	s := &a.slots[idx]
	if s.live || s.refs > 0 {
		return
	}
	var zero N
	s.label = zero
	a.free = append(a.free, idx)
}

// clone returns an independent copy with identical indices, so edge keys
// copied from the source registry stay valid against it.
func (a *arena[N]) clone() *arena[N] {
	return &arena[N]{
		slots: append(make([]slot[N], 0, cap(a.slots)), a.slots...),
		free:  append([]int(nil), a.free...),
	}
}
