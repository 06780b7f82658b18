// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over a slice of values.
//
// It is used by the merge package to pick the smallest head
// among many ordered streams.
package heap

// New returns a heap on the items slice, using less to compare.
// The items slice is reordered in place to establish the heap invariant.
func New[E any](items []E, less func(E, E) bool) *Heap[E] {
	h := &Heap[E]{
		Items: items,
		less:  less,
	}
	h.Init()
	return h
}

// Heap implements a binary min-heap.
type Heap[E any] struct {
	// Items holds all the items in the heap. Items[0], if present,
	// is not greater than any other item.
	Items []E
	less  func(E, E) bool
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariant. It may be called
// whenever Items has been changed directly.
// The complexity is O(n) where n = h.Len().
func (h *Heap[E]) Init() {
	n := len(h.Items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Push pushes x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	h.up(len(h.Items) - 1)
}

// Pop removes and returns the minimum item.
// It panics if the heap is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Pop() E {
	n := len(h.Items) - 1
	h.swap(0, n)
	h.down(0, n)
	x := h.Items[n]
	h.Items = h.Items[:n]
	return x
}

// Fix re-establishes the heap ordering after the item at index i
// has changed. Replacing Items[0] and calling Fix(0) is cheaper
// than a Pop followed by a Push.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Fix(i int) {
	if !h.down(i, len(h.Items)) {
		h.up(i)
	}
}

func (h *Heap[E]) swap(i, j int) {
	h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
}

func (h *Heap[E]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(h.Items[j2], h.Items[j1]) {
			j = j2
		}
		if !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
