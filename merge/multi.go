package merge

import (
	"cmp"
	"iter"

	"github.com/rogpeppe/maskset/heap"
)

// MergeMulti returns the union of all the given ordered streams.
func MergeMulti[T cmp.Ordered](its ...iter.Seq[T]) iter.Seq[T] {
	return MergeMultiGeneral(cmp.Compare[T], its...)
}

// MergeMultiGeneral is like MergeMulti but uses cmp to order values.
// A value held by several streams is produced once.
func MergeMultiGeneral[T any](cmp func(T, T) int, its ...iter.Seq[T]) iter.Seq[T] {
	switch len(its) {
	case 0:
		return func(yield func(T) bool) {}
	case 1:
		return MergeGeneral(its[0], func(yield func(T) bool) {}, cmp, Join[T])
	case 2:
		return MergeGeneral(its[0], its[1], cmp, Join[T])
	}
	return func(yield func(T) bool) {
		heads := make([]*cursor[T], 0, len(its))
		defer func() {
			for _, c := range heads {
				c.stop()
			}
		}()
		for _, it := range its {
			heads = append(heads, pull(it, cmp))
		}
		live := make([]*cursor[T], 0, len(heads))
		for _, c := range heads {
			if c.ok {
				live = append(live, c)
			}
		}
		h := heap.New(live, func(c0, c1 *cursor[T]) bool {
			return cmp(c0.x, c1.x) < 0
		})
		var (
			last    T
			started bool
		)
		for h.Len() > 0 {
			c := h.Items[0]
			if !started || cmp(last, c.x) != 0 {
				if !yield(c.x) {
					return
				}
				last, started = c.x, true
			}
			c.advance()
			if c.ok {
				h.Fix(0)
			} else {
				h.Pop()
			}
		}
	}
}
