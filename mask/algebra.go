package mask

import (
	"iter"

	"github.com/rogpeppe/maskset/merge"
)

// Union returns the indices selected by a or b.
func Union(a, b Mask) Mask {
	return collect(merge.Merge(a.Seq(), b.Seq()))
}

// Intersection returns the indices selected by both a and b.
func Intersection(a, b Mask) Mask {
	return collect(merge.Intersect(a.Seq(), b.Seq()))
}

// Complement returns the indices in [0, n) that a does not select.
// Indices of a at or beyond n are ignored.
func Complement(a Mask, n int) Mask {
	return collect(merge.Difference(universe(n), a.Seq()))
}

// Difference returns the indices selected by a but not by b.
func Difference(a, b Mask) Mask {
	return collect(merge.Difference(a.Seq(), b.Seq()))
}

// SymmetricDifference returns the indices selected by exactly
// one of a and b.
func SymmetricDifference(a, b Mask) Mask {
	return collect(merge.SymmetricDifference(a.Seq(), b.Seq()))
}

// UnionAll returns the indices selected by any of the given masks.
func UnionAll(masks ...Mask) Mask {
	return collect(merge.MergeMulti(seqs(masks)...))
}

// IntersectionAll returns the indices selected by all of the
// given masks. It returns an empty mask when called with no masks.
func IntersectionAll(masks ...Mask) Mask {
	return collect(merge.IntersectMulti(seqs(masks)...))
}

func seqs(masks []Mask) []iter.Seq[int] {
	its := make([]iter.Seq[int], len(masks))
	for i, m := range masks {
		its[i] = m.Seq()
	}
	return its
}

// universe returns the indices [0, n) in order.
func universe(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
