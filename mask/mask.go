// Package mask implements set algebra on index masks.
//
// A mask selects rows of some ordered universe [0, n) by listing
// their indices in ascending order with no duplicates. The
// functions in this package accept masks in any order, possibly
// with duplicates, and always return normalized masks. Negative
// indices lie outside every universe and are dropped; use New
// to reject them instead.
//
// None of the functions modify their arguments.
package mask

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrNegativeIndex is returned when a mask holds an index below zero.
	ErrNegativeIndex = errors.New("negative mask index")

	// ErrIndexRange is returned when an index does not fit in a Bitmap.
	ErrIndexRange = errors.New("mask index out of range")

	// ErrBadRatio is returned by Split for a ratio outside [0, 1].
	ErrBadRatio = errors.New("split ratio out of range")

	// ErrLengthMismatch is returned by EdgeMask when the endpoint
	// slices differ in length.
	ErrLengthMismatch = errors.New("mismatched edge endpoint lengths")
)

// Mask holds the selected indices of a universe.
type Mask []int

// New returns the normalized mask holding the given indices.
// It returns an error wrapping ErrNegativeIndex if any index is negative.
func New(indices ...int) (Mask, error) {
	for _, i := range indices {
		if i < 0 {
			return nil, fmt.Errorf("cannot make mask with index %d: %w", i, ErrNegativeIndex)
		}
	}
	return Normalize(indices), nil
}

// Normalize returns a sorted copy of m with duplicates
// and negative indices removed.
func Normalize[M ~[]int](m M) Mask {
	r := make(Mask, 0, len(m))
	for _, i := range m {
		if i >= 0 {
			r = append(r, i)
		}
	}
	if !slices.IsSorted(r) {
		slices.Sort(r)
	}
	return slices.Compact(r)
}

// IsNormalized reports whether m is strictly ascending
// and holds no negative index.
func IsNormalized[M ~[]int](m M) bool {
	for k, i := range m {
		if i < 0 || (k > 0 && m[k-1] >= i) {
			return false
		}
	}
	return true
}

// Seq returns an iterator over the indices of m in order.
// If m is not normalized, the iterator yields a normalized copy.
func (m Mask) Seq() iter.Seq[int] {
	if !IsNormalized(m) {
		m = Normalize(m)
	}
	return slices.Values(m)
}

// Len returns the number of distinct indices selected by m.
func (m Mask) Len() int {
	if !IsNormalized(m) {
		return len(Normalize(m))
	}
	return len(m)
}

// Contains reports whether m selects index i.
func (m Mask) Contains(i int) bool {
	if !IsNormalized(m) {
		return i >= 0 && slices.Contains(m, i)
	}
	_, found := slices.BinarySearch(m, i)
	return found
}

// Equal reports whether a and b select the same indices.
func Equal(a, b Mask) bool {
	return slices.Equal(Normalize(a), Normalize(b))
}

func collect(it iter.Seq[int]) Mask {
	r := Mask{}
	for i := range it {
		r = append(r, i)
	}
	return r
}
