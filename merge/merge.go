// Package merge implements set operations on strictly ascending
// streams of values.
//
// All the functions here panic if an input stream is not strictly
// ascending, as duplicates or out-of-order items would silently
// produce a wrong answer.
package merge

import (
	"cmp"
	"fmt"
	"iter"
)

// Join is the join used by Merge: it produces the value
// whichever stream holds it.
func Join[T any](x0 T, has0 bool, x1 T, has1 bool) (T, bool) {
	if has0 {
		return x0, true
	}
	return x1, true
}

// Both produces values held by both streams.
func Both[T any](x0 T, has0 bool, x1 T, has1 bool) (T, bool) {
	return x0, has0 && has1
}

// OnlyFirst produces values held by the first stream only.
func OnlyFirst[T any](x0 T, has0 bool, x1 T, has1 bool) (T, bool) {
	return x0, has0 && !has1
}

// Either produces values held by exactly one of the streams.
func Either[T any](x0 T, has0 bool, x1 T, has1 bool) (T, bool) {
	if has0 == has1 {
		return x0, false
	}
	return Join(x0, has0, x1, has1)
}

// Merge returns the union of two ordered streams.
func Merge[T cmp.Ordered](it0, it1 iter.Seq[T]) iter.Seq[T] {
	return MergeGeneral(it0, it1, cmp.Compare[T], Join[T])
}

// Intersect returns the values present in both streams.
func Intersect[T cmp.Ordered](it0, it1 iter.Seq[T]) iter.Seq[T] {
	return MergeGeneral(it0, it1, cmp.Compare[T], Both[T])
}

// Difference returns the values of it0 that are not in it1.
func Difference[T cmp.Ordered](it0, it1 iter.Seq[T]) iter.Seq[T] {
	return MergeGeneral(it0, it1, cmp.Compare[T], OnlyFirst[T])
}

// SymmetricDifference returns the values present in exactly
// one of the streams.
func SymmetricDifference[T cmp.Ordered](it0, it1 iter.Seq[T]) iter.Seq[T] {
	return MergeGeneral(it0, it1, cmp.Compare[T], Either[T])
}

// IntersectMulti returns the values present in all the given streams.
// With no streams, the result is empty.
func IntersectMulti[T cmp.Ordered](its ...iter.Seq[T]) iter.Seq[T] {
	if len(its) == 0 {
		return func(yield func(T) bool) {}
	}
	r := its[0]
	for _, it := range its[1:] {
		r = Intersect(r, it)
	}
	return r
}

// MergeGeneral walks two streams ordered by cmp in step, calling
// join once for each distinct value. has0 and has1 report which of
// the two streams holds the value; at least one of them is always
// true. The value returned by join is produced only if its second
// result is true.
func MergeGeneral[T0, T1 any](it0, it1 iter.Seq[T0], cmp func(T0, T0) int, join func(x0 T0, has0 bool, x1 T0, has1 bool) (T1, bool)) iter.Seq[T1] {
	return func(yield func(T1) bool) {
		c0 := pull(it0, cmp)
		defer c0.stop()
		c1 := pull(it1, cmp)
		defer c1.stop()
		var zero T0
		for {
			var (
				y    T1
				emit bool
			)
			switch {
			case c0.ok && c1.ok:
				switch c := cmp(c0.x, c1.x); {
				case c < 0:
					y, emit = join(c0.x, true, zero, false)
					c0.advance()
				case c > 0:
					y, emit = join(zero, false, c1.x, true)
					c1.advance()
				default:
					y, emit = join(c0.x, true, c1.x, true)
					c0.advance()
					c1.advance()
				}
			case c0.ok:
				y, emit = join(c0.x, true, zero, false)
				c0.advance()
			case c1.ok:
				y, emit = join(zero, false, c1.x, true)
				c1.advance()
			default:
				return
			}
			if emit && !yield(y) {
				return
			}
		}
	}
}

// cursor holds the current head of a pulled stream.
type cursor[T any] struct {
	next func() (T, bool)
	stop func()
	cmp  func(T, T) int
	x    T
	ok   bool
}

// pull starts iterating over it and reads its first item.
func pull[T any](it iter.Seq[T], cmp func(T, T) int) *cursor[T] {
	next, stop := iter.Pull(it)
	c := &cursor[T]{
		next: next,
		stop: stop,
		cmp:  cmp,
	}
	c.advance()
	return c
}

// advance moves to the next item, leaving ok false
// when the stream is exhausted.
func (c *cursor[T]) advance() {
	if c.next == nil {
		c.ok = false
		return
	}
	x, ok := c.next()
	if !ok {
		c.next = nil
		c.ok = false
		return
	}
	if c.ok && c.cmp(c.x, x) >= 0 {
		panic(fmt.Errorf("out of order item in sequence (%v >= %v)", c.x, x))
	}
	c.x, c.ok = x, true
}
