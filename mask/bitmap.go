package mask

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// maxUniverse is one more than the largest index a Bitmap can hold.
const maxUniverse = math.MaxUint32 + 1

// Bitmap is a compressed mask, suited to large universes.
// Its operations agree with the corresponding functions on Mask.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap returns a bitmap selecting the indices of m. It returns
// an error wrapping ErrIndexRange if an index is negative or does
// not fit in 32 bits.
func NewBitmap(m Mask) (*Bitmap, error) {
	vals := make([]uint32, len(m))
	for k, i := range m {
		if i < 0 || uint64(i) >= maxUniverse {
			return nil, fmt.Errorf("cannot add index %d to bitmap: %w", i, ErrIndexRange)
		}
		vals[k] = uint32(i)
	}
	return &Bitmap{
		rb: roaring.BitmapOf(vals...),
	}, nil
}

// Mask returns the indices selected by b.
func (b *Bitmap) Mask() Mask {
	m := make(Mask, 0, b.rb.GetCardinality())
	it := b.rb.Iterator()
	for it.HasNext() {
		m = append(m, int(it.Next()))
	}
	return m
}

// Len returns the number of indices selected by b.
func (b *Bitmap) Len() int {
	return int(b.rb.GetCardinality())
}

// Contains reports whether b selects index i.
func (b *Bitmap) Contains(i int) bool {
	if i < 0 || uint64(i) >= maxUniverse {
		return false
	}
	return b.rb.Contains(uint32(i))
}

// Union returns the indices selected by b or c.
func (b *Bitmap) Union(c *Bitmap) *Bitmap {
	return &Bitmap{rb: roaring.Or(b.rb, c.rb)}
}

// Intersection returns the indices selected by both b and c.
func (b *Bitmap) Intersection(c *Bitmap) *Bitmap {
	return &Bitmap{rb: roaring.And(b.rb, c.rb)}
}

// Difference returns the indices selected by b but not by c.
func (b *Bitmap) Difference(c *Bitmap) *Bitmap {
	return &Bitmap{rb: roaring.AndNot(b.rb, c.rb)}
}

// Complement returns the indices in [0, n) that b does not select.
// Indices of b at or beyond n are ignored.
func (b *Bitmap) Complement(n int) *Bitmap {
	if n <= 0 {
		return &Bitmap{rb: roaring.New()}
	}
	end := uint64(n)
	if end > maxUniverse {
		end = maxUniverse
	}
	rb := roaring.Flip(b.rb, 0, end)
	rb.RemoveRange(end, maxUniverse)
	return &Bitmap{rb: rb}
}
