package mask

import (
	"fmt"
	"math/rand/v2"
)

// Split partitions the universe [0, n) into a training mask and a
// test mask. Each index is placed in train independently with
// probability ratio; test is the complement of train.
//
// If rng is nil, a randomly seeded generator is used.
func Split(n int, ratio float64, rng *rand.Rand) (train, test Mask, err error) {
	if !(ratio >= 0 && ratio <= 1) {
		return nil, nil, fmt.Errorf("cannot split with ratio %v: %w", ratio, ErrBadRatio)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	train, test = Mask{}, Mask{}
	for i := 0; i < n; i++ {
		if rng.Float64() < ratio {
			train = append(train, i)
		} else {
			test = append(test, i)
		}
	}
	return train, test, nil
}

// EdgeMask returns the positions of the edges whose endpoints are
// both selected by nodes. Edge e runs from src[e] to dst[e].
func EdgeMask(src, dst []int, nodes Mask) (Mask, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%d sources, %d destinations: %w", len(src), len(dst), ErrLengthMismatch)
	}
	nodes = Normalize(nodes)
	m := Mask{}
	for e := range src {
		if nodes.Contains(src[e]) && nodes.Contains(dst[e]) {
			m = append(m, e)
		}
	}
	return m, nil
}
