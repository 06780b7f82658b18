package mask

import (
	"math/rand/v2"
	"testing"

	"github.com/go-quicktest/qt"
)

var unionTests = []struct {
	testName string
	a, b     Mask
	want     Mask
}{{
	testName: "both-empty",
	want:     Mask{},
}, {
	testName: "distinct-singletons",
	a:        Mask{3},
	b:        Mask{4},
	want:     Mask{3, 4},
}, {
	testName: "equal-singletons",
	a:        Mask{3},
	b:        Mask{3},
	want:     Mask{3},
}, {
	testName: "unsorted-with-duplicates",
	a:        Mask{9, 1, 1, 4},
	b:        Mask{4, 2},
	want:     Mask{1, 2, 4, 9},
}, {
	testName: "negative-dropped",
	a:        Mask{-1, 2},
	b:        Mask{-3},
	want:     Mask{2},
}}

func TestUnion(t *testing.T) {
	for _, test := range unionTests {
		t.Run(test.testName, func(t *testing.T) {
			qt.Assert(t, qt.DeepEquals(Union(test.a, test.b), test.want))
			qt.Assert(t, qt.DeepEquals(Union(test.b, test.a), test.want))
		})
	}
}

var intersectionTests = []struct {
	testName string
	a, b     Mask
	want     Mask
}{{
	testName: "disjoint",
	a:        Mask{3, 7},
	b:        Mask{2, 5},
	want:     Mask{},
}, {
	testName: "equal-singletons",
	a:        Mask{3},
	b:        Mask{3},
	want:     Mask{3},
}, {
	testName: "one-empty",
	a:        Mask{1, 2},
	want:     Mask{},
}, {
	testName: "overlap-unsorted",
	a:        Mask{8, 2, 5, 2},
	b:        Mask{5, 8, 9},
	want:     Mask{5, 8},
}}

func TestIntersection(t *testing.T) {
	for _, test := range intersectionTests {
		t.Run(test.testName, func(t *testing.T) {
			qt.Assert(t, qt.DeepEquals(Intersection(test.a, test.b), test.want))
			qt.Assert(t, qt.DeepEquals(Intersection(test.b, test.a), test.want))
		})
	}
}

var complementTests = []struct {
	testName string
	a        Mask
	n        int
	want     Mask
}{{
	testName: "single",
	a:        Mask{3},
	n:        5,
	want:     Mask{0, 1, 2, 4},
}, {
	testName: "out-of-universe",
	a:        Mask{6},
	n:        5,
	want:     Mask{0, 1, 2, 3, 4},
}, {
	testName: "full",
	a:        Mask{0, 1, 2, 3, 4},
	n:        5,
	want:     Mask{},
}, {
	testName: "empty-universe",
	a:        Mask{0, 3},
	n:        0,
	want:     Mask{},
}, {
	testName: "negative-universe",
	n:        -2,
	want:     Mask{},
}, {
	testName: "negative-index",
	a:        Mask{-1},
	n:        5,
	want:     Mask{0, 1, 2, 3, 4},
}, {
	testName: "mixed",
	a:        Mask{7, 0, 2, 2, 9},
	n:        8,
	want:     Mask{1, 3, 4, 5, 6},
}}

func TestComplement(t *testing.T) {
	for _, test := range complementTests {
		t.Run(test.testName, func(t *testing.T) {
			qt.Assert(t, qt.DeepEquals(Complement(test.a, test.n), test.want))
		})
	}
}

func TestDifference(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(Difference(Mask{1, 2, 3, 4}, Mask{2, 4, 6}), Mask{1, 3}))
	qt.Assert(t, qt.DeepEquals(Difference(Mask{1}, Mask{1}), Mask{}))
	qt.Assert(t, qt.DeepEquals(SymmetricDifference(Mask{1, 2, 3, 4}, Mask{2, 4, 6}), Mask{1, 3, 6}))
}

func TestUnionAll(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(UnionAll(), Mask{}))
	qt.Assert(t, qt.DeepEquals(UnionAll(Mask{5, 1}), Mask{1, 5}))
	qt.Assert(t, qt.DeepEquals(UnionAll(Mask{5, 1}, Mask{2}, nil, Mask{1, 9, 9}), Mask{1, 2, 5, 9}))
}

func TestIntersectionAll(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(IntersectionAll(), Mask{}))
	qt.Assert(t, qt.DeepEquals(IntersectionAll(Mask{3, 1}), Mask{1, 3}))
	qt.Assert(t, qt.DeepEquals(IntersectionAll(Mask{1, 2, 3}, Mask{3, 2}, Mask{2, 3, 4}), Mask{2, 3}))
}

func TestNew(t *testing.T) {
	m, err := New(4, 1, 4)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(m, Mask{1, 4}))

	_, err = New(2, -1)
	qt.Assert(t, qt.ErrorIs(err, ErrNegativeIndex))
	qt.Assert(t, qt.ErrorMatches(err, `cannot make mask with index -1: negative mask index`))
}

func TestNormalizeDoesNotModify(t *testing.T) {
	a := Mask{3, 1, 3}
	qt.Assert(t, qt.DeepEquals(Normalize(a), Mask{1, 3}))
	qt.Assert(t, qt.DeepEquals(a, Mask{3, 1, 3}))
	qt.Assert(t, qt.IsTrue(IsNormalized(Normalize(a))))
	qt.Assert(t, qt.IsFalse(IsNormalized(a)))
}

func TestContains(t *testing.T) {
	m := Mask{1, 4, 9}
	qt.Assert(t, qt.IsTrue(m.Contains(4)))
	qt.Assert(t, qt.IsFalse(m.Contains(5)))
	unsorted := Mask{9, -2, 4}
	qt.Assert(t, qt.IsTrue(unsorted.Contains(4)))
	qt.Assert(t, qt.IsFalse(unsorted.Contains(-2)))
	qt.Assert(t, qt.Equals(unsorted.Len(), 2))
}

func TestEqual(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Equal(Mask{2, 1, 2}, Mask{1, 2})))
	qt.Assert(t, qt.IsTrue(Equal(nil, Mask{})))
	qt.Assert(t, qt.IsFalse(Equal(Mask{1}, Mask{1, 2})))
}

func TestBools(t *testing.T) {
	bs := ToBools(Mask{4, 1, 7, -1}, 5)
	qt.Assert(t, qt.DeepEquals(bs, []bool{false, true, false, false, true}))
	qt.Assert(t, qt.DeepEquals(FromBools(bs), Mask{1, 4}))
	qt.Assert(t, qt.DeepEquals(FromBools(nil), Mask{}))
	qt.Assert(t, qt.HasLen(ToBools(Mask{1}, -1), 0))
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for i := range 200 {
		n := r.IntN(50) + 1
		a, b := randMask(r, n), randMask(r, n)

		u := Union(a, b)
		qt.Assert(t, qt.DeepEquals(u, Union(b, a)), qt.Commentf("iteration %d", i))
		qt.Assert(t, qt.IsTrue(IsNormalized(u)))

		x := Intersection(a, b)
		qt.Assert(t, qt.DeepEquals(x, Intersection(b, a)))
		qt.Assert(t, qt.IsTrue(IsNormalized(x)))

		c := Complement(a, n)
		qt.Assert(t, qt.IsTrue(IsNormalized(c)))
		qt.Assert(t, qt.DeepEquals(Complement(c, n), Normalize(a)))
		qt.Assert(t, qt.DeepEquals(Union(a, c), Complement(nil, n)))
		qt.Assert(t, qt.DeepEquals(Intersection(a, c), Mask{}))

		qt.Assert(t, qt.DeepEquals(Union(a, a), Normalize(a)))
		qt.Assert(t, qt.DeepEquals(Difference(a, b), Intersection(a, Complement(b, n))))
		qt.Assert(t, qt.DeepEquals(SymmetricDifference(a, b), Difference(u, x)))
		qt.Assert(t, qt.DeepEquals(FromBools(ToBools(a, n)), Normalize(a)))
	}
}

// randMask returns an unsorted mask over [0, n) that may
// hold duplicates.
func randMask(r *rand.Rand, n int) Mask {
	m := make(Mask, r.IntN(n+1))
	for i := range m {
		m[i] = r.IntN(n)
	}
	r.Shuffle(len(m), func(i, j int) {
		m[i], m[j] = m[j], m[i]
	})
	return m
}

func BenchmarkUnion(b *testing.B) {
	r := rand.New(rand.NewPCG(2, 2))
	m0 := Normalize(randMask(r, 100000))
	m1 := Normalize(randMask(r, 100000))
	for b.Loop() {
		Union(m0, m1)
	}
}

func BenchmarkComplement(b *testing.B) {
	r := rand.New(rand.NewPCG(3, 3))
	m := Normalize(randMask(r, 100000))
	for b.Loop() {
		Complement(m, 100000)
	}
}
