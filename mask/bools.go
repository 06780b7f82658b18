package mask

// FromBools returns the mask selecting the positions of bs that are true.
func FromBools(bs []bool) Mask {
	m := Mask{}
	for i, b := range bs {
		if b {
			m = append(m, i)
		}
	}
	return m
}

// ToBools returns the dense form of m over the universe [0, n).
// Indices outside the universe are ignored.
func ToBools(m Mask, n int) []bool {
	if n < 0 {
		n = 0
	}
	bs := make([]bool, n)
	for _, i := range m {
		if i >= 0 && i < n {
			bs[i] = true
		}
	}
	return bs
}
