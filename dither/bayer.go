package dither

// Bayer threshold matrices. bayerMatrix(n) doubles the classic 2x2
// base until it reaches n, then normalizes so thresholds are evenly
// spaced across [0, 1).
func bayerMatrix(n int) [][]float64 {
	m := [][]int{{0, 2}, {3, 1}}
	for len(m) < n {
		size := len(m) * 2
		next := make([][]int, size)
		for y := range next {
			next[y] = make([]int, size)
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				base := 4 * m[y%len(m)][x%len(m)]
				switch {
				case y < size/2 && x < size/2:
					// base
				case y < size/2:
					base += 2
				case x < size/2:
					base += 3
				default:
					base += 1
				}
				next[y][x] = base
			}
		}
		m = next
	}

	out := make([][]float64, n)
	scale := float64(n * n)
	for y := range out {
		out[y] = make([]float64, n)
		for x := range out[y] {
			out[y][x] = float64(m[y][x]) / scale
		}
	}
	return out
}

var (
	bayer2 = bayerMatrix(2)
	bayer4 = bayerMatrix(4)
	bayer8 = bayerMatrix(8)
)
