package render

// SkipOrder returns the vertex order of the star polygon that joins every
// skip-th vertex of an n-gon, starting and ending at vertex 0.
// SkipOrder(5, 2) is the pentagram order [0 2 4 1 3 0]; skip 1 walks the
// convex polygon. When skip and n share a factor the walk closes early
// and only visits part of the vertices.
func SkipOrder(n, skip int) []int {
	if n <= 0 {
		return nil
	}
	skip = ((skip % n) + n) % n
	if skip == 0 {
		return []int{0}
	}

	order := []int{0}
	for idx := skip; ; idx = (idx + skip) % n {
		order = append(order, idx)
		if idx == 0 {
			return order
		}
	}
}
