package index

// Sorted-merge routines over posting lists. All inputs and outputs are
// sorted duplicate-free []int, so every result is a valid input to
// further merges. Each runs in O(len(a) + len(b)).

// Intersect returns the ordered intersection of a and b.
func Intersect(a, b []int) []int {
	out := []int{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Union returns the ordered union of a and b. Once one side is
// exhausted the remainder of the other is appended unchanged.
func Union(a, b []int) []int {
	out := []int{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Complement returns every id in the universe [1, n] absent from a.
func Complement(a []int, n int) []int {
	out := []int{}
	i := 0
	for id := 1; id <= n; id++ {
		if i < len(a) && a[i] == id {
			i++
			continue
		}
		out = append(out, id)
	}
	return out
}
