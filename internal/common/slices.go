package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// CountFunc returns the number of elements satisfying pred.
func CountFunc[S ~[]E, E any](s S, pred func(E) bool) int {
	n := 0

	for _, e := range s {
		if pred(e) {
			n++
		}
	}

	return n
}
