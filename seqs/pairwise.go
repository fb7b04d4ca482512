package seqs

// Pair groups an element with its immediate successor.
type Pair[T any] struct {
	First, Second T
}

// AdjacentPairs pairs each element of s with its successor:
// (s[0],s[1]), (s[1],s[2]), and so on. With wrapping enabled it also pairs
// the last element with the first, so every element appears as a First
// exactly once. A slice too short to form any pair yields nil; wrapping a
// single element pairs it with itself.
// Complexity: O(n) time and memory.
func AdjacentPairs[T any](s []T, wrapping bool) []Pair[T] {
	n := len(s)
	if n == 0 || (n == 1 && !wrapping) {
		return nil
	}

	pairs := make([]Pair[T], 0, n)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, Pair[T]{First: s[i], Second: s[i+1]})
	}
	if wrapping {
		pairs = append(pairs, Pair[T]{First: s[n-1], Second: s[0]})
	}

	return pairs
}
