package seqs

import "errors"

// ErrCutIndex indicates a PartitionAt cut outside [0, len(s)].
var ErrCutIndex = errors.New("seqs: cut index out of range")

// Partition splits s into the elements satisfying keep and the rest,
// preserving relative order within both outputs.
// Complexity: O(n) time and memory.
func Partition[T any](s []T, keep func(T) bool) (matching, rest []T) {
	for _, v := range s {
		if keep(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	}

	return matching, rest
}

// PartitionAt splits s at a cut index into a prefix s[:cut] and a suffix
// s[cut:], both freshly allocated. Returns ErrCutIndex when cut < 0 or
// cut > len(s).
// Complexity: O(n) time and memory.
func PartitionAt[T any](s []T, cut int) (prefix, suffix []T, err error) {
	if cut < 0 || cut > len(s) {
		return nil, nil, ErrCutIndex
	}

	prefix = append([]T(nil), s[:cut]...)
	suffix = append([]T(nil), s[cut:]...)

	return prefix, suffix, nil
}
