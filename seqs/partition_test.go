package seqs_test

import (
	"testing"

	"github.com/katalvlaran/pascal/seqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPartition_Predicate splits by predicate, preserving relative order in
// both outputs.
func TestPartition_Predicate(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	matching, rest := seqs.Partition([]int{5, 2, 8, 1, 4, 7}, even)
	assert.Equal(t, []int{2, 8, 4}, matching, "matching keeps input order")
	assert.Equal(t, []int{5, 1, 7}, rest, "rest keeps input order")
}

// TestPartition_Degenerate covers empty input and one-sided splits.
func TestPartition_Degenerate(t *testing.T) {
	all := func(int) bool { return true }
	none := func(int) bool { return false }

	matching, rest := seqs.Partition(nil, all)
	assert.Nil(t, matching)
	assert.Nil(t, rest)

	matching, rest = seqs.Partition([]int{1, 2, 3}, all)
	assert.Equal(t, []int{1, 2, 3}, matching)
	assert.Nil(t, rest, "nothing fails an always-true predicate")

	matching, rest = seqs.Partition([]int{1, 2, 3}, none)
	assert.Nil(t, matching, "nothing passes an always-false predicate")
	assert.Equal(t, []int{1, 2, 3}, rest)
}

// TestPartitionAt splits at a cut index into prefix and suffix.
func TestPartitionAt(t *testing.T) {
	prefix, suffix, err := seqs.PartitionAt([]string{"a", "b", "c", "d"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, prefix)
	assert.Equal(t, []string{"b", "c", "d"}, suffix)
}

// TestPartitionAt_Edges covers the extreme legal cuts.
func TestPartitionAt_Edges(t *testing.T) {
	prefix, suffix, err := seqs.PartitionAt([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Empty(t, prefix, "cut 0 yields an empty prefix")
	assert.Equal(t, []int{1, 2, 3}, suffix)

	prefix, suffix, err = seqs.PartitionAt([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, prefix)
	assert.Empty(t, suffix, "cut len(s) yields an empty suffix")
}

// TestPartitionAt_OutOfRange rejects cuts outside [0, len(s)].
func TestPartitionAt_OutOfRange(t *testing.T) {
	_, _, err := seqs.PartitionAt([]int{1, 2}, -1)
	assert.ErrorIs(t, err, seqs.ErrCutIndex)

	_, _, err = seqs.PartitionAt([]int{1, 2}, 3)
	assert.ErrorIs(t, err, seqs.ErrCutIndex)
}

// TestPartitionAt_DoesNotAliasInput verifies the outputs are fresh slices.
func TestPartitionAt_DoesNotAliasInput(t *testing.T) {
	in := []int{1, 2, 3, 4}
	prefix, suffix, err := seqs.PartitionAt(in, 2)
	require.NoError(t, err)

	in[0], in[3] = 99, 99
	assert.Equal(t, []int{1, 2}, prefix, "prefix must not alias the input")
	assert.Equal(t, []int{3, 4}, suffix, "suffix must not alias the input")
}
