// Package seqs provides small, self-contained slice utilities:
// pairing each element with its successor (optionally wrapping around),
// and stable two-way partitioning by predicate or by cut index.
//
// The helpers allocate fresh result slices and never alias their input.
package seqs
