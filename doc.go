// Package pascal is your in-memory playground for exploring the arithmetic
// (Pascal's) triangle as a lazy, unbounded, queryable data structure.
//
// 🚀 What is pascal?
//
//	A modern, generics-first library that brings together:
//		• Lazy values: any (row, column) entry on demand, memoized
//		• Symmetry-aware caching: only interior left-half entries are stored
//		• Row sums: O(1) shift path for integer elements, O(row) halving otherwise
//		• Range sums: cost-tiered dispatch over the shape of the column span
//		• Ordered traversal: row-major infinite enumeration with a steppable index
//
// ✨ Why choose pascal?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – documented invariants, exhaustive property tests
//   - Generic – works with every integer and float element type
//   - Unbounded – the triangle has no last row; iteration stops when you do
//
// Under the hood, everything is organized under two subpackages:
//
//	triangle/ — the core Triangle, Index, Span, sums and enumeration
//	seqs/     — standalone slice helpers: adjacent pairs and partitioning
//
// Quick ASCII example:
//
//	        1
//	       1 1
//	      1 2 1
//	     1 3 3 1
//	    1 4 6 4 1
//
//	every interior entry is the sum of the two entries diagonally above it.
//
// Try cmd/pascalviz for a colored rendering of the first rows.
//
//	go get github.com/katalvlaran/pascal/triangle
package pascal
