// Package triangle provides a lazy, memoized, unbounded arithmetic
// (Pascal's) triangle with point lookups, whole-row sums, cost-tiered
// column-range sums, and ordered row-major enumeration.
//
// Overview:
//
//   - A Triangle holds a base element occupying every row's first and last
//     column; every interior entry obeys the recurrence
//     value(r,c) = value(r−1,c) + value(r−1,c−1).
//   - Values are computed on demand and memoized. Horizontal symmetry
//     (value(r,c) == value(r,r−c)) means only interior left-half entries
//     are ever stored or computed directly.
//   - The structure is conceptually infinite: there is no last row, and
//     enumeration is a lazy, unbounded sequence.
//
// Invariants (hold for every Triangle, all rows r ≥ 0, columns 0 ≤ c ≤ r):
//
//  1. value(r,0) == value(r,r) == base.
//  2. value(r,c) == value(r,r−c).
//  3. For 0 < c < r: value(r,c) == value(r−1,c) + value(r−1,c−1).
//  4. Coordinates outside the triangle read as the additive zero.
//
// Key features:
//
//   - New / NewInt / NewUnit: generic construction, or integer-ring
//     construction that unlocks the O(1) row-sum shortcut base << row.
//   - Value / At / AtPosition: point lookups with defensive column
//     clipping (out-of-row columns yield zero, not an error).
//   - SumOfRow: O(1) shift path for integer triangles, O(row) halving
//     algorithm otherwise.
//   - SumOfColumns: dispatches over the clipped span's shape — empty,
//     single, full row, shallow row, pure interior, fringe, mixed — picking
//     the cheapest strategy whose result equals the direct column-by-column
//     sum.
//   - Elements / Indexed: infinite row-major enumeration as iter.Seq /
//     iter.Seq2.
//   - Index / Position: an ordered, forward-steppable coordinate space with
//     an explicit unbounded end marker.
//
// Performance and complexity:
//
//   - A cold interior lookup at row r fills at most r²/4 memo entries; every
//     later lookup of a computed coordinate is O(1).
//   - The value engine expands the recurrence over an explicit work stack,
//     so call-stack depth is constant regardless of row.
//   - WithoutMemoization keeps lookups correct but re-expands the
//     dependency cone on every miss.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidIndex:
//     Returned by NewIndex for coordinates violating 0 ≤ column ≤ row,
//     row ≥ 0, and by Value/SumOfRow/SumOfColumns for a negative row.
//   - ErrUnboundedPosition:
//     Returned when dereferencing the unbounded end Position, which marks
//     "past every element" and addresses nothing.
//
// Overflow is not masked: integer row sums and interior values follow the
// element type's native wraparound semantics. Callers working near the
// element's bit width must pre-validate rows themselves.
//
// Thread safety:
//
//   - A Triangle built with defaults owns a single-goroutine memo store;
//     synchronize externally for shared use.
//   - WithConcurrentCache installs a sharded, lock-guarded store, making
//     concurrent lookups safe. Racing misses may compute a coordinate twice;
//     both computations produce the identical value.
//
// Unsupported by design: backward stepping, offset-by-N, and distance
// between positions. The traversal surface is forward-only (Next/Compare);
// build a fresh traversal from Start() to revisit earlier elements.
package triangle
