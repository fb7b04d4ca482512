package triangle

// Span is an inclusive (closed) column interval [Lo, Hi].
// A Span with Lo > Hi is empty. Spans handed to SumOfColumns may extend
// past a row's valid columns; out-of-row columns are clipped, not rejected.
type Span struct {
	Lo, Hi int
}

// NewSpan returns the inclusive interval [lo, hi].
func NewSpan(lo, hi int) Span {
	return Span{Lo: lo, Hi: hi}
}

// Empty reports whether the span contains no columns.
func (s Span) Empty() bool {
	return s.Lo > s.Hi
}

// Len returns the number of columns in the span, 0 when empty.
func (s Span) Len() int {
	if s.Empty() {
		return 0
	}

	return s.Hi - s.Lo + 1
}

// Contains reports whether every column of o lies within s.
// An empty o is contained in nothing, including another empty span.
// Complexity: O(1).
func (s Span) Contains(o Span) bool {
	if o.Empty() {
		return false
	}

	return s.Lo <= o.Lo && o.Hi <= s.Hi
}

// Clip intersects the span with the inclusive interval [lo, hi].
func (s Span) Clip(lo, hi int) Span {
	if s.Lo < lo {
		s.Lo = lo
	}
	if s.Hi > hi {
		s.Hi = hi
	}

	return s
}

// spanClass names the range-sum dispatch tiers. Classification runs on the
// row-clipped span, so each class implies a concrete, independently
// testable summation strategy; every class satisfies the same contract:
// the result equals Σ value(row, c) over the clipped span.
type spanClass int

const (
	// spanEmpty: no columns survive clipping → additive zero.
	spanEmpty spanClass = iota
	// spanSingle: one column → direct lookup, O(1).
	spanSingle
	// spanFullRow: the span covers [0, row] → whole-row engine.
	spanFullRow
	// spanShallowRow: row < 4, every column counts as exterior → direct
	// summation of the clipped span, O(row).
	spanShallowRow
	// spanInterior: the span avoids the exterior columns {0,1,row−1,row}
	// entirely → direct summation, O(len).
	spanInterior
	// spanFringe: the span covers the whole interior and omits only
	// exterior columns → whole-row sum minus the omitted exterior columns,
	// at most 4 extra lookups.
	spanFringe
	// spanMixed: the span touches one exterior side but stops mid-row, so
	// the subtraction trick would be unsound → direct summation, O(len).
	spanMixed
)

// classifySpan assigns the dispatch tier for a span already clipped to
// [0, row]. The fringe tier requires the clipped span's complement within
// the row to consist solely of exterior columns (Lo ≤ 2 and Hi ≥ row−2);
// anything else that touches an exterior column falls through to spanMixed.
func classifySpan(s Span, row int) spanClass {
	switch {
	case s.Empty():
		return spanEmpty
	case s.Lo == s.Hi:
		return spanSingle
	case s.Lo == 0 && s.Hi == row:
		return spanFullRow
	case row < 4:
		return spanShallowRow
	case s.Lo >= 2 && s.Hi <= row-2:
		return spanInterior
	case s.Lo <= 2 && s.Hi >= row-2:
		return spanFringe
	default:
		return spanMixed
	}
}

// SumOfRow returns the sum of every element in a row.
// Returns ErrInvalidIndex if row < 0.
//
// Integer triangles (NewInt/NewUnit) compute base << row in O(1), with the
// element type's native wraparound on overflow. Generic triangles take the
// O(row) path: the base for row 0, repeated doubling for rows 1–3 (row sums
// always double row to row), and for deeper rows the halving algorithm —
// sum the left half directly, double it by symmetry, and add the middle
// column once when the column count is odd.
func (t *Triangle[T]) SumOfRow(row int) (T, error) {
	var zero T
	if row < 0 {
		return zero, ErrInvalidIndex
	}
	if t.fastRowSum != nil {
		return t.fastRowSum(row), nil
	}
	if row < 4 {
		sum := t.base
		for r := 1; r <= row; r++ {
			sum += sum
		}

		return sum, nil
	}

	mid, rem := (row+1)/2, (row+1)%2
	var sum T
	for c := 0; c < mid; c++ {
		sum += t.valueAt(row, c)
	}
	sum += sum
	if rem == 1 {
		sum += t.valueAt(row, mid)
	}

	return sum, nil
}

// SumOfColumns returns the sum of the elements at the span's columns within
// a row, silently excluding columns outside [0, row].
// Returns ErrInvalidIndex if row < 0.
//
// Dispatch is tiered by the clipped span's shape (see spanClass): empty,
// single column, full row, shallow row, pure interior, interior-covering
// fringe, and the mixed fallthrough. Whatever the tier, the result equals
// the direct sum of value(row, c) over the clipped span.
func (t *Triangle[T]) SumOfColumns(span Span, row int) (T, error) {
	var zero T
	if row < 0 {
		return zero, ErrInvalidIndex
	}

	s := span.Clip(0, row)
	switch classifySpan(s, row) {
	case spanEmpty:
		return zero, nil
	case spanSingle:
		return t.valueAt(row, s.Lo), nil
	case spanFullRow:
		return t.SumOfRow(row)
	case spanFringe:
		total, err := t.SumOfRow(row)
		if err != nil {
			return zero, err
		}
		for _, c := range [4]int{0, 1, row - 1, row} {
			if c < s.Lo || c > s.Hi {
				total -= t.valueAt(row, c)
			}
		}

		return total, nil
	default: // spanShallowRow, spanInterior, spanMixed
		return t.sumDirect(s, row), nil
	}
}

// sumDirect adds up the clipped span column by column.
// Complexity: O(Len) lookups.
func (t *Triangle[T]) sumDirect(s Span, row int) T {
	var sum T
	for c := s.Lo; c <= s.Hi; c++ {
		sum += t.valueAt(row, c)
	}

	return sum
}
