package triangle

// Index is an ordered (row, column) coordinate inside the triangle.
// Validity invariant: Row ≥ 0 and 0 ≤ Col ≤ Row, enforced by NewIndex.
// The zero Index addresses the apex (0, 0).
//
// Ordering is row-major: rows ascend, columns ascend within a row.
// Forward stepping never decreases the row.
type Index struct {
	Row, Col int
}

// NewIndex constructs a validated Index.
// Returns ErrInvalidIndex if row < 0, col < 0, or col > row.
// Complexity: O(1).
func NewIndex(row, col int) (Index, error) {
	if row < 0 || col < 0 || col > row {
		return Index{}, ErrInvalidIndex
	}

	return Index{Row: row, Col: col}, nil
}

// Next returns the row-major successor: the next column, or the first
// column of the next row when the receiver sits at a row's end.
// Complexity: O(1).
func (i Index) Next() Index {
	if i.Col == i.Row {
		return Index{Row: i.Row + 1, Col: 0}
	}

	return Index{Row: i.Row, Col: i.Col + 1}
}

// Compare orders two indexes row-major lexicographically and returns:
//
//	-1 if i precedes o,
//	 0 if they address the same coordinate,
//	+1 if i follows o.
//
// Complexity: O(1).
func (i Index) Compare(o Index) int {
	switch {
	case i.Row < o.Row:
		return -1
	case i.Row > o.Row:
		return +1
	case i.Col < o.Col:
		return -1
	case i.Col > o.Col:
		return +1
	default:
		return 0
	}
}

// IsBoundaryColumn reports whether the index addresses a row's first or
// last column, where the value is always the triangle's base.
// Complexity: O(1).
func (i Index) IsBoundaryColumn() bool {
	return i.Col == 0 || i.Col == i.Row
}

// Parents returns the two coordinates feeding the recurrence at i:
// (Row−1, Col−1) and (Row−1, Col). ok is false — and both parents are the
// zero Index — when i is a boundary column or the apex, since at least one
// parent would then fall outside the triangle.
// Complexity: O(1).
func (i Index) Parents() (upLeft, up Index, ok bool) {
	if i.Row == 0 || i.IsBoundaryColumn() {
		return Index{}, Index{}, false
	}

	return Index{Row: i.Row - 1, Col: i.Col - 1}, Index{Row: i.Row - 1, Col: i.Col}, true
}

// Position is a cursor over the triangle's row-major index space: either a
// bounded Index or the unbounded end marker. The end marker compares after
// every bounded position and never addresses an element; it exists so the
// conceptually infinite index space has an explicit, arithmetic-free upper
// sentinel.
//
// Supported stepping is forward-only. Backward stepping, offset-by-N and
// distance between positions are deliberately unsupported.
type Position struct {
	index     Index
	unbounded bool
}

// Start returns the position of the apex element (0, 0).
func Start() Position {
	return Position{}
}

// End returns the unbounded end position.
func End() Position {
	return Position{unbounded: true}
}

// PositionOf wraps a (validated) Index as a bounded Position.
func PositionOf(i Index) Position {
	return Position{index: i}
}

// IsEnd reports whether p is the unbounded end position.
func (p Position) IsEnd() bool {
	return p.unbounded
}

// Index returns the coordinate p addresses.
// Returns ErrUnboundedPosition for the end position.
func (p Position) Index() (Index, error) {
	if p.unbounded {
		return Index{}, ErrUnboundedPosition
	}

	return p.index, nil
}

// Next returns the row-major successor position. The end position is
// absorbing: End().Next() == End().
// Complexity: O(1).
func (p Position) Next() Position {
	if p.unbounded {
		return p
	}

	return Position{index: p.index.Next()}
}

// Compare orders positions row-major with the end position greatest:
// -1, 0 or +1. Two end positions are equal.
// Complexity: O(1).
func (p Position) Compare(o Position) int {
	switch {
	case p.unbounded && o.unbounded:
		return 0
	case p.unbounded:
		return +1
	case o.unbounded:
		return -1
	default:
		return p.index.Compare(o.index)
	}
}
