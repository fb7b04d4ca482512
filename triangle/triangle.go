package triangle

// Triangle is a lazily evaluated, unbounded arithmetic (Pascal's) triangle.
//
// Every row's first and last column hold the base element; every interior
// entry is the sum of the two entries diagonally above it. Values are
// computed on demand and memoized; thanks to horizontal symmetry
// (value(r,c) == value(r,r−c)) only interior left-half coordinates are ever
// stored, halving the resident set.
//
// The struct is immutable except for its memo store, which is a derived
// artifact: it never changes an observable value. A Triangle is safe for
// concurrent readers only when built with WithConcurrentCache; otherwise
// synchronize externally.
type Triangle[T Number] struct {
	base    T
	cache   store[T]
	memoize bool

	// fastRowSum, when non-nil, computes a whole-row sum in O(1).
	// Installed by NewInt/NewUnit for shift-capable element types.
	fastRowSum func(row int) T
}

// New constructs a Triangle with an explicit base element.
// Row sums use the generic O(row) halving algorithm; for integer element
// types prefer NewInt, which unlocks the O(1) shift path.
// Complexity: O(1).
func New[T Number](base T, opts ...Option) *Triangle[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var c store[T]
	if o.concurrent {
		c = newShardedStore[T]()
	} else {
		c = newMapStore[T]()
	}

	return &Triangle[T]{base: base, cache: c, memoize: o.memoize}
}

// NewInt constructs a Triangle over an integer-ring element type.
// It behaves exactly like New and additionally installs the O(1) row-sum
// shortcut sum(row) = base << row. The shift follows the element type's
// native overflow behavior (Go wraparound); callers needing exact sums for
// very large rows must pre-validate the row against the element's bit width.
// Complexity: O(1).
func NewInt[T Integer](base T, opts ...Option) *Triangle[T] {
	t := New(base, opts...)
	t.fastRowSum = func(row int) T { return base << row }

	return t
}

// NewUnit constructs an integer Triangle with the conventional base of 1.
// Complexity: O(1).
func NewUnit[T Integer](opts ...Option) *Triangle[T] {
	return NewInt(T(1), opts...)
}

// Base returns the element occupying every row's first and last column.
func (t *Triangle[T]) Base() T {
	return t.base
}

// NumberOfColumns returns the column count of a row: row+1 for row ≥ 0,
// otherwise 0.
func NumberOfColumns(row int) int {
	if row < 0 {
		return 0
	}

	return row + 1
}

// Value returns the element at (row, column).
// Returns ErrInvalidIndex if row < 0. Columns outside [0, row] are not an
// error: they yield the additive zero, matching the recurrence's view of
// the space outside the triangle.
// Complexity: amortized O(1) per previously computed coordinate; a cold
// interior lookup fills its dependency cone in O(row²) and memoizes it.
func (t *Triangle[T]) Value(row, col int) (T, error) {
	var zero T
	if row < 0 {
		return zero, ErrInvalidIndex
	}

	return t.valueAt(row, col), nil
}

// At returns the element addressed by a validated Index.
// Complexity: as Value.
func (t *Triangle[T]) At(i Index) T {
	return t.valueAt(i.Row, i.Col)
}

// AtPosition returns the element addressed by a bounded Position.
// Returns ErrUnboundedPosition for the end position.
func (t *Triangle[T]) AtPosition(p Position) (T, error) {
	i, err := p.Index()
	if err != nil {
		var zero T

		return zero, err
	}

	return t.valueAt(i.Row, i.Col), nil
}

// CacheSize reports the number of memoized interior left-half entries.
func (t *Triangle[T]) CacheSize() int {
	return t.cache.size()
}

// valueAt implements the lookup policy, in priority order:
//
//  1. row < 0            → additive zero (internal probes below the apex)
//  2. column ∈ {0, row}  → base
//  3. column outside row → additive zero
//  4. right half         → reflect to the symmetric left-half coordinate
//  5. interior left half → memo hit, or iterative fill of the cone
func (t *Triangle[T]) valueAt(row, col int) T {
	var zero T
	switch {
	case row < 0:
		return zero
	case col == 0 || col == row:
		return t.base
	case col < 0 || col > row:
		return zero
	}
	if col > row/2 {
		col = row - col
	}
	if v, ok := t.cache.load(Index{Row: row, Col: col}); ok {
		return v
	}

	return t.fill(row, col)
}

// canonical maps an in-triangle coordinate to its left-half representative.
func canonical(i Index) Index {
	if i.Col > i.Row/2 {
		i.Col = i.Row - i.Col
	}

	return i
}

// fill computes the element at the interior left-half coordinate (row, col)
// by expanding the recurrence bottom-up over an explicit work stack, so the
// call stack stays flat no matter how deep the row is. Resolved entries
// land in a scratch map first and are flushed to the persistent store
// afterwards unless memoization is disabled.
//
// Each stack entry is an interior left-half coordinate whose value is still
// unknown; it is resolved once both recurrence parents are derivable in
// O(1). The parent rows strictly decrease, so the expansion terminates.
// Complexity: O(row²) worst case on a cold store, O(1) amortized afterwards.
func (t *Triangle[T]) fill(row, col int) T {
	scratch := make(map[Index]T)
	target := Index{Row: row, Col: col}
	stack := []Index{target}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		if _, done := scratch[cur]; done {
			stack = stack[:len(stack)-1]

			continue
		}
		upLeft, up, _ := cur.Parents() // cur is interior, parents are in-triangle
		l, lok := t.resolve(scratch, upLeft)
		r, rok := t.resolve(scratch, up)
		if lok && rok {
			scratch[cur] = l + r
			stack = stack[:len(stack)-1]

			continue
		}
		if !lok {
			stack = append(stack, canonical(upLeft))
		}
		if !rok {
			stack = append(stack, canonical(up))
		}
	}

	if t.memoize {
		for i, v := range scratch {
			t.cache.put(i, v)
		}
	}

	return scratch[target]
}

// resolve returns the value at i when it is derivable in O(1): a boundary
// column, an exterior probe, or a (symmetry-normalized) scratch or store
// hit. ok is false when the coordinate still needs computation.
func (t *Triangle[T]) resolve(scratch map[Index]T, i Index) (T, bool) {
	var zero T
	switch {
	case i.Row < 0:
		return zero, true
	case i.Col == 0 || i.Col == i.Row:
		return t.base, true
	case i.Col < 0 || i.Col > i.Row:
		return zero, true
	}
	c := canonical(i)
	if v, ok := scratch[c]; ok {
		return v, true
	}
	if v, ok := t.cache.load(c); ok {
		return v, true
	}

	return zero, false
}
