package triangle

import "iter"

// Elements returns the triangle's elements as a lazy, infinite sequence in
// row-major order: row 0's single column, then row 1's two columns, and so
// on forever. The sequence has no end; iteration runs until the consumer
// breaks. Every range over the returned Seq restarts from the apex — there
// is no mid-sequence resumption.
func (t *Triangle[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := (Index{}); ; i = i.Next() {
			if !yield(t.valueAt(i.Row, i.Col)) {
				return
			}
		}
	}
}

// Indexed is Elements with coordinates: it yields (Index, element) pairs in
// the same unbounded row-major order.
func (t *Triangle[T]) Indexed() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i := (Index{}); ; i = i.Next() {
			if !yield(i, t.valueAt(i.Row, i.Col)) {
				return
			}
		}
	}
}
