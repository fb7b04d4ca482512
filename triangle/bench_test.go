package triangle_test

import (
	"testing"

	"github.com/katalvlaran/pascal/triangle"
)

// BenchmarkValue_ColdFill measures a cold interior lookup: each iteration
// builds a fresh triangle and fills the dependency cone of (row, row/2).
func BenchmarkValue_ColdFill(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tri := triangle.NewUnit[uint64]()
		if _, err := tri.Value(128, 64); err != nil {
			b.Fatalf("Value failed: %v", err)
		}
	}
}

// BenchmarkValue_Warm measures repeated lookups against a populated store.
func BenchmarkValue_Warm(b *testing.B) {
	tri := triangle.NewUnit[uint64]()
	if _, err := tri.Value(128, 64); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer() // ignore fill time
	for i := 0; i < b.N; i++ {
		if _, err := tri.Value(128, 64); err != nil {
			b.Fatalf("Value failed: %v", err)
		}
	}
}

// BenchmarkValue_WithoutMemoization measures the re-expansion cost when
// write-back is disabled.
func BenchmarkValue_WithoutMemoization(b *testing.B) {
	tri := triangle.NewUnit[uint64](triangle.WithoutMemoization())
	for i := 0; i < b.N; i++ {
		if _, err := tri.Value(64, 32); err != nil {
			b.Fatalf("Value failed: %v", err)
		}
	}
}

// BenchmarkSumOfRow_Shift measures the O(1) integer shortcut.
func BenchmarkSumOfRow_Shift(b *testing.B) {
	tri := triangle.NewUnit[uint64]()
	for i := 0; i < b.N; i++ {
		if _, err := tri.SumOfRow(1000); err != nil {
			b.Fatalf("SumOfRow failed: %v", err)
		}
	}
}

// BenchmarkSumOfRow_Halving measures the generic O(row) path on a warm store.
func BenchmarkSumOfRow_Halving(b *testing.B) {
	tri := triangle.New(uint64(1))
	if _, err := tri.SumOfRow(128); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tri.SumOfRow(128); err != nil {
			b.Fatalf("SumOfRow failed: %v", err)
		}
	}
}

// BenchmarkSumOfColumns_Interior measures the direct interior tier.
func BenchmarkSumOfColumns_Interior(b *testing.B) {
	tri := triangle.NewUnit[uint64]()
	span := triangle.NewSpan(40, 60)
	if _, err := tri.SumOfColumns(span, 128); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tri.SumOfColumns(span, 128); err != nil {
			b.Fatalf("SumOfColumns failed: %v", err)
		}
	}
}

// BenchmarkSumOfColumns_Fringe measures the subtract-the-boundary tier.
func BenchmarkSumOfColumns_Fringe(b *testing.B) {
	tri := triangle.NewUnit[uint64]()
	span := triangle.NewSpan(1, 127)
	if _, err := tri.SumOfColumns(span, 128); err != nil {
		b.Fatalf("warm-up failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tri.SumOfColumns(span, 128); err != nil {
			b.Fatalf("SumOfColumns failed: %v", err)
		}
	}
}
