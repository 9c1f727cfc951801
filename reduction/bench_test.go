package reduction_test

import (
	"testing"

	"github.com/katalvlaran/pairfold/reduction"
)

// BenchmarkSum_Homework folds the ten-number example. Parsing is part of
// each iteration because Sum consumes its inputs.
func BenchmarkSum_Homework(b *testing.B) {
	for i := 0; i < b.N; i++ {
		numbers := parseLines(b, homework)
		if _, err := reduction.Sum(numbers); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMaxPairMagnitude runs the 90 ordered pairs of the example.
func BenchmarkMaxPairMagnitude(b *testing.B) {
	numbers := parseLines(b, homework)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = reduction.MaxPairMagnitude(numbers)
	}
}
