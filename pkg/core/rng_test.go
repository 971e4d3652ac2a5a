package core

import (
	"slices"
	"testing"
)

func TestScatterDeterministic(t *testing.T) {
	a := NewRNG(7).Scatter(11, 400, 400, 255)
	b := NewRNG(7).Scatter(11, 400, 400, 255)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same scatter")
	}
	c := NewRNG(8).Scatter(11, 400, 400, 255)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different scatters")
	}
	for i, s := range a {
		if s[0] < 0 || s[0] >= 400 || s[1] < 0 || s[1] >= 400 || s[2] < 0 || s[2] >= 255 {
			t.Fatalf("triple %d out of range: %v", i, s)
		}
	}
}

func TestScatterEmpty(t *testing.T) {
	if got := NewRNG(1).Scatter(0, 10, 10, 10); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
	if got := NewRNG(1).Float64n(0); got != 0 {
		t.Fatalf("expected 0 for empty range, got %f", got)
	}
}
