package winepaint

import (
	"math"
	"testing"
)

func TestRandomState_Deterministic(t *testing.T) {
	a, b := NewRandomState(DefaultSeed), NewRandomState(DefaultSeed)
	for i := range 100 {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
		if x, y := a.Beta(2, 1.5), b.Beta(2, 1.5); x != y {
			t.Fatalf("beta draw %d: %v != %v", i, x, y)
		}
	}

	c := NewRandomState(DefaultSeed + 1)
	d := NewRandomState(DefaultSeed)
	same := 0
	for range 32 {
		if c.Float64() == d.Float64() {
			same++
		}
	}
	if same == 32 {
		t.Error("different seeds produced the same sequence")
	}
}

func TestRandomState_IntRange(t *testing.T) {
	r := NewRandomState(7)
	seen := map[int]bool{}
	for range 1000 {
		v := r.IntRange(3, 8)
		if v < 3 || v >= 8 {
			t.Fatalf("IntRange(3, 8) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("IntRange(3, 8) produced %d distinct values, want 5", len(seen))
	}
	if got := r.IntRange(1, 2); got != 1 {
		t.Errorf("IntRange(1, 2) = %d, want 1", got)
	}
	if got := r.IntRange(4, 4); got != 4 {
		t.Errorf("IntRange(4, 4) = %d, want 4", got)
	}
}

func TestRandomState_Uniform(t *testing.T) {
	r := NewRandomState(3)
	for range 1000 {
		if v := r.Uniform(0.2, 0.85); v < 0.2 || v >= 0.85 {
			t.Fatalf("Uniform(0.2, 0.85) = %v", v)
		}
	}
}

func TestRandomState_BetaMoments(t *testing.T) {
	tests := []struct{ a, b float64 }{{2, 1.5}, {0.5, 0.5}, {5, 1}}
	for _, tt := range tests {
		r := NewRandomState(11)
		const n = 20000
		var sum float64
		for range n {
			v := r.Beta(tt.a, tt.b)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Beta(%v, %v) = %v", tt.a, tt.b, v)
			}
			sum += v
		}
		mean := sum / n
		want := tt.a / (tt.a + tt.b)
		if math.Abs(mean-want) > 0.015 {
			t.Errorf("Beta(%v, %v) mean = %v, want about %v", tt.a, tt.b, mean, want)
		}
	}
}
