package winepaint

import (
	"math"
	"math/rand/v2"
)

// DefaultSeed is the seed used when a Renderer is not given one.
const DefaultSeed uint64 = 42

// RandomState is the per-render pseudo-random source. It is created from
// an explicit seed for each render call and is not safe for concurrent use;
// two states with the same seed produce the same sequence.
type RandomState struct {
	r *rand.Rand
}

// NewRandomState returns a generator seeded with seed.
func NewRandomState(seed uint64) *RandomState {
	return &RandomState{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (s *RandomState) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *RandomState) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// Normal returns a standard normal variate.
func (s *RandomState) Normal() float64 {
	return s.r.NormFloat64()
}

// IntRange returns an integer in [lo, hi). It returns lo when hi <= lo.
func (s *RandomState) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo)
}

// Beta returns a Beta(a, b) variate via two gamma draws.
func (s *RandomState) Beta(a, b float64) float64 {
	x := s.gamma(a)
	y := s.gamma(b)
	if x+y == 0 {
		return 0
	}
	return x / (x + y)
}

// gamma returns a Gamma(k, 1) variate using Marsaglia and Tsang's method.
func (s *RandomState) gamma(k float64) float64 {
	if k < 1 {
		// Boost: Gamma(k) = Gamma(k+1) * U^(1/k).
		u := s.r.Float64()
		return s.gamma(k+1) * math.Pow(u, 1/k)
	}

	d := k - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for v <= 0 {
			x = s.r.NormFloat64()
			v = 1 + c*x
		}
		v = v * v * v
		u := s.r.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
