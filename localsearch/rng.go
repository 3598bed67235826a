package localsearch

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Source yields uniform draws strictly inside (0,1).
// Move kinds are taken as ⌊3·Next()⌋ and node ids as ⌊n·Next()⌋.
type Source interface {
	Next() float64
}

// randSource adapts *rand.Rand to Source.
type randSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewSource(seed int64) Source {
	return randSource{r: rngFromSeed(seed)}
}

// Next implements Source. Float64 may return 0; such draws are skipped.
func (s randSource) Next() float64 {
	var x float64
	for x == 0 {
		x = s.r.Float64()
	}

	return x
}

// rngFromSeed returns a deterministic *rand.Rand.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// pick maps a draw onto [0,k).
func pick(src Source, k int) int {
	i := int(src.Next() * float64(k))
	if i >= k {
		i = k - 1
	}

	return i
}
