// Package shuffle produces uniformly random permutations of deck indices.
package shuffle

import (
	crypto "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Perm returns a fresh random permutation of [0, n) using a Fisher-Yates pass
// from the last element down to index 1. Non-positive n yields an empty slice.
func Perm(src Source, n int) []int {
	if n <= 0 {
		return []int{}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	return order
}

// Of returns a shuffled copy of items. The input is left untouched.
func Of(src Source, items []int) []int {
	out := make([]int, len(items))
	for i, p := range Perm(src, len(items)) {
		out[i] = items[p]
	}
	return out
}

// CryptoSource draws from crypto/rand and falls back to math/rand when the
// system reader fails. It is safe for concurrent use.
type CryptoSource struct{}

func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) IntN(n int) int {
	if n <= 1 {
		return 0
	}

	v, err := crypto.Int(crypto.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n)
	}

	return int(v.Int64())
}

// SeededSource is a deterministic source for tests and reproducible runs. It
// is not safe for concurrent use.
type SeededSource struct {
	r *rand.Rand
}

func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.IntN(n)
}
