package shuffle

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a scripted list of picks.
type fixedSource struct {
	picks []int
	calls []int
}

func (f *fixedSource) IntN(n int) int {
	f.calls = append(f.calls, n)
	v := f.picks[0]
	f.picks = f.picks[1:]
	return v
}

func TestPerm_IsPermutation(t *testing.T) {
	t.Parallel()

	src := NewSeededSource(42)

	for n := 0; n <= 64; n++ {
		got := Perm(src, n)
		require.Len(t, got, n)

		sorted := append([]int(nil), got...)
		sort.Ints(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v, "n=%d", n)
		}
	}
}

func TestPerm_EdgeSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "zero", n: 0, want: []int{}},
		{name: "negative", n: -3, want: []int{}},
		{name: "one", n: 1, want: []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Perm(NewCryptoSource(), tt.n))
		})
	}
}

func TestPerm_SwapsFromLastDownToOne(t *testing.T) {
	t.Parallel()

	src := &fixedSource{picks: []int{0, 0, 0}}

	got := Perm(src, 4)

	assert.Equal(t, []int{4, 3, 2}, src.calls)
	assert.Equal(t, []int{1, 2, 3, 0}, got)
}

func TestPerm_FreshSlicePerCall(t *testing.T) {
	t.Parallel()

	src := NewSeededSource(7)
	a := Perm(src, 5)
	b := Perm(src, 5)
	a[0] = 99

	assert.NotEqual(t, 99, b[0])
}

func TestPerm_Seeded_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Perm(NewSeededSource(3), 10), Perm(NewSeededSource(3), 10))
}

func TestPerm_RoughlyUniform(t *testing.T) {
	t.Parallel()

	const runs = 6000
	src := NewSeededSource(11)
	counts := make(map[[3]int]int)

	for range runs {
		p := Perm(src, 3)
		counts[[3]int{p[0], p[1], p[2]}]++
	}

	require.Len(t, counts, 6)
	for k, c := range counts {
		assert.InDelta(t, runs/6, c, runs/6*0.2, "permutation %v", k)
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	items := []int{10, 20, 30, 40}
	got := Of(NewSeededSource(5), items)

	assert.Equal(t, []int{10, 20, 30, 40}, items)
	assert.ElementsMatch(t, items, got)
}

func TestCryptoSource_Range(t *testing.T) {
	t.Parallel()

	src := NewCryptoSource()
	for range 200 {
		v := src.IntN(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, src.IntN(1))
}
