package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	require.Len(t, Cards(), 10)
	require.Len(t, Puzzles(), 5)

	for _, p := range Puzzles() {
		assert.GreaterOrEqual(t, len(p.Choices), 2, p.Question)
		assert.Less(t, p.Answer, len(p.Choices), p.Question)
	}
}

func TestBuiltin_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := Cards()
	c[0].Front = "changed"
	p := Puzzles()
	p[0].Choices[0] = "changed"

	assert.NotEqual(t, "changed", Cards()[0].Front)
	assert.NotEqual(t, "changed", Puzzles()[0].Choices[0])
}
