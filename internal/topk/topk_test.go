package topk

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperjump/vecscan/internal/vector"
)

func TestIndices_Scenario(t *testing.T) {
	scores := []vector.Float{1.0, 0.0, 0.7071}
	assert.Equal(t, []int{0, 2}, Indices(scores, 2))
}

func TestIndices_ClampsK(t *testing.T) {
	scores := []vector.Float{0.1, 0.9, 0.5}
	assert.Equal(t, []int{1, 2, 0}, Indices(scores, 10))
	assert.Equal(t, []int{1, 2, 0}, Indices(scores, 3))
}

func TestIndices_Empty(t *testing.T) {
	assert.Empty(t, Indices(nil, 5))
	assert.Empty(t, Indices([]vector.Float{1, 2}, 0))
	assert.Empty(t, Indices([]vector.Float{1, 2}, -1))
	assert.NotNil(t, Indices(nil, 5))
}

func TestIndices_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.IntN(300)
		scores := make([]vector.Float, n)
		for i := range scores {
			// coarse values force plenty of ties
			scores[i] = vector.Float(r.IntN(20)) / 4
		}
		for _, k := range []int{1, n / 3, n - 1, n} {
			if k < 1 {
				continue
			}
			got := Indices(scores, k)
			require.Len(t, got, k)

			seen := make(map[int]bool, k)
			for i, ix := range got {
				require.True(t, ix >= 0 && ix < n, "index %d out of range", ix)
				require.False(t, seen[ix], "duplicate index %d", ix)
				seen[ix] = true
				if i > 0 {
					require.GreaterOrEqual(t, scores[got[i-1]], scores[ix], "not non-increasing at %d", i)
				}
			}

			sorted := slices.Clone(scores)
			slices.SortFunc(sorted, func(a, b vector.Float) int {
				switch {
				case a > b:
					return -1
				case a < b:
					return 1
				}
				return 0
			})
			assert.Equal(t, sorted[k-1], scores[got[k-1]], "k-th selected score must equal the k-th largest")
		}
	}
}

func TestIndices_DoesNotMutateScores(t *testing.T) {
	scores := []vector.Float{3, 1, 2, 5, 4}
	before := slices.Clone(scores)
	_ = Indices(scores, 2)
	assert.Equal(t, before, scores)
}

func TestIndices_AllEqual(t *testing.T) {
	scores := make([]vector.Float, 1000)
	got := Indices(scores, 10)
	require.Len(t, got, 10)
	seen := map[int]bool{}
	for _, ix := range got {
		assert.False(t, seen[ix])
		seen[ix] = true
	}
}

func TestIndices_NaNRanksLast(t *testing.T) {
	nan := vector.Float(math.NaN())
	scores := []vector.Float{nan, 0.5, -1, nan, 0.9}
	assert.Equal(t, []int{4, 1, 2}, Indices(scores, 3))
	assert.Equal(t, []int{2, 1, 4}, Ascending(scores, 3))
}

func TestAscending(t *testing.T) {
	l2 := []vector.Float{0.0, 2.0, 0.5}
	assert.Equal(t, []int{0, 2}, Ascending(l2, 2))
	assert.Equal(t, []int{0, 2, 1}, Ascending(l2, 99))
}

func TestAscending_MatchesNegatedIndices(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	scores := make([]vector.Float, 200)
	neg := make([]vector.Float, len(scores))
	for i := range scores {
		scores[i] = vector.Float(r.Float64())
		neg[i] = -scores[i]
	}
	assert.Equal(t, Indices(neg, 15), Ascending(scores, 15))
}
