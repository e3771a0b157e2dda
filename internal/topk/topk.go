// Package topk selects the indices of the best K scores without sorting the
// whole score array.
package topk

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/hyperjump/vecscan/internal/vector"
)

// Indices returns the indices of the k largest scores, largest first.
// k is clamped to len(scores); k <= 0 yields an empty result. NaN ranks
// below every number. The order among equal scores is unspecified.
func Indices(scores []vector.Float, k int) []int {
	return selectTop(scores, k, greater)
}

// Ascending returns the indices of the k smallest scores, smallest first.
// Use it for distance metrics. NaN still ranks last.
func Ascending(scores []vector.Float, k int) []int {
	return selectTop(scores, k, less)
}

func isNaN(x vector.Float) bool {
	return math.IsNaN(float64(x))
}

func greater(a, b vector.Float) bool {
	if isNaN(a) {
		return false
	}
	return isNaN(b) || a > b
}

func less(a, b vector.Float) bool {
	if isNaN(a) {
		return false
	}
	return isNaN(b) || a < b
}

// selectTop runs in two phases: a quickselect that moves the k best entries
// to the front in expected O(n), then a sort of that front in O(k log k).
func selectTop(scores []vector.Float, k int, better func(a, b vector.Float) bool) []int {
	n := len(scores)
	k = min(k, n)
	if k <= 0 {
		return []int{}
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if k < n {
		partialSelect(scores, idx, k-1, better)
	}
	front := idx[:k]
	slices.SortFunc(front, func(a, b int) int {
		switch {
		case better(scores[a], scores[b]):
			return -1
		case better(scores[b], scores[a]):
			return 1
		default:
			return 0
		}
	})
	return slices.Clone(front)
}

// partialSelect reorders idx so that position nth holds the entry that would
// be there after a full sort, with every better entry before it.
func partialSelect(scores []vector.Float, idx []int, nth int, better func(a, b vector.Float) bool) {
	lo, hi := 0, len(idx)-1
	for lo < hi {
		pivot := scores[idx[lo+rand.IntN(hi-lo+1)]]
		// three-way partition: [lo,lt) better, [lt,gt] equal, (gt,hi] worse
		lt, i, gt := lo, lo, hi
		for i <= gt {
			s := scores[idx[i]]
			switch {
			case better(s, pivot):
				idx[lt], idx[i] = idx[i], idx[lt]
				lt++
				i++
			case better(pivot, s):
				idx[i], idx[gt] = idx[gt], idx[i]
				gt--
			default:
				i++
			}
		}
		switch {
		case nth < lt:
			hi = lt - 1
		case nth > gt:
			lo = gt + 1
		default:
			return
		}
	}
}
