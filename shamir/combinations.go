package shamir

import (
	"iter"
	"math/big"
	"slices"
)

// Subset is a strictly increasing sequence of table positions.
type Subset []int

// Clone returns an independent copy of the subset.
func (s Subset) Clone() Subset {
	return slices.Clone(s)
}

// Combinations yields every k-element subset of [0, n) exactly once, in
// lexicographic order. Each yielded subset is owned by the caller.
func Combinations(n, k int) iter.Seq[Subset] {
	return func(yield func(Subset) bool) {
		if k < 0 || k > n {
			return
		}

		current := make(Subset, k)
		for i := range current {
			current[i] = i
		}

		for {
			if !yield(current.Clone()) {
				return
			}
			if !nextCombination(current, n) {
				return
			}
		}
	}
}

// combinationRange yields count subsets starting at start, in lexicographic order.
func combinationRange(n int, start Subset, count uint64) iter.Seq[Subset] {
	return func(yield func(Subset) bool) {
		current := start.Clone()

		for ; count > 0; count-- {
			if !yield(current.Clone()) {
				return
			}
			if !nextCombination(current, n) {
				return
			}
		}
	}
}

// nextCombination advances c to its lexicographic successor in place.
// It returns false when c is the last combination.
func nextCombination(c Subset, n int) bool {
	k := len(c)

	// rightmost position that can still be incremented
	i := k - 1
	for i >= 0 && c[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}

	c[i]++
	for j := i + 1; j < k; j++ {
		c[j] = c[j-1] + 1
	}

	return true
}

// Binomial returns C(n, k). The boolean is false when the value does not fit in uint64.
func Binomial(n, k int) (uint64, bool) {
	if k < 0 || n < 0 || k > n {
		return 0, true
	}

	result := new(big.Int).Binomial(int64(n), int64(k))
	if !result.IsUint64() {
		return 0, false
	}

	return result.Uint64(), true
}

// Unrank returns the k-element subset of [0, n) at position rank in the
// lexicographic order produced by Combinations.
func Unrank(n, k int, rank uint64) (Subset, error) {
	total, ok := Binomial(n, k)
	if !ok || rank >= total {
		return nil, ErrRankOutOfRange
	}

	subset := make(Subset, k)
	next := 0

	for i := range k {
		for c := next; ; c++ {
			// subsets that place c at position i
			count, _ := Binomial(n-c-1, k-i-1)
			if rank < count {
				subset[i] = c
				next = c + 1
				break
			}
			rank -= count
		}
	}

	return subset, nil
}
