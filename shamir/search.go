package shamir

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// Candidate is a scored subset: the polynomial through its shares, its constant
// term, and how many table shares lie on it.
type Candidate struct {
	Secret   *big.Int
	FitCount int
	Subset   Subset
	// Evaluated is the number of subsets scored to produce this candidate.
	Evaluated uint64
}

type searchOptions struct {
	workers    int
	maxSubsets uint64
}

// SearchOption configures Search.
type SearchOption func(*searchOptions)

// WithWorkers searches contiguous chunks of the subset space concurrently.
// The result is identical to a sequential search.
func WithWorkers(workers int) SearchOption {
	return func(o *searchOptions) {
		o.workers = workers
	}
}

// WithMaxSubsets refuses to search when C(n, k) exceeds limit. Zero means no limit.
func WithMaxSubsets(limit uint64) SearchOption {
	return func(o *searchOptions) {
		o.maxSubsets = limit
	}
}

// Search scores every k-subset of the table and returns the one whose
// interpolated polynomial agrees with the most shares. Ties keep the subset
// that comes first in lexicographic order.
//
// Cancellation of ctx stops the search with ErrSearchBudgetExceeded.
func Search(ctx context.Context, table Table, k int, options ...SearchOption) (Candidate, error) {
	opts := &searchOptions{workers: 1}
	for _, option := range options {
		option(opts)
	}

	if k < 1 {
		return Candidate{}, ErrInvalidThreshold
	}

	n := table.Len()
	if k > n {
		return Candidate{}, fmt.Errorf("%w: threshold %d, valid shares %d", ErrInsufficientShares, k, n)
	}

	total, ok := Binomial(n, k)
	if opts.maxSubsets > 0 && (!ok || total > opts.maxSubsets) {
		return Candidate{}, fmt.Errorf("%w: C(%d, %d) subsets exceed limit %d", ErrSearchBudgetExceeded, n, k, opts.maxSubsets)
	}

	if opts.workers <= 1 || !ok || total < uint64(opts.workers) {
		return searchSeq(ctx, table, Combinations(n, k))
	}

	return searchChunks(ctx, table, k, total, opts.workers)
}

// searchSeq folds the scored subsets of seq into the best candidate.
func searchSeq(ctx context.Context, table Table, seq iter.Seq[Subset]) (Candidate, error) {
	xs, ys := table.Points()

	best := Candidate{FitCount: -1}
	var evaluated uint64

	for subset := range seq {
		if err := ctx.Err(); err != nil {
			return Candidate{}, errors.Join(ErrSearchBudgetExceeded, err)
		}

		candidate, err := score(table, xs, ys, subset)
		if err != nil {
			return Candidate{}, err
		}
		evaluated++

		best = fold(best, candidate)

		// nothing can fit more than every share
		if best.FitCount == len(xs) {
			break
		}
	}

	best.Evaluated = evaluated
	return best, nil
}

// searchChunks splits the rank space [0, total) into contiguous chunks, searches
// them concurrently and folds the chunk winners in rank order.
func searchChunks(ctx context.Context, table Table, k int, total uint64, workers int) (Candidate, error) {
	n := table.Len()
	size := (total + uint64(workers) - 1) / uint64(workers)
	chunks := int((total + size - 1) / size)

	results := make([]Candidate, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for c := range chunks {
		first := uint64(c) * size
		count := min(size, total-first)

		g.Go(func() error {
			start, err := Unrank(n, k, first)
			if err != nil {
				return err
			}

			best, err := searchSeq(gctx, table, combinationRange(n, start, count))
			if err != nil {
				return err
			}

			results[c] = best
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Candidate{}, err
	}

	best := Candidate{FitCount: -1}
	var evaluated uint64
	for _, result := range results {
		evaluated += result.Evaluated
		best = fold(best, result)
	}

	best.Evaluated = evaluated
	return best, nil
}

// fold keeps best unless next fits strictly more shares.
func fold(best, next Candidate) Candidate {
	if next.FitCount > best.FitCount {
		return next
	}
	return best
}

// score interpolates through subset and counts the shares (xs, ys) lying on the result.
func score(table Table, xs, ys []*big.Int, subset Subset) (Candidate, error) {
	subXs, subYs := table.Subset(subset)

	secret, err := SecretAt0(subXs, subYs)
	if err != nil {
		return Candidate{}, err
	}

	fitCount := 0
	for i := range xs {
		y, err := EvaluateAt(xs[i], subXs, subYs)
		if err != nil {
			return Candidate{}, err
		}

		if y.Cmp(ys[i]) == 0 {
			fitCount++
		}
	}

	return Candidate{
		Secret:   secret,
		FitCount: fitCount,
		Subset:   subset,
	}, nil
}
