package shamir

import (
	"context"
)

// Recover decodes a share document and reconstructs its secret, tolerating
// corrupted shares.
//
// The threshold is taken from raw.K. Every k-subset of the valid shares is
// interpolated, the subset agreeing with the most shares wins, and shares that
// disagree with the winning polynomial are reported in Result.WrongShares.
// Any error aborts the run; no partial result is returned.
func Recover(ctx context.Context, raw RawShares, options ...SearchOption) (Result, error) {
	table, err := Decode(raw)
	if err != nil {
		return Result{}, err
	}

	return RecoverTable(ctx, table, raw.K, options...)
}

// RecoverTable reconstructs the secret from an already decoded share table.
func RecoverTable(ctx context.Context, table Table, threshold int, options ...SearchOption) (Result, error) {
	best, err := Search(ctx, table, threshold, options...)
	if err != nil {
		return Result{}, err
	}

	result, err := Report(table, best.Subset)
	if err != nil {
		return Result{}, err
	}

	result.Evaluated = best.Evaluated

	return result, nil
}
