package shamir

import (
	"fmt"
	"math/big"
)

// Result is the outcome of a recovery run.
type Result struct {
	// Secret is the constant term of the best-fitting polynomial.
	Secret *big.Int
	// FitCount is the number of shares lying on that polynomial.
	FitCount int
	// Total is the number of valid shares considered.
	Total int
	// Subset holds the table positions the polynomial was interpolated through.
	Subset Subset
	// SubsetIndices holds the external index labels of the shares at Subset.
	SubsetIndices []int
	// WrongShares lists the external indices of inconsistent shares, in table order.
	WrongShares []int
	// Evaluated is the number of subsets scored by the search.
	Evaluated uint64
}

// Report re-interpolates the polynomial through the shares at subset and
// classifies every share in the table against it. Shares belonging to the
// subset are classified like any other.
func Report(table Table, subset Subset) (Result, error) {
	for _, pos := range subset {
		if pos < 0 || pos >= table.Len() {
			return Result{}, fmt.Errorf("%w: subset position %d outside table of %d shares", ErrInvalidPoints, pos, table.Len())
		}
	}

	xs, ys := table.Subset(subset)

	secret, err := SecretAt0(xs, ys)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Secret:        secret,
		Total:         table.Len(),
		Subset:        subset.Clone(),
		SubsetIndices: make([]int, len(subset)),
		WrongShares:   []int{},
	}

	for i, pos := range subset {
		result.SubsetIndices[i] = table[pos].Index
	}

	for _, share := range table {
		y, err := EvaluateAt(share.X, xs, ys)
		if err != nil {
			return Result{}, err
		}

		if y.Cmp(share.Y) != 0 {
			result.WrongShares = append(result.WrongShares, share.Index)
			continue
		}

		result.FitCount++
	}

	return result, nil
}
