package shamir

import (
	"math/big"
)

// EvaluateAt evaluates the polynomial interpolated through (xs, ys) at point.
//
// The computation is exact integer arithmetic with one truncating division per term:
//
//	f(point) = Σ_i (y_i · Π_{j≠i}(point - x_j)) quo Π_{j≠i}(x_i - x_j)
//
// For genuine samples of an integer polynomial every division is exact. For points
// that do not share a polynomial the per-term quotient truncates toward zero, and
// that truncation is part of the result: fit counts depend on it.
func EvaluateAt(point *big.Int, xs, ys []*big.Int) (*big.Int, error) {
	return interpolate(xs, ys, func(numerator *big.Int, xj *big.Int) {
		// numerator *= (point - x_j)
		numerator.Mul(numerator, new(big.Int).Sub(point, xj))
	})
}

// SecretAt0 returns the constant term of the polynomial interpolated through (xs, ys).
// It equals EvaluateAt(0, xs, ys).
func SecretAt0(xs, ys []*big.Int) (*big.Int, error) {
	return interpolate(xs, ys, func(numerator *big.Int, xj *big.Int) {
		// numerator *= (0 - x_j) = -x_j
		numerator.Mul(numerator, new(big.Int).Neg(xj))
	})
}

func interpolate(xs, ys []*big.Int, numeratorFactor func(numerator, xj *big.Int)) (*big.Int, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return nil, ErrInvalidPoints
	}

	result := big.NewInt(0)
	diff := new(big.Int)

	for i := range xs {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range xs {
			if i == j {
				continue
			}

			numeratorFactor(numerator, xs[j])

			// denominator *= (x_i - x_j)
			denominator.Mul(denominator, diff.Sub(xs[i], xs[j]))
		}

		if denominator.Sign() == 0 {
			return nil, ErrDegenerateInterpolation
		}

		// result += (y_i * numerator) quo denominator
		term := new(big.Int).Mul(ys[i], numerator)
		term.Quo(term, denominator)
		result.Add(result, term)
	}

	return result, nil
}
