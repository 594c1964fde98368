package shamir

import (
	"math/big"
	"strconv"
)

// Polynomial is a polynomial with integer coefficients.
// Coefficients[0] is the constant term (the secret).
type Polynomial struct {
	Coefficients []*big.Int
}

// NewPolynomial creates a polynomial from coefficients, constant term first.
func NewPolynomial(coefficients ...*big.Int) *Polynomial {
	return &Polynomial{Coefficients: coefficients}
}

// Degree returns the polynomial degree, or -1 for the empty polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Secret returns a copy of the constant term.
func (p *Polynomial) Secret() *big.Int {
	if len(p.Coefficients) == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Set(p.Coefficients[0])
}

// Evaluate evaluates the polynomial at point x using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	if len(p.Coefficients) == 0 {
		return big.NewInt(0)
	}

	// ((a_n*x + a_{n-1})*x + ... + a_1)*x + a_0
	result := new(big.Int).Set(p.Coefficients[len(p.Coefficients)-1])

	for i := len(p.Coefficients) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.Coefficients[i])
	}

	return result
}

// Encode samples the polynomial at x and encodes the value in base.
func (p *Polynomial) Encode(x, base int) RawShare {
	y := p.Evaluate(big.NewInt(int64(x)))

	return RawShare{
		Base:  strconv.Itoa(base),
		Value: y.Text(base),
	}
}

// Shares samples the polynomial at x = 1..len(bases), encoding the i-th share in bases[i-1].
func (p *Polynomial) Shares(threshold int, bases ...int) RawShares {
	raw := RawShares{
		N:       len(bases),
		K:       threshold,
		Entries: make(map[string]RawShare, len(bases)),
	}

	for i, base := range bases {
		raw.Entries[strconv.Itoa(i+1)] = p.Encode(i+1, base)
	}

	return raw
}
