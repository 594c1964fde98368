package shamir

import (
	"math/big"
	"strconv"
)

const (
	// MinBase is the smallest accepted share base.
	MinBase = 2
	// MaxBase is the largest accepted share base.
	MaxBase = 36
)

// RawShare is an undecoded share entry as it appears in a share document.
type RawShare struct {
	Base  string
	Value string
}

// RawShares is a parsed share document.
type RawShares struct {
	// N is the declared share count; it bounds the decode loop over labels "1".."N".
	N int
	// K is the threshold (polynomial degree + 1).
	K int
	// Entries maps external index labels to their encoded values.
	Entries map[string]RawShare
}

// Present counts the labels "1".."N" that have an entry. Entries under other
// labels are never decoded and are not counted.
func (r RawShares) Present() int {
	present := 0
	for i := 1; i <= r.N; i++ {
		if _, ok := r.Entries[strconv.Itoa(i)]; ok {
			present++
		}
	}
	return present
}

// Share represents a single decoded share of a secret.
type Share struct {
	// Index is the external index label of the share.
	Index int
	// Base is the radix the share value was encoded in.
	Base int
	// Digits is the encoded share value.
	Digits string
	// X is the x-coordinate, equal to Index.
	X *big.Int
	// Y is the y-coordinate, Digits interpreted in Base.
	Y *big.Int
}

// Clone creates a deep copy of the share.
func (s Share) Clone() Share {
	return Share{
		Index:  s.Index,
		Base:   s.Base,
		Digits: s.Digits,
		X:      new(big.Int).Set(s.X),
		Y:      new(big.Int).Set(s.Y),
	}
}

// Equal checks if two shares are equal.
func (s Share) Equal(other Share) bool {
	return s.Index == other.Index &&
		s.Base == other.Base &&
		s.Digits == other.Digits &&
		s.X.Cmp(other.X) == 0 &&
		s.Y.Cmp(other.Y) == 0
}

// Table is the ordered set of valid shares, in decode order.
type Table []Share

// Len returns the number of shares in the table.
func (t Table) Len() int {
	return len(t)
}

// Points returns the x and y coordinates of every share, in table order.
func (t Table) Points() (xs, ys []*big.Int) {
	xs = make([]*big.Int, len(t))
	ys = make([]*big.Int, len(t))
	for i, share := range t {
		xs[i] = share.X
		ys[i] = share.Y
	}
	return xs, ys
}

// Indices returns the external index labels, in table order.
func (t Table) Indices() []int {
	indices := make([]int, len(t))
	for i, share := range t {
		indices[i] = share.Index
	}
	return indices
}

// Subset returns the coordinates of the shares at the given table positions.
func (t Table) Subset(subset Subset) (xs, ys []*big.Int) {
	xs = make([]*big.Int, len(subset))
	ys = make([]*big.Int, len(subset))
	for i, pos := range subset {
		xs[i] = t[pos].X
		ys[i] = t[pos].Y
	}
	return xs, ys
}
