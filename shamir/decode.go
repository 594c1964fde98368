package shamir

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decode converts a raw share document into an ordered share table.
//
// Labels "1" through raw.N are visited in order. Missing labels and shares whose
// base lies outside [MinBase, MaxBase] are skipped silently and never enter the
// table. A value with digits invalid for its base aborts decoding with
// ErrMalformedShare.
func Decode(raw RawShares) (Table, error) {
	table := make(Table, 0, len(raw.Entries))

	for i := 1; i <= raw.N; i++ {
		entry, ok := raw.Entries[strconv.Itoa(i)]
		if !ok {
			continue
		}

		share, ok, err := DecodeShare(i, entry)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		table = append(table, share)
	}

	return table, nil
}

// DecodeShare decodes a single entry. The boolean result is false when the entry
// is skipped because its base is out of range.
func DecodeShare(index int, raw RawShare) (Share, bool, error) {
	base, err := strconv.Atoi(strings.TrimSpace(raw.Base))
	if err != nil {
		return Share{}, false, fmt.Errorf("%w: share %d has non-integer base %q", ErrMalformedShare, index, raw.Base)
	}

	if base < MinBase || base > MaxBase {
		return Share{}, false, nil
	}

	y, err := parseDigits(raw.Value, base)
	if err != nil {
		return Share{}, false, fmt.Errorf("%w: share %d: %v", ErrMalformedShare, index, err)
	}

	return Share{
		Index:  index,
		Base:   base,
		Digits: raw.Value,
		X:      big.NewInt(int64(index)),
		Y:      y,
	}, true, nil
}

// parseDigits parses an unsigned integer literal in the given base.
func parseDigits(digits string, base int) (*big.Int, error) {
	if digits == "" {
		return nil, fmt.Errorf("empty value")
	}

	// big.Int accepts a sign prefix; share values are unsigned
	if digits[0] == '+' || digits[0] == '-' {
		return nil, fmt.Errorf("value %q is not unsigned", digits)
	}

	y, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("value %q is not valid in base %d", digits, base)
	}

	return y, nil
}
