package shamir

import "errors"

var (
	// ErrInvalidThreshold is returned when threshold is less than 1.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 1")

	// ErrInsufficientShares is returned when the threshold exceeds the number of valid shares.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrMalformedShare is returned when a share value contains digits invalid for its base,
	// or its base is not an integer.
	ErrMalformedShare = errors.New("shamir: malformed share")

	// ErrDegenerateInterpolation is returned when two interpolation points share an X coordinate.
	ErrDegenerateInterpolation = errors.New("shamir: duplicate x coordinates in interpolation")

	// ErrInvalidPoints is returned when x and y coordinate lists are empty or differ in length.
	ErrInvalidPoints = errors.New("shamir: invalid interpolation points")

	// ErrRankOutOfRange is returned when a combination rank is not below C(n, k).
	ErrRankOutOfRange = errors.New("shamir: combination rank out of range")

	// ErrSearchBudgetExceeded is returned when the subset search is stopped by its
	// subset budget, a deadline or a cancellation.
	ErrSearchBudgetExceeded = errors.New("shamir: search budget exceeded")
)
