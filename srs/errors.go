package srs

import "errors"

// Sentinel errors for the srs package.
// Use errors.Is to check: errors.Is(err, srs.ErrInvalidRating)
var (
	ErrInvalidRating     = errors.New("srs: invalid rating")
	ErrInvalidTransition = errors.New("srs: invalid session transition")
	ErrSessionComplete   = errors.New("srs: session already complete")
)
