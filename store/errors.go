package store

import "errors"

// Sentinel errors for the store package.
// Use errors.Is to check: errors.Is(err, store.ErrItemTooLarge)
var (
	ErrItemTooLarge  = errors.New("store: single item exceeds capacity budget")
	ErrInvalidUserID = errors.New("store: invalid user id")
	ErrInvalidKind   = errors.New("store: invalid collection kind")
)
