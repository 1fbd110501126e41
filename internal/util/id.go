// Package util provides shared helpers for resolving user-supplied IDs.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// MaxAmbiguousCandidates caps how many matches an ambiguity error lists.
const MaxAmbiguousCandidates = 5

// Errors returned by ResolveID.
var (
	ErrAmbiguousID = errors.New("ambiguous ID prefix")
	ErrNotFound    = errors.New("not found")
)

// ResolveID resolves an ID or unique prefix against the known IDs.
//
// Resolution rules:
//  1. An exact match always wins.
//  2. A prefix matching exactly one ID resolves to that ID.
//  3. Multiple matches return ErrAmbiguousID listing candidates.
//  4. No matches return ErrNotFound.
func ResolveID(idOrPrefix string, known []string, entityType string) (string, error) {
	if idOrPrefix == "" {
		return "", fmt.Errorf("%s ID: %w", entityType, ErrNotFound)
	}

	var candidates []string
	for _, id := range known {
		if id == idOrPrefix {
			return id, nil
		}
		if strings.HasPrefix(id, idOrPrefix) {
			candidates = append(candidates, id)
		}
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", entityType, idOrPrefix, ErrNotFound)
	case 1:
		return candidates[0], nil
	default:
		shown := candidates
		if len(shown) > MaxAmbiguousCandidates {
			shown = shown[:MaxAmbiguousCandidates]
		}
		return "", fmt.Errorf("%w: %q matches %d %ss: %v",
			ErrAmbiguousID, idOrPrefix, len(candidates), entityType, shown)
	}
}
