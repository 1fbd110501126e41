package store

import (
	"encoding/json"
	"fmt"
)

// DefaultQuotaBytes is the default capacity budget per collection: 5 MiB,
// the classic browser localStorage allowance this store grew out of.
const DefaultQuotaBytes int64 = 5 << 20

// FitFunc reports whether an encoded payload fits the capacity budget.
// Injecting the check keeps pruning testable without a real backend.
type FitFunc func(encoded []byte) bool

// ByteBudget returns a FitFunc that accepts payloads up to limit bytes.
func ByteBudget(limit int64) FitFunc {
	return func(encoded []byte) bool {
		return int64(len(encoded)) <= limit
	}
}

// PruneToFit shrinks a newest-first collection until its JSON encoding
// satisfies fits. Each pass keeps the first half of the remaining items
// (older entries are sacrificed first and order is never changed), stopping
// once the encoding fits or a single item remains.
//
// It returns the kept prefix, its encoding, and how many items were dropped.
// If even one item cannot fit, it returns ErrItemTooLarge with dropped equal
// to the full input length; callers abandon the write in that case.
func PruneToFit[T any](items []T, fits FitFunc) (kept []T, encoded []byte, dropped int, err error) {
	if items == nil {
		items = []T{}
	}
	kept = items
	for {
		encoded, err = json.Marshal(kept)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("encode collection: %w", err)
		}
		if fits(encoded) {
			return kept, encoded, len(items) - len(kept), nil
		}
		if len(kept) <= 1 {
			return nil, nil, len(items), fmt.Errorf("%w (%d bytes)", ErrItemTooLarge, len(encoded))
		}
		kept = kept[:len(kept)/2]
	}
}
