package store

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Patch applies a partial update to an item, returning the updated copy.
// models defines one patch type per entity that supports updates.
type Patch[T any] interface {
	Apply(T) T
}

// BlobStripper is implemented by items that carry large binary payloads
// which must not reach disk. Prepend strips every new item up front rather
// than waiting for quota pressure.
type BlobStripper[T any] interface {
	StripBlobs() T
}

// Collection is a typed, newest-first list stored under one kind. The id
// function extracts an item's identity for Update.
type Collection[T any] struct {
	store *Store
	kind  Kind
	id    func(T) string
}

// NewCollection binds a typed collection view to a store kind.
func NewCollection[T any](s *Store, kind Kind, id func(T) string) Collection[T] {
	return Collection[T]{store: s, kind: kind, id: id}
}

// All returns every stored item, newest first. An absent key or a document
// that fails to parse both read as an empty collection; errors are reserved
// for backend faults.
func (c Collection[T]) All(userID string) ([]T, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.readLocked(userID)
}

// Replace overwrites the collection with the given newest-first items,
// pruning from the oldest end if the budget demands it.
func (c Collection[T]) Replace(userID string, items []T) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.writeLocked(userID, items)
}

// Prepend inserts an item at the newest end and writes the collection back.
// Items implementing BlobStripper are stripped before they are stored.
func (c Collection[T]) Prepend(userID string, item T) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if stripper, ok := any(item).(BlobStripper[T]); ok {
		item = stripper.StripBlobs()
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.readLocked(userID)
	if err != nil {
		return err
	}
	items = append([]T{item}, items...)
	return c.writeLocked(userID, items)
}

// Update applies a patch to the item with the given id and persists the
// collection. An unknown id is a no-op; the return reports whether the item
// was found.
func (c Collection[T]) Update(userID, id string, patch Patch[T]) (bool, error) {
	if err := validateUserID(userID); err != nil {
		return false, err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	items, err := c.readLocked(userID)
	if err != nil {
		return false, err
	}
	for i := range items {
		if c.id(items[i]) != id {
			continue
		}
		items[i] = patch.Apply(items[i])
		return true, c.writeLocked(userID, items)
	}
	return false, nil
}

// Clear removes the user's entire collection.
func (c Collection[T]) Clear(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.store.remove(c.kind, userID)
}

func (c Collection[T]) readLocked(userID string) ([]T, error) {
	raw, err := c.store.readRaw(c.kind, userID)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt documents read as empty; the next write replaces them.
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c Collection[T]) writeLocked(userID string, items []T) error {
	_, encoded, dropped, err := PruneToFit(items, c.store.fits)
	if err != nil {
		if errors.Is(err, ErrItemTooLarge) {
			// Abandon the write: what is on disk stays as it was.
			c.store.onDrop(c.kind, userID, dropped, err)
			return nil
		}
		return err
	}
	if err := c.store.writeRaw(c.kind, userID, encoded); err != nil {
		return err
	}
	if dropped > 0 {
		c.store.onDrop(c.kind, userID, dropped, nil)
	}
	return nil
}

// Document is a typed singleton stored under one kind, for data where each
// user keeps exactly one value (learning path, analysis snapshot).
type Document[T any] struct {
	store *Store
	kind  Kind
}

// NewDocument binds a typed singleton view to a store kind.
func NewDocument[T any](s *Store, kind Kind) Document[T] {
	return Document[T]{store: s, kind: kind}
}

// Get returns the stored value. The second return is false when the
// document is absent or fails to parse.
func (d Document[T]) Get(userID string) (T, bool, error) {
	var zero T
	if err := validateUserID(userID); err != nil {
		return zero, false, err
	}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()

	raw, err := d.store.readRaw(d.kind, userID)
	if err != nil {
		return zero, false, err
	}
	if len(raw) == 0 {
		return zero, false, nil
	}
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return zero, false, nil
	}
	return doc, true, nil
}

// Put replaces the stored value. A value over the budget is not written:
// the drop handler is notified and the prior document survives.
func (d Document[T]) Put(userID string, doc T) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.kind.Key(userID), err)
	}
	if !d.store.fits(encoded) {
		d.store.onDrop(d.kind, userID, 1, ErrItemTooLarge)
		return nil
	}
	return d.store.writeRaw(d.kind, userID, encoded)
}

// Delete removes the user's document.
func (d Document[T]) Delete(userID string) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	return d.store.remove(d.kind, userID)
}
