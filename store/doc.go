// Package store persists per-user study collections under a byte budget.
//
// Each (kind, user) pair maps to one JSON document on an afero filesystem.
// Collections are newest-first lists; writes that would exceed the budget are
// recovered by repeatedly halving the list before giving up. Data loss is
// reported through a configurable drop handler instead of an error: the
// storage contract is "best effort within the budget", and readers always
// get a usable (possibly empty) result.
package store
