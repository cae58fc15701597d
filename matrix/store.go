// SPDX-License-Identifier: MIT

// Package matrix - Store: the default-omitting coordinate→value map.
//
// Purpose:
//   - Hold exactly the cells whose value differs from the default.
//   - Point lookup with default fallback, upsert-or-erase, count, ordered enumeration.
//
// Invariant (checked on every write):
//   - absent key ⇒ logical value is Default(); present key ⇒ value != Default().
//
// Complexity quicksheet:
//   - Get/Set: O(N) key encoding + O(1) amortized map access (N = dims).
//   - Len: O(1); Cells/All: O(S log S) snapshot sort (S = stored cells).
package matrix

import (
	"iter"
	"maps"
	"slices"
)

// Store is a sparse coordinate→value map for a fixed dimension count.
// Not safe for concurrent use.
type Store[T comparable] struct {
	def   T            // value reported for every absent coordinate
	dims  int          // required coordinate length
	cells map[string]T // encodeKey(coord) -> non-default value
}

// NewStore returns an empty store. dims must be non-negative.
// Complexity: O(capacity).
func NewStore[T comparable](def T, dims int, opts ...Option) *Store[T] {
	if dims < 0 {
		panic(panicDimsInvalid)
	}
	o := gatherOptions(opts...)

	return &Store[T]{
		def:   def,
		dims:  dims,
		cells: make(map[string]T, o.capacity),
	}
}

// Default returns the value reported for unstored coordinates.
func (s *Store[T]) Default() T { return s.def }

// Dims returns the coordinate length the store accepts.
func (s *Store[T]) Dims() int { return s.dims }

// Len returns the number of stored (non-default) cells.
func (s *Store[T]) Len() int { return len(s.cells) }

// valid reports whether c may be used as a storage key.
func (s *Store[T]) valid(c Coord) bool {
	return len(c) == s.dims && c.Complete()
}

// Get returns the value at c, or Default() if c is not stored.
// Never fails: incomplete or wrong-length coordinates read as Default().
func (s *Store[T]) Get(c Coord) T {
	if !s.valid(c) {
		return s.def
	}
	if v, ok := s.cells[encodeKey(c)]; ok {
		return v
	}

	return s.def
}

// Set writes v at c. Writing Default() erases the cell (no-op if absent);
// any other value inserts or overwrites it.
// Returns false, leaving the store untouched, if c is incomplete or has the
// wrong length.
func (s *Store[T]) Set(c Coord, v T) bool {
	if !s.valid(c) {
		return false
	}
	k := encodeKey(c)
	if v == s.def {
		delete(s.cells, k)
		return true
	}
	s.cells[k] = v

	return true
}

// Clear removes every stored cell.
func (s *Store[T]) Clear() {
	clear(s.cells)
}

// Cells returns a snapshot of every stored cell in ascending coordinate order.
// Complexity: O(S log S).
func (s *Store[T]) Cells() []Cell[T] {
	keys := s.sortedKeys()
	out := make([]Cell[T], len(keys))
	for i, k := range keys {
		out[i] = Cell[T]{Coord: decodeKey(k), Value: s.cells[k]}
	}

	return out
}

// All returns an ordered iterator over a snapshot taken now. Ranging over
// the result more than once replays the same snapshot; later writes to the
// store are not observed. Each yielded Coord is a fresh copy.
func (s *Store[T]) All() iter.Seq2[Coord, T] {
	snap := s.Cells()

	return func(yield func(Coord, T) bool) {
		for _, cell := range snap {
			if !yield(cell.Coord.Clone(), cell.Value) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of the store.
// Complexity: O(S).
func (s *Store[T]) Clone() *Store[T] {
	return &Store[T]{def: s.def, dims: s.dims, cells: maps.Clone(s.cells)}
}

// sortedKeys returns the encoded keys in coordinate order.
func (s *Store[T]) sortedKeys() []string {
	return slices.Sorted(maps.Keys(s.cells))
}
