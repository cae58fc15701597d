// SPDX-License-Identifier: MIT

// Package matrix - Matrix: the sparse N-dimensional root object.
//
// What & Why:
//
//	Matrix behaves like a dense N-dimensional array of T whose every cell
//	starts at a declared default, yet it only stores cells holding something
//	else. Writes go through the addressing chain (At/Index → Accessor.Set);
//	writing the default erases a cell, so Len() always counts exactly the
//	non-default cells.
//
// Complexity:
//
//	At/Accessor.At: O(N) coordinate copy (N = Dims()).
//	Get/Set: O(N) + O(1) amortized map access.
//	Cells/All: O(S log S) for S stored cells.
package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// Matrix is a sparse N-dimensional associative array. It owns its Store.
// Not safe for concurrent use.
type Matrix[T comparable] struct {
	store *Store[T]
}

// New returns an empty matrix with default value def and dims dimensions.
// Panics if dims < 0.
// Complexity: O(1) (plus WithCapacity pre-sizing).
func New[T comparable](def T, dims int, opts ...Option) *Matrix[T] {
	return &Matrix[T]{store: NewStore(def, dims, opts...)}
}

// Default returns the value every unstored cell reads as.
func (m *Matrix[T]) Default() T { return m.store.Default() }

// Dims returns the number of dimensions.
func (m *Matrix[T]) Dims() int { return m.store.Dims() }

// Len returns the number of stored (non-default) cells.
func (m *Matrix[T]) Len() int { return m.store.Len() }

// At starts an addressing chain at dimension 0 with index i.
// For a 1-dimensional matrix the returned accessor is already terminal.
func (m *Matrix[T]) At(i int) Accessor[T] {
	return rootAccessor(m).At(i)
}

// Index is shorthand for m.At(idx[0]).At(idx[1])... .
// With no indices it returns an accessor that has not addressed anything:
// Get reports Default() and Set fails with ErrNotCell.
func (m *Matrix[T]) Index(idx ...int) Accessor[T] {
	a := rootAccessor(m)
	for _, i := range idx {
		a = a.At(i)
	}

	return a
}

// Lookup reads the cell at idx, surfacing addressing misuse as an error.
// Unlike Accessor.Get, a partial coordinate is an error here (ErrNotCell).
func (m *Matrix[T]) Lookup(idx ...int) (T, error) {
	a := m.Index(idx...)
	if err := a.Err(); err != nil {
		return m.Default(), err
	}
	if !a.Terminal() {
		return m.Default(), addressingErrorf(opLookup, a.coord, a.depth, m.Dims()-1, ErrNotCell)
	}

	return a.Get(), nil
}

// Assign writes v at idx. Equivalent to m.Index(idx...).Set(v).
func (m *Matrix[T]) Assign(v T, idx ...int) error {
	a := m.Index(idx...)
	if err := a.Err(); err != nil {
		return err
	}
	if !a.Terminal() {
		return addressingErrorf(opAssign, a.coord, a.depth, m.Dims()-1, ErrNotCell)
	}
	_, err := a.Set(v)

	return err
}

// Cells returns every stored cell in ascending coordinate order.
func (m *Matrix[T]) Cells() []Cell[T] { return m.store.Cells() }

// All iterates stored cells in coordinate order over a snapshot taken now.
func (m *Matrix[T]) All() iter.Seq2[Coord, T] { return m.store.All() }

// Clear erases every stored cell.
func (m *Matrix[T]) Clear() { m.store.Clear() }

// Clone returns an independent deep copy.
// Complexity: O(S).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{store: m.store.Clone()}
}

// String lists the stored cells one per line as "i j ... value".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for c, v := range m.All() {
		for _, i := range c {
			fmt.Fprintf(&sb, "%d ", i)
		}
		fmt.Fprintf(&sb, "%v\n", v)
	}

	return sb.String()
}
