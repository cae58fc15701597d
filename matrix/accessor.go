// SPDX-License-Identifier: MIT

// Package matrix - Accessor: the per-expression addressing chain.
//
// Purpose:
//   - Accumulate a partial coordinate one subscript at a time.
//   - At the terminal dimension (Dims()-1) expose Get/Set against the Store.
//   - At shallower depths read as Default() and refuse writes (ErrNotCell).
//
// Lifetime:
//   - An Accessor is a value that borrows its *Matrix. It is meant to live for
//     one subscript expression, e.g. m.At(1).At(4).At(8).Set(2); keeping it
//     longer is allowed but it keeps addressing the same matrix.
//   - Each At returns a NEW accessor owning its own coordinate copy, so an
//     intermediate accessor may be re-derived any number of times without
//     state from one chain leaking into another.
//
// Errors are sticky: once a subscript fails, further At calls keep the first
// error, Get returns Default(), and Set returns the error.
package matrix

// Accessor addresses one cell (or a not-yet-complete prefix) of a Matrix.
// The zero value is not usable; obtain one from Matrix.At or Matrix.Index.
type Accessor[T comparable] struct {
	m     *Matrix[T] // borrowed, never owned
	coord Coord      // owned; unset slots hold NullIndex
	depth int        // last filled slot; NullIndex before the first subscript
	err   error      // first addressing failure, if any
}

// rootAccessor returns the accessor before any subscript: no slot filled,
// depth NullIndex. Its At is the matrix entry point.
func rootAccessor[T comparable](m *Matrix[T]) Accessor[T] {
	return Accessor[T]{m: m, coord: newNullCoord(m.Dims()), depth: NullIndex}
}

// At advances the chain by one dimension, setting the next coordinate slot to i.
// The receiver is not modified.
// Errors (sticky, reported by Err/Set):
//   - ErrDimensionOverflow when the chain is already at Dims()-1.
//   - ErrNegativeIndex when i < 0.
func (a Accessor[T]) At(i int) Accessor[T] {
	if a.err != nil {
		return a
	}
	next := a.depth + 1
	maxDim := a.m.Dims() - 1
	if next > maxDim {
		a.err = addressingErrorf(opAt, a.coord, next, maxDim, ErrDimensionOverflow)
		return a
	}
	if i < 0 {
		a.err = addressingErrorf(opAt, a.coord, next, maxDim, ErrNegativeIndex)
		return a
	}

	coord := a.coord.Clone()
	coord[next] = i

	return Accessor[T]{m: a.m, coord: coord, depth: next}
}

// Get returns the addressed value. Only a terminal accessor reads from the
// store; a shallower or failed accessor reads as Default().
func (a Accessor[T]) Get() T {
	if a.err != nil || !a.Terminal() {
		return a.m.Default()
	}

	return a.m.store.Get(a.coord)
}

// Set writes v at the addressed cell and returns the same accessor so that
// writes can be chained: a.Set(2) then .Set(4) then .Set(8) leaves 8.
// Writing Default() erases the cell.
// Errors:
//   - the sticky addressing error, if any.
//   - ErrNotCell if the accessor has not reached the terminal dimension.
func (a Accessor[T]) Set(v T) (Accessor[T], error) {
	if a.err != nil {
		return a, a.err
	}
	if !a.Terminal() {
		return a, addressingErrorf(opSet, a.coord, a.depth, a.m.Dims()-1, ErrNotCell)
	}
	a.m.store.Set(a.coord, v)

	return a, nil
}

// Err returns the first addressing failure of the chain, or nil.
func (a Accessor[T]) Err() error { return a.err }

// Depth returns the index of the last supplied dimension, or NullIndex if
// no subscript has been applied.
func (a Accessor[T]) Depth() int { return a.depth }

// Terminal reports whether the accessor names a complete cell.
func (a Accessor[T]) Terminal() bool {
	return a.err == nil && a.depth >= 0 && a.depth == a.m.Dims()-1
}

// Coord returns a copy of the partial coordinate; unset slots are NullIndex.
func (a Accessor[T]) Coord() Coord { return a.coord.Clone() }
