// Package matrix offers a sparse, N-dimensional associative matrix.
//
// The matrix package provides:
//
//   - Matrix[T], an N-dimensional array of comparable values that reads as a
//     declared default everywhere and stores only cells holding anything else.
//   - Accessor[T], the addressing chain: m.At(i).At(j).At(k) accumulates a
//     coordinate one dimension at a time and reads or writes the cell once the
//     last dimension is reached.
//   - Store[T], the default-omitting coordinate→value map underneath, usable
//     on its own with explicit Coord keys.
//
// Writing the default erases a cell, so Len() always equals the number of
// non-default cells and Cells()/All() enumerate exactly those, in
// lexicographic coordinate order.
//
// Misuse of the chain (writing before the last dimension, subscripting past
// it, negative indices) is reported through *AddressingError, matched with
// errors.Is against ErrAddressing or the specific sentinel.
//
// See the examples in this package for usage patterns.
package matrix
