// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set for the addressing chain.
// Every user-triggered failure returns one of these sentinels (possibly
// wrapped in *AddressingError); tests MUST check them via errors.Is.
// Panics are reserved for nonsensical constructor parameters.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap the sentinel in *AddressingError
// to attach the partial coordinate; callers still match with errors.Is.

var (
	// ErrAddressing is the umbrella sentinel for any misuse of the
	// addressing chain. Every *AddressingError matches it.
	ErrAddressing = errors.New("matrix: addressing error")

	// ErrNotCell is returned when a write is attempted before the chain
	// reached the terminal dimension.
	ErrNotCell = errors.New("matrix: element is not a fully-addressed cell")

	// ErrDimensionOverflow is returned when a subscript would advance the
	// chain past the last dimension (Dims()-1).
	ErrDimensionOverflow = errors.New("matrix: dimension index out of range")

	// ErrNegativeIndex is returned for a negative subscript. Coordinates are
	// non-negative; NullIndex is reserved for unset slots.
	ErrNegativeIndex = errors.New("matrix: negative index")
)

// Operation tags used in AddressingError.Op.
const (
	opAt     = "At"
	opSet    = "Set"
	opLookup = "Lookup"
	opAssign = "Assign"
)

// AddressingError carries the context of a failed subscript or write.
//   - Op is the accessor method that detected the misuse.
//   - Coord is the partial coordinate at the time of failure (unset slots are NullIndex).
//   - Depth is the dimension the accessor was at (or tried to reach).
//   - MaxDim is the last legal dimension index, Dims()-1.
//   - Err is one of ErrNotCell, ErrDimensionOverflow, ErrNegativeIndex.
type AddressingError struct {
	Op     string
	Coord  Coord
	Depth  int
	MaxDim int
	Err    error
}

// Error formats "Matrix.At(0,1,?) depth 2: ..." with the overflow limit when relevant.
func (e *AddressingError) Error() string {
	if errors.Is(e.Err, ErrDimensionOverflow) {
		return fmt.Sprintf("Matrix.%s%s depth %d: dimension index must not be greater than %d: %v",
			e.Op, e.Coord, e.Depth, e.MaxDim, e.Err)
	}

	return fmt.Sprintf("Matrix.%s%s depth %d: %v", e.Op, e.Coord, e.Depth, e.Err)
}

// Unwrap exposes both the specific sentinel and ErrAddressing to errors.Is.
func (e *AddressingError) Unwrap() []error {
	return []error{e.Err, ErrAddressing}
}

// addressingErrorf builds an *AddressingError with a private copy of the coordinate.
func addressingErrorf(op string, c Coord, depth, maxDim int, err error) error {
	return &AddressingError{
		Op:     op,
		Coord:  c.Clone(),
		Depth:  depth,
		MaxDim: maxDim,
		Err:    err,
	}
}
