// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the store and the addressing chain.
// This file contains ONLY coordinate/cell types and the key codec used by
// Store; errors and options live in dedicated files.
package matrix

import (
	"cmp"
	"encoding/binary"
	"strconv"
	"strings"
)

// NullIndex marks a coordinate component that has not been supplied yet.
// A coordinate holding NullIndex in any slot is never a valid storage key.
const NullIndex = -1

// keyWidth is the encoded width of one coordinate component (big-endian uint64).
const keyWidth = 8

// Coord is an ordered tuple of non-negative indices, one per dimension.
// Ordering is lexicographic over components; see Compare.
type Coord []int

// newNullCoord returns a coordinate of length n with every slot unset.
// Complexity: O(n).
func newNullCoord(n int) Coord {
	c := make(Coord, n)
	for i := range c {
		c[i] = NullIndex
	}

	return c
}

// Complete reports whether every component has been supplied.
// Negative components (including NullIndex) make the coordinate incomplete.
func (c Coord) Complete() bool {
	for _, v := range c {
		if v < 0 {
			return false
		}
	}

	return true
}

// Equal reports whether c and o have the same length and components.
func (c Coord) Equal(o Coord) bool {
	return c.Compare(o) == 0
}

// Compare orders coordinates lexicographically; a shorter prefix sorts first.
// Returns -1, 0 or +1.
func (c Coord) Compare(o Coord) int {
	n := min(len(c), len(o))
	for i := 0; i < n; i++ {
		if r := cmp.Compare(c[i], o[i]); r != 0 {
			return r
		}
	}

	return cmp.Compare(len(c), len(o))
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	if c == nil {
		return nil
	}
	out := make(Coord, len(c))
	copy(out, c)

	return out
}

// String renders the coordinate as "(0,1,?)", using "?" for unset slots.
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		if v == NullIndex {
			sb.WriteByte('?')
			continue
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Cell is one materialized (coordinate, value) pair. Cells exist only for
// values that differ from the matrix default.
type Cell[T comparable] struct {
	Coord Coord `json:"coord" yaml:"coord"`
	Value T     `json:"value" yaml:"value"`
}

// encodeKey packs a complete coordinate into a fixed-width big-endian string.
// Byte-wise order of encoded keys equals lexicographic order of the coordinates,
// so sorting keys sorts cells.
// Complexity: O(len(c)).
func encodeKey(c Coord) string {
	buf := make([]byte, len(c)*keyWidth)
	for i, v := range c {
		binary.BigEndian.PutUint64(buf[i*keyWidth:], uint64(v))
	}

	return string(buf)
}

// decodeKey is the inverse of encodeKey.
func decodeKey(k string) Coord {
	c := make(Coord, len(k)/keyWidth)
	for i := range c {
		c[i] = int(binary.BigEndian.Uint64([]byte(k[i*keyWidth : (i+1)*keyWidth])))
	}

	return c
}
