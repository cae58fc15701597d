// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoord_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b matrix.Coord
		want int
	}{
		{"equal", matrix.Coord{1, 2}, matrix.Coord{1, 2}, 0},
		{"first component", matrix.Coord{0, 9}, matrix.Coord{1, 0}, -1},
		{"second component", matrix.Coord{1, 3}, matrix.Coord{1, 2}, 1},
		{"prefix sorts first", matrix.Coord{1}, matrix.Coord{1, 0}, -1},
		{"empty", matrix.Coord{}, matrix.Coord{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, -tc.want, tc.b.Compare(tc.a))
			assert.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
		})
	}
}

func TestCoord_CompleteAndString(t *testing.T) {
	c := matrix.Coord{0, matrix.NullIndex, 4}
	require.False(t, c.Complete())
	require.Equal(t, "(0,?,4)", c.String())

	c[1] = 7
	require.True(t, c.Complete())
	require.Equal(t, "(0,7,4)", c.String())

	require.True(t, matrix.Coord{}.Complete())
	require.Equal(t, "()", matrix.Coord{}.String())
}

func TestCoord_Clone(t *testing.T) {
	c := matrix.Coord{1, 2}
	cp := c.Clone()
	cp[0] = 5
	require.Equal(t, 1, c[0])
	require.Nil(t, matrix.Coord(nil).Clone())
}

// TestKeyCodec_PreservesOrder verifies the byte order of encoded keys matches Coord.Compare.
func TestKeyCodec_PreservesOrder(t *testing.T) {
	coords := []matrix.Coord{{0, 0}, {0, 255}, {0, 256}, {1, 0}, {255, 65535}, {1 << 33, 2}}
	for i, c := range coords {
		require.Equal(t, c, matrix.ExportedDecodeKey(matrix.ExportedEncodeKey(c)))
		if i > 0 {
			prev := coords[i-1]
			require.Equal(t, -1, prev.Compare(c))
			require.Less(t, matrix.ExportedEncodeKey(prev), matrix.ExportedEncodeKey(c))
		}
	}
}
