// Package spmatrix is a sparse, N-dimensional associative matrix for Go.
//
// What is spmatrix?
//
//	A matrix that looks dense and stores sparse:
//		• every cell reads as a declared default until written
//		• only non-default cells are kept, in a coordinate-keyed map
//		• cells are addressed one dimension at a time: m.At(i).At(j).At(k)
//		• writing the default erases the cell, so Len() counts real data only
//		• stored cells enumerate in lexicographic coordinate order
//
// Under the hood, everything is organized under:
//
//	matrix/       — Matrix, Accessor (addressing chain), Store, Coord, errors & options
//	cmd/spmatrix/ — demo CLI: diagonal fill, window print, cell dump (table|json|yaml)
//
// Quick example:
//
//	m := matrix.New(-1, 3)
//	_, err := m.At(1).At(4).At(8).Set(2)
//	v := m.At(1).At(4).At(8).Get() // 2
//	w := m.At(0).At(0).At(0).Get() // -1, nothing stored
//
//	go get github.com/katalvlaran/spmatrix
package spmatrix
