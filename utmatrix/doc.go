// SPDX-License-Identifier: MIT

// Package utmatrix provides Matrix[T], a square matrix that stores only its
// upper triangle (the main diagonal and everything to its right).
//
// What & Why:
//
//	A Matrix of side N owns N rows built from vector.Vector[T]; row i holds
//	N-i elements that stand for matrix columns i..N-1. Storage is N(N+1)/2
//	elements instead of N². Every matrix operation validates the matrix-level
//	shape first and then delegates to the row vectors, so bounds checks, deep
//	copies and element-wise arithmetic share one implementation.
//
// Access:
//
//	row, err := m.Row(i)  // owned row, columns in row-local index space [0, N-i)
//	err = row.Set(0, 2)   // writes matrix element (i, i)
//	x, err := m.At(i, j)  // matrix coordinates; j < i is not stored
//
// Errors are the vector package sentinels, re-exported here so callers can
// match with errors.Is against either package, plus ErrNilMatrix.
package utmatrix
