// SPDX-License-Identifier: MIT
// Package: utmatrix
//
// Purpose:
//   - Element-wise Add/Sub for triangular matrices.
//   - The matrix-level side check runs first; row-level checks then hold for
//     any two matrices built by New, since row lengths depend only on side.

package utmatrix

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

// combine applies op row by row and returns a freshly allocated matrix.
func (m *Matrix[T]) combine(
	method string,
	o *Matrix[T],
	op func(a, b *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if o == nil {
		return nil, fmt.Errorf("Matrix.%s: %w", method, ErrNilMatrix)
	}
	if len(m.rows) != len(o.rows) {
		return nil, fmt.Errorf("Matrix.%s: sides %d and %d: %w", method, len(m.rows), len(o.rows), ErrSizeMismatch)
	}

	rows := make([]*vector.Vector[T], len(m.rows))
	for i := range m.rows {
		r, err := op(m.rows[i], o.rows[i])
		if err != nil {
			return nil, rowErrorf(method, i, err)
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows, maxSide: m.maxSide}, nil
}

// Add returns the element-wise sum m + o.
// Returns ErrSizeMismatch when sides differ, ErrNilMatrix when o is nil.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.combine(ctxAdd, o, (*vector.Vector[T]).Add)
}

// Sub returns the element-wise difference m - o.
// Returns ErrSizeMismatch when sides differ, ErrNilMatrix when o is nil.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.combine(ctxSub, o, (*vector.Vector[T]).Sub)
}
