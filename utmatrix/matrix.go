// SPDX-License-Identifier: MIT

// Package utmatrix - row-of-rows triangular storage & safe accessors.
//
// Layout:
//   - rows[i] is a vector.Vector[T] of length side-i with start index i.
//   - matrix element (i, j), j >= i, lives at rows[i][j-i].
//   - elements below the diagonal are not stored and cannot be addressed.
//
// Complexity quicksheet:
//   - New/Clone/Assign/Equal/Add/Sub: O(side²/2); Row/At/Set: O(1).
package utmatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/utmatrix/vector"
)

// ---------- error context tags ----------

const (
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
	ctxAdd    = "Add"
	ctxSub    = "Sub"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtUnstored = "_"
)

// Matrix is a square upper-triangular matrix composed of owned vector rows.
type Matrix[T vector.Number] struct {
	rows    []*vector.Vector[T] // len == side; rows[i].Size() == side-i
	maxSide int
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a side×side upper-triangular matrix of zeros.
//
// Implementation:
//   - Stage 1: validate side against [0, maxSide].
//   - Stage 2: build row i as a zeroed vector of length side-i, start index i.
//
// Errors:
//   - ErrInvalidSize when side < 0 or side > max side.
func New[T vector.Number](side int, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if side < 0 || side > o.maxSide {
		return nil, fmt.Errorf("utmatrix.New(%d): max %d: %w", side, o.maxSide, ErrInvalidSize)
	}

	rows := make([]*vector.Vector[T], side)
	for i := range rows {
		row, err := vector.New[T](side-i, vector.WithStartIndex(i), vector.WithMaxSize(o.maxSide))
		if err != nil {
			// unreachable: side-i <= side <= maxSide and i >= 0
			return nil, fmt.Errorf("utmatrix.New(%d): row %d: %w", side, i, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{rows: rows, maxSide: o.maxSide}, nil
}

// Side returns the matrix dimension N.
func (m *Matrix[T]) Side() int { return len(m.rows) }

// MaxSide returns the cap this matrix was constructed under.
func (m *Matrix[T]) MaxSide() int { return m.maxSide }

// Row returns row i, which holds matrix columns [i, Side()) at row-local
// indices [0, Side()-i). The row is owned by m: writes through it are writes
// to m. Calling Assign on the returned row breaks the triangular shape and is
// reported as ErrSizeMismatch by later binary operations.
// Returns ErrIndexOutOfRange when i < 0 or i >= Side().
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrIndexOutOfRange)
	}

	return m.rows[i], nil
}

// locate translates matrix coordinates into the owning row and its local column.
func (m *Matrix[T]) locate(method string, i, j int) (*vector.Vector[T], int, error) {
	n := len(m.rows)
	if i < 0 || i >= n || j < i || j >= n {
		return nil, 0, matrixErrorf(method, i, j, ErrIndexOutOfRange)
	}

	return m.rows[i], j - i, nil
}

// At returns element (i, j) for 0 <= i <= j < Side().
func (m *Matrix[T]) At(i, j int) (T, error) {
	row, k, err := m.locate(ctxAt, i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return row.At(k)
}

// Set stores x at element (i, j) for 0 <= i <= j < Side().
func (m *Matrix[T]) Set(i, j int, x T) error {
	row, k, err := m.locate(ctxSet, i, j)
	if err != nil {
		return err
	}

	return row.Set(k, x)
}

// Clone returns a deep copy; every row is cloned independently.
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*vector.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{rows: rows, maxSide: m.maxSide}
}

// Assign replaces m's side, cap and rows with deep copies of src's.
// Self-assignment is a no-op; sides may differ. The copies are built before
// m is modified.
// Returns ErrNilMatrix if src is nil.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxAssign, ErrNilMatrix)
	}
	if src == m {
		return nil
	}

	c := src.Clone()
	m.rows = c.rows
	m.maxSide = c.maxSide

	return nil
}

// Equal reports whether m and other have the same side and equal rows.
// Two nil matrices are equal.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// String renders one line per row; unstored cells below the diagonal print as "_".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i, r := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < i; j++ {
			sb.WriteString(_fmtUnstored)
			sb.WriteString(_fmtSep)
		}
		for k, x := range r.Data() {
			if k > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", x)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
