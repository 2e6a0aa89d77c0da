// SPDX-License-Identifier: MIT
// Package utmatrix: sentinel error set.
// Shape and index sentinels are the vector package's own values so that
// errors.Is matches regardless of whether a failure was detected at the
// matrix level or inside a row.

package utmatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

var (
	// ErrInvalidSize is returned when a requested side is negative or exceeds the cap.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row or column outside the stored triangle.
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates a binary operation between matrices of different side.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("utmatrix: nil matrix")
)

// matrixErrorf wraps err with method context and coordinates.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// rowErrorf wraps a row-level failure with the row it came from.
func rowErrorf(method string, i int, err error) error {
	return fmt.Errorf("Matrix.%s: row %d: %w", method, i, err)
}
