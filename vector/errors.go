// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All public operations return these sentinels (possibly wrapped with method
// context via %w); callers and tests MUST match them with errors.Is.
// No public operation panics on user input. Panics are reserved for nonsensical
// option values (WithMaxSize), which are programmer errors.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds
	// the applicable maximum capacity.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrInvalidStartIndex is returned when a requested start index is negative.
	ErrInvalidStartIndex = errors.New("vector: invalid start index")

	// ErrIndexOutOfRange indicates an access below zero or at/above Size().
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates a binary operation between vectors of different size.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf attaches method context and the offending index to a sentinel.
func vectorErrorf(method string, k int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, k, err)
}

// opErrorf attaches method context and both operand sizes to a sentinel.
func opErrorf(method string, lhs, rhs int, err error) error {
	return fmt.Errorf("Vector.%s: sizes %d and %d: %w", method, lhs, rhs, err)
}
