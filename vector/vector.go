// SPDX-License-Identifier: MIT

// Package vector - storage, construction and bounds-checked accessors.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; Clone: O(n); Size/StartIndex/At/Set/Ref: O(1).
package vector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRef = "Ref"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Number is the set of element types that support the arithmetic Vector offers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector is a fixed-size, bounds-checked sequence of T.
//   - data is exclusively owned; len(data) is the vector's size.
//   - startIndex is a validated logical offset (>= 0) with no effect on indexing.
//   - maxSize is the capacity cap this vector was built under.
type Vector[T Number] struct {
	data       []T
	startIndex int
	maxSize    int
}

var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a vector of size zero-valued elements.
//
// Implementation:
//   - Stage 1: resolve options (start index, max size).
//   - Stage 2: validate size against [0, maxSize] and start index >= 0.
//   - Stage 3: allocate zero-filled storage.
//
// Errors:
//   - ErrInvalidSize when size < 0 or size > max size.
//   - ErrInvalidStartIndex when the start index is negative.
//
// Zero size is valid and yields an empty vector.
func New[T Number](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)

	if size < 0 || size > o.maxSize {
		return nil, fmt.Errorf("vector.New(%d): max %d: %w", size, o.maxSize, ErrInvalidSize)
	}
	if o.startIndex < 0 {
		return nil, fmt.Errorf("vector.New(%d): start index %d: %w", size, o.startIndex, ErrInvalidStartIndex)
	}

	return &Vector[T]{
		data:       make([]T, size),
		startIndex: o.startIndex,
		maxSize:    o.maxSize,
	}, nil
}

// Size returns the number of stored elements.
func (v *Vector[T]) Size() int { return len(v.data) }

// StartIndex returns the logical start offset recorded at construction.
func (v *Vector[T]) StartIndex() int { return v.startIndex }

// MaxSize returns the capacity cap this vector was constructed under.
func (v *Vector[T]) MaxSize() int { return v.maxSize }

// checkIndex reports whether k addresses a stored element.
func (v *Vector[T]) checkIndex(method string, k int) error {
	if k < 0 || k >= len(v.data) {
		return vectorErrorf(method, k, ErrIndexOutOfRange)
	}

	return nil
}

// At returns the element at logical index k.
// Returns ErrIndexOutOfRange when k < 0 or k >= Size().
func (v *Vector[T]) At(k int) (T, error) {
	if err := v.checkIndex(ctxAt, k); err != nil {
		var zero T
		return zero, err
	}

	return v.data[k], nil
}

// Set stores x at logical index k.
// Returns ErrIndexOutOfRange when k < 0 or k >= Size(); the vector is unchanged.
func (v *Vector[T]) Set(k int, x T) error {
	if err := v.checkIndex(ctxSet, k); err != nil {
		return err
	}
	v.data[k] = x

	return nil
}

// Ref returns a handle to the element at logical index k for in-place
// read-modify-write. The pointer refers to v's own storage and stays valid
// until the next Assign on v, which replaces that storage.
func (v *Vector[T]) Ref(k int) (*T, error) {
	if err := v.checkIndex(ctxRef, k); err != nil {
		return nil, err
	}

	return &v.data[k], nil
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Data returns a copy of the elements in index order.
func (v *Vector[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy: same size, start index and cap, independent storage.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data, startIndex: v.startIndex, maxSize: v.maxSize}
}

// Assign replaces v's size, start index, cap and contents with a deep copy of src.
// Self-assignment is a no-op. The new storage is fully prepared before v is
// touched, so v is never observed half-copied.
// Returns ErrNilVector if src is nil.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return fmt.Errorf("Vector.Assign: %w", ErrNilVector)
	}
	if src == v {
		return nil
	}

	data := make([]T, len(src.data))
	copy(data, src.data)

	v.data = data
	v.startIndex = src.startIndex
	v.maxSize = src.maxSize

	return nil
}

// Equal reports whether v and other have the same size and equal elements.
// Start index does not participate. Two nil vectors are equal.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders the elements as "[a, b, c]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
