// SPDX-License-Identifier: MIT

// Package vector provides Vector[T], a bounds-checked numeric sequence whose
// size is fixed at construction time and capped by a configurable maximum.
//
// What & Why:
//
//	Vector owns a contiguous buffer of Size() elements. Every public accessor
//	validates its index and returns a sentinel error instead of panicking, and
//	every copy (Clone, Assign, arithmetic results) allocates fresh storage, so
//	two instances never alias each other.
//
// Construction:
//
//	v, err := vector.New[int](5)                          // five zeros
//	w, err := vector.New[int](5, vector.WithStartIndex(2)) // records offset 2
//	big, err := vector.New[float64](n, vector.WithMaxSize(1<<20))
//
// Errors (match with errors.Is):
//
//	ErrInvalidSize       size < 0 or size > max size
//	ErrInvalidStartIndex start index < 0
//	ErrIndexOutOfRange   At/Set/Ref outside [0, Size())
//	ErrSizeMismatch      Add/Sub/Dot on operands of different size
//	ErrNilVector         nil operand passed to Assign/Add/Sub/Dot
//
// Complexity:
//
//	New, Clone, Assign, Equal and all arithmetic run in O(n).
//	Size, StartIndex, At, Set and Ref run in O(1).
//
// Concurrency:
//
//	A Vector is a sequential value type. Distinct instances may be used from
//	different goroutines; a single instance must not be mutated concurrently.
package vector
