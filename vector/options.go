// SPDX-License-Identifier: MIT

// Package vector: functional configuration for New.
//   - Default* constants are the single source of truth for zero-value behavior.
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - Values a caller may legitimately get wrong at runtime (a negative start
//     index) are NOT rejected here; New reports them as sentinel errors.
package vector

// MaxVectorSize is the default upper bound on the size of a Vector.
const MaxVectorSize = 100_000_000

// DefaultStartIndex is the logical offset recorded when WithStartIndex is not given.
const DefaultStartIndex = 0

const panicMaxSizeInvalid = "vector: WithMaxSize: max size must be non-negative"

// Option mutates construction options. Last writer wins.
type Option func(*options)

type options struct {
	startIndex int // validated by New, not here
	maxSize    int // >= 0
}

// WithStartIndex records a logical start offset on the constructed vector.
// A negative offset makes New fail with ErrInvalidStartIndex.
func WithStartIndex(i int) Option {
	return func(o *options) { o.startIndex = i }
}

// WithMaxSize overrides MaxVectorSize for the constructed vector.
// The cap travels with the vector through Clone, Assign and arithmetic.
//
// Panics if n < 0.
func WithMaxSize(n int) Option {
	if n < 0 {
		panic(panicMaxSizeInvalid)
	}

	return func(o *options) { o.maxSize = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		startIndex: DefaultStartIndex,
		maxSize:    MaxVectorSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
