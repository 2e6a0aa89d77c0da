// SPDX-License-Identifier: MIT

// Package utmatrix: functional configuration for New.
package utmatrix

// MaxMatrixSize is the default upper bound on a matrix side.
const MaxMatrixSize = 10_000

const panicMaxSideInvalid = "utmatrix: WithMaxSide: max side must be non-negative"

// Option mutates construction options. Last writer wins.
type Option func(*options)

type options struct {
	maxSide int // >= 0
}

// WithMaxSide overrides MaxMatrixSize for the constructed matrix.
// Rows inherit the same value as their vector cap.
//
// Panics if n < 0.
func WithMaxSide(n int) Option {
	if n < 0 {
		panic(panicMaxSideInvalid)
	}

	return func(o *options) { o.maxSide = n }
}

func gatherOptions(opts ...Option) options {
	o := options{maxSide: MaxMatrixSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
