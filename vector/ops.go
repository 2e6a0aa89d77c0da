// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and element-wise arithmetic over Vector.
//   - Every operation allocates its result; operands are never mutated.
//
// Determinism:
//   - Fixed loop order 0..n-1; Dot accumulates left to right.

package vector

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

// like allocates a zeroed vector with v's shape and metadata.
func (v *Vector[T]) like() *Vector[T] {
	return &Vector[T]{
		data:       make([]T, len(v.data)),
		startIndex: v.startIndex,
		maxSize:    v.maxSize,
	}
}

// mapScalar returns out[i] = f(v[i]).
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	out := v.like()
	for i, x := range v.data {
		out.data[i] = f(x)
	}

	return out
}

// AddScalar returns a new vector with s added to every element.
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x + s })
}

// SubScalar returns a new vector with s subtracted from every element.
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x - s })
}

// MulScalar returns a new vector with every element multiplied by s.
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x * s })
}

// sameSize validates the right operand of a binary operation.
func (v *Vector[T]) sameSize(method string, o *Vector[T]) error {
	if o == nil {
		return vectorErrorf(method, len(v.data), ErrNilVector)
	}
	if len(v.data) != len(o.data) {
		return opErrorf(method, len(v.data), len(o.data), ErrSizeMismatch)
	}

	return nil
}

// addSub computes out = v + sign*o for sign in {+1, -1}.
func (v *Vector[T]) addSub(method string, o *Vector[T], sub bool) (*Vector[T], error) {
	if err := v.sameSize(method, o); err != nil {
		return nil, err
	}
	out := v.like()
	if sub {
		for i := range v.data {
			out.data[i] = v.data[i] - o.data[i]
		}
	} else {
		for i := range v.data {
			out.data[i] = v.data[i] + o.data[i]
		}
	}

	return out, nil
}

// Add returns the element-wise sum v + o.
// Returns ErrSizeMismatch when sizes differ, ErrNilVector when o is nil.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.addSub(ctxAdd, o, false)
}

// Sub returns the element-wise difference v - o.
// Returns ErrSizeMismatch when sizes differ, ErrNilVector when o is nil.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.addSub(ctxSub, o, true)
}

// Dot returns the scalar product sum(v[i]*o[i]).
// The product of two empty vectors is the zero value of T.
// Returns ErrSizeMismatch when sizes differ, ErrNilVector when o is nil.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := v.sameSize(ctxDot, o); err != nil {
		return sum, err
	}
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}
