// SPDX-License-Identifier: MIT
package vector_test

import (
	"testing"

	"github.com/katalvlaran/utmatrix/vector"
	"github.com/stretchr/testify/require"
)

// TestNew_ValidSizes ensures every size in [0, max] constructs and reports its size.
func TestNew_ValidSizes(t *testing.T) {
	const maxSize = 16
	for size := 0; size <= maxSize; size++ {
		v, err := vector.New[int](size, vector.WithMaxSize(maxSize))
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, size, v.Size())
		require.Equal(t, maxSize, v.MaxSize())
	}
}

// TestNew_Defaults checks the documented zero-option behavior.
func TestNew_Defaults(t *testing.T) {
	v, err := vector.New[int](5)
	require.NoError(t, err)
	require.Equal(t, 5, v.Size())
	require.Equal(t, vector.DefaultStartIndex, v.StartIndex())
	require.Equal(t, vector.MaxVectorSize, v.MaxSize())
	require.Equal(t, []int{0, 0, 0, 0, 0}, v.Data()) // zero-initialized
}

// TestNew_ZeroSize ensures an empty vector is valid.
func TestNew_ZeroSize(t *testing.T) {
	v, err := vector.New[float64](0)
	require.NoError(t, err)
	require.Equal(t, 0, v.Size())
	require.Equal(t, "[]", v.String())
}

// TestNew_InvalidSize covers negative and too-large sizes.
func TestNew_InvalidSize(t *testing.T) {
	cases := []struct {
		name string
		size int
		opts []vector.Option
	}{
		{"negative", -5, nil},
		{"minus one", -1, nil},
		{"above default max", vector.MaxVectorSize + 1, nil},
		{"above custom max", 9, []vector.Option{vector.WithMaxSize(8)}},
		{"nonzero with zero max", 1, []vector.Option{vector.WithMaxSize(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vector.New[int](tc.size, tc.opts...)
			require.ErrorIs(t, err, vector.ErrInvalidSize)
			require.Nil(t, v)
		})
	}
}

// TestNew_MaxSizeBoundary accepts exactly the cap.
func TestNew_MaxSizeBoundary(t *testing.T) {
	v, err := vector.New[int](32, vector.WithMaxSize(32))
	require.NoError(t, err)
	require.Equal(t, 32, v.Size())
}

// TestNew_StartIndex records a valid offset and rejects a negative one.
func TestNew_StartIndex(t *testing.T) {
	v, err := vector.New[int](4, vector.WithStartIndex(2))
	require.NoError(t, err)
	require.Equal(t, 2, v.StartIndex())

	v, err = vector.New[int](5, vector.WithStartIndex(-2))
	require.ErrorIs(t, err, vector.ErrInvalidStartIndex)
	require.Nil(t, v)
}

// TestNew_SizeCheckedBeforeStartIndex documents the validation order.
func TestNew_SizeCheckedBeforeStartIndex(t *testing.T) {
	_, err := vector.New[int](-1, vector.WithStartIndex(-1))
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

// TestWithMaxSize_PanicsOnNegative confirms option misuse is a programmer error.
func TestWithMaxSize_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { vector.WithMaxSize(-1) })
}

// TestOptions_LastWriterWins ensures repeated options override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	v, err := vector.New[int](3, vector.WithStartIndex(7), vector.WithStartIndex(1), nil)
	require.NoError(t, err)
	require.Equal(t, 1, v.StartIndex())
}

// TestSetAt round-trips a value through Set and At.
func TestSetAt(t *testing.T) {
	v, err := vector.New[int](4)
	require.NoError(t, err)

	require.NoError(t, v.Set(0, 4))
	got, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 4, got)
}

// TestIndexOutOfRange covers both bounds for At, Set and Ref.
func TestIndexOutOfRange(t *testing.T) {
	v, err := vector.New[int](10)
	require.NoError(t, err)

	for _, k := range []int{-1, 10, 11} {
		_, err = v.At(k)
		require.ErrorIs(t, err, vector.ErrIndexOutOfRange, "At(%d)", k)

		err = v.Set(k, 1)
		require.ErrorIs(t, err, vector.ErrIndexOutOfRange, "Set(%d)", k)

		p, err := v.Ref(k)
		require.ErrorIs(t, err, vector.ErrIndexOutOfRange, "Ref(%d)", k)
		require.Nil(t, p)
	}

	empty, err := vector.New[int](0)
	require.NoError(t, err)
	_, err = empty.At(0)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

// TestRef_WritesThrough ensures the handle addresses the vector's own storage.
func TestRef_WritesThrough(t *testing.T) {
	v, err := vector.New[int](3)
	require.NoError(t, err)

	p, err := v.Ref(1)
	require.NoError(t, err)
	*p += 9

	got, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 9, got)
}

// TestClone_EqualAndIndependent verifies deep-copy semantics.
func TestClone_EqualAndIndependent(t *testing.T) {
	s, err := vector.New[int](5, vector.WithStartIndex(3))
	require.NoError(t, err)
	v := s.Clone()
	require.True(t, v.Equal(s))
	require.Equal(t, s.StartIndex(), v.StartIndex())

	require.NoError(t, s.Set(0, 15))
	sv, _ := s.At(0)
	vv, _ := v.At(0)
	require.NotEqual(t, sv, vv)
	require.Equal(t, 0, vv)
}

// TestData_ReturnsCopy ensures callers cannot reach internal storage via Data.
func TestData_ReturnsCopy(t *testing.T) {
	v, err := vector.New[int](2)
	require.NoError(t, err)
	d := v.Data()
	d[0] = 42
	got, _ := v.At(0)
	require.Equal(t, 0, got)
}

// TestAssign_Self leaves the vector unchanged.
func TestAssign_Self(t *testing.T) {
	s, err := vector.New[int](10)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 1))
	before := s.Clone()

	require.NoError(t, s.Assign(s))
	require.True(t, s.Equal(before))
}

// TestAssign_Sizes covers equal and different sizes in both directions.
func TestAssign_Sizes(t *testing.T) {
	cases := []struct {
		name     string
		dst, src int
	}{
		{"equal", 10, 10},
		{"shrink", 10, 5},
		{"grow", 5, 10},
		{"to empty", 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst, err := vector.New[int](tc.dst)
			require.NoError(t, err)
			src, err := vector.New[int](tc.src, vector.WithStartIndex(1))
			require.NoError(t, err)
			if tc.src > 0 {
				require.NoError(t, src.Set(0, 1))
			}

			require.NoError(t, dst.Assign(src))
			require.Equal(t, src.Size(), dst.Size())
			require.Equal(t, src.StartIndex(), dst.StartIndex())
			require.True(t, dst.Equal(src))

			// storage must not be shared after assignment
			if tc.src > 0 {
				require.NoError(t, src.Set(0, 99))
				got, _ := dst.At(0)
				require.Equal(t, 1, got)
			}
		})
	}
}

// TestAssign_Nil rejects a nil source and keeps the receiver intact.
func TestAssign_Nil(t *testing.T) {
	v, err := vector.New[int](2)
	require.NoError(t, err)
	require.ErrorIs(t, v.Assign(nil), vector.ErrNilVector)
	require.Equal(t, 2, v.Size())
}

// TestEqual covers reflexivity, symmetry, size and nil handling.
func TestEqual(t *testing.T) {
	s, _ := vector.New[int](10)
	s1 := s.Clone()
	require.True(t, s.Equal(s))
	require.True(t, s.Equal(s1))
	require.True(t, s1.Equal(s))

	short, _ := vector.New[int](5)
	require.False(t, s.Equal(short))
	require.False(t, short.Equal(s))

	require.NoError(t, s1.Set(9, 1))
	require.False(t, s.Equal(s1))

	// start index is metadata only
	offset, _ := vector.New[int](10, vector.WithStartIndex(4))
	require.True(t, s.Equal(offset))

	var nilVec *vector.Vector[int]
	require.True(t, nilVec.Equal(nil))
	require.False(t, s.Equal(nil))
	require.False(t, nilVec.Equal(s))
}

// TestString checks the rendered form.
func TestString(t *testing.T) {
	v, _ := vector.New[float64](3)
	_ = v.Set(0, 1.5)
	_ = v.Set(2, -2)
	require.Equal(t, "[1.5, 0, -2]", v.String())
}
