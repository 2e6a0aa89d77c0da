// Package utmatrix is a small numeric container library: a bounds-checked
// vector with a construction-time size and a square matrix that stores only
// its upper triangle.
//
// Packages:
//
//	vector/        — Vector[T]: validated construction, deep copy, Assign, Equal,
//	                 scalar and element-wise arithmetic, dot product
//	utmatrix/      — Matrix[T]: N rows of decreasing length built from Vector[T],
//	                 same value semantics, element-wise Add/Sub
//	cmd/utmatrix/  — command-line harness (vector, matrix, check)
//
// Quick example:
//
//	m, _ := utmatrix.New[int](3)
//	row, _ := m.Row(0) // 3 elements: columns 0..2
//	_ = row.Set(0, 2)  // element (0,0)
//	sum, _ := m.Add(m.Clone())
//
// All failures are sentinel errors (ErrInvalidSize, ErrInvalidStartIndex,
// ErrIndexOutOfRange, ErrSizeMismatch) matched with errors.Is.
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix
