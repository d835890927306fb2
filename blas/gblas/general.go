// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import "github.com/jamestjsp/glas/scalar"

// General is a dense m×n matrix view stored in row-major order: element
// (i,j) is Data[i*Stride+j]. Stride must be at least Cols, and Data must
// hold at least (Rows-1)*Stride+Cols elements when the matrix is
// nonempty.
//
// General is a view type. Slice and Diag return windows that share the
// receiver's backing slice, so writes through a window are visible in
// every overlapping view.
type General[T scalar.Scalar] struct {
	Rows, Cols int
	Stride     int
	Data       []T
}

// Dims returns the number of rows and columns of the matrix.
func (m General[T]) Dims() (r, c int) {
	return m.Rows, m.Cols
}

// At returns the element at row i, column j.
func (m General[T]) At(i, j int) T {
	if uint(i) >= uint(m.Rows) {
		panic(badRowIndex)
	}
	if uint(j) >= uint(m.Cols) {
		panic(badColIndex)
	}
	return m.Data[i*m.Stride+j]
}

// Set sets the element at row i, column j to v.
func (m General[T]) Set(i, j int, v T) {
	if uint(i) >= uint(m.Rows) {
		panic(badRowIndex)
	}
	if uint(j) >= uint(m.Cols) {
		panic(badColIndex)
	}
	m.Data[i*m.Stride+j] = v
}

// Slice returns the submatrix of rows [i,k) and columns [j,l) backed by
// the receiver's data. The result may be empty.
func (m General[T]) Slice(i, k, j, l int) General[T] {
	switch {
	case i < 0 || k < i || m.Rows < k:
		panic(badSlice)
	case j < 0 || l < j || m.Cols < l:
		panic(badSlice)
	}
	v := General[T]{
		Rows:   k - i,
		Cols:   l - j,
		Stride: m.Stride,
	}
	if v.Rows == 0 || v.Cols == 0 {
		return v
	}
	v.Data = m.Data[i*m.Stride+j : (k-1)*m.Stride+l]
	return v
}

// Row returns row i of the matrix as a unit-increment vector backed by
// the receiver's data.
func (m General[T]) Row(i int) Vector[T] {
	if uint(i) >= uint(m.Rows) {
		panic(badRowIndex)
	}
	return Vector[T]{
		N:    m.Cols,
		Inc:  1,
		Data: m.Data[i*m.Stride : i*m.Stride+m.Cols],
	}
}

// Diag returns the main diagonal of the matrix as a vector backed by the
// receiver's data. Its length is min(Rows, Cols).
func (m General[T]) Diag() Vector[T] {
	n := min(m.Rows, m.Cols)
	v := Vector[T]{N: n, Inc: m.Stride + 1}
	if n == 0 {
		return v
	}
	v.Data = m.Data[: (n-1)*(m.Stride+1)+1 : (n-1)*(m.Stride+1)+1]
	return v
}

// Vector is a strided vector view: element i is Data[i*Inc]. The view
// methods require Inc > 0; negative increments exist only at the flat
// BLAS call level.
type Vector[T scalar.Scalar] struct {
	N    int
	Inc  int
	Data []T
}

// At returns the element at index i.
func (v Vector[T]) At(i int) T {
	if uint(i) >= uint(v.N) {
		panic(badVectorIndex)
	}
	return v.Data[i*v.Inc]
}

// Set sets the element at index i to x.
func (v Vector[T]) Set(i int, x T) {
	if uint(i) >= uint(v.N) {
		panic(badVectorIndex)
	}
	v.Data[i*v.Inc] = x
}

// Slice returns the subvector of elements [i,k) backed by the receiver's
// data. The result may be empty.
func (v Vector[T]) Slice(i, k int) Vector[T] {
	if i < 0 || k < i || v.N < k {
		panic(badSlice)
	}
	s := Vector[T]{N: k - i, Inc: v.Inc}
	if s.N == 0 {
		return s
	}
	s.Data = v.Data[i*v.Inc : (k-1)*v.Inc+1]
	return s
}
