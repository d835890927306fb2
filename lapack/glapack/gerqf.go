// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/jamestjsp/glas/blas/gblas"
)

// Gerqf computes an RQ factorization of the m×n matrix A using a
// blocked algorithm with panels of nb rows, processed from the bottom
// of the matrix upward.
//
// On return A holds R and the reflector encoding of Q as described in
// Gerq2, with the scalar factors in the first min(m,n) elements of tau.
//
// work must have length at least nb*(nb+m); it is used for the panel
// block factors and as workspace for the blocked application. nb is the
// blocking height; Gerqf panics if it is not positive. A violated
// dimension precondition is reported as an ArgError carrying the
// position of the offending argument, and A is not modified in that
// case.
func (impl Implementation[T]) Gerqf(a gblas.General[T], tau gblas.Vector[T], work []T, nb int) error {
	if nb < 1 {
		panic(badNb)
	}
	m, n := a.Dims()
	k := min(m, n)

	// All checks precede any mutation.
	switch {
	case a.Stride < max(1, a.Cols) || (m > 0 && n > 0 && len(a.Data) < (m-1)*a.Stride+n):
		return ArgError(1)
	case tau.N < k:
		return ArgError(2)
	case len(work) < nb*(nb+m):
		return ArgError(3)
	}

	tt := gblas.General[T]{Rows: nb, Cols: nb, Stride: nb, Data: work[:nb*nb]}
	rest := work[nb*nb:]

	for j2 := 0; j2 < k; j2 += nb {
		ib := min(nb, k-j2)
		j := m - j2 - ib

		// Factor the panel A[j:j+ib, 0:n-j2], the lowest ib rows
		// not yet reduced.
		a11 := a.Slice(j, j+ib, 0, n-j2)
		tauw1 := tau.Slice(k-j2-ib, k-j2)

		impl.Gerq2(a11, tauw1, rest)

		if j > 0 {
			// Form the triangular factor of the panel's block
			// reflector and apply it to the rows above,
			// A[0:j, 0:n-j2], from the right.
			tt1 := tt.Slice(0, ib, 0, ib)
			impl.Larft(lapack.Backward, lapack.RowWise, a11, tauw1, tt1)

			a12 := a.Slice(0, j, 0, n-j2)
			work1 := gblas.General[T]{Rows: j, Cols: ib, Stride: ib, Data: rest[:j*ib]}
			impl.Larfb(blas.Right, blas.NoTrans, lapack.Backward, lapack.RowWise, a11, tt1, a12, work1)
		}
	}
	return nil
}
