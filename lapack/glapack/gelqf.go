// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/jamestjsp/glas/blas/gblas"
)

// Gelqf computes an LQ factorization of the m×n matrix A using a
// blocked algorithm with panels of nb rows.
//
// On return
//
//	A = L * Q
//
// where L is an m×min(m,n) lower trapezoidal matrix stored on and below
// the diagonal of A, and Q is an n×n unitary matrix expressed as a
// product of elementary reflectors
//
//	Q = H(k-1)ᴴ * ... * H(1)ᴴ * H(0)ᴴ,   k = min(m,n),
//
// stored as in Gelq2: the conjugated reflector tails above the diagonal
// of A, and the scalar factor of H(j) on the diagonal of the scratch
// matrix tt, at TT[j, j mod nb]. The rest of tt is used for the panel
// block factors and as workspace for the blocked application.
//
// tt must be at least m×nb and work must have length at least m; their
// contents on entry are ignored. nb is the blocking height; Gelqf panics
// if it is not positive. A violated dimension precondition is reported
// as an ArgError carrying the position of the offending argument, and A
// is not modified in that case.
func (impl Implementation[T]) Gelqf(a, tt gblas.General[T], work []T, nb int) error {
	if nb < 1 {
		panic(badNb)
	}
	m, n := a.Dims()
	k := min(m, n)

	// All checks precede any mutation.
	switch {
	case a.Stride < max(1, a.Cols) || (m > 0 && n > 0 && len(a.Data) < (m-1)*a.Stride+n):
		return ArgError(1)
	case tt.Rows < m || tt.Cols < nb || tt.Stride < max(1, tt.Cols) ||
		(tt.Rows > 0 && tt.Cols > 0 && len(tt.Data) < (tt.Rows-1)*tt.Stride+tt.Cols):
		return ArgError(2)
	case len(work) < m:
		return ArgError(3)
	}

	for j := 0; j < k; j += nb {
		ib := min(nb, k-j)

		// Factor the panel A[j:j+ib, j:n], storing the tau scalars
		// on the diagonal of TT[j:j+ib, 0:ib].
		tt1 := tt.Slice(j, j+ib, 0, ib)
		a11 := a.Slice(j, j+ib, j, n)
		tauw1 := tt1.Diag()

		impl.Gelq2(a11, tauw1, work)

		if j+ib < m {
			// Form the triangular factor of the panel's block
			// reflector and apply it to the trailing rows
			// A[j+ib:m, j:n] from the right, borrowing the rows
			// of TT below the panel as workspace.
			impl.Larft(lapack.Forward, lapack.RowWise, a11, tauw1, tt1)

			a12 := a.Slice(j+ib, m, j, n)
			work1 := tt.Slice(j+ib, m, 0, ib)
			impl.Larfb(blas.Right, blas.NoTrans, lapack.Forward, lapack.RowWise, a11, tt1, a12, work1)
		}
	}
	return nil
}
