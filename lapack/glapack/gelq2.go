// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
)

// Gelq2 computes an LQ factorization of the m×n matrix A using the
// unblocked algorithm.
//
// On return
//
//	A = L * Q
//
// where L is an m×min(m,n) lower trapezoidal matrix stored on and below
// the diagonal of A (lower triangular if m <= n), and Q is an n×n
// unitary matrix expressed as a product of elementary reflectors
//
//	Q = H(k-1)ᴴ * ... * H(1)ᴴ * H(0)ᴴ,   k = min(m,n).
//
// Each H(i) has the form
//
//	H(i) = I - tau[i] * w * wᴴ
//
// where w is a vector with w[0:i] = 0 and w[i] = 1, and the conjugate of
// w[i+1:n] is stored on exit in A[i, i+1:n]. The scalar factors are
// written to the first k elements of tau, which must have length at
// least k. work must have length at least m-1.
//
// Gelq2 is the panel step of Gelqf.
func (impl Implementation[T]) Gelq2(a gblas.General[T], tau gblas.Vector[T], work []T) {
	m, n := a.Dims()
	k := min(m, n)
	switch {
	case tau.N < k:
		panic(badTau)
	case len(work) < m-1:
		panic(shortWork)
	}

	for i := 0; i < k; i++ {
		// Generate H(i) to annihilate A[i, i+1:n], working on the
		// conjugated row so that the stored tail is conj(w[i+1:n]).
		row := a.Row(i).Slice(i, n)
		impl.Lacgv(row)
		beta, taui := impl.Larfg(row.At(0), row.Slice(1, row.N))
		tau.Set(i, taui)
		if i < m-1 {
			// Apply H(i) to A[i+1:m, i:n] from the right.
			a.Set(i, i, 1)
			impl.Larf(blas.Right, row, taui, a.Slice(i+1, m, i, n), work)
		}
		a.Set(i, i, beta)
		impl.Lacgv(row.Slice(1, row.N))
	}
}
