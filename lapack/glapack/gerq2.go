// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
)

// Gerq2 computes an RQ factorization of the m×n matrix A using the
// unblocked algorithm.
//
// On return
//
//	A = R * Q
//
// where R is an m×n upper trapezoidal matrix occupying the rightmost
// columns of A (if m <= n its upper triangle sits in A[0:m, n-m:n]),
// and Q is an n×n unitary matrix expressed as a product of elementary
// reflectors
//
//	Q = H(0)ᴴ * H(1)ᴴ * ... * H(k-1)ᴴ,   k = min(m,n).
//
// Each H(i) has the form
//
//	H(i) = I - tau[i] * w * wᴴ
//
// where w is a vector with w[n-k+i] = 1 and w[n-k+i+1:n] = 0, and the
// conjugate of w[0:n-k+i] is stored on exit in A[m-k+i, 0:n-k+i]. The
// scalar factors are written to the first k elements of tau, which must
// have length at least k. work must have length at least m-1.
//
// Gerq2 is the panel step of Gerqf.
func (impl Implementation[T]) Gerq2(a gblas.General[T], tau gblas.Vector[T], work []T) {
	m, n := a.Dims()
	k := min(m, n)
	switch {
	case tau.N < k:
		panic(badTau)
	case len(work) < m-1:
		panic(shortWork)
	}

	for i := k - 1; i >= 0; i-- {
		r := m - k + i
		c := n - k + i
		// Generate H(i) to annihilate A[r, 0:c], working on the
		// conjugated row. The pivot sits at the right end of the
		// active segment.
		seg := a.Row(r).Slice(0, c+1)
		impl.Lacgv(seg)
		beta, taui := impl.Larfg(seg.At(c), seg.Slice(0, c))
		tau.Set(i, taui)
		// Apply H(i) to A[0:r, 0:c+1] from the right.
		a.Set(r, c, 1)
		impl.Larf(blas.Right, seg, taui, a.Slice(0, r, 0, c+1), work)
		a.Set(r, c, beta)
		impl.Lacgv(seg.Slice(0, c))
	}
}
