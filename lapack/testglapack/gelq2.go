// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Gelq2er[T scalar.Scalar] interface {
	Gelq2(a gblas.General[T], tau gblas.Vector[T], work []T)
}

// Gelq2Test tests that Gelq2 computes an LQ factorization A = L·Q with a
// lower trapezoidal L and a unitary Q assembled from the stored reflectors.
func Gelq2Test[T scalar.Scalar](t *testing.T, impl Gelq2er[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, lda int
	}{
		{1, 1, 0},
		{1, 5, 0},
		{2, 2, 0},
		{2, 5, 0},
		{3, 10, 0},
		{5, 5, 0},
		{7, 4, 0},
		{10, 3, 0},
		{5, 10, 15},
		{4, 4, 7},
	} {
		m, n := test.m, test.n
		k := min(m, n)
		a := randomGeneral[T](m, n, test.lda, rnd)
		a0 := cloneGeneral(a)
		tau := gblas.Vector[T]{N: k, Inc: 1, Data: nanSlice[T](k)}
		work := nanSlice[T](max(0, m-1))

		impl.Gelq2(a, tau, work)

		name := fmt.Sprintf("m=%d,n=%d,lda=%d", m, n, a.Stride)
		checkLQ(t, name, a0, a, tau)
	}
}

// checkLQ verifies an LQ factorization held in a and tau against the
// original matrix aOrig: the diagonal of L is real, Q is unitary, L·Q
// reconstructs aOrig, and padding outside the matrix content is untouched.
func checkLQ[T scalar.Scalar](t *testing.T, name string, aOrig, a gblas.General[T], tau gblas.Vector[T]) {
	t.Helper()
	m, n := a.Dims()
	k := tau.N

	for i := 0; i < k; i++ {
		if sameScalar(tau.At(i), nanScalar[T]()) {
			t.Errorf("%v: tau[%d] not written", name, i)
		}
		if im := scalar.Im(a.At(i, i)); im != 0 {
			t.Errorf("%v: diagonal element %d of L is not real: imag = %v", name, i, im)
		}
	}
	for i := 0; i < m; i++ {
		for j := n; j < a.Stride && i*a.Stride+j < len(a.Data); j++ {
			if !sameScalar(a.Data[i*a.Stride+j], aOrig.Data[i*aOrig.Stride+j]) {
				t.Errorf("%v: out-of-matrix element (%d,%d) modified", name, i, j)
			}
		}
	}

	q := constructQ("LQ", a, tau)
	if res := unitaryResidual(q); res > tolFor[T](n*n) {
		t.Errorf("%v: Q is not unitary: residual %v", name, res)
	}

	l := zeros(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j <= min(i, n-1); j++ {
			l.Data[i*l.Stride+j] = c128(a.At(i, j))
		}
	}
	lq := zeros(m, n)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, l, q, 0, lq)
	if !equalApproxGeneral(aOrig, lq, tolFor[T](n*(k+1))) {
		t.Errorf("%v: L*Q does not reconstruct A", name)
	}
}
