// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"fmt"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Gerqfer[T scalar.Scalar] interface {
	Gerq2er[T]
	Gerqf(a gblas.General[T], tau gblas.Vector[T], work []T, nb int) error
}

// GerqfTest tests that Gerqf computes a valid blocked RQ factorization and
// that the result agrees with the unblocked factorization from Gerq2.
func GerqfTest[T scalar.Scalar](t *testing.T, impl Gerqfer[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, lda, nb int
	}{
		{1, 1, 0, 1},
		{2, 5, 0, 1},
		{2, 5, 0, 2},
		{3, 10, 0, 2},
		{5, 5, 0, 2},
		{5, 5, 0, 5},
		{7, 4, 0, 2},
		{10, 3, 0, 4},
		{12, 5, 0, 3},
		{6, 11, 13, 3},
		{11, 6, 0, 3},
	} {
		m, n, nb := test.m, test.n, test.nb
		k := min(m, n)
		a := randomGeneral[T](m, n, test.lda, rnd)
		a0 := cloneGeneral(a)
		tau := gblas.Vector[T]{N: k, Inc: 1, Data: nanSlice[T](k)}
		work := nanSlice[T](nb * (nb + m))

		name := fmt.Sprintf("m=%d,n=%d,lda=%d,nb=%d", m, n, a.Stride, nb)
		err := impl.Gerqf(a, tau, work, nb)
		if err != nil {
			t.Errorf("%v: unexpected error %v", name, err)
			continue
		}

		checkRQ(t, name, a0, a, tau)

		// Blocking must not change the factorization beyond roundoff.
		aU := cloneGeneral(a0)
		tauU := gblas.Vector[T]{N: k, Inc: 1, Data: nanSlice[T](k)}
		impl.Gerq2(aU, tauU, nanSlice[T](max(0, m-1)))
		tol := tolFor[T](n * k)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if d := cmplx.Abs(c128(a.At(i, j)) - c128(aU.At(i, j))); d > tol {
					t.Errorf("%v: blocked and unblocked factors differ at (%d,%d) by %v", name, i, j, d)
				}
			}
		}
		for i := 0; i < k; i++ {
			if d := cmplx.Abs(c128(tau.At(i)) - c128(tauU.At(i))); d > tol {
				t.Errorf("%v: blocked and unblocked tau[%d] differ by %v", name, i, d)
			}
		}
	}
}
