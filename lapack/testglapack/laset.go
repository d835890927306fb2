// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Laseter[T scalar.Scalar] interface {
	Laset(uplo blas.Uplo, alpha, beta T, a gblas.General[T])
}

func LasetTest[T scalar.Scalar](t *testing.T, impl Laseter[T]) {
	alpha := scalar.FromReal[T](2)
	beta := scalar.FromReal[T](-3)
	if scalar.IsComplex[T]() {
		alpha = scalar.FromParts[T](2, 0.5)
		beta = scalar.FromParts[T](-3, 0.25)
	}
	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower, blas.All} {
		for _, size := range []struct {
			m, n, lda int
		}{
			{m: 0, n: 0},
			{m: 1, n: 1},
			{m: 1, n: 4},
			{m: 4, n: 1},
			{m: 3, n: 5},
			{m: 5, n: 3},
			{m: 4, n: 4, lda: 7},
		} {
			m := size.m
			n := size.n
			name := fmt.Sprintf("uplo=%c,m=%d,n=%d,lda=%d", uplo, m, n, size.lda)

			a := nanGeneral[T](m, n, size.lda)
			impl.Laset(uplo, alpha, beta, a)

			for i := 0; i < m; i++ {
				for j := 0; j < a.Stride; j++ {
					got := a.Data[i*a.Stride+j]
					var want T
					switch {
					case j >= n:
						want = nanScalar[T]()
					case i == j:
						want = beta
					case uplo == blas.Upper && j > i,
						uplo == blas.Lower && j < i,
						uplo == blas.All:
						want = alpha
					default:
						want = nanScalar[T]()
					}
					if !sameScalar(got, want) {
						t.Errorf("%v: unexpected A[%d,%d]: got %v want %v", name, i, j, got, want)
					}
				}
			}
		}
	}
}
