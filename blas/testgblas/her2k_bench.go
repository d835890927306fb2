// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testgblas

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

func Her2kBenchmark[T scalar.Scalar](b *testing.B, impl Her2ker[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	alpha := scalar.FromReal[T](0.5)
	for _, size := range []struct{ n, k int }{
		{n: 32, k: 32},
		{n: 128, k: 16},
		{n: 128, k: 128},
		{n: 256, k: 64},
	} {
		n := size.n
		k := size.k
		a := randomSlice[T](n*k, rnd)
		bm := randomSlice[T](n*k, rnd)
		cOrig := randomSlice[T](n*n, rnd)
		c := make([]T, len(cOrig))
		for _, uplo := range []blas.Uplo{blas.Lower, blas.All} {
			b.Run(fmt.Sprintf("uplo=%c/n=%d/k=%d", uplo, n, k), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					copy(c, cOrig)
					b.StartTimer()
					impl.Her2k(gblas.RowMajor, uplo, blas.NoTrans, n, k, alpha, a, k, bm, k, 0.5, c, n)
				}
			})
		}
	}
}
