// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

// GelqfBenchmark times the blocked LQ factorization on a range of sizes.
func GelqfBenchmark[T scalar.Scalar](b *testing.B, impl Gelqfer[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, bm := range []struct {
		m, n, nb int
	}{
		{10, 20, 4},
		{50, 100, 8},
		{100, 200, 16},
		{200, 400, 32},
	} {
		m, n, nb := bm.m, bm.n, bm.nb
		a := randomGeneral[T](m, n, 0, rnd)
		aOrig := make([]T, len(a.Data))
		copy(aOrig, a.Data)
		tt := gblas.General[T]{Rows: m, Cols: nb, Stride: nb, Data: make([]T, m*nb)}
		work := make([]T, m)
		b.Run(fmt.Sprintf("m=%d,n=%d,nb=%d", m, n, nb), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(a.Data, aOrig)
				b.StartTimer()
				if err := impl.Gelqf(a, tt, work, nb); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
