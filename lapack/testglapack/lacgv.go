// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"math/rand/v2"
	"testing"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Lacgver[T scalar.Scalar] interface {
	Lacgv(x gblas.Vector[T])
}

func LacgvTest[T scalar.Scalar](t *testing.T, impl Lacgver[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, n := range []int{0, 1, 4, 9} {
		for _, inc := range []int{1, 3} {
			x := gblas.Vector[T]{N: n, Inc: inc}
			if n > 0 {
				x.Data = nanSlice[T]((n-1)*inc + 1)
				for i := 0; i < n; i++ {
					x.Set(i, randomScalar[T](rnd))
				}
			}
			orig := make([]T, len(x.Data))
			copy(orig, x.Data)

			impl.Lacgv(x)
			for i := 0; i < n; i++ {
				want := scalar.Conj(orig[i*inc])
				if !sameScalar(x.At(i), want) {
					t.Errorf("n=%d,inc=%d: x[%d] = %v, want %v", n, inc, i, x.At(i), want)
				}
			}
			// Padding between elements must not be touched.
			for i := range x.Data {
				if i%inc != 0 && !sameScalar(x.Data[i], nanScalar[T]()) {
					t.Errorf("n=%d,inc=%d: padding modified at %d", n, inc, i)
				}
			}

			// Conjugating twice restores the input.
			impl.Lacgv(x)
			for i := range x.Data {
				if !sameScalar(x.Data[i], orig[i]) {
					t.Errorf("n=%d,inc=%d: double conjugation not the identity at %d", n, inc, i)
					break
				}
			}
		}
	}
}
