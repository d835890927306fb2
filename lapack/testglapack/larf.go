// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Larfer[T scalar.Scalar] interface {
	Larf(side blas.Side, v gblas.Vector[T], tau T, c gblas.General[T], work []T)
}

func LarfTest[T scalar.Scalar](t *testing.T, impl Larfer[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, side := range []blas.Side{blas.Left, blas.Right} {
		for _, size := range []struct {
			m, n, ldc int
		}{
			{m: 1, n: 1},
			{m: 1, n: 5},
			{m: 5, n: 1},
			{m: 4, n: 3},
			{m: 3, n: 4},
			{m: 6, n: 6},
			{m: 5, n: 7, ldc: 11},
		} {
			for _, inc := range []int{1, 2} {
				for cas := 0; cas < 5; cas++ {
					testLarf(t, impl, rnd, side, size.m, size.n, size.ldc, inc, false)
				}
				testLarf(t, impl, rnd, side, size.m, size.n, size.ldc, inc, true)
			}
		}
	}
}

func testLarf[T scalar.Scalar](t *testing.T, impl Larfer[T], rnd *rand.Rand, side blas.Side, m, n, ldc, inc int, zeroTau bool) {
	t.Helper()

	name := fmt.Sprintf("side=%c,m=%d,n=%d,ldc=%d,inc=%d,zeroTau=%v", side, m, n, ldc, inc, zeroTau)

	nv := m
	lwork := n
	if side == blas.Right {
		nv = n
		lwork = m
	}
	// v is taken as given, including its pivot slot, so any content is a
	// valid reflector vector for the purposes of the update.
	v := gblas.Vector[T]{N: nv, Inc: inc, Data: nanSlice[T]((nv-1)*inc + 1)}
	for i := 0; i < nv; i++ {
		v.Data[i*inc] = randomScalar[T](rnd)
	}
	vSave := make([]T, len(v.Data))
	copy(vSave, v.Data)

	var tau T
	if !zeroTau {
		tau = randomScalar[T](rnd)
	}

	c := randomGeneral[T](m, n, ldc, rnd)
	c0 := cloneGeneral(c)
	work := nanSlice[T](lwork)

	impl.Larf(side, v, tau, c, work)

	for i := range v.Data {
		if !sameScalar(v.Data[i], vSave[i]) {
			t.Errorf("%v: v modified", name)
			break
		}
	}

	if zeroTau {
		for i := range c.Data {
			if !sameScalar(c.Data[i], c0.Data[i]) {
				t.Errorf("%v: C modified for tau == 0", name)
				break
			}
		}
		return
	}

	u := make([]complex128, nv)
	for i := 0; i < nv; i++ {
		u[i] = c128(v.At(i))
	}
	want := toCmplx(c0)
	if side == blas.Left {
		applyReflector(want, u, c128(tau))
	} else {
		applyReflectorRight(want, u, c128(tau))
	}
	if !equalApproxGeneral(c, want, tolFor[T](nv+1)*10) {
		t.Errorf("%v: unexpected result", name)
	}

	// Padding of C must not be written.
	for i := 0; i < m; i++ {
		for j := n; j < c.Stride; j++ {
			if !sameScalar(c.Data[i*c.Stride+j], c0.Data[i*c.Stride+j]) {
				t.Errorf("%v: C padding modified at (%d,%d)", name, i, j)
			}
		}
	}
}
