// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Larfber[T scalar.Scalar] interface {
	Larfter[T]
	Larfb(side blas.Side, trans blas.Transpose, direct lapack.Direct, store lapack.StoreV, v, t, c, work gblas.General[T])
}

func LarfbTest[T scalar.Scalar](t *testing.T, impl Larfber[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	transes := []blas.Transpose{blas.NoTrans, blas.ConjTrans}
	if !scalar.IsComplex[T]() {
		transes = append(transes, blas.Trans)
	}
	for _, side := range []blas.Side{blas.Left, blas.Right} {
		for _, trans := range transes {
			for _, direct := range []lapack.Direct{lapack.Forward, lapack.Backward} {
				for _, store := range []lapack.StoreV{lapack.RowWise, lapack.ColumnWise} {
					for _, size := range []struct {
						m, n, k, ldc, ldv, ldt, ldw int
					}{
						{m: 1, n: 1, k: 1},
						{m: 4, n: 3, k: 2},
						{m: 3, n: 5, k: 3},
						{m: 6, n: 6, k: 4},
						{m: 5, n: 7, k: 5},
						{m: 7, n: 5, k: 5, ldc: 9, ldv: 11, ldt: 8, ldw: 7},
					} {
						testLarfb(t, impl, rnd, side, trans, direct, store, size.m, size.n, size.k, size.ldc, size.ldv, size.ldt, size.ldw)
					}
				}
			}
		}
	}
}

func testLarfb[T scalar.Scalar](t *testing.T, impl Larfber[T], rnd *rand.Rand, side blas.Side, trans blas.Transpose, direct lapack.Direct, store lapack.StoreV, m, n, k, ldc, ldv, ldt, ldw int) {
	t.Helper()

	name := fmt.Sprintf("side=%c,trans=%c,direct=%c,store=%c,m=%d,n=%d,k=%d", side, trans, direct, store, m, n, k)

	nv := m
	wrows := n
	if side == blas.Right {
		nv = n
		wrows = m
	}

	// The pivot slots and the structurally zero region of v are junk;
	// they must never be read.
	var v gblas.General[T]
	if store == lapack.RowWise {
		v = randomGeneral[T](k, nv, ldv, rnd)
	} else {
		v = randomGeneral[T](nv, k, ldv, rnd)
	}
	tau := gblas.Vector[T]{N: k, Inc: 1, Data: make([]T, k)}
	for i := 0; i < k; i++ {
		tau.Set(i, randomScalar[T](rnd))
	}
	tMat := nanGeneral[T](k, k, ldt)
	impl.Larft(direct, store, v, tau, tMat)

	vSave := make([]T, len(v.Data))
	copy(vSave, v.Data)
	tSave := make([]T, len(tMat.Data))
	copy(tSave, tMat.Data)

	c := randomGeneral[T](m, n, ldc, rnd)
	c0 := cloneGeneral(c)
	work := nanGeneral[T](wrows, k, ldw)

	impl.Larfb(side, trans, direct, store, v, tMat, c, work)

	for i := range v.Data {
		if !sameScalar(v.Data[i], vSave[i]) {
			t.Errorf("%v: v modified", name)
			break
		}
	}
	for i := range tMat.Data {
		if !sameScalar(tMat.Data[i], tSave[i]) {
			t.Errorf("%v: t modified", name)
			break
		}
	}

	// Apply the reflectors of the block one at a time for the reference.
	us := extractReflectors(direct, store, v, k)
	conjTrans := trans != blas.NoTrans
	ascending := direct == lapack.Backward
	if (side == blas.Right) != conjTrans {
		ascending = direct == lapack.Forward
	}
	want := toCmplx(c0)
	apply := func(i int) {
		tau128 := c128(tau.At(i))
		if conjTrans {
			tau128 = cmplx.Conj(tau128)
		}
		if side == blas.Left {
			applyReflector(want, us[i], tau128)
		} else {
			applyReflectorRight(want, us[i], tau128)
		}
	}
	if ascending {
		for i := 0; i < k; i++ {
			apply(i)
		}
	} else {
		for i := k - 1; i >= 0; i-- {
			apply(i)
		}
	}

	var scale float64
	for _, val := range want.Data {
		scale = math.Max(scale, cmplx.Abs(val))
	}
	if !equalApproxGeneral(c, want, tolFor[T](k*(nv+1))*math.Max(1, scale)) {
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
