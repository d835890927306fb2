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
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/lapack"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Larfter[T scalar.Scalar] interface {
	Larft(direct lapack.Direct, store lapack.StoreV, v gblas.General[T], tau gblas.Vector[T], t gblas.General[T])
}

func LarftTest[T scalar.Scalar](t *testing.T, impl Larfter[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, direct := range []lapack.Direct{lapack.Forward, lapack.Backward} {
		for _, store := range []lapack.StoreV{lapack.RowWise, lapack.ColumnWise} {
			for _, size := range []struct {
				n, k, ldv, ldt int
			}{
				{n: 1, k: 1},
				{n: 3, k: 1},
				{n: 4, k: 2},
				{n: 5, k: 5},
				{n: 7, k: 3},
				{n: 6, k: 4, ldv: 9, ldt: 7},
			} {
				for cas := 0; cas < 3; cas++ {
					testLarft(t, impl, rnd, direct, store, size.n, size.k, size.ldv, size.ldt, cas)
				}
			}
		}
	}
}

func testLarft[T scalar.Scalar](t *testing.T, impl Larfter[T], rnd *rand.Rand, direct lapack.Direct, store lapack.StoreV, n, k, ldv, ldt, cas int) {
	t.Helper()

	name := fmt.Sprintf("direct=%c,store=%c,n=%d,k=%d,ldv=%d,ldt=%d,cas=%d", direct, store, n, k, ldv, ldt, cas)

	// The pivot slots and the structurally zero region of v must never be
	// read, so the whole matrix is filled with random junk.
	var v gblas.General[T]
	if store == lapack.RowWise {
		v = randomGeneral[T](k, n, ldv, rnd)
	} else {
		v = randomGeneral[T](n, k, ldv, rnd)
	}
	vSave := make([]T, len(v.Data))
	copy(vSave, v.Data)

	tauInc := 1
	if cas == 1 {
		tauInc = 2
	}
	tau := gblas.Vector[T]{N: k, Inc: tauInc, Data: nanSlice[T]((k-1)*tauInc + 1)}
	for i := 0; i < k; i++ {
		tau.Set(i, randomScalar[T](rnd))
	}
	if cas == 2 && k > 1 {
		tau.Set(1, 0)
	}

	tGot := nanGeneral[T](k, k, ldt)
	impl.Larft(direct, store, v, tau, tGot)

	for i := range v.Data {
		if !sameScalar(v.Data[i], vSave[i]) {
			t.Errorf("%v: v modified", name)
			break
		}
	}

	// Only the triangle selected by direct may be written.
	for i := 0; i < k; i++ {
		for j := 0; j < tGot.Stride; j++ {
			val := tGot.Data[i*tGot.Stride+j]
			inTri := j >= i
			if direct == lapack.Backward {
				inTri = j <= i
			}
			if j < k && inTri {
				continue
			}
			if !sameScalar(val, nanScalar[T]()) {
				t.Errorf("%v: T written outside its triangle at (%d,%d)", name, i, j)
			}
		}
	}

	// The diagonal of T carries tau unchanged, and a zero tau zeroes its
	// column of the triangle.
	for i := 0; i < k; i++ {
		if !sameScalar(tGot.At(i, i), tau.At(i)) {
			t.Errorf("%v: T[%d,%d] = %v, want %v", name, i, i, tGot.At(i, i), tau.At(i))
		}
		if tau.At(i) != 0 {
			continue
		}
		if direct == lapack.Forward {
			for j := 0; j < i; j++ {
				if tGot.At(j, i) != 0 {
					t.Errorf("%v: T[%d,%d] not zeroed for zero tau", name, j, i)
				}
			}
		} else {
			for j := i + 1; j < k; j++ {
				if tGot.At(j, i) != 0 {
					t.Errorf("%v: T[%d,%d] not zeroed for zero tau", name, j, i)
				}
			}
		}
	}

	// Accumulate the reflector product explicitly and compare it against
	// the block form assembled from T.
	us := extractReflectors(direct, store, v, k)
	p := eye(n)
	if direct == lapack.Forward {
		for i := k - 1; i >= 0; i-- {
			applyReflector(p, us[i], c128(tau.At(i)))
		}
	} else {
		for i := 0; i < k; i++ {
			applyReflector(p, us[i], c128(tau.At(i)))
		}
	}

	tClean := zeros(k, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if j >= i && direct == lapack.Forward || j <= i && direct == lapack.Backward {
				tClean.Data[i*tClean.Stride+j] = c128(tGot.At(i, j))
			}
		}
	}
	var hb cblas128.General
	if store == lapack.RowWise {
		// H = I - Vᴴ T V with V[i,j] = conj(u_i[j]).
		vClean := zeros(k, n)
		for i := 0; i < k; i++ {
			for j := 0; j < n; j++ {
				vClean.Data[i*vClean.Stride+j] = cmplx.Conj(us[i][j])
			}
		}
		tmp := zeros(k, n)
		cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, tClean, vClean, 0, tmp)
		hb = eye(n)
		cblas128.Gemm(blas.ConjTrans, blas.NoTrans, -1, vClean, tmp, 1, hb)
	} else {
		// H = I - V T Vᴴ with V[j,i] = u_i[j].
		vClean := zeros(n, k)
		for i := 0; i < k; i++ {
			for j := 0; j < n; j++ {
				vClean.Data[j*vClean.Stride+i] = us[i][j]
			}
		}
		tmp := zeros(n, k)
		cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, vClean, tClean, 0, tmp)
		hb = eye(n)
		cblas128.Gemm(blas.NoTrans, blas.ConjTrans, -1, tmp, vClean, 1, hb)
	}
	// Unnormalized reflectors let the product grow with k, so the
	// tolerance scales with its magnitude.
	var pScale float64
	for _, val := range p.Data {
		pScale = math.Max(pScale, cmplx.Abs(val))
	}
	if !equalApproxCmplx(hb, p, tolFor[T](k*n)*math.Max(1, pScale)) {
		t.Errorf("%v: block reflector does not match the reflector product", name)
	}
}
