// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

// Larft forms the triangular factor T of the block reflector H, defined
// by the k elementary reflectors stored in v together with their scalar
// factors in tau, where k = tau.N.
//
// The block reflector is
//
//	H = I - V * T * Vᴴ  if store == lapack.ColumnWise
//	H = I - Vᴴ * T * V  if store == lapack.RowWise
//
// with reflector i held in column i of v (v is n×k) for column-wise
// storage and in row i of v (v is k×n) for row-wise storage, n being
// the order of H.
//
// If direct == lapack.Forward, H = H(0) * H(1) * ... * H(k-1), T is
// upper triangular, and reflector i has its unit pivot element at
// position i, which is not read. If direct == lapack.Backward,
// H = H(k-1) * ... * H(1) * H(0), T is lower triangular, and reflector
// i has its unit pivot element at position n-k+i.
//
// Only the triangle of t selected by direct is written; for tau[i] == 0
// the corresponding reflector is the identity and column i of that
// triangle is zeroed.
func (impl Implementation[T]) Larft(direct lapack.Direct, store lapack.StoreV, v gblas.General[T], tau gblas.Vector[T], t gblas.General[T]) {
	switch direct {
	default:
		panic(badDirect)
	case lapack.Forward, lapack.Backward:
	}
	switch store {
	default:
		panic(badStoreV)
	case lapack.RowWise, lapack.ColumnWise:
	}
	k := tau.N
	var n int
	if store == lapack.RowWise {
		n = v.Cols
		if v.Rows != k {
			panic(badV)
		}
	} else {
		n = v.Rows
		if v.Cols != k {
			panic(badV)
		}
	}
	if n < k {
		panic(badV)
	}
	if t.Rows < k || t.Cols < k {
		panic(badT)
	}

	if k == 0 || n == 0 {
		return
	}

	bi := gblas.Implementation[T]{}
	ldv := v.Stride
	ldt := t.Stride

	if direct == lapack.Forward {
		for i := 0; i < k; i++ {
			taui := tau.At(i)
			if taui == 0 {
				// H(i) is the identity.
				for j := 0; j <= i; j++ {
					t.Set(j, i, 0)
				}
				continue
			}
			if store == lapack.RowWise {
				// T[0:i, i] = -tau[i] * V[0:i, i:n] * V[i, i:n]ᴴ
				// with the unit pivot of row i implicit.
				for j := 0; j < i; j++ {
					t.Set(j, i, -taui*v.At(j, i))
				}
				if i > 0 && i+1 < n {
					bi.Gemm(blas.NoTrans, blas.ConjTrans, i, 1, n-i-1, -taui,
						v.Data[i+1:], ldv,
						v.Data[i*ldv+i+1:], ldv,
						1, t.Data[i:], ldt)
				}
			} else {
				// T[0:i, i] = -tau[i] * V[i:n, 0:i]ᴴ * V[i:n, i]
				// with the unit pivot of column i implicit.
				for j := 0; j < i; j++ {
					t.Set(j, i, -taui*scalar.Conj(v.At(i, j)))
				}
				if i > 0 && i+1 < n {
					bi.Gemv(blas.ConjTrans, n-i-1, i, -taui,
						v.Data[(i+1)*ldv:], ldv,
						v.Data[(i+1)*ldv+i:], ldv,
						1, t.Data[i:], ldt)
				}
			}
			// T[0:i, i] = T[0:i, 0:i] * T[0:i, i]
			if i > 0 {
				bi.Trmv(blas.Upper, blas.NoTrans, blas.NonUnit, i, t.Data, ldt, t.Data[i:], ldt)
			}
			t.Set(i, i, taui)
		}
		return
	}

	for i := k - 1; i >= 0; i-- {
		taui := tau.At(i)
		if taui == 0 {
			// H(i) is the identity.
			for j := i; j < k; j++ {
				t.Set(j, i, 0)
			}
			continue
		}
		p := n - k + i // pivot position of reflector i
		if store == lapack.RowWise {
			// T[i+1:k, i] = -tau[i] * V[i+1:k, 0:p+1] * V[i, 0:p+1]ᴴ
			// with the unit pivot of row i implicit.
			for j := i + 1; j < k; j++ {
				t.Set(j, i, -taui*v.At(j, p))
			}
			if i < k-1 && p > 0 {
				bi.Gemm(blas.NoTrans, blas.ConjTrans, k-i-1, 1, p, -taui,
					v.Data[(i+1)*ldv:], ldv,
					v.Data[i*ldv:], ldv,
					1, t.Data[(i+1)*ldt+i:], ldt)
			}
		} else {
			// T[i+1:k, i] = -tau[i] * V[0:p+1, i+1:k]ᴴ * V[0:p+1, i]
			// with the unit pivot of column i implicit.
			for j := i + 1; j < k; j++ {
				t.Set(j, i, -taui*scalar.Conj(v.At(p, j)))
			}
			if i < k-1 && p > 0 {
				bi.Gemv(blas.ConjTrans, p, k-i-1, -taui,
					v.Data[i+1:], ldv,
					v.Data[i:], ldv,
					1, t.Data[(i+1)*ldt+i:], ldt)
			}
		}
		// T[i+1:k, i] = T[i+1:k, i+1:k] * T[i+1:k, i]
		if i < k-1 {
			bi.Trmv(blas.Lower, blas.NoTrans, blas.NonUnit, k-i-1, t.Data[(i+1)*ldt+i+1:], ldt, t.Data[(i+1)*ldt+i:], ldt)
		}
		t.Set(i, i, taui)
	}
}
