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

// Larfb applies the block reflector H or its conjugate transpose to the
// m×n matrix C,
//
//	C = H * C    if side == blas.Left  and trans == blas.NoTrans
//	C = Hᴴ * C   if side == blas.Left  and trans == blas.ConjTrans
//	C = C * H    if side == blas.Right and trans == blas.NoTrans
//	C = C * Hᴴ   if side == blas.Right and trans == blas.ConjTrans
//
// where H is defined by the k reflectors stored in v and the k×k
// triangular factor t produced by Larft with the same direct and store
// arguments. For real element types blas.Trans is accepted as an alias
// of blas.ConjTrans.
//
// v holds one reflector per row (store == lapack.RowWise, v is k×nv) or
// per column (store == lapack.ColumnWise, v is nv×k), where nv is m for
// a left application and n for a right application. The unit triangle
// at the reflector pivots (the leading k positions under lapack.Forward,
// the trailing k under lapack.Backward) is not read.
//
// work is scratch of at least n×k for a left application and at least
// m×k for a right application, and must not overlap v, t or c.
func (impl Implementation[T]) Larfb(side blas.Side, trans blas.Transpose, direct lapack.Direct, store lapack.StoreV, v, t, c, work gblas.General[T]) {
	switch side {
	default:
		panic(badSide)
	case blas.Left, blas.Right:
	}
	switch trans {
	default:
		panic(badTranspose)
	case blas.NoTrans, blas.ConjTrans:
	case blas.Trans:
		if scalar.IsComplex[T]() {
			panic(badTranspose)
		}
		trans = blas.ConjTrans
	}
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

	m, n := c.Dims()
	if t.Rows != t.Cols {
		panic(badT)
	}
	k := t.Rows
	nv := m
	if side == blas.Right {
		nv = n
	}
	if store == lapack.RowWise {
		if v.Rows != k || v.Cols != nv {
			panic(badV)
		}
	} else {
		if v.Rows != nv || v.Cols != k {
			panic(badV)
		}
	}
	if nv < k {
		panic(badV)
	}
	if side == blas.Left {
		if work.Rows < n || work.Cols < k {
			panic(shortWork)
		}
	} else {
		if work.Rows < m || work.Cols < k {
			panic(shortWork)
		}
	}

	if m == 0 || n == 0 || k == 0 {
		return
	}

	// The middle factor is T as given for a right application; a left
	// application builds the workspace from Cᴴ, which transposes it.
	transT := trans
	if side == blas.Left {
		if trans == blas.NoTrans {
			transT = blas.ConjTrans
		} else {
			transT = blas.NoTrans
		}
	}
	uploT := blas.Upper
	if direct == lapack.Backward {
		uploT = blas.Lower
	}

	bi := gblas.Implementation[T]{}
	ldv := v.Stride
	ldt := t.Stride
	ldc := c.Stride
	ldw := work.Stride
	w := work.Data

	if store == lapack.ColumnWise {
		if direct == lapack.Forward {
			// V = [V1]  with V1 unit lower triangular.
			//     [V2]
			if side == blas.Left {
				// W = Cᴴ V = C1ᴴ V1 + C2ᴴ V2.
				for j := 0; j < k; j++ {
					bi.Copy(n, c.Data[j*ldc:], 1, w[j:], ldw)
					impl.Lacgv(gblas.Vector[T]{N: n, Inc: ldw, Data: w[j:]})
				}
				bi.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, n, k, 1, v.Data, ldv, w, ldw)
				if m > k {
					bi.Gemm(blas.ConjTrans, blas.NoTrans, n, k, m-k, 1, c.Data[k*ldc:], ldc, v.Data[k*ldv:], ldv, 1, w, ldw)
				}
				bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, n, k, 1, t.Data, ldt, w, ldw)
				// C -= V Wᴴ.
				if m > k {
					bi.Gemm(blas.NoTrans, blas.ConjTrans, m-k, n, k, -1, v.Data[k*ldv:], ldv, w, ldw, 1, c.Data[k*ldc:], ldc)
				}
				bi.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, n, k, 1, v.Data, ldv, w, ldw)
				for j := 0; j < k; j++ {
					for i := 0; i < n; i++ {
						c.Data[j*ldc+i] -= scalar.Conj(w[i*ldw+j])
					}
				}
			} else {
				// W = C V = C1 V1 + C2 V2.
				for j := 0; j < k; j++ {
					bi.Copy(m, c.Data[j:], ldc, w[j:], ldw)
				}
				bi.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, m, k, 1, v.Data, ldv, w, ldw)
				if n > k {
					bi.Gemm(blas.NoTrans, blas.NoTrans, m, k, n-k, 1, c.Data[k:], ldc, v.Data[k*ldv:], ldv, 1, w, ldw)
				}
				bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, m, k, 1, t.Data, ldt, w, ldw)
				// C -= W Vᴴ.
				if n > k {
					bi.Gemm(blas.NoTrans, blas.ConjTrans, m, n-k, k, -1, w, ldw, v.Data[k*ldv:], ldv, 1, c.Data[k:], ldc)
				}
				bi.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, m, k, 1, v.Data, ldv, w, ldw)
				for i := 0; i < m; i++ {
					for j := 0; j < k; j++ {
						c.Data[i*ldc+j] -= w[i*ldw+j]
					}
				}
			}
			return
		}
		// V = [V1]  with V2 unit upper triangular.
		//     [V2]
		if side == blas.Left {
			// W = Cᴴ V = C1ᴴ V1 + C2ᴴ V2, C2 the last k rows.
			for j := 0; j < k; j++ {
				bi.Copy(n, c.Data[(m-k+j)*ldc:], 1, w[j:], ldw)
				impl.Lacgv(gblas.Vector[T]{N: n, Inc: ldw, Data: w[j:]})
			}
			bi.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, n, k, 1, v.Data[(m-k)*ldv:], ldv, w, ldw)
			if m > k {
				bi.Gemm(blas.ConjTrans, blas.NoTrans, n, k, m-k, 1, c.Data, ldc, v.Data, ldv, 1, w, ldw)
			}
			bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, n, k, 1, t.Data, ldt, w, ldw)
			// C -= V Wᴴ.
			if m > k {
				bi.Gemm(blas.NoTrans, blas.ConjTrans, m-k, n, k, -1, v.Data, ldv, w, ldw, 1, c.Data, ldc)
			}
			bi.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, n, k, 1, v.Data[(m-k)*ldv:], ldv, w, ldw)
			for j := 0; j < k; j++ {
				for i := 0; i < n; i++ {
					c.Data[(m-k+j)*ldc+i] -= scalar.Conj(w[i*ldw+j])
				}
			}
		} else {
			// W = C V = C1 V1 + C2 V2, C2 the last k columns.
			for j := 0; j < k; j++ {
				bi.Copy(m, c.Data[n-k+j:], ldc, w[j:], ldw)
			}
			bi.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, m, k, 1, v.Data[(n-k)*ldv:], ldv, w, ldw)
			if n > k {
				bi.Gemm(blas.NoTrans, blas.NoTrans, m, k, n-k, 1, c.Data, ldc, v.Data, ldv, 1, w, ldw)
			}
			bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, m, k, 1, t.Data, ldt, w, ldw)
			// C -= W Vᴴ.
			if n > k {
				bi.Gemm(blas.NoTrans, blas.ConjTrans, m, n-k, k, -1, w, ldw, v.Data, ldv, 1, c.Data, ldc)
			}
			bi.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, m, k, 1, v.Data[(n-k)*ldv:], ldv, w, ldw)
			for i := 0; i < m; i++ {
				for j := 0; j < k; j++ {
					c.Data[i*ldc+n-k+j] -= w[i*ldw+j]
				}
			}
		}
		return
	}

	if direct == lapack.Forward {
		// V = [V1 V2] with V1 unit upper triangular.
		if side == blas.Left {
			// W = Cᴴ Vᴴ = C1ᴴ V1ᴴ + C2ᴴ V2ᴴ.
			for j := 0; j < k; j++ {
				bi.Copy(n, c.Data[j*ldc:], 1, w[j:], ldw)
				impl.Lacgv(gblas.Vector[T]{N: n, Inc: ldw, Data: w[j:]})
			}
			bi.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, n, k, 1, v.Data, ldv, w, ldw)
			if m > k {
				bi.Gemm(blas.ConjTrans, blas.ConjTrans, n, k, m-k, 1, c.Data[k*ldc:], ldc, v.Data[k:], ldv, 1, w, ldw)
			}
			bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, n, k, 1, t.Data, ldt, w, ldw)
			// C -= Vᴴ Wᴴ.
			if m > k {
				bi.Gemm(blas.ConjTrans, blas.ConjTrans, m-k, n, k, -1, v.Data[k:], ldv, w, ldw, 1, c.Data[k*ldc:], ldc)
			}
			bi.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, n, k, 1, v.Data, ldv, w, ldw)
			for j := 0; j < k; j++ {
				for i := 0; i < n; i++ {
					c.Data[j*ldc+i] -= scalar.Conj(w[i*ldw+j])
				}
			}
		} else {
			// W = C Vᴴ = C1 V1ᴴ + C2 V2ᴴ.
			for j := 0; j < k; j++ {
				bi.Copy(m, c.Data[j:], ldc, w[j:], ldw)
			}
			bi.Trmm(blas.Right, blas.Upper, blas.ConjTrans, blas.Unit, m, k, 1, v.Data, ldv, w, ldw)
			if n > k {
				bi.Gemm(blas.NoTrans, blas.ConjTrans, m, k, n-k, 1, c.Data[k:], ldc, v.Data[k:], ldv, 1, w, ldw)
			}
			bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, m, k, 1, t.Data, ldt, w, ldw)
			// C -= W V.
			if n > k {
				bi.Gemm(blas.NoTrans, blas.NoTrans, m, n-k, k, -1, w, ldw, v.Data[k:], ldv, 1, c.Data[k:], ldc)
			}
			bi.Trmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, m, k, 1, v.Data, ldv, w, ldw)
			for i := 0; i < m; i++ {
				for j := 0; j < k; j++ {
					c.Data[i*ldc+j] -= w[i*ldw+j]
				}
			}
		}
		return
	}

	// V = [V1 V2] with V2 unit lower triangular.
	if side == blas.Left {
		// W = Cᴴ Vᴴ = C1ᴴ V1ᴴ + C2ᴴ V2ᴴ, C2 the last k rows.
		for j := 0; j < k; j++ {
			bi.Copy(n, c.Data[(m-k+j)*ldc:], 1, w[j:], ldw)
			impl.Lacgv(gblas.Vector[T]{N: n, Inc: ldw, Data: w[j:]})
		}
		bi.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, n, k, 1, v.Data[m-k:], ldv, w, ldw)
		if m > k {
			bi.Gemm(blas.ConjTrans, blas.ConjTrans, n, k, m-k, 1, c.Data, ldc, v.Data, ldv, 1, w, ldw)
		}
		bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, n, k, 1, t.Data, ldt, w, ldw)
		// C -= Vᴴ Wᴴ.
		if m > k {
			bi.Gemm(blas.ConjTrans, blas.ConjTrans, m-k, n, k, -1, v.Data, ldv, w, ldw, 1, c.Data, ldc)
		}
		bi.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, n, k, 1, v.Data[m-k:], ldv, w, ldw)
		for j := 0; j < k; j++ {
			for i := 0; i < n; i++ {
				c.Data[(m-k+j)*ldc+i] -= scalar.Conj(w[i*ldw+j])
			}
		}
	} else {
		// W = C Vᴴ = C1 V1ᴴ + C2 V2ᴴ, C2 the last k columns.
		for j := 0; j < k; j++ {
			bi.Copy(m, c.Data[n-k+j:], ldc, w[j:], ldw)
		}
		bi.Trmm(blas.Right, blas.Lower, blas.ConjTrans, blas.Unit, m, k, 1, v.Data[n-k:], ldv, w, ldw)
		if n > k {
			bi.Gemm(blas.NoTrans, blas.ConjTrans, m, k, n-k, 1, c.Data, ldc, v.Data, ldv, 1, w, ldw)
		}
		bi.Trmm(blas.Right, uploT, transT, blas.NonUnit, m, k, 1, t.Data, ldt, w, ldw)
		// C -= W V.
		if n > k {
			bi.Gemm(blas.NoTrans, blas.NoTrans, m, n-k, k, -1, w, ldw, v.Data, ldv, 1, c.Data, ldc)
		}
		bi.Trmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, m, k, 1, v.Data[n-k:], ldv, w, ldw)
		for i := 0; i < m; i++ {
			for j := 0; j < k; j++ {
				c.Data[i*ldc+n-k+j] -= w[i*ldw+j]
			}
		}
	}
}
