// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/scalar"
)

// Gemm performs one of the matrix-matrix operations
//
//	C = alpha * op(A) * op(B) + beta * C
//
// where op(X) is X, Xᵀ or Xᴴ as selected by the corresponding transpose
// argument, op(A) is an m×k matrix, op(B) is a k×n matrix, C is an m×n
// matrix, and alpha and beta are scalars. All matrices are in row-major
// order. If beta is zero, C is overwritten and need not contain finite
// values on entry.
func (Implementation[T]) Gemm(tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	switch tA {
	default:
		panic(badTranspose)
	case blas.NoTrans, blas.Trans, blas.ConjTrans:
	}
	switch tB {
	default:
		panic(badTranspose)
	case blas.NoTrans, blas.Trans, blas.ConjTrans:
	}
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
	}
	aTrans := tA == blas.Trans || tA == blas.ConjTrans
	if aTrans {
		if lda < max(1, m) {
			panic(badLdA)
		}
	} else {
		if lda < max(1, k) {
			panic(badLdA)
		}
	}
	bTrans := tB == blas.Trans || tB == blas.ConjTrans
	if bTrans {
		if ldb < max(1, k) {
			panic(badLdB)
		}
	} else {
		if ldb < max(1, n) {
			panic(badLdB)
		}
	}
	if ldc < max(1, n) {
		panic(badLdC)
	}

	if m == 0 || n == 0 {
		return
	}

	if k > 0 {
		if aTrans {
			if len(a) < (k-1)*lda+m {
				panic(shortA)
			}
		} else {
			if len(a) < (m-1)*lda+k {
				panic(shortA)
			}
		}
		if bTrans {
			if len(b) < (n-1)*ldb+k {
				panic(shortB)
			}
		} else {
			if len(b) < (k-1)*ldb+n {
				panic(shortB)
			}
		}
	}
	if len(c) < (m-1)*ldc+n {
		panic(shortC)
	}

	// Scale c before the matrix products are accumulated.
	if beta != 1 {
		if beta == 0 {
			for i := 0; i < m; i++ {
				ci := c[i*ldc : i*ldc+n]
				for j := range ci {
					ci[j] = 0
				}
			}
		} else {
			for i := 0; i < m; i++ {
				ci := c[i*ldc : i*ldc+n]
				for j := range ci {
					ci[j] *= beta
				}
			}
		}
	}
	if alpha == 0 || k == 0 {
		return
	}

	conjA := tA == blas.ConjTrans
	conjB := tB == blas.ConjTrans
	switch {
	case !aTrans && !bTrans:
		for i := 0; i < m; i++ {
			ci := c[i*ldc : i*ldc+n]
			for l, v := range a[i*lda : i*lda+k] {
				tmp := alpha * v
				if tmp != 0 {
					bl := b[l*ldb : l*ldb+n]
					for j, w := range bl {
						ci[j] += tmp * w
					}
				}
			}
		}
	case !aTrans && bTrans:
		for i := 0; i < m; i++ {
			ai := a[i*lda : i*lda+k]
			ci := c[i*ldc : i*ldc+n]
			for j := 0; j < n; j++ {
				var sum T
				bj := b[j*ldb : j*ldb+k]
				if conjB {
					for l, v := range ai {
						sum += v * scalar.Conj(bj[l])
					}
				} else {
					for l, v := range ai {
						sum += v * bj[l]
					}
				}
				ci[j] += alpha * sum
			}
		}
	case aTrans && !bTrans:
		for l := 0; l < k; l++ {
			bl := b[l*ldb : l*ldb+n]
			for i := 0; i < m; i++ {
				v := a[l*lda+i]
				if conjA {
					v = scalar.Conj(v)
				}
				tmp := alpha * v
				if tmp != 0 {
					ci := c[i*ldc : i*ldc+n]
					for j, w := range bl {
						ci[j] += tmp * w
					}
				}
			}
		}
	default: // aTrans && bTrans
		for i := 0; i < m; i++ {
			ci := c[i*ldc : i*ldc+n]
			for j := 0; j < n; j++ {
				var sum T
				bj := b[j*ldb : j*ldb+k]
				for l := 0; l < k; l++ {
					v := a[l*lda+i]
					if conjA {
						v = scalar.Conj(v)
					}
					w := bj[l]
					if conjB {
						w = scalar.Conj(w)
					}
					sum += v * w
				}
				ci[j] += alpha * sum
			}
		}
	}
}

// Trmm performs one of the matrix-matrix operations
//
//	B = alpha * op(A) * B  if side == blas.Left
//	B = alpha * B * op(A)  if side == blas.Right
//
// where op(A) is A, Aᵀ or Aᴴ as selected by trans, A is an m×m or n×n
// triangular matrix, B is an m×n matrix, and alpha is a scalar. Both
// matrices are in row-major order. Only the triangle of A selected by
// uplo is referenced; if diag is blas.Unit the diagonal of A is assumed
// to be all ones and is not referenced.
func (Implementation[T]) Trmm(side blas.Side, uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, m, n int, alpha T, a []T, lda int, b []T, ldb int) {
	switch side {
	default:
		panic(badSide)
	case blas.Left, blas.Right:
	}
	switch uplo {
	default:
		panic(badUplo)
	case blas.Lower, blas.Upper:
	}
	switch trans {
	default:
		panic(badTranspose)
	case blas.NoTrans, blas.Trans, blas.ConjTrans:
	}
	switch diag {
	default:
		panic(badDiag)
	case blas.NonUnit, blas.Unit:
	}
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	}
	na := m
	if side == blas.Right {
		na = n
	}
	switch {
	case lda < max(1, na):
		panic(badLdA)
	case ldb < max(1, n):
		panic(badLdB)
	}

	if m == 0 || n == 0 {
		return
	}

	switch {
	case len(a) < (na-1)*lda+na:
		panic(shortA)
	case len(b) < (m-1)*ldb+n:
		panic(shortB)
	}

	if alpha == 0 {
		for i := 0; i < m; i++ {
			bi := b[i*ldb : i*ldb+n]
			for j := range bi {
				bi[j] = 0
			}
		}
		return
	}

	nonUnit := diag == blas.NonUnit
	conj := trans == blas.ConjTrans
	at := func(i, j int) T {
		v := a[i*lda+j]
		if conj {
			v = scalar.Conj(v)
		}
		return v
	}
	noTrans := trans == blas.NoTrans

	if side == blas.Left {
		// Row i of the result is a combination of rows of B. The
		// iteration order keeps the rows still to be read
		// unmodified.
		switch {
		case noTrans && uplo == blas.Upper:
			for i := 0; i < m; i++ {
				bi := b[i*ldb : i*ldb+n]
				d := alpha
				if nonUnit {
					d = alpha * a[i*lda+i]
				}
				for j := range bi {
					bi[j] *= d
				}
				for l := i + 1; l < m; l++ {
					tmp := alpha * a[i*lda+l]
					if tmp != 0 {
						bl := b[l*ldb : l*ldb+n]
						for j, v := range bl {
							bi[j] += tmp * v
						}
					}
				}
			}
		case noTrans && uplo == blas.Lower:
			for i := m - 1; i >= 0; i-- {
				bi := b[i*ldb : i*ldb+n]
				d := alpha
				if nonUnit {
					d = alpha * a[i*lda+i]
				}
				for j := range bi {
					bi[j] *= d
				}
				for l := 0; l < i; l++ {
					tmp := alpha * a[i*lda+l]
					if tmp != 0 {
						bl := b[l*ldb : l*ldb+n]
						for j, v := range bl {
							bi[j] += tmp * v
						}
					}
				}
			}
		case !noTrans && uplo == blas.Upper:
			for i := m - 1; i >= 0; i-- {
				bi := b[i*ldb : i*ldb+n]
				d := alpha
				if nonUnit {
					d = alpha * at(i, i)
				}
				for j := range bi {
					bi[j] *= d
				}
				for l := 0; l < i; l++ {
					tmp := alpha * at(l, i)
					if tmp != 0 {
						bl := b[l*ldb : l*ldb+n]
						for j, v := range bl {
							bi[j] += tmp * v
						}
					}
				}
			}
		default: // !noTrans && uplo == blas.Lower
			for i := 0; i < m; i++ {
				bi := b[i*ldb : i*ldb+n]
				d := alpha
				if nonUnit {
					d = alpha * at(i, i)
				}
				for j := range bi {
					bi[j] *= d
				}
				for l := i + 1; l < m; l++ {
					tmp := alpha * at(l, i)
					if tmp != 0 {
						bl := b[l*ldb : l*ldb+n]
						for j, v := range bl {
							bi[j] += tmp * v
						}
					}
				}
			}
		}
		return
	}

	// Right side. Each row of B transforms independently; within a row
	// the element order keeps the entries still to be read unmodified.
	for i := 0; i < m; i++ {
		bi := b[i*ldb : i*ldb+n]
		switch {
		case noTrans && uplo == blas.Upper:
			for j := n - 1; j >= 0; j-- {
				sum := bi[j]
				if nonUnit {
					sum *= a[j*lda+j]
				}
				for l := 0; l < j; l++ {
					sum += bi[l] * a[l*lda+j]
				}
				bi[j] = alpha * sum
			}
		case noTrans && uplo == blas.Lower:
			for j := 0; j < n; j++ {
				sum := bi[j]
				if nonUnit {
					sum *= a[j*lda+j]
				}
				for l := j + 1; l < n; l++ {
					sum += bi[l] * a[l*lda+j]
				}
				bi[j] = alpha * sum
			}
		case !noTrans && uplo == blas.Upper:
			for j := 0; j < n; j++ {
				sum := bi[j]
				if nonUnit {
					sum *= at(j, j)
				}
				for l := j + 1; l < n; l++ {
					sum += bi[l] * at(j, l)
				}
				bi[j] = alpha * sum
			}
		default: // !noTrans && uplo == blas.Lower
			for j := n - 1; j >= 0; j-- {
				sum := bi[j]
				if nonUnit {
					sum *= at(j, j)
				}
				for l := 0; l < j; l++ {
					sum += bi[l] * at(j, l)
				}
				bi[j] = alpha * sum
			}
		}
	}
}
