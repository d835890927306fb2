// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/scalar"
)

// Gemv computes
//
//	y = alpha * A * x + beta * y   if trans = blas.NoTrans
//	y = alpha * Aᵀ * x + beta * y  if trans = blas.Trans
//	y = alpha * Aᴴ * x + beta * y  if trans = blas.ConjTrans
//
// where A is an m×n dense matrix in row-major order, x and y are
// vectors, and alpha and beta are scalars. For real element types
// blas.Trans and blas.ConjTrans are equivalent.
func (Implementation[T]) Gemv(trans blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, incX int, beta T, y []T, incY int) {
	switch trans {
	default:
		panic(badTranspose)
	case blas.NoTrans, blas.Trans, blas.ConjTrans:
	}
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	case incX == 0:
		panic(zeroIncX)
	case incY == 0:
		panic(zeroIncY)
	}

	if m == 0 || n == 0 {
		return
	}

	var lenX, lenY int
	if trans == blas.NoTrans {
		lenX, lenY = n, m
	} else {
		lenX, lenY = m, n
	}
	switch {
	case len(a) < lda*(m-1)+n:
		panic(shortA)
	case (incX > 0 && len(x) <= (lenX-1)*incX) || (incX < 0 && len(x) <= (1-lenX)*incX):
		panic(shortX)
	case (incY > 0 && len(y) <= (lenY-1)*incY) || (incY < 0 && len(y) <= (1-lenY)*incY):
		panic(shortY)
	}

	if alpha == 0 && beta == 1 {
		return
	}

	var kx, ky int
	if incX < 0 {
		kx = -(lenX - 1) * incX
	}
	if incY < 0 {
		ky = -(lenY - 1) * incY
	}

	if beta != 1 {
		iy := ky
		if beta == 0 {
			for i := 0; i < lenY; i++ {
				y[iy] = 0
				iy += incY
			}
		} else {
			for i := 0; i < lenY; i++ {
				y[iy] *= beta
				iy += incY
			}
		}
	}
	if alpha == 0 {
		return
	}

	switch trans {
	case blas.NoTrans:
		iy := ky
		for i := 0; i < m; i++ {
			var sum T
			ix := kx
			for _, v := range a[i*lda : i*lda+n] {
				sum += v * x[ix]
				ix += incX
			}
			y[iy] += alpha * sum
			iy += incY
		}
	case blas.Trans:
		ix := kx
		for i := 0; i < m; i++ {
			tmp := alpha * x[ix]
			if tmp != 0 {
				iy := ky
				for _, v := range a[i*lda : i*lda+n] {
					y[iy] += tmp * v
					iy += incY
				}
			}
			ix += incX
		}
	case blas.ConjTrans:
		ix := kx
		for i := 0; i < m; i++ {
			tmp := alpha * x[ix]
			if tmp != 0 {
				iy := ky
				for _, v := range a[i*lda : i*lda+n] {
					y[iy] += tmp * scalar.Conj(v)
					iy += incY
				}
			}
			ix += incX
		}
	}
}

// Gerc performs the rank-one update
//
//	A += alpha * x * yᴴ
//
// where A is an m×n dense matrix in row-major order, x and y are
// vectors, and alpha is a scalar. For real element types this is the
// ordinary rank-one update A += alpha * x * yᵀ.
func (Implementation[T]) Gerc(m, n int, alpha T, x []T, incX int, y []T, incY int, a []T, lda int) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	case incX == 0:
		panic(zeroIncX)
	case incY == 0:
		panic(zeroIncY)
	}

	if m == 0 || n == 0 {
		return
	}

	switch {
	case (incX > 0 && len(x) <= (m-1)*incX) || (incX < 0 && len(x) <= (1-m)*incX):
		panic(shortX)
	case (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY):
		panic(shortY)
	case len(a) < lda*(m-1)+n:
		panic(shortA)
	}

	if alpha == 0 {
		return
	}

	var kx, ky int
	if incX < 0 {
		kx = -(m - 1) * incX
	}
	if incY < 0 {
		ky = -(n - 1) * incY
	}
	ix := kx
	for i := 0; i < m; i++ {
		if x[ix] != 0 {
			tmp := alpha * x[ix]
			iy := ky
			for j := 0; j < n; j++ {
				a[i*lda+j] += tmp * scalar.Conj(y[iy])
				iy += incY
			}
		}
		ix += incX
	}
}

// Trmv performs one of the matrix-vector operations
//
//	x = A * x   if trans = blas.NoTrans
//	x = Aᵀ * x  if trans = blas.Trans
//	x = Aᴴ * x  if trans = blas.ConjTrans
//
// where A is an n×n triangular matrix in row-major order and x is a
// vector. Only the triangle of A selected by uplo is referenced; if diag
// is blas.Unit the diagonal of A is assumed to be all ones and is not
// referenced.
func (Implementation[T]) Trmv(uplo blas.Uplo, trans blas.Transpose, diag blas.Diag, n int, a []T, lda int, x []T, incX int) {
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
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	case incX == 0:
		panic(zeroIncX)
	}

	if n == 0 {
		return
	}

	switch {
	case len(a) < lda*(n-1)+n:
		panic(shortA)
	case (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX):
		panic(shortX)
	}

	nonUnit := diag == blas.NonUnit
	var kx int
	if incX < 0 {
		kx = -(n - 1) * incX
	}

	if trans == blas.NoTrans {
		if uplo == blas.Upper {
			for i := 0; i < n; i++ {
				sum := x[kx+i*incX]
				if nonUnit {
					sum *= a[i*lda+i]
				}
				for j := i + 1; j < n; j++ {
					sum += a[i*lda+j] * x[kx+j*incX]
				}
				x[kx+i*incX] = sum
			}
			return
		}
		for i := n - 1; i >= 0; i-- {
			sum := x[kx+i*incX]
			if nonUnit {
				sum *= a[i*lda+i]
			}
			for j := 0; j < i; j++ {
				sum += a[i*lda+j] * x[kx+j*incX]
			}
			x[kx+i*incX] = sum
		}
		return
	}

	// Form x := Aᵀ*x or x := Aᴴ*x.
	conj := trans == blas.ConjTrans
	at := func(i, j int) T {
		v := a[i*lda+j]
		if conj {
			v = scalar.Conj(v)
		}
		return v
	}
	if uplo == blas.Upper {
		for j := n - 1; j >= 0; j-- {
			sum := x[kx+j*incX]
			if nonUnit {
				sum *= at(j, j)
			}
			for i := 0; i < j; i++ {
				sum += at(i, j) * x[kx+i*incX]
			}
			x[kx+j*incX] = sum
		}
		return
	}
	for j := 0; j < n; j++ {
		sum := x[kx+j*incX]
		if nonUnit {
			sum *= at(j, j)
		}
		for i := j + 1; i < n; i++ {
			sum += at(i, j) * x[kx+i*incX]
		}
		x[kx+j*incX] = sum
	}
}
