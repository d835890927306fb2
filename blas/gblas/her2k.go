// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/scalar"
)

// Her2k performs one of the Hermitian rank-2k operations
//
//	C = alpha*A*Bᴴ + conj(alpha)*B*Aᴴ + beta*C  if trans == blas.NoTrans
//	C = alpha*Aᴴ*B + conj(alpha)*Bᴴ*A + beta*C  if trans == blas.ConjTrans
//
// where alpha is a scalar, beta is a real scalar, C is an n×n Hermitian
// matrix, and A and B are n×k matrices in the first case and k×n
// matrices in the second case. For real element types blas.Trans is
// accepted as an alias of blas.ConjTrans; for complex element types it
// is invalid.
//
// The uplo argument selects which triangle of C is referenced and
// updated: blas.Lower, blas.Upper, or blas.All. Under blas.All the
// update is computed on one triangle and mirrored into the other, so C
// is Hermitian by construction on return. For blas.Lower and blas.Upper
// the opposite triangle is never touched.
//
// The layout argument gives the storage order of all three matrices. A
// row-major call is rewritten into the equivalent column-major problem
// with the triangle swapped, the transpose flipped and alpha
// conjugated, so a single kernel body serves both layouts and the two
// formulations produce bit-identical results on correspondingly stored
// data.
//
// If alpha is zero, A and B are not referenced and the call reduces to
// scaling the referenced triangle of C by beta, zero filling it when
// beta is zero. The imaginary parts of the diagonal of C are assumed
// zero on entry, and the diagonal is exactly real on return.
func (Implementation[T]) Her2k(layout Layout, uplo blas.Uplo, trans blas.Transpose, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta float64, c []T, ldc int) {
	switch layout {
	default:
		panic(badLayout)
	case RowMajor, ColMajor:
	}
	switch uplo {
	default:
		panic(badUplo)
	case blas.Lower, blas.Upper, blas.All:
	}
	switch {
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
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

	if layout == RowMajor {
		minLd := n
		if trans == blas.NoTrans {
			minLd = k
		}
		switch {
		case lda < minLd:
			panic(badLdA)
		case ldb < minLd:
			panic(badLdB)
		}
		// Rewrite as the equivalent column-major update.
		switch uplo {
		case blas.Lower:
			uplo = blas.Upper
		case blas.Upper:
			uplo = blas.Lower
		}
		if trans == blas.NoTrans {
			trans = blas.ConjTrans
		} else {
			trans = blas.NoTrans
		}
		alpha = scalar.Conj(alpha)
	} else {
		minLd := k
		if trans == blas.NoTrans {
			minLd = n
		}
		switch {
		case lda < minLd:
			panic(badLdA)
		case ldb < minLd:
			panic(badLdB)
		}
	}
	if ldc < n {
		panic(badLdC)
	}

	if n == 0 {
		return
	}

	if len(c) < (n-1)*ldc+n {
		panic(shortC)
	}

	if alpha == 0 {
		if beta == 0 {
			switch uplo {
			case blas.Upper:
				for j := 0; j < n; j++ {
					for i := 0; i <= j; i++ {
						c[i+j*ldc] = 0
					}
				}
			case blas.Lower:
				for j := 0; j < n; j++ {
					for i := j; i < n; i++ {
						c[i+j*ldc] = 0
					}
				}
			default:
				for j := 0; j < n; j++ {
					for i := 0; i < n; i++ {
						c[i+j*ldc] = 0
					}
				}
			}
			return
		}
		// The diagonal is projected onto the reals even when beta
		// is 1.
		switch uplo {
		case blas.Upper:
			for j := 0; j < n; j++ {
				if beta != 1 {
					for i := 0; i < j; i++ {
						c[i+j*ldc] = scalar.Scale(beta, c[i+j*ldc])
					}
				}
				c[j+j*ldc] = scalar.FromReal[T](beta * scalar.Re(c[j+j*ldc]))
			}
		case blas.Lower:
			for j := 0; j < n; j++ {
				c[j+j*ldc] = scalar.FromReal[T](beta * scalar.Re(c[j+j*ldc]))
				if beta != 1 {
					for i := j + 1; i < n; i++ {
						c[i+j*ldc] = scalar.Scale(beta, c[i+j*ldc])
					}
				}
			}
		default:
			for j := 0; j < n; j++ {
				if beta != 1 {
					for i := 0; i < j; i++ {
						c[i+j*ldc] = scalar.Scale(beta, c[i+j*ldc])
					}
				}
				c[j+j*ldc] = scalar.FromReal[T](beta * scalar.Re(c[j+j*ldc]))
				if beta != 1 {
					for i := j + 1; i < n; i++ {
						c[i+j*ldc] = scalar.Scale(beta, c[i+j*ldc])
					}
				}
			}
		}
		return
	}

	if k > 0 {
		if trans == blas.NoTrans {
			switch {
			case len(a) < (k-1)*lda+n:
				panic(shortA)
			case len(b) < (k-1)*ldb+n:
				panic(shortB)
			}
		} else {
			switch {
			case len(a) < (n-1)*lda+k:
				panic(shortA)
			case len(b) < (n-1)*ldb+k:
				panic(shortB)
			}
		}
	}

	if trans == blas.NoTrans {
		if uplo != blas.Lower {
			// blas.Upper or blas.All.
			for j := 0; j < n; j++ {
				for i := 0; i < j; i++ {
					c[i+j*ldc] = scalar.Scale(beta, c[i+j*ldc])
				}
				c[j+j*ldc] = scalar.FromReal[T](beta * scalar.Re(c[j+j*ldc]))

				for l := 0; l < k; l++ {
					alphaConjBjl := alpha * scalar.Conj(b[j+l*ldb])
					conjAlphaAjl := scalar.Conj(alpha * a[j+l*lda])
					for i := 0; i < j; i++ {
						c[i+j*ldc] += a[i+l*lda]*alphaConjBjl + b[i+l*ldb]*conjAlphaAjl
					}
					c[j+j*ldc] += scalar.FromReal[T](2 * scalar.Re(a[j+l*lda]*alphaConjBjl))
				}
			}
		} else {
			for j := 0; j < n; j++ {
				c[j+j*ldc] = scalar.FromReal[T](beta * scalar.Re(c[j+j*ldc]))
				for i := j + 1; i < n; i++ {
					c[i+j*ldc] = scalar.Scale(beta, c[i+j*ldc])
				}

				for l := 0; l < k; l++ {
					alphaConjBjl := alpha * scalar.Conj(b[j+l*ldb])
					conjAlphaAjl := scalar.Conj(alpha * a[j+l*lda])
					c[j+j*ldc] += scalar.FromReal[T](2 * scalar.Re(a[j+l*lda]*alphaConjBjl))
					for i := j + 1; i < n; i++ {
						c[i+j*ldc] += a[i+l*lda]*alphaConjBjl + b[i+l*ldb]*conjAlphaAjl
					}
				}
			}
		}
	} else {
		if uplo != blas.Lower {
			// blas.Upper or blas.All.
			for j := 0; j < n; j++ {
				for i := 0; i <= j; i++ {
					var sum1, sum2 T
					for l := 0; l < k; l++ {
						sum1 += scalar.Conj(a[l+i*lda]) * b[l+j*ldb]
						sum2 += scalar.Conj(b[l+i*ldb]) * a[l+j*lda]
					}
					if i < j {
						c[i+j*ldc] = alpha*sum1 + scalar.Conj(alpha)*sum2 + scalar.Scale(beta, c[i+j*ldc])
					} else {
						c[i+j*ldc] = scalar.FromReal[T](scalar.Re(alpha*sum1+scalar.Conj(alpha)*sum2) + beta*scalar.Re(c[i+j*ldc]))
					}
				}
			}
		} else {
			for j := 0; j < n; j++ {
				for i := j; i < n; i++ {
					var sum1, sum2 T
					for l := 0; l < k; l++ {
						sum1 += scalar.Conj(a[l+i*lda]) * b[l+j*ldb]
						sum2 += scalar.Conj(b[l+i*ldb]) * a[l+j*lda]
					}
					if i > j {
						c[i+j*ldc] = alpha*sum1 + scalar.Conj(alpha)*sum2 + scalar.Scale(beta, c[i+j*ldc])
					} else {
						c[i+j*ldc] = scalar.FromReal[T](scalar.Re(alpha*sum1+scalar.Conj(alpha)*sum2) + beta*scalar.Re(c[i+j*ldc]))
					}
				}
			}
		}
	}

	if uplo == blas.All {
		for j := 0; j < n; j++ {
			for i := j + 1; i < n; i++ {
				c[i+j*ldc] = scalar.Conj(c[j+i*ldc])
			}
		}
	}
}
