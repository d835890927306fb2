// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testgblas

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/scalar"
)

// randomScalar returns a value of T with standard normal components.
func randomScalar[T scalar.Scalar](rnd *rand.Rand) T {
	if scalar.IsComplex[T]() {
		return scalar.FromParts[T](rnd.NormFloat64(), rnd.NormFloat64())
	}
	return scalar.FromReal[T](rnd.NormFloat64())
}

// randomSlice returns a length-n slice with standard normal components.
func randomSlice[T scalar.Scalar](n int, rnd *rand.Rand) []T {
	x := make([]T, n)
	for i := range x {
		x[i] = randomScalar[T](rnd)
	}
	return x
}

// nanScalar returns a value of T with all components NaN.
func nanScalar[T scalar.Scalar]() T {
	nan := math.NaN()
	if scalar.IsComplex[T]() {
		return scalar.FromParts[T](nan, nan)
	}
	return scalar.FromReal[T](nan)
}

// nanSlice returns a length-n slice filled with NaN components.
func nanSlice[T scalar.Scalar](n int) []T {
	x := make([]T, n)
	for i := range x {
		x[i] = nanScalar[T]()
	}
	return x
}

// toC128 widens x to complex128. The widening is exact for all element
// types.
func toC128[T scalar.Scalar](x []T) []complex128 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(scalar.Re(v), scalar.Im(v))
	}
	return c
}

func sameFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

// sameScalar reports whether x and y are identical, treating NaN components
// as equal.
func sameScalar[T scalar.Scalar](x, y T) bool {
	return sameFloat(scalar.Re(x), scalar.Re(y)) && sameFloat(scalar.Im(x), scalar.Im(y))
}

// closeScalar reports whether got agrees with want to within tol in modulus.
func closeScalar[T scalar.Scalar](got T, want complex128, tol float64) bool {
	return cmplx.Abs(complex(scalar.Re(got), scalar.Im(got))-want) <= tol
}

// tolFor returns an absolute comparison tolerance for results accumulated
// over about n terms of unit-scale data of type T.
func tolFor[T scalar.Scalar](n int) float64 {
	return 50 * float64(max(n, 1)) * scalar.Eps[T]()
}

// sliceLen returns the minimum slice length backing an r×c matrix with
// stride ld, which is zero when the matrix is empty.
func sliceLen(r, c, ld int) int {
	if r == 0 || c == 0 {
		return 0
	}
	return (r-1)*ld + c
}

// refTri reports whether element (i,j) of a row-major matrix lies in the
// triangle referenced under uplo.
func refTri(uplo blas.Uplo, i, j int) bool {
	switch uplo {
	case blas.Lower:
		return j <= i
	case blas.Upper:
		return j >= i
	default:
		return true
	}
}
