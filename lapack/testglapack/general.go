// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/lapack"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

// c128 widens a single value to complex128. The widening is exact for all
// element types.
func c128[T scalar.Scalar](v T) complex128 {
	return complex(scalar.Re(v), scalar.Im(v))
}

// randomScalar returns a value of T with standard normal components.
func randomScalar[T scalar.Scalar](rnd *rand.Rand) T {
	if scalar.IsComplex[T]() {
		return scalar.FromParts[T](rnd.NormFloat64(), rnd.NormFloat64())
	}
	return scalar.FromReal[T](rnd.NormFloat64())
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

func sameFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

// sameScalar reports whether x and y are identical, treating NaN components
// as equal.
func sameScalar[T scalar.Scalar](x, y T) bool {
	return sameFloat(scalar.Re(x), scalar.Re(y)) && sameFloat(scalar.Im(x), scalar.Im(y))
}

// tolFor returns an absolute comparison tolerance for results accumulated
// over about n terms of unit-scale data of type T.
func tolFor[T scalar.Scalar](n int) float64 {
	return 50 * float64(max(n, 1)) * scalar.Eps[T]()
}

// randomGeneral returns an m×n matrix with the given stride and standard
// normal entries. A zero stride defaults to the width. Padding within the
// backing slice is set to NaN so that outside writes are detectable.
func randomGeneral[T scalar.Scalar](m, n, stride int, rnd *rand.Rand) gblas.General[T] {
	if stride == 0 {
		stride = max(1, n)
	}
	a := gblas.General[T]{Rows: m, Cols: n, Stride: stride, Data: nanSlice[T](m * stride)}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Data[i*stride+j] = randomScalar[T](rnd)
		}
	}
	return a
}

// nanGeneral returns an m×n matrix with the given stride, filled with NaN.
func nanGeneral[T scalar.Scalar](m, n, stride int) gblas.General[T] {
	if stride == 0 {
		stride = max(1, n)
	}
	return gblas.General[T]{Rows: m, Cols: n, Stride: stride, Data: nanSlice[T](m * stride)}
}

// cloneGeneral returns a deep copy of a.
func cloneGeneral[T scalar.Scalar](a gblas.General[T]) gblas.General[T] {
	c := a
	c.Data = make([]T, len(a.Data))
	copy(c.Data, a.Data)
	return c
}

// zeros returns a dense m×n complex128 matrix of zeros.
func zeros(m, n int) cblas128.General {
	return cblas128.General{Rows: m, Cols: n, Stride: max(1, n), Data: make([]complex128, m*max(1, n))}
}

// eye returns the dense n×n complex128 identity.
func eye(n int) cblas128.General {
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*m.Stride+i] = 1
	}
	return m
}

// toCmplx returns the dense complex128 widening of a.
func toCmplx[T scalar.Scalar](a gblas.General[T]) cblas128.General {
	out := zeros(a.Rows, a.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Data[i*out.Stride+j] = c128(a.At(i, j))
		}
	}
	return out
}

// equalApproxGeneral reports whether got and want agree elementwise to
// within tol in modulus.
func equalApproxGeneral[T scalar.Scalar](got gblas.General[T], want cblas128.General, tol float64) bool {
	if got.Rows != want.Rows || got.Cols != want.Cols {
		return false
	}
	for i := 0; i < got.Rows; i++ {
		for j := 0; j < got.Cols; j++ {
			if cmplx.Abs(c128(got.At(i, j))-want.Data[i*want.Stride+j]) > tol {
				return false
			}
		}
	}
	return true
}

// equalApproxCmplx reports whether the dense complex128 matrices got and
// want agree elementwise to within tol in modulus.
func equalApproxCmplx(got, want cblas128.General, tol float64) bool {
	if got.Rows != want.Rows || got.Cols != want.Cols {
		return false
	}
	for i := 0; i < got.Rows; i++ {
		for j := 0; j < got.Cols; j++ {
			if cmplx.Abs(got.Data[i*got.Stride+j]-want.Data[i*want.Stride+j]) > tol {
				return false
			}
		}
	}
	return true
}

// applyReflector overwrites p with (I - tau*u*uᴴ) * p.
func applyReflector(p cblas128.General, u []complex128, tau complex128) {
	tmp := make([]complex128, p.Cols)
	for c := 0; c < p.Cols; c++ {
		for r := 0; r < p.Rows; r++ {
			tmp[c] += cmplx.Conj(u[r]) * p.Data[r*p.Stride+c]
		}
	}
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			p.Data[r*p.Stride+c] -= tau * u[r] * tmp[c]
		}
	}
}

// applyReflectorRight overwrites p with p * (I - tau*u*uᴴ).
func applyReflectorRight(p cblas128.General, u []complex128, tau complex128) {
	tmp := make([]complex128, p.Rows)
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			tmp[r] += p.Data[r*p.Stride+c] * u[c]
		}
	}
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			p.Data[r*p.Stride+c] -= tau * tmp[r] * cmplx.Conj(u[c])
		}
	}
}

// constructQ returns the unitary factor of the factorization stored in a
// and tau by kind, which is "LQ" or "RQ". The factor is accumulated in
// complex128 by explicit application of the stored reflectors.
func constructQ[T scalar.Scalar](kind string, a gblas.General[T], tau gblas.Vector[T]) cblas128.General {
	m, n := a.Dims()
	k := tau.N

	// Accumulate p = H(0)·H(1)···H(k-1) for LQ, or H(k-1)···H(1)·H(0)
	// for RQ, the products that carry A to its triangular factor from
	// the right. Q is the conjugate transpose of p.
	p := eye(n)
	switch kind {
	default:
		panic("testglapack: bad kind")
	case "LQ":
		for i := k - 1; i >= 0; i-- {
			u := make([]complex128, n)
			u[i] = 1
			for j := i + 1; j < n; j++ {
				u[j] = cmplx.Conj(c128(a.At(i, j)))
			}
			applyReflector(p, u, c128(tau.At(i)))
		}
	case "RQ":
		for i := 0; i < k; i++ {
			r := m - k + i
			c := n - k + i
			u := make([]complex128, n)
			u[c] = 1
			for j := 0; j < c; j++ {
				u[j] = cmplx.Conj(c128(a.At(r, j)))
			}
			applyReflector(p, u, c128(tau.At(i)))
		}
	}

	q := zeros(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			q.Data[i*q.Stride+j] = cmplx.Conj(p.Data[j*p.Stride+i])
		}
	}
	return q
}

// extractReflectors widens the k reflector vectors stored in v under the
// given direct and store convention, placing the implicit unit pivot and
// the structural zeros so that reflector i is I - tau[i]*u*uᴴ with u the
// returned vector.
func extractReflectors[T scalar.Scalar](direct lapack.Direct, store lapack.StoreV, v gblas.General[T], k int) [][]complex128 {
	n := v.Rows
	if store == lapack.RowWise {
		n = v.Cols
	}
	us := make([][]complex128, k)
	for i := 0; i < k; i++ {
		u := make([]complex128, n)
		switch {
		case direct == lapack.Forward && store == lapack.RowWise:
			u[i] = 1
			for j := i + 1; j < n; j++ {
				u[j] = cmplx.Conj(c128(v.At(i, j)))
			}
		case direct == lapack.Forward && store == lapack.ColumnWise:
			u[i] = 1
			for j := i + 1; j < n; j++ {
				u[j] = c128(v.At(j, i))
			}
		case store == lapack.RowWise:
			u[n-k+i] = 1
			for j := 0; j < n-k+i; j++ {
				u[j] = cmplx.Conj(c128(v.At(i, j)))
			}
		default:
			u[n-k+i] = 1
			for j := 0; j < n-k+i; j++ {
				u[j] = c128(v.At(j, i))
			}
		}
		us[i] = u
	}
	return us
}

// unitaryResidual returns the largest entry in modulus of q*qᴴ - I.
func unitaryResidual(q cblas128.General) float64 {
	n := q.Rows
	prod := zeros(n, n)
	if n > 0 {
		cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, q, q, 0, prod)
	}
	var res float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := prod.Data[i*prod.Stride+j]
			if i == j {
				d -= 1
			}
			res = math.Max(res, cmplx.Abs(d))
		}
	}
	return res
}
