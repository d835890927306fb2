// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import (
	"math"

	"github.com/jamestjsp/glas/scalar"
)

// Copy copies n elements of x into y.
func (Implementation[T]) Copy(n int, x []T, incX int, y []T, incY int) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n < 1 {
		if n == 0 {
			return
		}
		panic(nLT0)
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if incX == 1 && incY == 1 {
		copy(y[:n], x[:n])
		return
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Scal scales the vector x by alpha. Scal has no effect if incX < 0.
func (Implementation[T]) Scal(n int, alpha T, x []T, incX int) {
	if incX < 1 {
		if incX == 0 {
			panic(zeroIncX)
		}
		return
	}
	if n < 1 {
		if n == 0 {
			return
		}
		panic(nLT0)
	}
	if len(x) <= (n-1)*incX {
		panic(shortX)
	}
	if incX == 1 {
		for i := range x[:n] {
			x[i] *= alpha
		}
		return
	}
	for ix := 0; ix < n*incX; ix += incX {
		x[ix] *= alpha
	}
}

// ScalReal scales the vector x by the real scalar alpha, multiplying the
// real and imaginary components separately. ScalReal has no effect if
// incX < 0.
func (Implementation[T]) ScalReal(n int, alpha float64, x []T, incX int) {
	if incX < 1 {
		if incX == 0 {
			panic(zeroIncX)
		}
		return
	}
	if n < 1 {
		if n == 0 {
			return
		}
		panic(nLT0)
	}
	if len(x) <= (n-1)*incX {
		panic(shortX)
	}
	if incX == 1 {
		for i, v := range x[:n] {
			x[i] = scalar.Scale(alpha, v)
		}
		return
	}
	for ix := 0; ix < n*incX; ix += incX {
		x[ix] = scalar.Scale(alpha, x[ix])
	}
}

// Nrm2 computes the Euclidean norm of the vector x,
//
//	sqrt(\sum_i x[i] * conj(x[i])).
//
// The sum of squares is accumulated in float64 with dynamic scaling
// regardless of the element type, so the result neither overflows nor
// underflows for vectors whose true norm is representable.
//
// Nrm2 returns 0 if incX is negative.
func (Implementation[T]) Nrm2(n int, x []T, incX int) float64 {
	if incX < 1 {
		if incX == 0 {
			panic(zeroIncX)
		}
		return 0
	}
	if len(x) <= (n-1)*incX {
		panic(shortX)
	}
	if n < 2 {
		if n == 1 {
			return scalar.Abs(x[0])
		}
		if n == 0 {
			return 0
		}
		panic(nLT0)
	}
	var (
		scale float64
		ssq   float64 = 1
	)
	accum := func(v float64) {
		if v == 0 {
			return
		}
		av := math.Abs(v)
		if scale < av {
			s := scale / av
			ssq = 1 + ssq*s*s
			scale = av
		} else {
			s := av / scale
			ssq += s * s
		}
	}
	for i, ix := 0, 0; i < n; i, ix = i+1, ix+incX {
		accum(scalar.Re(x[ix]))
		accum(scalar.Im(x[ix]))
	}
	if math.IsInf(scale, 1) {
		return math.Inf(1)
	}
	return scale * math.Sqrt(ssq)
}
