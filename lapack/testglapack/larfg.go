// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testglapack

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

type Larfger[T scalar.Scalar] interface {
	Larfg(alpha T, x gblas.Vector[T]) (beta, tau T)
}

func LarfgTest[T scalar.Scalar](t *testing.T, impl Larfger[T]) {
	rnd := rand.New(rand.NewPCG(1, 1))
	scales := []float64{
		1,
		// Small enough to drive the rescaling loop, large enough to
		// stay normal.
		4 * scalar.SafeMin[T](),
		// Large without overflowing intermediates of the check.
		1e-3 / scalar.SafeMin[T](),
	}
	for _, n := range []int{1, 2, 3, 5, 10} {
		for _, inc := range []int{1, 3} {
			for _, scale := range scales {
				for cas := 0; cas < 10; cas++ {
					testLarfg(t, impl, rnd, n, inc, scale)
				}
			}
		}
	}

	// A zero tail with a real alpha yields the identity reflector, and
	// x must not be touched.
	for _, n := range []int{1, 4} {
		alpha := scalar.FromReal[T](3.5)
		x := gblas.Vector[T]{N: n - 1, Inc: 1, Data: make([]T, n-1)}
		beta, tau := impl.Larfg(alpha, x)
		if tau != 0 {
			t.Errorf("n=%d: tau = %v for zero tail and real alpha", n, tau)
		}
		if !sameScalar(beta, alpha) {
			t.Errorf("n=%d: beta = %v, want %v", n, beta, alpha)
		}
		for i := range x.Data {
			if x.Data[i] != 0 {
				t.Errorf("n=%d: x modified at %d", n, i)
			}
		}
	}

	// A zero tail with a complex alpha still produces a real beta.
	if scalar.IsComplex[T]() {
		alpha := scalar.FromParts[T](1.5, -2)
		x := gblas.Vector[T]{N: 2, Inc: 1, Data: make([]T, 2)}
		beta, tau := impl.Larfg(alpha, x)
		if scalar.Im(beta) != 0 {
			t.Errorf("beta has imaginary part %v for complex alpha", scalar.Im(beta))
		}
		if tau == 0 {
			t.Errorf("tau is zero for complex alpha")
		}
		if math.Abs(math.Abs(scalar.Re(beta))-cmplx.Abs(c128(alpha))) > tolFor[T](2) {
			t.Errorf("|beta| = %v, want %v", math.Abs(scalar.Re(beta)), cmplx.Abs(c128(alpha)))
		}
	}
}

func testLarfg[T scalar.Scalar](t *testing.T, impl Larfger[T], rnd *rand.Rand, n, inc int, scale float64) {
	t.Helper()

	alpha := scalar.Scale(scale, randomScalar[T](rnd))
	x := gblas.Vector[T]{N: n - 1, Inc: inc}
	if n > 1 {
		x.Data = nanSlice[T]((n-2)*inc + 1)
		for i := 0; i < n-1; i++ {
			x.Data[i*inc] = scalar.Scale(scale, randomScalar[T](rnd))
		}
	}
	w := make([]complex128, n)
	w[0] = c128(alpha)
	for i := 1; i < n; i++ {
		w[i] = c128(x.At(i - 1))
	}

	beta, tau := impl.Larfg(alpha, x)

	if im := scalar.Im(beta); im != 0 {
		t.Errorf("n=%d,inc=%d,scale=%g: beta has imaginary part %v", n, inc, scale, im)
		return
	}

	// Apply Hᴴ = I - conj(tau)·u·uᴴ with u = [1, v] to the original
	// vector; the result must be beta·e0.
	u := make([]complex128, n)
	u[0] = 1
	for i := 1; i < n; i++ {
		u[i] = c128(x.At(i - 1))
	}
	var dot complex128
	for i := 0; i < n; i++ {
		dot += cmplx.Conj(u[i]) * w[i]
	}
	conjTau := cmplx.Conj(c128(tau))
	var wnorm float64
	for i := 0; i < n; i++ {
		wnorm = math.Hypot(wnorm, real(w[i]))
		wnorm = math.Hypot(wnorm, imag(w[i]))
	}
	tol := tolFor[T](n) * wnorm
	for i := 0; i < n; i++ {
		got := w[i] - conjTau*u[i]*dot
		want := complex128(0)
		if i == 0 {
			want = complex(scalar.Re(beta), 0)
		}
		if cmplx.Abs(got-want) > tol {
			t.Errorf("n=%d,inc=%d,scale=%g: (Hᴴw)[%d] = %v, want %v", n, inc, scale, i, got, want)
			return
		}
	}

	// |beta| is the length of the input vector.
	if math.Abs(math.Abs(scalar.Re(beta))-wnorm) > tol {
		t.Errorf("n=%d,inc=%d,scale=%g: |beta| = %v, want %v", n, inc, scale, math.Abs(scalar.Re(beta)), wnorm)
	}
}
