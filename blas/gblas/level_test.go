// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas_test

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/floats"
	fscalar "gonum.org/v1/gonum/floats/scalar"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

func randF64(rnd *rand.Rand, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = rnd.NormFloat64()
	}
	return x
}

func randC128(rnd *rand.Rand, n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}
	return x
}

func equalApproxC128(x, y []complex128, tol float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if cmplx.Abs(x[i]-y[i]) > tol {
			return false
		}
	}
	return true
}

func TestCopy(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, n := range []int{0, 1, 3, 7} {
		for _, incs := range [][2]int{{1, 1}, {2, 1}, {1, 3}, {2, -1}, {-2, 3}} {
			incX, incY := incs[0], incs[1]
			lx := 1 + (n-1)*abs(incX)
			ly := 1 + (n-1)*abs(incY)
			if n == 0 {
				lx, ly = 0, 0
			}
			x := randC128(rnd, lx)
			got := randC128(rnd, ly)
			want := make([]complex128, ly)
			copy(want, got)

			impl.Copy(n, x, incX, got, incY)
			bi.Zcopy(n, x, incX, want, incY)
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("n=%d,incX=%d,incY=%d: y[%d] = %v, want %v", n, incX, incY, i, got[i], want[i])
				}
			}
		}
	}
}

func TestScal(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	alpha := complex(0.7, -1.3)
	for _, n := range []int{0, 1, 4, 9} {
		for _, inc := range []int{1, 2} {
			x := randC128(rnd, 1+(n)*inc)
			want := make([]complex128, len(x))
			copy(want, x)

			impl.Scal(n, alpha, x, inc)
			bi.Zscal(n, alpha, want, inc)
			for i := range x {
				if x[i] != want[i] {
					t.Errorf("n=%d,inc=%d: x[%d] = %v, want %v", n, inc, i, x[i], want[i])
				}
			}
		}
	}

	// Negative increments leave x untouched.
	x := randC128(rnd, 4)
	orig := make([]complex128, 4)
	copy(orig, x)
	impl.Scal(4, alpha, x, -1)
	for i := range x {
		if x[i] != orig[i] {
			t.Errorf("Scal with negative increment modified x[%d]", i)
		}
	}
}

func TestScalReal(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, n := range []int{0, 1, 4, 9} {
		for _, inc := range []int{1, 3} {
			x := randC128(rnd, 1+n*inc)
			want := make([]complex128, len(x))
			copy(want, x)

			impl.ScalReal(n, 0.375, x, inc)
			bi.Zdscal(n, 0.375, want, inc)
			for i := range x {
				if x[i] != want[i] {
					t.Errorf("n=%d,inc=%d: x[%d] = %v, want %v", n, inc, i, x[i], want[i])
				}
			}
		}
	}
}

func TestNrm2(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, n := range []int{0, 1, 2, 5, 20} {
		for _, inc := range []int{1, 4} {
			x := randC128(rnd, 1+n*inc)
			got := impl.Nrm2(n, x, inc)
			want := bi.Dznrm2(n, x, inc)
			if !fscalar.EqualWithinAbsOrRel(got, want, 1e-14, 1e-14) {
				t.Errorf("n=%d,inc=%d: Nrm2 = %v, want %v", n, inc, got, want)
			}
		}
	}

	// A 3-4-5 triangle is exact in every element type.
	var impl32 gblas.Implementation[float32]
	if got := impl32.Nrm2(2, []float32{3, 4}, 1); got != 5 {
		t.Errorf("Nrm2(3,4) = %v, want 5", got)
	}

	// The float64 accumulator must survive magnitudes whose squares
	// overflow or underflow float32.
	big := []float32{3e19, 4e19}
	want := math.Hypot(float64(big[0]), float64(big[1]))
	if got := impl32.Nrm2(2, big, 1); !fscalar.EqualWithinAbsOrRel(got, want, 0, 1e-13) {
		t.Errorf("Nrm2 of large values = %v, want %v", got, want)
	}
	tiny := []float32{1e-40, 1e-40}
	want = math.Hypot(float64(tiny[0]), float64(tiny[1]))
	if got := impl32.Nrm2(2, tiny, 1); got == 0 || !fscalar.EqualWithinAbsOrRel(got, want, 0, 1e-6) {
		t.Errorf("Nrm2 of subnormal values = %v, want %v", got, want)
	}

	if got := impl.Nrm2(3, randC128(rnd, 3), -1); got != 0 {
		t.Errorf("Nrm2 with negative increment = %v, want 0", got)
	}
}

func TestGemv(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, trans := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
		for _, test := range []struct {
			m, n, lda int
		}{
			{0, 3, 0}, {3, 0, 0}, {1, 1, 0}, {2, 3, 0}, {3, 2, 0}, {4, 4, 0}, {5, 3, 7},
		} {
			m, n := test.m, test.n
			lda := test.lda
			if lda == 0 {
				lda = max(1, n)
			}
			for _, incs := range [][2]int{{1, 1}, {2, 3}, {-1, 2}, {2, -3}} {
				incX, incY := incs[0], incs[1]
				for _, coef := range [][2]complex128{{1, 0}, {0, 1}, {0.5 - 0.2i, 0.3 + 0.1i}} {
					alpha, beta := coef[0], coef[1]
					lenX, lenY := n, m
					if trans != blas.NoTrans {
						lenX, lenY = m, n
					}
					a := randC128(rnd, max(lda*max(m-1, 0)+n, 1))
					x := randC128(rnd, max(1+(lenX-1)*abs(incX), 1))
					got := randC128(rnd, max(1+(lenY-1)*abs(incY), 1))
					want := make([]complex128, len(got))
					copy(want, got)

					impl.Gemv(trans, m, n, alpha, a, lda, x, incX, beta, got, incY)
					bi.Zgemv(trans, m, n, alpha, a, lda, x, incX, beta, want, incY)
					if !equalApproxC128(got, want, 1e-13*float64(max(m, n)+1)) {
						t.Errorf("trans=%v,m=%d,n=%d,lda=%d,incX=%d,incY=%d,alpha=%v,beta=%v: mismatch",
							trans, m, n, lda, incX, incY, alpha, beta)
					}
				}
			}
		}
	}
}

func TestGerc(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, test := range []struct {
		m, n, lda int
	}{
		{1, 1, 0}, {2, 3, 0}, {3, 2, 0}, {4, 4, 6}, {5, 1, 0},
	} {
		m, n := test.m, test.n
		lda := test.lda
		if lda == 0 {
			lda = max(1, n)
		}
		for _, incs := range [][2]int{{1, 1}, {2, 1}, {1, -2}} {
			incX, incY := incs[0], incs[1]
			alpha := complex(0.9, 0.4)
			x := randC128(rnd, 1+(m-1)*abs(incX))
			y := randC128(rnd, 1+(n-1)*abs(incY))
			got := randC128(rnd, lda*(m-1)+n)
			want := make([]complex128, len(got))
			copy(want, got)

			impl.Gerc(m, n, alpha, x, incX, y, incY, got, lda)
			bi.Zgerc(m, n, alpha, x, incX, y, incY, want, lda)
			if !equalApproxC128(got, want, 1e-13) {
				t.Errorf("m=%d,n=%d,lda=%d,incX=%d,incY=%d: mismatch", m, n, lda, incX, incY)
			}
		}
	}
}

func TestTrmv(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
		for _, trans := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
			for _, diag := range []blas.Diag{blas.NonUnit, blas.Unit} {
				for _, test := range []struct {
					n, lda int
				}{
					{1, 0}, {2, 0}, {4, 0}, {7, 9},
				} {
					n := test.n
					lda := test.lda
					if lda == 0 {
						lda = n
					}
					for _, inc := range []int{1, 2, -1} {
						a := randC128(rnd, lda*(n-1)+n)
						got := randC128(rnd, 1+(n-1)*abs(inc))
						want := make([]complex128, len(got))
						copy(want, got)

						impl.Trmv(uplo, trans, diag, n, a, lda, got, inc)
						bi.Ztrmv(uplo, trans, diag, n, a, lda, want, inc)
						if !equalApproxC128(got, want, 1e-13*float64(n)) {
							t.Errorf("uplo=%v,trans=%v,diag=%v,n=%d,lda=%d,inc=%d: mismatch",
								uplo, trans, diag, n, lda, inc)
						}
					}
				}
			}
		}
	}
}

func TestGemm(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, tA := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
		for _, tB := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
			for _, test := range []struct {
				m, n, k int
			}{
				{0, 3, 2}, {3, 0, 2}, {3, 2, 0}, {1, 1, 1}, {2, 3, 4}, {4, 3, 2}, {3, 3, 3}, {5, 4, 3},
			} {
				m, n, k := test.m, test.n, test.k
				for _, coef := range [][2]complex128{{1, 0}, {0, 0.5}, {0.6 + 0.3i, -0.2 + 0.4i}} {
					alpha, beta := coef[0], coef[1]
					ar, ac := m, k
					if tA != blas.NoTrans {
						ar, ac = k, m
					}
					br, bc := k, n
					if tB != blas.NoTrans {
						br, bc = n, k
					}
					lda := max(1, ac)
					ldb := max(1, bc)
					ldc := max(1, n)
					a := randC128(rnd, max(ar*lda, 1))
					b := randC128(rnd, max(br*ldb, 1))
					got := randC128(rnd, max(m*ldc, 1))
					want := make([]complex128, len(got))
					copy(want, got)

					impl.Gemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, got, ldc)
					bi.Zgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, want, ldc)
					if !equalApproxC128(got, want, 1e-13*float64(k+1)) {
						t.Errorf("tA=%v,tB=%v,m=%d,n=%d,k=%d,alpha=%v,beta=%v: mismatch",
							tA, tB, m, n, k, alpha, beta)
					}
				}
			}
		}
	}
}

func TestTrmm(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	var impl gblas.Implementation[complex128]
	bi := cblas128.Implementation()
	for _, side := range []blas.Side{blas.Left, blas.Right} {
		for _, uplo := range []blas.Uplo{blas.Upper, blas.Lower} {
			for _, trans := range []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans} {
				for _, diag := range []blas.Diag{blas.NonUnit, blas.Unit} {
					for _, test := range []struct {
						m, n int
					}{
						{1, 1}, {2, 3}, {3, 2}, {4, 4}, {5, 3},
					} {
						m, n := test.m, test.n
						na := m
						if side == blas.Right {
							na = n
						}
						lda := na + 1
						ldb := n + 2
						for _, alpha := range []complex128{0, 1, 0.7 - 0.3i} {
							a := randC128(rnd, lda*(na-1)+na)
							got := randC128(rnd, ldb*(m-1)+n)
							want := make([]complex128, len(got))
							copy(want, got)

							impl.Trmm(side, uplo, trans, diag, m, n, alpha, a, lda, got, ldb)
							bi.Ztrmm(side, uplo, trans, diag, m, n, alpha, a, lda, want, ldb)
							if !equalApproxC128(got, want, 1e-13*float64(na)) {
								t.Errorf("side=%v,uplo=%v,trans=%v,diag=%v,m=%d,n=%d,alpha=%v: mismatch",
									side, uplo, trans, diag, m, n, alpha)
							}
						}
					}
				}
			}
		}
	}
}

// TestLevelFloat64 cross-checks the float64 instantiation against the
// reference float64 implementation on a few representative calls.
func TestLevelFloat64(t *testing.T) {
	rnd := rand.New(rand.NewPCG(2, 2))
	var impl gblas.Implementation[float64]
	bi := blas64.Implementation()

	m, n, k := 4, 3, 5
	a := randF64(rnd, m*k)
	b := randF64(rnd, k*n)
	got := randF64(rnd, m*n)
	want := make([]float64, len(got))
	copy(want, got)
	impl.Gemm(blas.NoTrans, blas.NoTrans, m, n, k, 0.8, a, k, b, n, 0.6, got, n)
	bi.Dgemm(blas.NoTrans, blas.NoTrans, m, n, k, 0.8, a, k, b, n, 0.6, want, n)
	if !floats.EqualApprox(got, want, 1e-13) {
		t.Errorf("Gemm: mismatch with reference implementation")
	}

	x := randF64(rnd, k)
	y := randF64(rnd, m)
	yWant := make([]float64, len(y))
	copy(yWant, y)
	impl.Gemv(blas.NoTrans, m, k, 1.5, a, k, x, 1, -0.5, y, 1)
	bi.Dgemv(blas.NoTrans, m, k, 1.5, a, k, x, 1, -0.5, yWant, 1)
	if !floats.EqualApprox(y, yWant, 1e-13) {
		t.Errorf("Gemv: mismatch with reference implementation")
	}

	xs := randF64(rnd, n)
	if gotN, wantN := impl.Nrm2(n, xs, 1), bi.Dnrm2(n, xs, 1); !fscalar.EqualWithinAbsOrRel(gotN, wantN, 1e-14, 1e-14) {
		t.Errorf("Nrm2 = %v, want %v", gotN, wantN)
	}
}

// testLevelExact checks the narrow element types against the complex128
// instantiation on small integer data, where every product and sum is
// exact in all four types.
func testLevelExact[T scalar.Scalar](t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 3))
	var impl gblas.Implementation[T]
	var ref gblas.Implementation[complex128]
	intData := func(n int) ([]T, []complex128) {
		x := make([]T, n)
		xc := make([]complex128, n)
		for i := range x {
			v := float64(rnd.IntN(7) - 3)
			x[i] = scalar.FromReal[T](v)
			xc[i] = complex(v, 0)
		}
		return x, xc
	}
	check := func(name string, got []T, want []complex128) {
		for i := range got {
			if complex(scalar.Re(got[i]), scalar.Im(got[i])) != want[i] {
				t.Errorf("%s: element %d = %v, want %v", name, i, got[i], want[i])
			}
		}
	}

	m, n, k := 4, 5, 3
	a, ac := intData(m * k)
	b, bc := intData(k * n)
	c, cc := intData(m * n)
	impl.Gemm(blas.NoTrans, blas.NoTrans, m, n, k, scalar.FromReal[T](2), a, k, b, n, scalar.FromReal[T](-1), c, n)
	ref.Gemm(blas.NoTrans, blas.NoTrans, m, n, k, 2, ac, k, bc, n, -1, cc, n)
	check("Gemm", c, cc)

	x, xc := intData(k)
	y, yc := intData(m)
	impl.Gemv(blas.NoTrans, m, k, scalar.FromReal[T](3), a, k, x, 1, scalar.FromReal[T](1), y, 1)
	ref.Gemv(blas.NoTrans, m, k, 3, ac, k, xc, 1, 1, yc, 1)
	check("Gemv", y, yc)

	tm, tc := intData(m * m)
	bt, btc := intData(m * n)
	impl.Trmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit, m, n, scalar.FromReal[T](1), tm, m, bt, n)
	ref.Trmm(blas.Left, blas.Upper, blas.NoTrans, blas.NonUnit, m, n, 1, tc, m, btc, n)
	check("Trmm", bt, btc)
}

func TestLevelExact(t *testing.T) {
	t.Run("float32", testLevelExact[float32])
	t.Run("float64", testLevelExact[float64])
	t.Run("complex64", testLevelExact[complex64])
	t.Run("complex128", testLevelExact[complex128])
}

func TestLevelPanics(t *testing.T) {
	var impl gblas.Implementation[complex128]
	one := []complex128{1}
	for _, test := range []struct {
		name string
		f    func()
		want string
	}{
		{"Copy zero incX", func() { impl.Copy(1, one, 0, one, 1) }, "gblas: zero x index increment"},
		{"Copy negative n", func() { impl.Copy(-1, one, 1, one, 1) }, "gblas: n < 0"},
		{"Scal short x", func() { impl.Scal(2, 1, one, 1) }, "gblas: insufficient length of x"},
		{"Gemv bad transpose", func() { impl.Gemv(blas.Transpose(0), 1, 1, 1, one, 1, one, 1, 1, one, 1) }, "gblas: illegal transpose"},
		{"Gemv bad lda", func() { impl.Gemv(blas.NoTrans, 2, 2, 1, one, 1, one, 1, 1, one, 1) }, "gblas: bad leading dimension of A"},
		{"Gerc negative m", func() { impl.Gerc(-1, 1, 1, one, 1, one, 1, one, 1) }, "gblas: m < 0"},
		{"Trmv bad uplo", func() { impl.Trmv(blas.Uplo(0), blas.NoTrans, blas.NonUnit, 1, one, 1, one, 1) }, "gblas: illegal triangle"},
		{"Trmv bad diag", func() { impl.Trmv(blas.Upper, blas.NoTrans, blas.Diag(9), 1, one, 1, one, 1) }, "gblas: illegal diagonal"},
		{"Gemm negative k", func() { impl.Gemm(blas.NoTrans, blas.NoTrans, 1, 1, -1, 1, one, 1, one, 1, 1, one, 1) }, "gblas: k < 0"},
		{"Gemm short c", func() { impl.Gemm(blas.NoTrans, blas.NoTrans, 2, 2, 1, 1, []complex128{1, 2}, 1, []complex128{1, 2}, 2, 1, []complex128{1, 2, 3}, 2) }, "gblas: insufficient length of c"},
		{"Trmm bad side", func() { impl.Trmm(blas.Side(0), blas.Upper, blas.NoTrans, blas.NonUnit, 1, 1, 1, one, 1, one, 1) }, "gblas: illegal side"},
	} {
		v, panicked := panics(test.f)
		if !panicked {
			t.Errorf("%s: expected panic", test.name)
			continue
		}
		if v != any(test.want) {
			t.Errorf("%s: panic value %v, want %v", test.name, v, test.want)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
