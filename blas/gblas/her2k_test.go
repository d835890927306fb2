// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas_test

import (
	"testing"

	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/blas/testgblas"
)

func TestHer2kFloat32(t *testing.T) {
	testgblas.Her2kTest(t, gblas.Implementation[float32]{})
}

func TestHer2kFloat64(t *testing.T) {
	testgblas.Her2kTest(t, gblas.Implementation[float64]{})
}

func TestHer2kComplex64(t *testing.T) {
	testgblas.Her2kTest(t, gblas.Implementation[complex64]{})
}

func TestHer2kComplex128(t *testing.T) {
	testgblas.Her2kTest(t, gblas.Implementation[complex128]{})
}

func TestHer2kPanics(t *testing.T) {
	var impl gblas.Implementation[complex128]
	one := []complex128{1}
	four := []complex128{1, 2, 3, 4}
	for _, test := range []struct {
		name string
		f    func()
		want string
	}{
		{
			"bad layout",
			func() { impl.Her2k(gblas.Layout(0), blas.Lower, blas.NoTrans, 1, 1, 1, one, 1, one, 1, 1, one, 1) },
			"gblas: illegal layout",
		},
		{
			"bad uplo",
			func() { impl.Her2k(gblas.RowMajor, blas.Uplo(0), blas.NoTrans, 1, 1, 1, one, 1, one, 1, 1, one, 1) },
			"gblas: illegal triangle",
		},
		{
			"negative n",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, -1, 1, 1, one, 1, one, 1, 1, one, 1) },
			"gblas: n < 0",
		},
		{
			"negative k",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 1, -1, 1, one, 1, one, 1, 1, one, 1) },
			"gblas: k < 0",
		},
		{
			"bad transpose",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.Transpose(0), 1, 1, 1, one, 1, one, 1, 1, one, 1) },
			"gblas: illegal transpose",
		},
		{
			"complex Trans",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.Trans, 1, 1, 1, one, 1, one, 1, 1, one, 1) },
			"gblas: illegal transpose",
		},
		{
			"bad lda",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 2, 2, 1, four, 1, four, 2, 1, four, 2) },
			"gblas: bad leading dimension of A",
		},
		{
			"bad ldb",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 2, 2, 1, four, 2, four, 1, 1, four, 2) },
			"gblas: bad leading dimension of B",
		},
		{
			"bad ldc",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 2, 2, 1, four, 2, four, 2, 1, four, 1) },
			"gblas: bad leading dimension of C",
		},
		{
			"short a",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 2, 1, 1, one, 1, four, 1, 1, four, 2) },
			"gblas: insufficient length of a",
		},
		{
			"short b",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 2, 1, 1, four, 1, one, 1, 1, four, 2) },
			"gblas: insufficient length of b",
		},
		{
			"short c",
			func() { impl.Her2k(gblas.RowMajor, blas.Lower, blas.NoTrans, 2, 1, 1, four, 1, four, 1, 1, []complex128{1, 2, 3}, 2) },
			"gblas: insufficient length of c",
		},
	} {
		v, panicked := panics(test.f)
		if !panicked {
			t.Errorf("%s: expected panic", test.name)
			continue
		}
		if v != any(test.want) {
			t.Errorf("%s: panic value %q, want %q", test.name, v, test.want)
		}
	}
}

// TestHer2kRealTrans checks that blas.Trans is accepted for real element
// types and is equivalent to blas.ConjTrans.
func TestHer2kRealTrans(t *testing.T) {
	var impl gblas.Implementation[float64]
	a := []float64{1, 2, -1, 0.5, 3, -2}
	b := []float64{0.25, -1, 2, 1, 0, 4}
	c1 := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	c2 := append([]float64(nil), c1...)

	impl.Her2k(gblas.RowMajor, blas.Lower, blas.Trans, 3, 2, 0.5, a, 3, b, 3, 0.25, c1, 3)
	impl.Her2k(gblas.RowMajor, blas.Lower, blas.ConjTrans, 3, 2, 0.5, a, 3, b, 3, 0.25, c2, 3)
	for i := range c1 {
		if c1[i] != c2[i] {
			t.Errorf("Trans and ConjTrans results differ at %d: %v != %v", i, c1[i], c2[i])
		}
	}
}

func BenchmarkHer2kFloat64(b *testing.B) {
	testgblas.Her2kBenchmark(b, gblas.Implementation[float64]{})
}

func BenchmarkHer2kComplex128(b *testing.B) {
	testgblas.Her2kBenchmark(b, gblas.Implementation[complex128]{})
}
