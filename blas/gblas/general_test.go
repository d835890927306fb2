// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas_test

import (
	"testing"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

// panics returns the panic value of f, if any.
func panics(f func()) (v any, panicked bool) {
	defer func() {
		v = recover()
		panicked = v != nil
	}()
	f()
	return
}

func testGeneralAtSet[T scalar.Scalar](t *testing.T) {
	// 2×3 matrix with one column of stride padding.
	a := gblas.General[T]{
		Rows: 2, Cols: 3, Stride: 4,
		Data: []T{1, 2, 3, -1, 4, 5, 6, -1},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want := scalar.FromReal[T](float64(3*i + j + 1))
			if got := a.At(i, j); got != want {
				t.Errorf("At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
	a.Set(1, 2, 42)
	if a.Data[1*4+2] != 42 {
		t.Errorf("Set(1,2) stored at wrong flat position")
	}
	if a.Data[3] != -1 || a.Data[7] != -1 {
		t.Errorf("Set modified stride padding")
	}
	if r, c := a.Dims(); r != 2 || c != 3 {
		t.Errorf("Dims() = (%d,%d), want (2,3)", r, c)
	}
}

func TestGeneralAtSet(t *testing.T) {
	t.Run("float64", testGeneralAtSet[float64])
	t.Run("complex64", testGeneralAtSet[complex64])
}

func TestGeneralSlice(t *testing.T) {
	a := gblas.General[complex128]{
		Rows: 4, Cols: 5, Stride: 6,
		Data: make([]complex128, 4*6),
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			a.Set(i, j, complex(float64(i), float64(j)))
		}
	}

	s := a.Slice(1, 3, 2, 5)
	if r, c := s.Dims(); r != 2 || c != 3 {
		t.Fatalf("Slice dims = (%d,%d), want (2,3)", r, c)
	}
	if s.Stride != a.Stride {
		t.Errorf("Slice stride = %d, want %d", s.Stride, a.Stride)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got, want := s.At(i, j), a.At(i+1, j+2); got != want {
				t.Errorf("Slice At(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}

	// Writes through the window are visible in the parent.
	s.Set(0, 0, 100)
	if a.At(1, 2) != 100 {
		t.Errorf("write through slice not visible in parent")
	}
	ss := s.Slice(1, 2, 1, 3)
	ss.Set(0, 1, 200)
	if a.At(2, 4) != 200 {
		t.Errorf("write through nested slice not visible in parent")
	}

	// Empty windows are valid.
	e := a.Slice(2, 2, 1, 4)
	if r, c := e.Dims(); r != 0 || c != 3 {
		t.Errorf("empty slice dims = (%d,%d), want (0,3)", r, c)
	}

	for _, f := range []func(){
		func() { a.Slice(-1, 2, 0, 2) },
		func() { a.Slice(3, 2, 0, 2) },
		func() { a.Slice(0, 5, 0, 2) },
		func() { a.Slice(0, 2, 4, 3) },
		func() { a.Slice(0, 2, 0, 6) },
	} {
		if _, ok := panics(f); !ok {
			t.Errorf("expected panic for out-of-range slice")
		}
	}
}

func TestGeneralRow(t *testing.T) {
	a := gblas.General[complex128]{
		Rows: 3, Cols: 2, Stride: 3,
		Data: []complex128{1, 2, -1, 3, 4, -1, 5, 6, -1},
	}
	r := a.Row(1)
	if r.N != 2 || r.Inc != 1 {
		t.Fatalf("Row(1) = {N: %d, Inc: %d}, want {N: 2, Inc: 1}", r.N, r.Inc)
	}
	if r.At(0) != 3 || r.At(1) != 4 {
		t.Errorf("Row(1) elements = %v, %v, want 3, 4", r.At(0), r.At(1))
	}
	r.Set(1, 40)
	if a.At(1, 1) != 40 {
		t.Errorf("write through row not visible in parent")
	}
	if _, ok := panics(func() { a.Row(3) }); !ok {
		t.Errorf("expected panic for out-of-range row")
	}
}

func TestGeneralDiag(t *testing.T) {
	a := gblas.General[complex128]{
		Rows: 4, Cols: 3, Stride: 5,
		Data: make([]complex128, 4*5),
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, complex(float64(10*i+j), 0))
		}
	}
	d := a.Diag()
	if d.N != 3 || d.Inc != a.Stride+1 {
		t.Fatalf("Diag() = {N: %d, Inc: %d}, want {N: 3, Inc: %d}", d.N, d.Inc, a.Stride+1)
	}
	for i := 0; i < 3; i++ {
		if got, want := d.At(i), a.At(i, i); got != want {
			t.Errorf("Diag At(%d) = %v, want %v", i, got, want)
		}
	}
	d.Set(2, -7)
	if a.At(2, 2) != -7 {
		t.Errorf("write through diagonal not visible in parent")
	}
	// The backing slice is capped at the last diagonal element.
	if cap(d.Data) != (d.N-1)*d.Inc+1 {
		t.Errorf("Diag backing capacity = %d, want %d", cap(d.Data), (d.N-1)*d.Inc+1)
	}

	if e := (gblas.General[complex128]{}).Diag(); e.N != 0 || e.Data != nil {
		t.Errorf("Diag of empty matrix = %+v, want empty", e)
	}
}

func TestVectorAtSetSlice(t *testing.T) {
	data := []float64{1, -1, -1, 2, -1, -1, 3, -1, -1, 4}
	v := gblas.Vector[float64]{N: 4, Inc: 3, Data: data}
	for i := 0; i < 4; i++ {
		if got, want := v.At(i), float64(i+1); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	v.Set(2, 30)
	if data[6] != 30 {
		t.Errorf("Set(2) stored at wrong flat position")
	}

	s := v.Slice(1, 3)
	if s.N != 2 || s.Inc != 3 {
		t.Fatalf("Slice(1,3) = {N: %d, Inc: %d}, want {N: 2, Inc: 3}", s.N, s.Inc)
	}
	if s.At(0) != 2 || s.At(1) != 30 {
		t.Errorf("Slice elements = %v, %v, want 2, 30", s.At(0), s.At(1))
	}
	s.Set(0, 20)
	if v.At(1) != 20 {
		t.Errorf("write through subvector not visible in parent")
	}

	if e := v.Slice(2, 2); e.N != 0 || e.Data != nil {
		t.Errorf("empty subvector = %+v, want empty", e)
	}

	for _, f := range []func(){
		func() { v.At(-1) },
		func() { v.At(4) },
		func() { v.Set(4, 0) },
		func() { v.Slice(-1, 2) },
		func() { v.Slice(3, 2) },
		func() { v.Slice(0, 5) },
	} {
		if _, ok := panics(f); !ok {
			t.Errorf("expected panic for out-of-range access")
		}
	}
}

func TestGeneralIndexPanics(t *testing.T) {
	a := gblas.General[float32]{Rows: 2, Cols: 2, Stride: 2, Data: make([]float32, 4)}
	for _, f := range []func(){
		func() { a.At(-1, 0) },
		func() { a.At(2, 0) },
		func() { a.At(0, -1) },
		func() { a.At(0, 2) },
		func() { a.Set(2, 0, 0) },
		func() { a.Set(0, 2, 0) },
	} {
		if _, ok := panics(f); !ok {
			t.Errorf("expected panic for out-of-range index")
		}
	}
}
