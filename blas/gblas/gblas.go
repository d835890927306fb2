// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

import "github.com/jamestjsp/glas/scalar"

// Layout specifies the memory order of a dense matrix passed as a flat
// slice: consecutive elements of a row (RowMajor) or of a column
// (ColMajor).
type Layout byte

const (
	RowMajor Layout = 'R'
	ColMajor Layout = 'C'
)

// Implementation is the generic BLAS implementation. Methods are defined
// on a zero-size receiver so an Implementation can be declared at the
// point of use:
//
//	var bi gblas.Implementation[complex128]
//	bi.Her2k(...)
//
// The element type parameter fixes the precision and the real/complex
// interpretation of every operand in a call.
type Implementation[T scalar.Scalar] struct{}
