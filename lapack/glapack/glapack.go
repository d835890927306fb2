// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import "github.com/jamestjsp/glas/scalar"

// Implementation is the generic LAPACK implementation. Methods are
// defined on a zero-size receiver so an Implementation can be declared
// at the point of use:
//
//	var impl glapack.Implementation[complex128]
//	err := impl.Gelqf(a, tt, work, nb)
//
// The element type parameter fixes the precision and the real/complex
// interpretation of every operand in a call.
type Implementation[T scalar.Scalar] struct{}
