// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

// Lacgv conjugates the vector x in place. It has no effect for real
// element types.
func (impl Implementation[T]) Lacgv(x gblas.Vector[T]) {
	if !scalar.IsComplex[T]() {
		return
	}
	for i := 0; i < x.N; i++ {
		x.Set(i, scalar.Conj(x.At(i)))
	}
}
