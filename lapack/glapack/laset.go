// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
)

// Laset sets the off-diagonal elements of A to alpha and the diagonal
// elements to beta. If uplo is blas.Upper only the elements in the upper
// triangle are set, if uplo is blas.Lower only the elements in the lower
// triangle are set, and otherwise all off-diagonal elements are set.
func (impl Implementation[T]) Laset(uplo blas.Uplo, alpha, beta T, a gblas.General[T]) {
	m, n := a.Dims()
	switch uplo {
	case blas.Upper:
		for i := 0; i < m; i++ {
			for j := i + 1; j < n; j++ {
				a.Set(i, j, alpha)
			}
		}
	case blas.Lower:
		for i := 1; i < m; i++ {
			for j := 0; j < min(i, n); j++ {
				a.Set(i, j, alpha)
			}
		}
	default:
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					a.Set(i, j, alpha)
				}
			}
		}
	}
	for i := 0; i < min(m, n); i++ {
		a.Set(i, i, beta)
	}
}
