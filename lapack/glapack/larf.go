// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"gonum.org/v1/gonum/blas"

	"github.com/jamestjsp/glas/blas/gblas"
)

// Larf applies the elementary reflector
//
//	H = I - tau * v * vᴴ
//
// to the m×n matrix C,
//
//	C = H * C  if side == blas.Left
//	C = C * H  if side == blas.Right
//
// v is taken as given, including its pivot element: callers following
// the LAPACK storage convention temporarily set the pivot to 1 before
// the call. v must have length m for a left application and length n
// for a right application. work must have length at least n for a left
// application and at least m for a right application, and must not
// overlap v or C.
func (impl Implementation[T]) Larf(side blas.Side, v gblas.Vector[T], tau T, c gblas.General[T], work []T) {
	m, n := c.Dims()
	switch side {
	default:
		panic(badSide)
	case blas.Left:
		if v.N != m {
			panic(badLenX)
		}
		if len(work) < n {
			panic(shortWork)
		}
	case blas.Right:
		if v.N != n {
			panic(badLenX)
		}
		if len(work) < m {
			panic(shortWork)
		}
	}

	if tau == 0 || m == 0 || n == 0 {
		return
	}

	bi := gblas.Implementation[T]{}
	if side == blas.Left {
		// work = Cᴴ * v
		bi.Gemv(blas.ConjTrans, m, n, 1, c.Data, c.Stride, v.Data, v.Inc, 0, work, 1)
		// C -= tau * v * workᴴ
		bi.Gerc(m, n, -tau, v.Data, v.Inc, work, 1, c.Data, c.Stride)
	} else {
		// work = C * v
		bi.Gemv(blas.NoTrans, m, n, 1, c.Data, c.Stride, v.Data, v.Inc, 0, work, 1)
		// C -= tau * work * vᴴ
		bi.Gerc(m, n, -tau, work, 1, v.Data, v.Inc, c.Data, c.Stride)
	}
}
