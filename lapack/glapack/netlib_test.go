// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build netlib

package glapack

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/netlib/blas/netlib"
)

// Building with the netlib tag swaps the reference implementations used
// by the cross-checks for the CGO bindings to a system BLAS.
func init() {
	blas64.Use(netlib.Implementation{})
	cblas128.Use(netlib.Implementation{})
}
