// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gblas provides a generic Go implementation of the Basic Linear
// Algebra Subprograms used by the higher level routines in this module,
// together with the General and Vector view types those routines share.
//
// The routines are methods of the Implementation type, parameterized by
// the element type. Matrix arguments are dense slices with an explicit
// leading dimension, row-major for the level 1 through 3 kernels; Her2k
// additionally accepts a Layout selector and rewrites row-major calls
// into the equivalent column-major problem. Vector arguments carry an
// explicit stride. Argument errors are reported by panicking with a
// string constant beginning with "gblas:", following the reference BLAS
// convention of treating malformed calls as programmer error rather than
// runtime conditions.
package gblas // import "github.com/jamestjsp/glas/blas/gblas"
