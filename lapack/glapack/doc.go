// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glapack provides a generic Go implementation of the LAPACK
// factorization routines built on the gblas kernels and the gblas view
// types.
//
// The routines are methods of the Implementation type, parameterized by
// the element type. Matrix arguments are gblas.General views and vector
// arguments are gblas.Vector views; the routines are allocation free and
// operate in place on caller owned storage.
//
// Two levels of routine are exported. Driver routines such as Gelqf and
// Gerqf validate their arguments up front, before any mutation, and
// report violations through an ArgError identifying the offending
// argument by position. Computational primitives such as Larfg, Larft
// and Larfb are trusted building blocks in the LAPACK tradition: they
// panic on malformed arguments.
package glapack // import "github.com/jamestjsp/glas/lapack/glapack"
