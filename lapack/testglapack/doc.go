// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testglapack implements a set of testing routines for the glapack
// functions. Each exported driver exercises one routine for a single
// element type; reference results are accumulated in complex128, which
// widens every supported element type exactly.
package testglapack // import "github.com/jamestjsp/glas/lapack/testglapack"
