// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testgblas implements a set of testing routines for the gblas
// kernels. Each exported driver exercises one routine for a single element
// type and is called by the gblas tests once per supported type.
package testgblas // import "github.com/jamestjsp/glas/blas/testgblas"
