// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import "strconv"

// ArgError reports that the argument at the given one-based position of
// a driver routine call was invalid. It corresponds to a negative info
// code from a reference LAPACK routine.
type ArgError int

func (e ArgError) Error() string {
	return "glapack: argument " + strconv.Itoa(int(e)) + " is invalid"
}

// Panic strings used by the computational primitives.
const (
	badDirect    = "glapack: illegal direction"
	badSide      = "glapack: illegal side"
	badStoreV    = "glapack: illegal reflector storage"
	badTranspose = "glapack: illegal transpose"
	badNb        = "glapack: nonpositive block size"
	badTau       = "glapack: bad tau length"
	badT         = "glapack: bad triangular factor shape"
	badV         = "glapack: bad reflector shape"
	badLenX      = "glapack: bad reflector vector length"
	shortWork    = "glapack: insufficient working memory"
)
