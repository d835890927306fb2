// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gblas

// Panic strings used for invalid arguments.
const (
	zeroIncX = "gblas: zero x index increment"
	zeroIncY = "gblas: zero y index increment"

	mLT0 = "gblas: m < 0"
	nLT0 = "gblas: n < 0"
	kLT0 = "gblas: k < 0"

	badLayout    = "gblas: illegal layout"
	badUplo      = "gblas: illegal triangle"
	badTranspose = "gblas: illegal transpose"
	badSide      = "gblas: illegal side"
	badDiag      = "gblas: illegal diagonal"

	badLdA = "gblas: bad leading dimension of A"
	badLdB = "gblas: bad leading dimension of B"
	badLdC = "gblas: bad leading dimension of C"

	shortX = "gblas: insufficient length of x"
	shortY = "gblas: insufficient length of y"
	shortA = "gblas: insufficient length of a"
	shortB = "gblas: insufficient length of b"
	shortC = "gblas: insufficient length of c"

	badRowIndex    = "gblas: row index out of range"
	badColIndex    = "gblas: column index out of range"
	badVectorIndex = "gblas: vector index out of range"
	badSlice       = "gblas: slice bounds out of range"
)
