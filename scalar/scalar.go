// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar defines the element types the GLAS kernels are generic
// over, together with the scalar operations that behave uniformly across
// the real and complex cases.
//
// The constraints deliberately list the four machine types without
// approximation elements. Kernels instantiate on these exact types, which
// keeps the type switches below total and mirrors how the rest of the
// library treats precision: a routine's element type fixes its real type,
// its conjugation rule and its machine constants all at once.
package scalar

import (
	"math"
	"math/cmplx"
)

// Real is the constraint satisfied by the real element types.
type Real interface {
	float32 | float64
}

// Complex is the constraint satisfied by the complex element types.
type Complex interface {
	complex64 | complex128
}

// Scalar is the constraint satisfied by all supported element types.
// Operands of a kernel share a single Scalar type; callers mixing
// precisions or mixing real with complex must convert up front.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// Conj returns the complex conjugate of v. For real types it returns v
// unchanged.
func Conj[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	}
	return v
}

// Re returns the real part of v as a float64.
func Re[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	default:
		return real(any(v).(complex128))
	}
}

// Im returns the imaginary part of v as a float64. It is zero for real
// types.
func Im[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case complex64:
		return float64(imag(x))
	case complex128:
		return imag(x)
	}
	return 0
}

// FromReal returns r converted to T. For complex types the imaginary
// part is zero.
func FromReal[T Scalar](r float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(float32(r)).(T)
	case float64:
		return any(r).(T)
	case complex64:
		return any(complex(float32(r), 0)).(T)
	default:
		return any(complex(r, 0)).(T)
	}
}

// FromParts returns the value with real part re and imaginary part im
// converted to T. For real element types im must be zero.
func FromParts[T Scalar](re, im float64) T {
	var z T
	switch any(z).(type) {
	case float32:
		if im != 0 {
			panic("scalar: nonzero imaginary part for real type")
		}
		return any(float32(re)).(T)
	case float64:
		if im != 0 {
			panic("scalar: nonzero imaginary part for real type")
		}
		return any(re).(T)
	case complex64:
		return any(complex(float32(re), float32(im))).(T)
	default:
		return any(complex(re, im)).(T)
	}
}

// Scale returns r*v, multiplying componentwise in T's real type. Unlike
// a complex-complex product it cannot produce NaN from a zero times an
// infinite component.
func Scale[T Scalar](r float64, v T) T {
	switch x := any(v).(type) {
	case float32:
		return any(float32(r) * x).(T)
	case float64:
		return any(r * x).(T)
	case complex64:
		s := float32(r)
		return any(complex(s*real(x), s*imag(x))).(T)
	default:
		x128 := any(v).(complex128)
		return any(complex(r*real(x128), r*imag(x128))).(T)
	}
}

// Abs returns the modulus of v as a float64.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	default:
		return cmplx.Abs(any(v).(complex128))
	}
}

// IsComplex reports whether T is a complex type.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	}
	return false
}

// Eps returns the unit roundoff of T's real type: 2⁻²⁴ in single
// precision and 2⁻⁵³ in double precision. It corresponds to LAPACK's
// dlamch('E').
func Eps[T Scalar]() float64 {
	var z T
	switch any(z).(type) {
	case float32, complex64:
		return 0x1p-24
	}
	return 0x1p-53
}

// SafeMin returns the smallest positive normalized number of T's real
// type. It corresponds to LAPACK's dlamch('S').
func SafeMin[T Scalar]() float64 {
	var z T
	switch any(z).(type) {
	case float32, complex64:
		return 0x1p-126
	}
	return 0x1p-1022
}
