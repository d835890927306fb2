// Copyright ©2026 The GLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glapack

import (
	"math"

	"github.com/jamestjsp/glas/blas/gblas"
	"github.com/jamestjsp/glas/scalar"
)

// Larfg generates an elementary reflector H of order x.N+1 such that
//
//	Hᴴ * [alpha]   [beta]
//	     [  x  ] = [  0 ] ,    Hᴴ * H = I.
//
// H is represented in the form
//
//	H = I - tau * [1] * [1 vᴴ]
//	              [v]
//
// where v overwrites x on return. beta has zero imaginary part even for
// complex element types. If x is zero and alpha has zero imaginary part,
// tau is zero and H is the identity; otherwise 1 <= real(tau) <= 2 and
// |tau-1| <= 1.
//
// When |beta| would be smaller than the underflow threshold, x is
// rescaled before the reflector is formed so that beta is computed to
// full accuracy.
func (impl Implementation[T]) Larfg(alpha T, x gblas.Vector[T]) (beta, tau T) {
	bi := gblas.Implementation[T]{}

	n := x.N
	xnorm := bi.Nrm2(n, x.Data, x.Inc)
	alphr := scalar.Re(alpha)
	alphi := scalar.Im(alpha)
	if xnorm == 0 && alphi == 0 {
		return alpha, 0
	}

	bet := -math.Copysign(lapy3(alphr, alphi, xnorm), alphr)
	safmin := scalar.SafeMin[T]() / scalar.Eps[T]()
	rsafmn := 1 / safmin

	var knt int
	if math.Abs(bet) < safmin {
		// xnorm and bet may be inaccurate; scale x and recompute.
		for math.Abs(bet) < safmin && knt < 20 {
			knt++
			bi.ScalReal(n, rsafmn, x.Data, x.Inc)
			bet *= rsafmn
			alphi *= rsafmn
			alphr *= rsafmn
		}
		// bet is now in [safmin, 1].
		xnorm = bi.Nrm2(n, x.Data, x.Inc)
		alpha = scalar.FromParts[T](alphr, alphi)
		bet = -math.Copysign(lapy3(alphr, alphi, xnorm), alphr)
	}
	tau = scalar.FromParts[T]((bet-alphr)/bet, -alphi/bet)
	bi.Scal(n, 1/(alpha-scalar.FromReal[T](bet)), x.Data, x.Inc)

	// Undo the rescaling of bet.
	for j := 0; j < knt; j++ {
		bet *= safmin
	}
	return scalar.FromReal[T](bet), tau
}

// lapy3 returns sqrt(x²+y²+z²) without unnecessary overflow or
// underflow.
func lapy3(x, y, z float64) float64 {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)
	w := max(x, y, z)
	if w == 0 {
		return 0
	}
	x /= w
	y /= w
	z /= w
	return w * math.Sqrt(x*x+y*y+z*z)
}
