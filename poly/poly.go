// seehuhn.de/go/cellmap - predict refinement levels for Julia set cell mapping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package poly implements dense complex polynomials of bounded degree,
// together with the numerical helpers needed for locating attracting
// cycles: Horner evaluation, formal derivatives, the Lagrange root
// bound, and a Newton iteration driver.
package poly

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

const (
	// ZeroEps is the squared-modulus threshold below which two complex
	// values are considered equal.
	ZeroEps = 1e-15

	// CoeffZero is the squared-modulus threshold below which a
	// polynomial coefficient is treated as absent.
	CoeffZero = 1e-40

	// MaxDegree is the largest representable polynomial degree.
	MaxDegree = 32

	// MaxIterations bounds both Newton iteration and forward orbit
	// iteration.
	MaxIterations = 25000
)

// NormSq returns the squared modulus of z.
func NormSq(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

// ApproxEqual reports whether a and b coincide under ZeroEps.
func ApproxEqual(a, b complex128) bool {
	return NormSq(a-b) < ZeroEps
}

// Polynomial is a dense complex polynomial of degree at most MaxDegree.
// The zero value is the zero polynomial and ready to use.
type Polynomial struct {
	deg   int
	coeff [MaxDegree + 1]complex128
	zero  [MaxDegree + 1]bool
}

// Clear resets p to the zero polynomial.
func (p *Polynomial) Clear() {
	for i := range p.coeff {
		p.coeff[i] = 0
		p.zero[i] = true
	}
	p.deg = 0
}

// SetCoeff sets the coefficient of z^i.  Coefficients with squared
// modulus below CoeffZero are flagged as absent; they are skipped when
// forming the derivative but keep their stored value for evaluation.
func (p *Polynomial) SetCoeff(i int, c complex128) {
	if i < 0 || i > MaxDegree {
		panic(fmt.Sprintf("poly: coefficient index %d out of range", i))
	}
	p.coeff[i] = c
	if NormSq(c) < CoeffZero {
		p.zero[i] = true
	} else {
		p.zero[i] = false
		if i > p.deg {
			p.deg = i
		}
	}
}

// Degree returns the degree of p.
func (p *Polynomial) Degree() int {
	return p.deg
}

// Coeff returns the coefficient of z^i.
func (p *Polynomial) Coeff(i int) complex128 {
	return p.coeff[i]
}

// Eval evaluates p at z using the Horner scheme.
func (p *Polynomial) Eval(z complex128) complex128 {
	res := p.coeff[p.deg]
	for i := p.deg; i > 0; i-- {
		res = res*z + p.coeff[i-1]
	}
	return res
}

// Derivative returns the formal derivative of p.  Coefficients flagged
// as absent do not contribute.
func (p *Polynomial) Derivative() *Polynomial {
	d := &Polynomial{}
	d.Clear()
	for i := 1; i <= p.deg; i++ {
		if p.zero[i] {
			continue
		}
		d.SetCoeff(i-1, complex(float64(i), 0)*p.coeff[i])
	}
	return d
}

// LagrangeBound returns the smallest power of two R not below
// ceil((1 + sum_i |c_i|) / |c_d|), where the sum runs over all
// coefficients including the leading one.  The filled-in Julia set of
// p is contained in the square [-R,R]^2.
func (p *Polynomial) LagrangeBound() float64 {
	res := 1.0
	for i := 0; i <= p.deg; i++ {
		res += cmplx.Abs(p.coeff[i])
	}
	res /= cmplx.Abs(p.coeff[p.deg])
	expo := int(math.Ceil(math.Log2(math.Ceil(res))))
	return float64(int64(1) << expo)
}

// String formats p in the form "p(z)=(c_d)*z^d+...+(c_0)".
func (p *Polynomial) String() string {
	var sb strings.Builder
	sb.WriteString("p(z)=")
	first := true
	for i := p.deg; i >= 0; i-- {
		if p.zero[i] {
			continue
		}
		if !first {
			sb.WriteByte('+')
		}
		first = false
		fmt.Fprintf(&sb, "(%s)", FormatComplex(p.coeff[i]))
		switch {
		case i > 1:
			fmt.Fprintf(&sb, "*z^%d", i)
		case i == 1:
			sb.WriteString("*z")
		}
	}
	return sb.String()
}

// FormatComplex renders z as "re+imi" with full precision.
func FormatComplex(z complex128) string {
	return fmt.Sprintf("%.17g%+.17gi", real(z), imag(z))
}

// Newton runs Newton iteration for f, using df as its derivative,
// starting from seed.  It returns the limit point together with the
// number of iterations used.  A zero iteration count signals
// non-convergence within MaxIterations; the returned point is then
// meaningless.
func Newton(f, df *Polynomial, seed complex128) (complex128, int) {
	z := seed
	for i := 1; i < MaxIterations; i++ {
		last := z
		z = z - f.Eval(z)/df.Eval(z)
		if NormSq(z-last) < ZeroEps {
			return z, i
		}
	}
	return 0, 0
}
