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

// Package interval provides rigorous bounding-box evaluators for the
// supported polynomial families p(z) = z^d + A*z + c.  Each evaluator
// maps an axis-aligned rectangle in the complex plane to a rectangle
// enclosing its image under p.
package interval

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/cellmap/poly"
)

// Form selects one of the supported polynomial families.
type Form int

// The supported families.  Z2C is z^2+c; the remaining forms are
// z^d + A*z + c for d = 2..6.
const (
	Z2C Form = iota
	Z2AZC
	Z3AZC
	Z4AZC
	Z5AZC
	Z6AZC

	numForms
)

var formNames = [numForms]string{
	"Z2C", "Z2AZC", "Z3AZC", "Z4AZC", "Z5AZC", "Z6AZC",
}

// ParseForm converts a name such as "z3azc" (case-insensitive) to the
// corresponding Form.
func ParseForm(s string) (Form, error) {
	u := strings.ToUpper(s)
	for i, name := range formNames {
		if u == name {
			return Form(i), nil
		}
	}
	return 0, fmt.Errorf("interval: unknown polynomial form %q", s)
}

func (f Form) String() string {
	if f < 0 || f >= numForms {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// Degree returns the degree of the family.
func (f Form) Degree() int {
	switch f {
	case Z2C, Z2AZC:
		return 2
	case Z3AZC:
		return 3
	case Z4AZC:
		return 4
	case Z5AZC:
		return 5
	default:
		return 6
	}
}

// Params holds the seed interval [C0,C1] x [C0,C1] and the linear
// coefficient A.  Point seeds have C0 == C1; the interval form allows
// analyzing families with uncertainty in c.
type Params struct {
	C0, C1 complex128
	A      complex128
}

// PointSeed returns Params for a degenerate seed interval.
func PointSeed(c, a complex128) Params {
	return Params{C0: c, C1: c, A: a}
}

// denom225 is the quantization denominator for seed values.
const denom225 = 1 << 25

// Quantize maps v to the grid of multiples of 2^-25, rounding down.
// Seed values are quantized so that runs are reproducible across
// command lines printing a finite number of digits.
func Quantize(v float64) float64 {
	return math.Floor(v*denom225) / denom225
}

// QuantizeComplex applies Quantize to both components of z.
func QuantizeComplex(z complex128) complex128 {
	return complex(Quantize(real(z)), Quantize(imag(z)))
}

// Polynomial returns the polynomial of the family for point evaluation,
// using the lower endpoint of the seed interval.
func Polynomial(f Form, p Params) *poly.Polynomial {
	q := &poly.Polynomial{}
	q.Clear()
	q.SetCoeff(f.Degree(), 1)
	if f != Z2C {
		q.SetCoeff(1, p.A)
	}
	q.SetCoeff(0, p.C0)
	return q
}
