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

package poly

import (
	"math/cmplx"
	"testing"
)

func TestEval(t *testing.T) {
	// p(z) = z^3 - 2z + 1
	p := &Polynomial{}
	p.Clear()
	p.SetCoeff(3, 1)
	p.SetCoeff(1, -2)
	p.SetCoeff(0, 1)

	cases := []struct {
		z, want complex128
	}{
		{0, 1},
		{1, 0},
		{complex(2, 0), 5},
		{complex(0, 1), complex(1, -3)},
		{complex(-1.5, 0.5), complex(1.75, 2.25)},
	}
	for _, c := range cases {
		got := p.Eval(c.z)
		if cmplx.Abs(got-c.want) > 1e-12 {
			t.Errorf("p(%v) = %v, want %v", c.z, got, c.want)
		}
	}
}

func TestDegree(t *testing.T) {
	p := &Polynomial{}
	p.Clear()
	if p.Degree() != 0 {
		t.Errorf("zero polynomial has degree %d", p.Degree())
	}
	p.SetCoeff(5, 1)
	if p.Degree() != 5 {
		t.Errorf("degree %d, want 5", p.Degree())
	}

	// coefficients below the threshold do not raise the degree
	q := &Polynomial{}
	q.Clear()
	q.SetCoeff(2, 1)
	q.SetCoeff(7, 1e-30)
	if q.Degree() != 2 {
		t.Errorf("degree %d, want 2", q.Degree())
	}
}

func TestDerivative(t *testing.T) {
	// p(z) = 2z^4 + 3z^2 - z + 7
	p := &Polynomial{}
	p.Clear()
	p.SetCoeff(4, 2)
	p.SetCoeff(2, 3)
	p.SetCoeff(1, -1)
	p.SetCoeff(0, 7)

	d := p.Derivative()
	if d.Degree() != 3 {
		t.Fatalf("derivative degree %d, want 3", d.Degree())
	}
	// p'(z) = 8z^3 + 6z - 1
	for _, z := range []complex128{0, 1, complex(0.5, -0.25), complex(-2, 1)} {
		want := 8*z*z*z + 6*z - 1
		got := d.Eval(z)
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("p'(%v) = %v, want %v", z, got, want)
		}
	}
}

func TestLagrangeBound(t *testing.T) {
	type testCase struct {
		name  string
		coeff map[int]complex128
		want  float64
	}
	cases := []testCase{
		{"z2", map[int]complex128{2: 1}, 2},
		{"z2-1", map[int]complex128{2: 1, 0: -1}, 4},
		{"z3", map[int]complex128{3: 1}, 2},
		{"z2+0.25i", map[int]complex128{2: 1, 0: complex(0, 0.25)}, 4},
		{"3z2-3", map[int]complex128{2: 3, 0: -3}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Polynomial{}
			p.Clear()
			for i, v := range c.coeff {
				p.SetCoeff(i, v)
			}
			if got := p.LagrangeBound(); got != c.want {
				t.Errorf("LagrangeBound = %g, want %g", got, c.want)
			}
		})
	}
}

func TestNewton(t *testing.T) {
	// f(z) = z^2 - 1 with roots 1 and -1
	f := &Polynomial{}
	f.Clear()
	f.SetCoeff(2, 1)
	f.SetCoeff(0, -1)
	df := f.Derivative()

	for _, seed := range []complex128{complex(3, 1), complex(-2, 0.5), complex(0.1, 2)} {
		z, it := Newton(f, df, seed)
		if it <= 0 {
			t.Fatalf("Newton from %v did not converge", seed)
		}
		if !ApproxEqual(z, 1) && !ApproxEqual(z, -1) {
			t.Errorf("Newton from %v converged to %v", seed, z)
		}
		if NormSq(f.Eval(z)) > ZeroEps {
			t.Errorf("|f(%v)|^2 = %g too large", z, NormSq(f.Eval(z)))
		}
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(complex(1, 1), complex(1+1e-9, 1)) {
		t.Error("nearby values not equal")
	}
	if ApproxEqual(complex(1, 1), complex(1.001, 1)) {
		t.Error("distinct values considered equal")
	}
}

func TestString(t *testing.T) {
	p := &Polynomial{}
	p.Clear()
	p.SetCoeff(2, 1)
	p.SetCoeff(0, -1)
	got := p.String()
	want := "p(z)=(1+0i)*z^2+(-1+0i)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
