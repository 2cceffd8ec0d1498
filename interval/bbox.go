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

package interval

import (
	"seehuhn.de/go/geom/rect"
)

// Evaluator returns a rectangle enclosing the image of a under the
// selected polynomial.  The bound is obtained by expanding p into its
// real and imaginary component polynomials and bounding every monomial
// by the min/max of products of interval endpoints.  Lower bounds use
// the lower seed endpoint, upper bounds the upper one.
type Evaluator func(a rect.Rect) rect.Rect

// New returns the evaluator for the given family and parameters.
func New(f Form, p Params) Evaluator {
	c0re, c0im := real(p.C0), imag(p.C0)
	c1re, c1im := real(p.C1), imag(p.C1)
	are, aim := real(p.A), imag(p.A)

	switch f {
	case Z2AZC:
		return func(a rect.Rect) rect.Rect {
			x0, x1, y0, y1 := a.LLx, a.URx, a.LLy, a.URy
			xx0, xx1 := x0*x0, x1*x1
			yy0, yy1 := y0*y0, y1*y1
			xyMin := min(x0*y0, x0*y1, x1*y0, x1*y1)
			xyMax := max(x0*y0, x0*y1, x1*y0, x1*y1)
			return rect.Rect{
				LLx: c0re + min(are*x0, are*x1) + min(xx0, xx1) -
					max(aim*y0, aim*y1) - max(yy0, yy1),
				URx: c1re + max(are*x0, are*x1) + max(xx0, xx1) -
					min(aim*y0, aim*y1) - min(yy0, yy1),
				LLy: c0im + min(aim*x0, aim*x1) + min(are*y0, are*y1) + 2*xyMin,
				URy: c1im + max(aim*x0, aim*x1) + max(are*y0, are*y1) + 2*xyMax,
			}
		}

	case Z3AZC:
		return func(a rect.Rect) rect.Rect {
			x0, x1, y0, y1 := a.LLx, a.URx, a.LLy, a.URy
			xxMin, xxMax := minMax2(x0*x0, x1*x1)
			yyMin, yyMax := minMax2(y0*y0, y1*y1)
			return rect.Rect{
				LLx: min(are*x0, are*x1) - max(aim*y0, aim*y1) +
					x0*x0*x0 -
					3*max(x0*yyMin, x0*yyMax, x1*yyMin, x1*yyMax) +
					c0re,
				URx: max(are*x0, are*x1) - min(aim*y0, aim*y1) +
					x1*x1*x1 -
					3*min(x0*yyMin, x0*yyMax, x1*yyMin, x1*yyMax) +
					c1re,
				LLy: min(are*y0, are*y1) + min(aim*x0, aim*x1) +
					3*min(xxMin*y0, xxMin*y1, xxMax*y0, xxMax*y1) -
					y1*y1*y1 +
					c0im,
				URy: max(are*y0, are*y1) + max(aim*x0, aim*x1) +
					3*max(xxMin*y0, xxMin*y1, xxMax*y0, xxMax*y1) -
					y0*y0*y0 +
					c1im,
			}
		}

	case Z4AZC:
		return func(a rect.Rect) rect.Rect {
			x0, x1, y0, y1 := a.LLx, a.URx, a.LLy, a.URy
			xxMin, xxMax := minMax2(x0*x0, x1*x1)
			yyMin, yyMax := minMax2(y0*y0, y1*y1)
			x3a, x3b := x0*x0*x0, x1*x1*x1
			y3a, y3b := y0*y0*y0, y1*y1*y1
			x4Min, x4Max := minMax2(x0*x3a, x1*x3b)
			y4Min, y4Max := minMax2(y0*y3a, y1*y3b)
			return rect.Rect{
				LLx: min(are*x0, are*x1) - max(aim*y0, aim*y1) +
					x4Min -
					6*max(xxMin*yyMin, xxMin*yyMax, xxMax*yyMin, xxMax*yyMax) +
					y4Min +
					c0re,
				URx: max(are*x0, are*x1) - min(aim*y0, aim*y1) +
					x4Max -
					6*min(xxMin*yyMin, xxMin*yyMax, xxMax*yyMin, xxMax*yyMax) +
					y4Max +
					c1re,
				LLy: min(are*y0, are*y1) + min(aim*x0, aim*x1) +
					4*min(x3a*y0, x3a*y1, x3b*y0, x3b*y1) -
					4*max(x0*y3a, x0*y3b, x1*y3a, x1*y3b) +
					c0im,
				URy: max(are*y0, are*y1) + max(aim*x0, aim*x1) +
					4*max(x3a*y0, x3a*y1, x3b*y0, x3b*y1) -
					4*min(x0*y3a, x0*y3b, x1*y3a, x1*y3b) +
					c1im,
			}
		}

	case Z5AZC:
		return func(a rect.Rect) rect.Rect {
			x0, x1, y0, y1 := a.LLx, a.URx, a.LLy, a.URy
			xxMin, xxMax := minMax2(x0*x0, x1*x1)
			yyMin, yyMax := minMax2(y0*y0, y1*y1)
			x3a, x3b := x0*x0*x0, x1*x1*x1
			y3a, y3b := y0*y0*y0, y1*y1*y1
			x4Min, x4Max := minMax2(x0*x3a, x1*x3b)
			y4Min, y4Max := minMax2(y0*y3a, y1*y3b)
			return rect.Rect{
				LLx: min(are*x0, are*x1) - max(aim*y0, aim*y1) +
					x0*x3a*x0 -
					10*max(x3a*yyMin, x3a*yyMax, x3b*yyMin, x3b*yyMax) +
					5*min(x0*y4Min, x0*y4Max, x1*y4Min, x1*y4Max) +
					c0re,
				URx: max(are*x0, are*x1) - min(aim*y0, aim*y1) +
					x1*x3b*x1 -
					10*min(x3a*yyMin, x3a*yyMax, x3b*yyMin, x3b*yyMax) +
					5*max(x0*y4Min, x0*y4Max, x1*y4Min, x1*y4Max) +
					c1re,
				LLy: min(are*y0, are*y1) + min(aim*x0, aim*x1) +
					5*min(x4Min*y0, x4Min*y1, x4Max*y0, x4Max*y1) -
					10*max(xxMin*y3a, xxMin*y3b, xxMax*y3a, xxMax*y3b) +
					y0*y3a*y0 +
					c0im,
				URy: max(are*y0, are*y1) + max(aim*x0, aim*x1) +
					5*max(x4Min*y0, x4Min*y1, x4Max*y0, x4Max*y1) -
					10*min(xxMin*y3a, xxMin*y3b, xxMax*y3a, xxMax*y3b) +
					y1*y3b*y1 +
					c1im,
			}
		}

	case Z6AZC:
		return func(a rect.Rect) rect.Rect {
			x0, x1, y0, y1 := a.LLx, a.URx, a.LLy, a.URy
			xxMin, xxMax := minMax2(x0*x0, x1*x1)
			yyMin, yyMax := minMax2(y0*y0, y1*y1)
			x3a, x3b := x0*x0*x0, x1*x1*x1
			y3a, y3b := y0*y0*y0, y1*y1*y1
			x4Min, x4Max := minMax2(x0*x3a, x1*x3b)
			y4Min, y4Max := minMax2(y0*y3a, y1*y3b)
			x5a, x5b := x0*x3a*x0, x1*x3b*x1
			y5a, y5b := y0*y3a*y0, y1*y3b*y1
			x6Min, x6Max := minMax2(x0*x5a, x1*x5b)
			y6Min, y6Max := minMax2(y0*y5a, y1*y5b)
			return rect.Rect{
				LLx: c0re + min(are*x0, are*x1) - max(aim*y0, aim*y1) +
					x6Min -
					15*max(x4Min*yyMin, x4Min*yyMax, x4Max*yyMin, x4Max*yyMax) +
					15*min(xxMin*y4Min, xxMin*y4Max, xxMax*y4Min, xxMax*y4Max) -
					y6Max,
				URx: c1re + max(are*x0, are*x1) - min(aim*y0, aim*y1) +
					x6Max -
					15*min(x4Min*yyMin, x4Min*yyMax, x4Max*yyMin, x4Max*yyMax) +
					15*max(xxMin*y4Min, xxMin*y4Max, xxMax*y4Min, xxMax*y4Max) -
					y6Min,
				LLy: min(are*y0, are*y1) + min(aim*x0, aim*x1) +
					6*min(x5a*y0, x5a*y1, x5b*y0, x5b*y1) -
					20*max(x3a*y3a, x3a*y3b, x3b*y3a, x3b*y3b) +
					6*min(x0*y5a, x0*y5b, x1*y5a, x1*y5b) +
					c0im,
				URy: max(are*y0, are*y1) + max(aim*x0, aim*x1) +
					6*max(x5a*y0, x5a*y1, x5b*y0, x5b*y1) -
					20*min(x3a*y3a, x3a*y3b, x3b*y3a, x3b*y3b) +
					6*max(x0*y5a, x0*y5b, x1*y5a, x1*y5b) +
					c1im,
			}
		}

	default: // Z2C
		return func(a rect.Rect) rect.Rect {
			x0, x1, y0, y1 := a.LLx, a.URx, a.LLy, a.URy
			xx0, xx1 := x0*x0, x1*x1
			yy0, yy1 := y0*y0, y1*y1
			return rect.Rect{
				LLx: min(xx0, xx1) - max(yy0, yy1) + c0re,
				URx: max(xx0, xx1) - min(yy0, yy1) + c1re,
				LLy: 2*min(x0*y0, x0*y1, x1*y0, x1*y1) + c0im,
				URy: 2*max(x0*y0, x0*y1, x1*y0, x1*y1) + c1im,
			}
		}
	}
}

func minMax2(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
