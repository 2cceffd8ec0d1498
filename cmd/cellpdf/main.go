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

// Command cellpdf runs the refinement level prediction and renders the
// results as vector PDFs: the cell grid of every analyzed level, one
// file per level, with gray cells (possibly bounded) drawn black; and
// an overview page showing the global square, the basin rectangle of
// every cycle with detected interior, and the periodic points.  Arguments are the
// KEY=value pairs of tsapredict, plus OUT=prefix for the output file
// names (default "cells").
package main

import (
	"fmt"
	"image"
	"os"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/cellmap"
	"seehuhn.de/go/cellmap/interval"
)

// pageSize is the length of the longer page edge in PDF points.
const pageSize = 595.0

func main() {
	a := &cellmap.Analyzer{
		Form:   interval.Z2C,
		Params: interval.PointSeed(interval.QuantizeComplex(-1), 0),
		Report: os.Stdout,
	}
	prefix := "cells"
	for _, arg := range os.Args[1:] {
		if err := parseArg(a, &prefix, strings.ToUpper(arg)); err != nil {
			fmt.Fprintf(os.Stderr, "cellpdf: %v\n", err)
			os.Exit(1)
		}
	}

	a.Snapshot = func(level int, img *image.Gray) {
		name := fmt.Sprintf("%s_%02d.pdf", prefix, level)
		if err := writePDF(name, img); err != nil {
			fmt.Fprintf(os.Stderr, "cellpdf: %s: %v\n", name, err)
		}
	}

	roots, err := a.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cellpdf: %v\n", err)
		os.Exit(99)
	}

	r := interval.Polynomial(a.Form, a.Params).LagrangeBound()
	name := prefix + "_overview.pdf"
	if err := writeOverview(name, roots, r); err != nil {
		fmt.Fprintf(os.Stderr, "cellpdf: %s: %v\n", name, err)
		os.Exit(1)
	}
}

func parseArg(a *cellmap.Analyzer, prefix *string, arg string) error {
	key, val, ok := strings.Cut(arg, "=")
	if !ok {
		return nil
	}
	switch key {
	case "FUNC":
		form, err := interval.ParseForm(val)
		if err != nil {
			return err
		}
		a.Form = form
	case "C", "A":
		var re, im float64
		if _, err := fmt.Sscanf(val, "%f,%f", &re, &im); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		z := interval.QuantizeComplex(complex(re, im))
		if key == "C" {
			a.Params.C0 = z
			a.Params.C1 = z
		} else {
			a.Params.A = z
		}
	case "ENCW":
		if _, err := fmt.Sscanf(val, "%d", &a.Encw); err != nil {
			return fmt.Errorf("ENCW: %w", err)
		}
	case "LEVEL":
		if _, err := fmt.Sscanf(val, "%d,%d", &a.Level0, &a.Level1); err != nil {
			return fmt.Errorf("LEVEL: %w", err)
		}
	case "PERIODS":
		if _, err := fmt.Sscanf(val, "%d,%d", &a.Periods[0], &a.Periods[1]); err != nil {
			return fmt.Errorf("PERIODS: %w", err)
		}
	case "OUT":
		*prefix = strings.ToLower(val)
	}
	return nil
}

// writeOverview draws the global square as an outline, the basin
// rectangle of every cycle with detected interior in light gray, and
// the periodic points as small black squares.
func writeOverview(name string, roots []*cellmap.Root, r float64) error {
	scale := pageSize / (2 * r)
	paper := &pdf.Rectangle{URx: pageSize, URy: pageSize}

	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	page.Transform(matrix.Scale(scale, scale))

	page.SetFillColor(color.DeviceGray(0.85))
	for _, root := range roots {
		if len(root.Cycle) == 0 || root.InteriorFound == 0 {
			continue
		}
		b := root.Basin
		page.Rectangle(b.LLx+r, b.LLy+r, b.URx-b.LLx, b.URy-b.LLy)
	}
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / scale)
	page.Rectangle(0, 0, 2*r, 2*r)
	page.Stroke()

	// periodic points, 2 pt squares
	s := 1 / scale
	page.SetFillColor(color.DeviceGray(0))
	for _, root := range roots {
		for _, pp := range root.Cycle {
			page.Rectangle(real(pp.Z)+r-s, imag(pp.Z)+r-s, 2*s, 2*s)
		}
	}
	page.Fill()

	return page.Close()
}

// writePDF draws one cell grid snapshot, one unit square per cell.
// Horizontal runs of black cells are merged into single rectangles to
// keep the content stream small.
func writePDF(name string, img *image.Gray) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scale := pageSize / float64(max(w, h))
	paper := &pdf.Rectangle{
		URx: float64(w) * scale,
		URy: float64(h) * scale,
	}

	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.Transform(matrix.Scale(scale, scale))
	page.SetFillColor(color.DeviceGray(0))
	for y := 0; y < h; y++ {
		// image row 0 is the top of the grid; PDF y grows upwards
		py := float64(h - 1 - y)
		for x := 0; x < w; {
			if img.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0 {
				x++
				continue
			}
			x0 := x
			for x < w && img.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0 {
				x++
			}
			page.Rectangle(float64(x0), py, float64(x-x0), 1)
		}
		page.Fill()
	}

	return page.Close()
}
