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

// Command tsapredict estimates the smallest refinement level at which
// the interval-arithmetic cell mapping of a filled-in Julia set shows
// interior cells.  Arguments are KEY=value pairs:
//
//	FUNC=name   polynomial family, one of Z2C, Z2AZC, ..., Z6AZC
//	C=re,im     seed value c
//	A=re,im     coefficient A (ignored for Z2C)
//	ENCW=n      neighbourhood half-width in pixels; negative n
//	            analyzes the whole enclosing rectangle
//	LEVEL=n,m   refinement level range
//	PERIODS=n,m analyze only cycles with length in [n,m]
//	SNAPSHOT=p  write a PNG image p_<level>.png per analyzed level
//
// The analysis protocol is printed and appended to tsapredictor.log.
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
	"time"

	"seehuhn.de/go/cellmap"
	"seehuhn.de/go/cellmap/interval"
)

const logName = "tsapredictor.log"

func main() {
	start := time.Now()

	fmt.Println("  FUNC=string / C=re,im / A=re,im / ENCW=n / LEVEL=n,m / PERIODS=n,m")

	a := &cellmap.Analyzer{
		Form:   interval.Z2C,
		Params: interval.PointSeed(interval.QuantizeComplex(-1), 0),
	}
	snapshotPrefix := ""
	for _, arg := range os.Args[1:] {
		if err := parseArg(a, &snapshotPrefix, strings.ToUpper(arg)); err != nil {
			fmt.Fprintf(os.Stderr, "tsapredict: %v\n", err)
			os.Exit(1)
		}
	}

	flog, err := os.OpenFile(logName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tsapredict: %v\n", err)
		os.Exit(1)
	}
	defer flog.Close()
	fmt.Fprintf(flog, "\n-----------------\n")

	a.Report = io.MultiWriter(os.Stdout, flog)
	if snapshotPrefix != "" {
		a.Snapshot = func(level int, img *image.Gray) {
			name := fmt.Sprintf("%s_%02d.png", snapshotPrefix, level)
			if err := writePNG(name, img); err != nil {
				fmt.Fprintf(os.Stderr, "tsapredict: %v\n", err)
			}
		}
	}

	if _, err := a.Run(); err != nil {
		fmt.Fprintf(a.Report, "%v\n", err)
		os.Exit(99)
	}

	fmt.Fprintf(a.Report, "%.0f sec duration\n", time.Since(start).Seconds())
}

// parseArg applies one KEY=value argument.  Unknown keys are ignored
// so that stray arguments do not abort a long batch run.
func parseArg(a *cellmap.Analyzer, snapshotPrefix *string, arg string) error {
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
	case "C":
		z, err := parseComplex(val)
		if err != nil {
			return fmt.Errorf("C: %w", err)
		}
		z = interval.QuantizeComplex(z)
		a.Params.C0 = z
		a.Params.C1 = z
	case "A":
		z, err := parseComplex(val)
		if err != nil {
			return fmt.Errorf("A: %w", err)
		}
		a.Params.A = interval.QuantizeComplex(z)
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
	case "SNAPSHOT":
		*snapshotPrefix = strings.ToLower(val)
	}
	return nil
}

func parseComplex(s string) (complex128, error) {
	var re, im float64
	if _, err := fmt.Sscanf(s, "%f,%f", &re, &im); err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func writePNG(name string, img *image.Gray) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, cellmap.ScaleImage(img, 1024)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
