// seehuhn.de/go/corridor - a first-person maze renderer
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

// Command genref generates the reference images for the renderer tests.
//
// For every test case it writes the frame as a paletted PNG, an enlarged
// preview with the location label, and a PDF file where every run of
// equally colored pixels is a filled rectangle.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/corridor"
	"seehuhn.de/go/corridor/hud"
	"seehuhn.de/go/corridor/surface"
	"seehuhn.de/go/corridor/testcases"
)

const (
	refDir       = "testdata/reference"
	previewScale = 4
	labelHeight  = 20
)

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			img, st, err := corridor.RenderExample(tc, nil)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := writePNG(pngPath, img.Paletted()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			previewPath := filepath.Join(refDir, name+"_preview.png")
			preview := makePreview(img, hud.Label(st.Player))
			if err := writePNG(previewPath, preview); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(img, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// makePreview enlarges the frame and adds the location label below it.
func makePreview(img *surface.Image, label string) *image.RGBA {
	w := img.Width() * previewScale
	h := img.Height() * previewScale
	res := image.NewRGBA(image.Rect(0, 0, w, h+labelHeight))
	draw.Draw(res, res.Bounds(), image.NewUniform(surface.Black.Value()), image.Point{}, draw.Src)

	draw.NearestNeighbor.Scale(res, image.Rect(0, 0, w, h), img.Paletted(), img.Paletted().Bounds(), draw.Over, nil)
	hud.Draw(res, image.Rect(0, h, w, h+labelHeight), label, surface.White.Value())
	return res
}

func generatePDF(img *surface.Image, pdfPath string) error {
	w, h := float64(img.Width()), float64(img.Height())

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: w,
		URy: h,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the frame uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	runs := collectRuns(img)
	for _, c := range slices.Sorted(maps.Keys(runs)) {
		page.SetFillColor(color.DeviceGray(luminance(c)))
		for cmd, pts := range runPath(runs[c]) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

// run is a horizontal run of equally colored pixels, from column x0 up to
// but not including x1.
type run struct {
	x0, x1, y int
}

// collectRuns returns, for every visible color, the horizontal runs of
// pixels with that color.
func collectRuns(img *surface.Image) map[surface.Color][]run {
	runs := make(map[surface.Color][]run)
	for y := range img.Height() {
		x := 0
		for x < img.Width() {
			c := img.Pixel(x, y)
			x0 := x
			for x < img.Width() && img.Pixel(x, y) == c {
				x++
			}
			if c == surface.Transparent {
				continue
			}
			runs[c] = append(runs[c], run{x0, x, y})
		}
	}
	return runs
}

// runPath returns a path made of one closed rectangle per run.
func runPath(runs []run) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		emit := func(cmd path.Command, x, y int) bool {
			buf[0] = vec.Vec2{X: float64(x), Y: float64(y)}
			return yield(cmd, buf[:])
		}
		for _, r := range runs {
			if !emit(path.CmdMoveTo, r.x0, r.y) ||
				!emit(path.CmdLineTo, r.x1, r.y) ||
				!emit(path.CmdLineTo, r.x1, r.y+1) ||
				!emit(path.CmdLineTo, r.x0, r.y+1) ||
				!yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// luminance converts a palette color to a gray level between 0 and 1.
func luminance(c surface.Color) float64 {
	v := c.Value()
	return (0.299*float64(v.R) + 0.587*float64(v.G) + 0.114*float64(v.B)) / 255
}
