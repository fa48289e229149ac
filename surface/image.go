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

// Package surface implements the palette-indexed pixel surface the maze
// renderer draws on.
//
// All drawing operations clip silently: pixels outside the image are
// ignored on write and read back as [Outside].
package surface

import "image"

// Image is a palette-indexed raster image with the origin at the top-left
// corner. The zero value is not usable; use [New].
type Image struct {
	pal *image.Paletted
}

// New allocates a width×height image filled with [Transparent].
func New(width, height int) *Image {
	return &Image{
		pal: image.NewPaletted(image.Rect(0, 0, width, height), Palette),
	}
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.pal.Rect.Dx() }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.pal.Rect.Dy() }

// Paletted returns the underlying image. It shares pixel storage with img.
func (img *Image) Paletted() *image.Paletted { return img.pal }

func (img *Image) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.pal.Rect.Max.X && y < img.pal.Rect.Max.Y
}

// Pixel returns the color at (x, y), or [Outside] if the point is not
// inside the image.
func (img *Image) Pixel(x, y int) Color {
	if !img.inside(x, y) {
		return Outside
	}
	return Color(img.pal.Pix[y*img.pal.Stride+x])
}

// SetPixel sets the color at (x, y). Points outside the image are ignored.
func (img *Image) SetPixel(x, y int, c Color) {
	if !img.inside(x, y) {
		return
	}
	img.pal.Pix[y*img.pal.Stride+x] = uint8(c)
}

// Fill sets every pixel to c.
func (img *Image) Fill(c Color) {
	pix := img.pal.Pix
	for i := range pix {
		pix[i] = uint8(c)
	}
}

// FillRect fills the w×h rectangle with top-left corner (x, y).
func (img *Image) FillRect(x, y, w, h int, c Color) {
	x0 := max(x, 0)
	y0 := max(y, 0)
	x1 := min(x+w, img.Width())
	y1 := min(y+h, img.Height())
	for row := y0; row < y1; row++ {
		line := img.pal.Pix[row*img.pal.Stride:]
		for col := x0; col < x1; col++ {
			line[col] = uint8(c)
		}
	}
}

// DrawRect draws the one pixel wide outline of the w×h rectangle with
// top-left corner (x, y). Empty rectangles draw nothing.
func (img *Image) DrawRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x1 := x + w - 1
	y1 := y + h - 1
	img.DrawLine(x, y, x1, y, c)
	img.DrawLine(x, y1, x1, y1, c)
	img.DrawLine(x, y, x, y1, c)
	img.DrawLine(x1, y, x1, y1, c)
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both ends included,
// using Bresenham's algorithm.
func (img *Image) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		img.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// CopyFrom copies the pixels of src into img. Both images must have the
// same size.
func (img *Image) CopyFrom(src *Image) {
	copy(img.pal.Pix, src.pal.Pix)
}
