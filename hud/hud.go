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

// Package hud draws the status line shown next to the corridor view.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/corridor"
)

// Label returns the location line for p.
func Label(p corridor.Player) string {
	return fmt.Sprintf("Player @ (%d,%d) dir: %s",
		p.Location.X, p.Location.Y, p.Direction)
}

// Draw writes label centered into the rectangle r of dst. Text which
// does not fit is clipped to r.
func Draw(dst draw.Image, r image.Rectangle, label string, col color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  clipped{dst, r},
		Src:  image.NewUniform(col),
		Face: face,
	}
	m := face.Metrics()
	w := d.MeasureString(label)
	h := m.Ascent + m.Descent
	d.Dot = fixed.Point26_6{
		X: fixed.I(r.Min.X) + (fixed.I(r.Dx())-w)/2,
		Y: fixed.I(r.Min.Y) + (fixed.I(r.Dy())-h)/2 + m.Ascent,
	}
	d.DrawString(label)
}

// clipped restricts drawing to a sub-rectangle.
type clipped struct {
	draw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.r.Intersect(c.Image.Bounds())
}
