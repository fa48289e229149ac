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

package flood

import "seehuhn.de/go/corridor/surface"

// Scanline is a stack based span fill. For every seed taken from the
// stack, the whole horizontal run containing it is recolored, and one new
// seed is pushed for each run of matching pixels found in the rows
// directly above and below.
//
// The zero value is ready to use. The stack grows as needed and is reused
// by later calls. A Scanline is not safe for concurrent use.
type Scanline struct {
	stack []point
}

// Fill implements the [Filler] interface.
func (f *Scanline) Fill(s Surface, x, y int, c surface.Color) {
	bg := s.Pixel(x, y)
	if bg == c || bg == surface.Outside {
		return
	}

	w, h := s.Width(), s.Height()
	f.stack = append(f.stack[:0], point{x, y})
	for len(f.stack) > 0 {
		p := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]

		x1 := p.x
		for x1 >= 0 && s.Pixel(x1, p.y) == bg {
			x1--
		}
		x1++

		spanAbove := false
		spanBelow := false
		for x1 < w && s.Pixel(x1, p.y) == bg {
			s.SetPixel(x1, p.y, c)

			if p.y > 0 {
				match := s.Pixel(x1, p.y-1) == bg
				if !spanAbove && match {
					f.stack = append(f.stack, point{x1, p.y - 1})
					spanAbove = true
				} else if spanAbove && !match {
					spanAbove = false
				}
			}

			if p.y < h-1 {
				match := s.Pixel(x1, p.y+1) == bg
				if !spanBelow && match {
					f.stack = append(f.stack, point{x1, p.y + 1})
					spanBelow = true
				} else if spanBelow && !match {
					spanBelow = false
				}
			}

			x1++
		}
	}
}
