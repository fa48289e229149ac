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

package corridor

// Viewport is the part of the screen the corridor is drawn into,
// together with the number of maze cells visible ahead.
//
// If the viewport is stretched, the depth layers are centered on and
// scaled to the viewport rectangle. Otherwise they are centered on and
// scaled to the whole screen, and only cropped to the viewport.
type Viewport struct {
	top, bottom   Point
	center        Point
	width, height int
	depth         int
	stretch       bool
	screen        Size
}

// NewViewport returns the viewport with corners p1 and p2, given in
// either order.
func NewViewport(p1, p2 Point, depth int, stretch bool, screen Size) Viewport {
	v := Viewport{
		top:     Point{X: min(p1.X, p2.X), Y: min(p1.Y, p2.Y)},
		bottom:  Point{X: max(p1.X, p2.X), Y: max(p1.Y, p2.Y)},
		depth:   depth,
		stretch: stretch,
		screen:  screen,
	}
	if stretch {
		v.center = Point{
			X: round(float64(p1.X+p2.X+1) / 2),
			Y: round(float64(p1.Y+p2.Y+1) / 2),
		}
		v.width = v.bottom.X - v.top.X + 1
		v.height = v.bottom.Y - v.top.Y + 1
	} else {
		v.center = Point{
			X: round(float64(screen.Width)/2) - 1,
			Y: round(float64(screen.Height)/2) - 1,
		}
		v.width = screen.Width
		v.height = screen.Height
	}
	return v
}

// Top returns the top-left corner pixel.
func (v Viewport) Top() Point { return v.top }

// Bottom returns the bottom-right corner pixel.
func (v Viewport) Bottom() Point { return v.bottom }

// Center returns the point the depth layers are centered on.
func (v Viewport) Center() Point { return v.center }

// Width returns the width the depth layers are scaled to.
func (v Viewport) Width() int { return v.width }

// Height returns the height the depth layers are scaled to.
func (v Viewport) Height() int { return v.height }

// Depth returns the number of cells visible ahead of the player.
func (v Viewport) Depth() int { return v.depth }

// Stretch reports whether the layers are fitted to the viewport.
func (v Viewport) Stretch() bool { return v.stretch }

// Screen returns the size of the whole display.
func (v Viewport) Screen() Size { return v.screen }

// Rect returns the viewport rectangle.
func (v Viewport) Rect() Rect { return Rect{Top: v.top, Bottom: v.bottom} }

// Contains reports whether the pixel p lies inside the viewport.
func (v Viewport) Contains(p Point) bool {
	return p.X >= v.top.X && p.X <= v.bottom.X &&
		p.Y >= v.top.Y && p.Y <= v.bottom.Y
}
