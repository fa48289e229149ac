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

// WallFollower fills a region by walking along its boundary and painting
// every pixel whose removal keeps the remaining region connected. The
// walk itself needs no stack; it only logs the pixels it paints.
//
// Some regions make the walk orbit without painting. After 4·w·h moves
// without progress on a w×h surface, the rest of the region is completed
// by a conventional fill, which allocates one flag per pixel. The log
// tells this fill which pixels of the target color belong to the region.
type WallFollower struct{}

// Fill implements the [Filler] interface.
func (WallFollower) Fill(s Surface, x, y int, c surface.Color) {
	bg := s.Pixel(x, y)
	if bg == c || bg == surface.Outside {
		return
	}
	w := &walker{
		s:       s,
		bg:      bg,
		c:       c,
		x:       x,
		y:       y,
		heading: north,
		limit:   4 * s.Width() * s.Height(),
	}
	w.run()
	if w.stuck {
		fillRemaining(s, x, y, bg, c, w.painted)
	}
}

// fillRemaining recolors the pixels of color bg which are connected to
// (x, y) through pixels of color bg or through pixels in painted. These
// are the pixels a WallFollower started from (x, y) has not reached yet.
// Other pixels of color c are boundary, like any other color.
func fillRemaining(s Surface, x, y int, bg, c surface.Color, painted []point) {
	w, h := s.Width(), s.Height()
	seen := make([]bool, w*h)
	mine := make([]bool, w*h)
	for _, p := range painted {
		mine[p.y*w+p.x] = true
	}
	stack := []point{{x, y}}
	seen[y*w+x] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.SetPixel(p.x, p.y, c)
		for _, q := range [4]point{{p.x, p.y - 1}, {p.x + 1, p.y}, {p.x, p.y + 1}, {p.x - 1, p.y}} {
			if q.x < 0 || q.y < 0 || q.x >= w || q.y >= h || seen[q.y*w+q.x] {
				continue
			}
			if i := q.y*w + q.x; mine[i] || s.Pixel(q.x, q.y) == bg {
				seen[q.y*w+q.x] = true
				stack = append(stack, q)
			}
		}
	}
}

type heading uint8

const (
	north heading = iota
	east
	south
	west
)

func (h heading) right() heading { return (h + 1) % 4 }
func (h heading) left() heading  { return (h + 3) % 4 }

// Positions in the neighbourhood mask, relative to the current heading.
const (
	frontLeft = iota
	front
	frontRight
	left
	right
	backLeft
	back
	backRight
)

// neighbours gives the offsets of the mask positions for each heading.
var neighbours = [4][8]point{
	north: {{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}},
	east:  {{1, -1}, {1, 0}, {1, 1}, {0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {-1, 1}},
	south: {{1, 1}, {0, 1}, {-1, 1}, {1, 0}, {-1, 0}, {1, -1}, {0, -1}, {-1, -1}},
	west:  {{-1, 1}, {-1, 0}, {-1, -1}, {0, 1}, {0, -1}, {1, 1}, {1, 0}, {1, -1}},
}

// walker is the state of a single WallFollower fill.
type walker struct {
	s     Surface
	bg, c surface.Color

	// mask[i] is true if the neighbour at position i has the region color.
	mask    [8]bool
	x, y    int
	heading heading

	// loop latch
	latched      bool
	latchX       int
	latchY       int
	latchHeading heading

	idle  int // moves since the last painted pixel
	limit int
	stuck bool

	painted []point
}

func (w *walker) run() {
	w.sample()
	for {
		w.idle++
		if w.idle > w.limit {
			w.stuck = true
			return
		}

		if w.mask[right] {
			w.heading = w.heading.right()
			w.sample()
		}

		m := &w.mask
		if !m[front] && !m[left] && !m[right] && !m[back] {
			// the last pixel of the region
			w.paint()
			return
		}

		switch {
		case !m[left] && !m[right] && !m[back]:
			w.fillAndStep()
		case !m[front]:
			w.heading = w.heading.left()
			w.sample()
		case !m[left]:
			w.stepForward()
		case m[front] && !m[frontRight] && m[right],
			!m[frontLeft] && m[front] && m[left],
			m[left] && !m[backLeft] && m[back],
			m[right] && m[back] && !m[backRight]:
			// painting here would cut the region in two
			w.stepForward()
		default:
			w.fillAndStep()
		}
	}
}

func (w *walker) sample() {
	for i, d := range neighbours[w.heading] {
		w.mask[i] = w.s.Pixel(w.x+d.x, w.y+d.y) == w.bg
	}
}

func (w *walker) advance() {
	d := neighbours[w.heading][front]
	w.x += d.x
	w.y += d.y
	w.sample()
}

func (w *walker) paint() {
	w.s.SetPixel(w.x, w.y, w.c)
	w.painted = append(w.painted, point{w.x, w.y})
}

func (w *walker) fillAndStep() {
	w.idle = 0
	w.latched = false
	w.paint()
	w.advance()
}

func (w *walker) stepForward() {
	if w.latched {
		if w.latchX == w.x && w.latchY == w.y {
			if w.latchHeading == w.heading {
				w.fillAndStep()
				return
			}
			w.latched = false
			w.heading = w.latchHeading
		}
	} else if !w.inCorridor() {
		w.latched = true
		w.latchX = w.x
		w.latchY = w.y
		w.latchHeading = w.heading
	}
	w.advance()
}

// inCorridor reports whether the sides and the back of the cursor match
// one of the patterns met while walking along a plain edge.
func (w *walker) inCorridor() bool {
	l, r, b := w.mask[left], w.mask[right], w.mask[back]
	return !l && r && b ||
		l && !r && b ||
		l && r && b ||
		l && r && !b
}
