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

import (
	"seehuhn.de/go/corridor/surface"
	"seehuhn.de/go/geom/vec"
)

// holeSize is the fraction of the corridor width taken up by a hole.
const holeSize = 0.75

// Hole is the opening of a floor or ceiling hole between two depth
// layers. A Hole with a missing plane draws nothing.
type Hole struct {
	back, front           *Rect
	backDelta, frontDelta float64
}

// NewHole returns the hole between the given back and front planes.
// Either plane may be nil.
func NewHole(back, front *Rect) *Hole {
	h := &Hole{back: back, front: front}
	if back != nil && front != nil {
		h.backDelta = float64(back.Bottom.X-back.Top.X) * (1 - holeSize)
		h.frontDelta = float64(front.Bottom.X-front.Top.X) * (1 - holeSize)
	}
	return h
}

func (h *Hole) ok() bool {
	return h != nil && h.back != nil && h.front != nil
}

// corners returns the corners of the opening on the rows backY and frontY.
func (h *Hole) corners(backY, frontY int) (bl, br, fl, fr vec.Vec2) {
	bl = vec.Vec2{X: float64(h.back.Top.X) + h.backDelta, Y: float64(backY)}
	br = vec.Vec2{X: float64(h.back.Bottom.X) - h.backDelta, Y: float64(backY)}
	fl = vec.Vec2{X: float64(h.front.Top.X) + h.frontDelta, Y: float64(frontY)}
	fr = vec.Vec2{X: float64(h.front.Bottom.X) - h.frontDelta, Y: float64(frontY)}
	return bl, br, fl, fr
}

// DrawCeilingHole outlines the opening between the top edges of the planes.
func (h *Hole) DrawCeilingHole(c Canvas, col surface.Color) {
	if !h.ok() || c == nil {
		return
	}
	h.draw(c, col, h.back.Top.Y, h.front.Top.Y)
}

// DrawFloorHole outlines the opening between the bottom edges of the planes.
func (h *Hole) DrawFloorHole(c Canvas, col surface.Color) {
	if !h.ok() || c == nil {
		return
	}
	h.draw(c, col, h.back.Bottom.Y, h.front.Bottom.Y)
}

func (h *Hole) draw(c Canvas, col surface.Color, backY, frontY int) {
	bl, br, fl, fr := h.corners(backY, frontY)
	line(c, bl, br, col)
	if frontY >= 0 && frontY < c.Height() {
		line(c, fl, fr, col)
	}
	line(c, bl, fl, col)
	line(c, br, fr, col)
	line(c, br, vec.Vec2{X: br.X, Y: fr.Y}, col)
	line(c, bl, vec.Vec2{X: bl.X, Y: fl.Y}, col)
}

// BackSpan returns the first and last column of the back edge.
// Both are zero if the hole has a missing plane.
func (h *Hole) BackSpan() (x0, x1 int) {
	if !h.ok() {
		return 0, 0
	}
	bl, br, _, _ := h.corners(0, 0)
	return int(bl.X), int(br.X)
}

// FrontSpan returns the first and last column of the front edge.
// Both are zero if the hole has a missing plane.
func (h *Hole) FrontSpan() (x0, x1 int) {
	if !h.ok() {
		return 0, 0
	}
	_, _, fl, fr := h.corners(0, 0)
	return int(fl.X), int(fr.X)
}

// line draws between two points with fractional coordinates, which are
// truncated towards zero.
func line(c Canvas, a, b vec.Vec2, col surface.Color) {
	c.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), col)
}
