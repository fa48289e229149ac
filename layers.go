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

import "math"

// ScaleFactor returns the size of depth layer k relative to the viewport,
// for a table with layersPerUnit layers per maze cell.
//
// The factor is a degree 4 fit through the hand-tuned samples
//
//	depth  0    1    2     3      4     5
//	scale  1    0.7  0.45  0.275  0.15  0.05
//
// and equals 1 exactly at depth 0.
func ScaleFactor(k, layersPerUnit int) float64 {
	if k == 0 {
		return 1
	}
	u := float64(k) / float64(layersPerUnit)
	return -0.001042*u*u*u*u +
		0.008565*u*u*u +
		0.008681*u*u -
		0.3174*u +
		1.0001984
}

// LayerTable holds the rectangles of the depth layers for one viewport.
// Entry i belongs to depth (i - lpu)/lpu, so the first lpu entries lie
// in front of the view plane.
//
// A LayerTable is immutable.
type LayerTable struct {
	view          Viewport
	layersPerUnit int
	rects         []Rect
	scale         []float64
}

// NewLayerTable computes the depth layers for the given viewport.
func NewLayerTable(view Viewport, layersPerUnit int) *LayerTable {
	n := (view.Depth() + 1) * layersPerUnit
	t := &LayerTable{
		view:          view,
		layersPerUnit: layersPerUnit,
		rects:         make([]Rect, 0, n),
		scale:         make([]float64, 0, n),
	}

	c := view.Center()
	halfW := float64(view.Width()) / 2
	halfH := float64(view.Height()) / 2
	for k := -layersPerUnit; k < view.Depth()*layersPerUnit; k++ {
		sf := ScaleFactor(k, layersPerUnit)
		dx, dy := halfW*sf, halfH*sf
		t.scale = append(t.scale, sf)
		t.rects = append(t.rects, Rect{
			Top: Point{
				X: int(math.Floor(float64(c.X) - dx)),
				Y: int(math.Floor(float64(c.Y) - dy)),
			},
			Bottom: Point{
				X: int(math.Floor(float64(c.X) + dx)),
				Y: int(math.Floor(float64(c.Y) + dy)),
			},
		})
	}
	return t
}

// Len returns the number of layers.
func (t *LayerTable) Len() int { return len(t.rects) }

// LayersPerUnit returns the number of layers per maze cell.
func (t *LayerTable) LayersPerUnit() int { return t.layersPerUnit }

// View returns the viewport the table was built for.
func (t *LayerTable) View() Viewport { return t.view }

// At returns layer i. The second return value is false if i is out of
// range.
func (t *LayerTable) At(i int) (Rect, bool) {
	if i < 0 || i >= len(t.rects) {
		return Rect{}, false
	}
	return t.rects[i], true
}

// ScaleFactors returns a copy of the scale factors, in layer order.
func (t *LayerTable) ScaleFactors() []float64 {
	res := make([]float64, len(t.scale))
	copy(res, t.scale)
	return res
}
