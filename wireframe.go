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

import "seehuhn.de/go/corridor/surface"

// Edge connects two vertices of a [Wireframe], given by index.
type Edge struct {
	Begin, End int
}

// Wireframe is a line model in camera space.
type Wireframe struct {
	Vertices []Point3d
	Edges    []Edge
}

// Rotate returns a copy of wf with all vertices rotated around the
// given axis.
func (wf *Wireframe) Rotate(degrees float64, axis Axis, screen Size) *Wireframe {
	res := &Wireframe{
		Vertices: make([]Point3d, len(wf.Vertices)),
		Edges:    wf.Edges,
	}
	for i, v := range wf.Vertices {
		res.Vertices[i] = v.Rotate(degrees, axis, screen)
	}
	return res
}

// DrawWireframe projects the vertices of wf and draws every edge.
// Edges with invalid vertex indices are skipped.
func DrawWireframe(c Canvas, cam Camera, wf *Wireframe, col surface.Color) {
	pts := make([]Point, len(wf.Vertices))
	for i, v := range wf.Vertices {
		pts[i] = v.Project(cam)
	}
	for _, e := range wf.Edges {
		if e.Begin < 0 || e.Begin >= len(pts) || e.End < 0 || e.End >= len(pts) {
			continue
		}
		a, b := pts[e.Begin], pts[e.End]
		c.DrawLine(a.X, a.Y, b.X, b.Y, col)
	}
}

// Box returns the wireframe of an axis-aligned box spanning the screen
// rectangle r between the depths z0 and z1.
func Box(r Rect, z0, z1 float64) *Wireframe {
	x0, y0 := float64(r.Top.X), float64(r.Top.Y)
	x1, y1 := float64(r.Bottom.X), float64(r.Bottom.Y)
	wf := &Wireframe{
		Vertices: []Point3d{
			{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
			{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
		},
	}
	for i := range 4 {
		j := (i + 1) % 4
		wf.Edges = append(wf.Edges,
			Edge{i, j},
			Edge{i + 4, j + 4},
			Edge{i, i + 4})
	}
	return wf
}
