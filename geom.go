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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point is a pixel position, with y growing downwards.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle given by its corner pixels, both
// included. Normally Top is the minimum and Bottom the maximum corner.
type Rect struct {
	Top, Bottom Point
}

// Dx returns the inclusive width of r.
func (r Rect) Dx() int { return r.Bottom.X - r.Top.X + 1 }

// Dy returns the inclusive height of r.
func (r Rect) Dy() int { return r.Bottom.Y - r.Top.Y + 1 }

// Size is the extent of a screen or viewport in pixels.
type Size struct {
	Width, Height int
}

// DefaultScreen is the resolution of the target display.
var DefaultScreen = Size{Width: 160, Height: 120}

// Axis selects a coordinate axis for [Point3d.Rotate].
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Point3d is a point in camera space. X and Y are screen coordinates,
// Z is the distance from the view plane.
type Point3d struct {
	X, Y, Z float64
}

// Project maps p to a screen pixel for the given camera.
//
// Points which are at least camera.View.Depth() units beyond the camera,
// and points on or behind the view plane, map to the vanishing point
// just above and left of the screen center.
func (p Point3d) Project(cam Camera) Point {
	screen := cam.View.Screen()
	if p.Z-cam.Z >= float64(cam.View.Depth()) || p.Z <= 0 {
		return Point{X: screen.Width/2 - 1, Y: screen.Height/2 - 1}
	}
	q := normalize(p, screen).Mul(cam.Z / p.Z)
	q = denormalize(q, screen)
	return Point{X: round(q.X), Y: round(q.Y)}
}

// Rotate returns p rotated by the given angle around one of the axes
// through the screen center. The receiver is not changed.
func (p Point3d) Rotate(degrees float64, axis Axis, screen Size) Point3d {
	m := matrix.RotateDeg(degrees)

	n := normalize(p, screen)
	var x, y, z float64
	switch axis {
	case AxisX:
		y, z = m.Apply(n.Y, p.Z)
		x = n.X
	case AxisY:
		z, x = m.Apply(p.Z, n.X)
		y = n.Y
	default:
		x, y = m.Apply(n.X, n.Y)
		z = p.Z
	}
	q := denormalize(vec.Vec2{X: x, Y: y}, screen)
	return Point3d{X: q.X, Y: q.Y, Z: z}
}

// normalize moves the origin to the screen center and makes y point up.
func normalize(p Point3d, screen Size) vec.Vec2 {
	return vec.Vec2{
		X: p.X - float64(screen.Width)/2,
		Y: float64(screen.Height)/2 - p.Y,
	}
}

func denormalize(v vec.Vec2, screen Size) vec.Vec2 {
	return vec.Vec2{
		X: v.X + float64(screen.Width)/2,
		Y: float64(screen.Height)/2 - v.Y,
	}
}

// round rounds half-way cases towards positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
