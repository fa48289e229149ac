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

// Package flood implements region fills on palette-indexed surfaces.
//
// A fill recolors every pixel which has the same color as the seed pixel
// and is 4-connected to it. Two algorithms are provided: [Scanline] keeps
// an explicit stack of row seeds, [WallFollower] walks along the region
// boundary with a fixed amount of state.
package flood

import (
	"errors"

	"seehuhn.de/go/corridor/surface"
)

// Surface is the pixel access needed by the fill algorithms.
// Pixel must return [surface.Outside] for points outside the surface.
type Surface interface {
	Width() int
	Height() int
	Pixel(x, y int) surface.Color
	SetPixel(x, y int, c surface.Color)
}

// Filler recolors the region containing the seed (x, y) with c.
// Seeds outside the surface, and seeds which already have color c,
// leave the surface unchanged.
type Filler interface {
	Fill(s Surface, x, y int, c surface.Color)
}

// FillerFunc adapts a function to the [Filler] interface.
type FillerFunc func(s Surface, x, y int, c surface.Color)

// Fill calls f(s, x, y, c).
func (f FillerFunc) Fill(s Surface, x, y int, c surface.Color) {
	f(s, x, y, c)
}

// ErrUnknownFiller is returned by [ByName] for unsupported names.
var ErrUnknownFiller = errors.New("unknown fill algorithm")

// Names lists the algorithm names accepted by [ByName].
var Names = []string{"scanline", "wallfollower"}

// ByName returns a new filler for the given algorithm name.
func ByName(name string) (Filler, error) {
	switch name {
	case "scanline":
		return &Scanline{}, nil
	case "wallfollower":
		return WallFollower{}, nil
	default:
		return nil, ErrUnknownFiller
	}
}

type point struct {
	x, y int
}
