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

package surface

import "image/color"

// Color is an index into the 16-entry display palette.
type Color uint8

// The display palette.
const (
	Transparent Color = iota
	White
	Red
	Pink
	Orange
	Yellow
	Aqua
	BrightGreen
	Blue
	LightBlue
	Purple
	RoseBouquet
	Wine
	Bone
	Brown
	Black
)

// Outside is returned by [Image.Pixel] for coordinates outside the image.
// It differs from every palette color.
const Outside Color = 0xFF

// NumColors is the number of palette entries.
const NumColors = 16

// Palette maps each [Color] to its RGB value. Transparent is fully
// transparent black.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 0},
	color.RGBA{255, 255, 255, 255},
	color.RGBA{255, 33, 33, 255},
	color.RGBA{255, 147, 196, 255},
	color.RGBA{255, 129, 53, 255},
	color.RGBA{255, 246, 9, 255},
	color.RGBA{36, 156, 163, 255},
	color.RGBA{120, 220, 82, 255},
	color.RGBA{0, 63, 173, 255},
	color.RGBA{135, 242, 255, 255},
	color.RGBA{142, 46, 196, 255},
	color.RGBA{164, 131, 159, 255},
	color.RGBA{92, 64, 108, 255},
	color.RGBA{229, 205, 196, 255},
	color.RGBA{145, 70, 61, 255},
	color.RGBA{0, 0, 0, 255},
}

var colorNames = [NumColors]string{
	"transparent", "white", "red", "pink", "orange", "yellow", "aqua",
	"bright-green", "blue", "light-blue", "purple", "rose-bouquet", "wine",
	"bone", "brown", "black",
}

// String returns the lower-case palette name of c.
func (c Color) String() string {
	if c < NumColors {
		return colorNames[c]
	}
	if c == Outside {
		return "outside"
	}
	return "invalid"
}

// Value returns the palette entry of c. Colors outside the palette map to
// transparent.
func (c Color) Value() color.RGBA {
	if c < NumColors {
		return Palette[c].(color.RGBA)
	}
	return color.RGBA{}
}
