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
	"seehuhn.de/go/corridor/flood"
	"seehuhn.de/go/corridor/surface"
	"seehuhn.de/go/corridor/testcases"
)

// ExampleConfig returns the configuration used to render tc.
func ExampleConfig(tc testcases.TestCase) Config {
	v := tc.Viewport()
	cfg := DefaultConfig()
	cfg.Screen = Size{Width: v.Width, Height: v.Height}
	cfg.ViewTop = Point{X: v.X0, Y: v.Y0}
	cfg.ViewBottom = Point{X: v.X1, Y: v.Y1}
	cfg.Depth = v.Depth
	cfg.Stretch = v.Stretch
	return cfg
}

// RenderExample renders a test case into a new image. If filler is nil,
// the renderer's default fill is used.
func RenderExample(tc testcases.TestCase, filler flood.Filler) (*surface.Image, *State, error) {
	g, err := tc.Grid()
	if err != nil {
		return nil, nil, err
	}
	cfg := ExampleConfig(tc)
	st := cfg.NewState(g, tc.Start)
	st.Player.Direction = tc.Facing
	st.Camera.Z = tc.Z

	r := NewRenderer(cfg)
	if filler != nil {
		r.Filler = filler
	}
	img := surface.New(cfg.Screen.Width, cfg.Screen.Height)
	r.Draw(img, st)
	return img, st, nil
}
