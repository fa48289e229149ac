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

// Package testcases lists the views used for the reference images.
package testcases

import "seehuhn.de/go/corridor/maze"

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string         // lowercase a-z and _ only
	Maze   string         // maze in the format of maze.Parse, empty for the default maze
	Start  maze.Cell      // the player's cell
	Facing maze.Direction // the player's heading
	Z      float64        // camera position within the cell
	View   View           // viewport (zero value means DefaultView)
}

// View describes a viewport on a Width×Height screen.
type View struct {
	X0, Y0, X1, Y1 int // corners, both included
	Depth          int
	Stretch        bool
	Width, Height  int // screen size
}

// DefaultView is the viewport of the handheld game.
var DefaultView = View{
	X0: 0, Y0: 0, X1: 159, Y1: 89,
	Depth:   6,
	Stretch: true,
	Width:   160,
	Height:  120,
}

// Viewport returns the view of tc, with the default filled in.
func (tc TestCase) Viewport() View {
	if tc.View == (View{}) {
		return DefaultView
	}
	return tc.View
}

// Grid returns the maze of tc.
func (tc TestCase) Grid() (*maze.Grid, error) {
	if tc.Maze == "" {
		return maze.Default(), nil
	}
	return maze.Parse(tc.Maze)
}
