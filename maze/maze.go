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

// Package maze holds the static maze grid and traces what the player can
// see along a corridor.
//
// A maze is a rectangle of palette colors. The color of a cell determines
// its [TileType]. Everything outside the rectangle is solid wall.
package maze

import "seehuhn.de/go/corridor/surface"

// TileType classifies a maze cell.
type TileType uint8

const (
	Path TileType = iota
	Wall
	FloorHole
	CeilingHole
)

func (t TileType) String() string {
	switch t {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case FloorHole:
		return "floor hole"
	case CeilingHole:
		return "ceiling hole"
	default:
		return "unknown"
	}
}

// Cell colors with a special meaning. All other colors are [Path].
const (
	WallColor        = surface.White
	FloorHoleColor   = surface.Brown
	CeilingHoleColor = surface.Wine
	PathColor        = surface.Black
)

// TileOf returns the tile type represented by a cell color.
func TileOf(c surface.Color) TileType {
	switch c {
	case WallColor:
		return Wall
	case FloorHoleColor:
		return FloorHole
	case CeilingHoleColor:
		return CeilingHole
	default:
		return Path
	}
}

// Cell is a position in the maze grid.
type Cell struct {
	X, Y int
}

// Add returns the cell offset from c by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction is one of the four compass directions. North is towards
// smaller y.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Delta returns the unit step in direction d.
func (d Direction) Delta() Cell {
	switch d {
	case North:
		return Cell{0, -1}
	case East:
		return Cell{1, 0}
	case South:
		return Cell{0, 1}
	default:
		return Cell{-1, 0}
	}
}

// TurnLeft returns the direction a quarter turn counter-clockwise from d.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

// TurnRight returns the direction a quarter turn clockwise from d.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Grid is a maze. The zero value is an empty maze, where every cell is
// a wall.
type Grid struct {
	width, height int
	cells         []surface.Color
}

// New returns a width×height maze. The cell colors are given in row-major
// order and are copied. Missing cells are walls. Negative sizes are
// treated as zero.
func New(width, height int, colors []surface.Color) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]surface.Color, width*height),
	}
	n := copy(g.cells, colors)
	for i := n; i < len(g.cells); i++ {
		g.cells[i] = WallColor
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Color returns the color of cell c. Cells outside the grid have
// [WallColor].
func (g *Grid) Color(c Cell) surface.Color {
	if c.X < 0 || c.Y < 0 || c.X >= g.width || c.Y >= g.height {
		return WallColor
	}
	return g.cells[c.Y*g.width+c.X]
}

// At returns the tile type of cell c. Cells outside the grid are walls.
func (g *Grid) At(c Cell) TileType {
	return TileOf(g.Color(c))
}

// Passable reports whether the player can enter cell c.
func (g *Grid) Passable(c Cell) bool {
	return g.At(c) != Wall
}

// Trace is the visibility information along a corridor. Index 0 is the
// player's cell.
type Trace struct {
	Front []TileType // the tile at each step
	Left  []bool     // whether there is a wall to the left
	Right []bool     // whether there is a wall to the right
}

// Trace walks depth+1 cells from start in direction dir and records the
// tiles met on the way. The slices in t are reused.
func (g *Grid) Trace(t *Trace, start Cell, dir Direction, depth int) {
	t.Front = t.Front[:0]
	t.Left = t.Left[:0]
	t.Right = t.Right[:0]

	d := dir.Delta()
	left := Cell{X: d.Y, Y: -d.X}
	right := Cell{X: -d.Y, Y: d.X}
	cur := start
	for range depth + 1 {
		t.Front = append(t.Front, g.At(cur))
		t.Left = append(t.Left, g.At(cur.Add(left)) == Wall)
		t.Right = append(t.Right, g.At(cur.Add(right)) == Wall)
		cur = cur.Add(d)
	}
}
