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

// Package corridor draws a first-person view of a grid maze on a small
// palette-indexed screen.
//
// The view is not a true 3D projection. Every maze cell ahead of the
// player is drawn between two nested rectangles taken from a table of
// depth layers, whose sizes follow a fitted polynomial. Side walls connect
// the corners of neighbouring layers, and the enclosed wall areas are
// painted with a flood fill.
package corridor

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref

import (
	"time"

	"seehuhn.de/go/corridor/flood"
	"seehuhn.de/go/corridor/maze"
	"seehuhn.de/go/corridor/surface"
)

// Canvas is a drawing target for the renderer.
// [*surface.Image] implements this interface.
type Canvas interface {
	flood.Surface
	Fill(c surface.Color)
	FillRect(x, y, w, h int, c surface.Color)
	DrawRect(x, y, w, h int, c surface.Color)
	DrawLine(x0, y0, x1, y1 int, c surface.Color)
}

// Config collects the parameters of the renderer and of the animations.
type Config struct {
	Screen Size

	// ViewTop and ViewBottom are opposite corners of the viewport.
	ViewTop, ViewBottom Point

	// Depth is the number of cells visible ahead of the player.
	Depth int

	// Stretch fits the depth layers to the viewport instead of the screen.
	Stretch bool

	LayersPerUnit int

	// CameraZ is the resting camera position, between 0 and 1.
	CameraZ float64

	Background surface.Color
	WallColor  surface.Color

	// WallFill is used to paint wall areas. If this is
	// [surface.Transparent], walls are only outlined.
	WallFill surface.Color

	// TurnDuration is the length of the turn animation. If it is not
	// positive, turns complete on the next update.
	TurnDuration time.Duration
	MoveDuration time.Duration
}

// DefaultConfig returns the configuration of the handheld game.
func DefaultConfig() Config {
	return Config{
		Screen:        DefaultScreen,
		ViewTop:       Point{0, 0},
		ViewBottom:    Point{159, 89},
		Depth:         6,
		Stretch:       true,
		LayersPerUnit: 4,
		CameraZ:       0.5,
		Background:    surface.Black,
		WallColor:     surface.White,
		WallFill:      surface.Wine,
		TurnDuration:  750 * time.Millisecond,
		MoveDuration:  1000 * time.Millisecond,
	}
}

// Viewport returns the viewport described by cfg.
func (cfg Config) Viewport() Viewport {
	return NewViewport(cfg.ViewTop, cfg.ViewBottom, cfg.Depth, cfg.Stretch, cfg.Screen)
}

// Camera gives the view position within the current cell.
// Z = 0 leans towards the cell ahead, Z = 1 leans back.
type Camera struct {
	Z    float64
	View Viewport
}

// Player is the position and heading of the player in the maze.
type Player struct {
	Direction maze.Direction
	Location  maze.Cell
}

// State is everything a frame depends on.
type State struct {
	Camera Camera
	Player Player
	Maze   *maze.Grid
}

// NewState places a player facing north on cell start of m.
func (cfg Config) NewState(m *maze.Grid, start maze.Cell) *State {
	return &State{
		Camera: Camera{Z: cfg.CameraZ, View: cfg.Viewport()},
		Player: Player{Direction: maze.North, Location: start},
		Maze:   m,
	}
}

// Frame summarizes a call to [Renderer.Draw]. The slices are owned by
// the renderer and are only valid until the next call.
type Frame struct {
	Depths int         // number of cells drawn
	Seeds  []Point     // flood fill seeds, in fill order
	Trace  *maze.Trace // what was visible along the corridor
}

// Renderer draws corridor views.
//
// A Renderer reuses its internal buffers between calls and is not safe
// for concurrent use.
type Renderer struct {
	// Filler paints the wall areas. If this is nil, walls are only
	// outlined.
	Filler flood.Filler

	LayersPerUnit int

	Background surface.Color
	WallColor  surface.Color
	WallFill   surface.Color

	layers *LayerTable
	trace  maze.Trace
	seeds  []Point
}

// NewRenderer returns a renderer using the colors of cfg and a scanline
// flood fill.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		Filler:        &flood.Scanline{},
		LayersPerUnit: cfg.LayersPerUnit,
		Background:    cfg.Background,
		WallColor:     cfg.WallColor,
		WallFill:      cfg.WallFill,
	}
}

// Layers returns the depth layers for view. The table is cached and only
// rebuilt when the viewport changes.
func (r *Renderer) Layers(view Viewport) *LayerTable {
	if r.layers == nil || r.layers.View() != view || r.layers.LayersPerUnit() != r.LayersPerUnit {
		r.layers = NewLayerTable(view, r.LayersPerUnit)
	}
	return r.layers
}

// plane returns layer i, or the degenerate rectangle at the viewport
// center if i is out of range.
func plane(layers *LayerTable, i int) Rect {
	if rc, ok := layers.At(i); ok {
		return rc
	}
	c := layers.View().Center()
	return Rect{Top: c, Bottom: c}
}

// planeRef returns layer i, or nil if i is out of range.
func planeRef(layers *LayerTable, i int) *Rect {
	rc, ok := layers.At(i)
	if !ok {
		return nil
	}
	return &rc
}

// Draw renders the view of the player in st onto c.
func (r *Renderer) Draw(c Canvas, st *State) Frame {
	view := st.Camera.View
	layers := r.Layers(view)
	lpu := layers.LayersPerUnit()
	col := r.WallColor

	c.Fill(r.Background)
	st.Maze.Trace(&r.trace, st.Player.Location, st.Player.Direction, view.Depth())
	tr := &r.trace
	r.seeds = r.seeds[:0]

	depths := 0
	for i := 0; i <= view.Depth(); i++ {
		frontIdx := round((st.Camera.Z+float64(i)-1)*float64(lpu)) + lpu
		backIdx := frontIdx + lpu
		front := plane(layers, frontIdx)
		back := plane(layers, backIdx)
		depths++

		blocked := i+1 < len(tr.Front) && tr.Front[i+1] == maze.Wall
		if blocked {
			c.DrawRect(back.Top.X, back.Top.Y, back.Dx(), back.Dy(), col)
			if back.Dx() > 1 && back.Dy() > 1 {
				r.seeds = append(r.seeds, Point{back.Top.X + 1, back.Top.Y + 1})
			}
		}

		switch tr.Front[i] {
		case maze.CeilingHole:
			h := NewHole(planeRef(layers, backIdx-1), planeRef(layers, frontIdx+1))
			h.DrawCeilingHole(c, col)
		case maze.FloorHole:
			h := NewHole(planeRef(layers, backIdx-1), planeRef(layers, frontIdx+1))
			h.DrawFloorHole(c, col)
		}

		r.drawSide(c, i, tr.Left[i], front.Top.X, back.Top.X, front, back)
		r.drawSide(c, i, tr.Right[i], front.Bottom.X, back.Bottom.X, front, back)

		if back.Top.X-front.Top.X > 1 && back.Bottom.Y-back.Top.Y > 1 {
			r.seeds = append(r.seeds,
				Point{back.Top.X - 1, back.Top.Y + 1},
				Point{back.Bottom.X + 1, back.Top.Y + 1})
		}

		if blocked {
			break
		}
	}

	if r.WallFill != surface.Transparent && r.Filler != nil {
		for _, p := range r.seeds {
			r.Filler.Fill(c, p.X, p.Y, r.WallFill)
		}
	}

	crop(c, view)

	return Frame{
		Depths: depths,
		Seeds:  r.seeds,
		Trace:  tr,
	}
}

// drawSide draws the left or right side of one cell. The side lies
// between column fx on the front plane and column bx on the back plane.
func (r *Renderer) drawSide(c Canvas, i int, wall bool, fx, bx int, front, back Rect) {
	col := r.WallColor
	if wall {
		if i > 0 {
			c.DrawLine(fx, front.Top.Y, fx, front.Bottom.Y, col)
		}
		c.DrawLine(fx, front.Top.Y, bx, back.Top.Y, col)
		c.DrawLine(fx, front.Bottom.Y, bx, back.Bottom.Y, col)
		c.DrawLine(bx, back.Top.Y, bx, back.Bottom.Y, col)
	} else {
		// the edges of the side passage
		c.DrawLine(bx, back.Top.Y, fx, back.Top.Y, col)
		c.DrawLine(bx, back.Bottom.Y, fx, back.Bottom.Y, col)
	}
}

// crop clears everything outside the viewport.
func crop(c Canvas, view Viewport) {
	w, h := c.Width(), c.Height()
	top, bottom := view.Top(), view.Bottom()
	rows := bottom.Y - top.Y + 1
	c.FillRect(0, 0, w, top.Y, surface.Transparent)
	c.FillRect(0, bottom.Y+1, w, h-bottom.Y-1, surface.Transparent)
	c.FillRect(0, top.Y, top.X, rows, surface.Transparent)
	c.FillRect(bottom.X+1, top.Y, w-bottom.X-1, rows, surface.Transparent)
}

// DrawTurn renders one frame of the turn animation: the floor and ceiling
// lines of the current cell, and a vertical edge at column x sweeping
// across the viewport.
func (r *Renderer) DrawTurn(c Canvas, st *State, x float64) {
	view := st.Camera.View
	layers := r.Layers(view)
	lpu := layers.LayersPerUnit()
	top, bottom := view.Top(), view.Bottom()
	col := r.WallColor

	c.Fill(surface.Transparent)
	c.FillRect(top.X, top.Y, bottom.X-top.X+1, bottom.Y-top.Y+1, r.Background)

	back := plane(layers, round(st.Camera.Z*float64(lpu))+lpu)
	c.DrawLine(top.X, back.Top.Y, bottom.X, back.Top.Y, col)
	c.DrawLine(top.X, back.Bottom.Y, bottom.X, back.Bottom.Y, col)
	xi := int(x)
	c.DrawLine(xi, back.Top.Y+1, xi, back.Bottom.Y-1, col)
}
