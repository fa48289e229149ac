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
	"time"

	"seehuhn.de/go/corridor/surface"
)

// Status is the animation state of a [Display].
type Status int

const (
	// StatusNone means the display is idle and accepts input.
	StatusNone Status = iota

	// StatusNeedsUpdate means a new frame waits to be presented.
	StatusNeedsUpdate

	// StatusTurning means a turn animation is running.
	StatusTurning

	// StatusWalking means a move has been drawn and is presented once
	// the move duration has passed.
	StatusWalking
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusNeedsUpdate:
		return "needs update"
	case StatusTurning:
		return "turning"
	case StatusWalking:
		return "walking"
	default:
		return "unknown"
	}
}

// Display animates the player's turns and moves on a double buffered
// screen.
//
// All methods take the current time, measured from an arbitrary origin.
// The host calls Update once per tick and shows the image returned by
// Visible. A Display is not safe for concurrent use.
type Display struct {
	r  *Renderer
	st *State

	// OnBlocked, if set, is called when the player walks into a wall.
	OnBlocked func()

	restZ        float64
	turnDuration time.Duration
	moveDuration time.Duration

	buf     *surface.DoubleBuffer
	visible *surface.Image
	status  Status

	lastUpdate time.Duration
	nextUpdate time.Duration
	turnX      float64
	turnDelta  float64
}

// NewDisplay returns a display showing st. The first frame is drawn
// immediately and presented by the first call to Update.
func NewDisplay(cfg Config, r *Renderer, st *State) *Display {
	d := &Display{
		r:            r,
		st:           st,
		restZ:        cfg.CameraZ,
		turnDuration: cfg.TurnDuration,
		moveDuration: cfg.MoveDuration,
		buf:          surface.NewDoubleBuffer(cfg.Screen.Width, cfg.Screen.Height),
	}
	d.visible = d.buf.Front()
	d.draw()
	return d
}

// Visible returns the image currently presented.
func (d *Display) Visible() *surface.Image { return d.visible }

// Status returns the animation state.
func (d *Display) Status() Status { return d.status }

// State returns the state shown by the display.
func (d *Display) State() *State { return d.st }

// draw renders the current state off-screen and marks it for presenting.
func (d *Display) draw() {
	d.r.Draw(d.buf.Back(), d.st)
	d.buf.Swap()
	d.status = StatusNeedsUpdate
}

func (d *Display) present(now time.Duration) {
	d.visible = d.buf.Front()
	d.lastUpdate = now
}

// Update advances the animations to time now.
func (d *Display) Update(now time.Duration) {
	switch d.status {
	case StatusNeedsUpdate:
		if d.nextUpdate == 0 || now >= d.nextUpdate {
			d.present(now)
			d.status = StatusNone
		}
	case StatusWalking:
		if now >= d.nextUpdate {
			d.present(now)
			d.status = StatusNone
		}
	case StatusTurning:
		d.turn(now)
		view := d.st.Camera.View
		if d.turnX < float64(view.Top().X) || d.turnX > float64(view.Bottom().X) {
			d.draw()
		}
	}
}

func (d *Display) turn(now time.Duration) {
	view := d.st.Camera.View
	var x float64
	switch {
	case d.turnDuration > 0:
		elapsed := float64(now-d.lastUpdate) / float64(d.turnDuration)
		x = d.turnX + d.turnDelta*float64(view.Width())*elapsed
	case d.turnDelta > 0:
		x = float64(view.Bottom().X + 1)
	default:
		x = float64(view.Top().X - 1)
	}
	d.r.DrawTurn(d.buf.Back(), d.st, x)
	d.turnX = x
	d.buf.Swap()
	d.nextUpdate = 0
	d.present(now)
}

// TurnLeft starts a quarter turn counter-clockwise. The call is ignored
// while an animation is running.
func (d *Display) TurnLeft(now time.Duration) {
	if d.status != StatusNone {
		return
	}
	d.turnDelta = 1
	d.turnX = 0
	d.startTurn(now)
	d.st.Player.Direction = d.st.Player.Direction.TurnLeft()
}

// TurnRight starts a quarter turn clockwise. The call is ignored while
// an animation is running.
func (d *Display) TurnRight(now time.Duration) {
	if d.status != StatusNone {
		return
	}
	d.turnDelta = -1
	d.turnX = float64(d.st.Camera.View.Bottom().X - 1)
	d.startTurn(now)
	d.st.Player.Direction = d.st.Player.Direction.TurnRight()
}

func (d *Display) startTurn(now time.Duration) {
	d.lastUpdate = now
	d.status = StatusTurning
}

// MoveForward steps one cell ahead, if the cell is not a wall. The call
// is ignored while an animation is running.
func (d *Display) MoveForward(now time.Duration) {
	d.move(now, true)
}

// MoveBackward steps one cell back, if the cell is not a wall. The call
// is ignored while an animation is running.
func (d *Display) MoveBackward(now time.Duration) {
	d.move(now, false)
}

func (d *Display) move(now time.Duration, forward bool) {
	if d.status != StatusNone {
		return
	}

	// lean into the direction of the move
	dir := d.st.Player.Direction
	if forward {
		d.st.Camera.Z = 0
	} else {
		d.st.Camera.Z = 1
		dir = dir.Reverse()
	}
	d.draw()
	d.present(now)
	d.st.Camera.Z = d.restZ

	target := d.st.Player.Location.Add(dir.Delta())
	if d.st.Maze.Passable(target) {
		d.st.Player.Location = target
	} else if d.OnBlocked != nil {
		d.OnBlocked()
	}
	d.draw()
	d.status = StatusWalking
	d.nextUpdate = now + d.moveDuration
}

// Zoom moves the camera within the current cell and redraws the view.
func (d *Display) Zoom(z float64) {
	d.st.Camera.Z = z
	d.draw()
}
