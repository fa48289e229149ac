package corridor

import (
	"slices"
	"testing"
	"time"

	"seehuhn.de/go/corridor/maze"
	"seehuhn.de/go/corridor/surface"
)

const ms = time.Millisecond

func newTestDisplay(t *testing.T) (*Display, *int) {
	t.Helper()
	cfg := DefaultConfig()
	st := cfg.NewState(maze.Default(), maze.DefaultStart)
	d := NewDisplay(cfg, NewRenderer(cfg), st)
	bumps := 0
	d.OnBlocked = func() { bumps++ }
	if d.Status() != StatusNeedsUpdate {
		t.Fatalf("new display has status %v", d.Status())
	}
	d.Update(0)
	if d.Status() != StatusNone {
		t.Fatalf("first update left status %v", d.Status())
	}
	return d, &bumps
}

// render draws st from scratch, for comparison with the display.
func render(st State) *surface.Image {
	cfg := DefaultConfig()
	img := surface.New(cfg.Screen.Width, cfg.Screen.Height)
	NewRenderer(cfg).Draw(img, &st)
	return img
}

func sameImage(a, b *surface.Image) bool {
	return slices.Equal(a.Paletted().Pix, b.Paletted().Pix)
}

func TestDisplayFirstFrame(t *testing.T) {
	d, _ := newTestDisplay(t)
	if !sameImage(d.Visible(), render(*d.State())) {
		t.Error("first frame differs from the rendered view")
	}
}

func TestDisplayTurnLeft(t *testing.T) {
	d, _ := newTestDisplay(t)
	start := 1000 * ms

	d.TurnLeft(start)
	if d.Status() != StatusTurning {
		t.Fatalf("status %v, want turning", d.Status())
	}
	if d.State().Player.Direction != maze.West {
		t.Errorf("direction %v, want W", d.State().Player.Direction)
	}

	// input is ignored while turning
	d.TurnRight(start + 10*ms)
	d.MoveForward(start + 10*ms)
	if d.State().Player.Direction != maze.West || d.State().Player.Location != maze.DefaultStart {
		t.Error("input was accepted during the turn")
	}

	// half way: the sweep line is in the middle of the viewport
	d.Update(start + 375*ms)
	if d.Status() != StatusTurning {
		t.Fatalf("status %v, want turning", d.Status())
	}
	back, _ := NewLayerTable(d.State().Camera.View, 4).At(6)
	if d.Visible().Pixel(80, (back.Top.Y+back.Bottom.Y)/2) != surface.White {
		t.Error("sweep line not at column 80")
	}

	// the sweep leaves the viewport and the new view is drawn
	d.Update(start + 750*ms)
	if d.Status() != StatusNeedsUpdate {
		t.Fatalf("status %v, want needs update", d.Status())
	}
	d.Update(start + 760*ms)
	if d.Status() != StatusNone {
		t.Fatalf("status %v, want none", d.Status())
	}
	if !sameImage(d.Visible(), render(*d.State())) {
		t.Error("final frame differs from the rendered view")
	}
}

func TestDisplayTurnRight(t *testing.T) {
	d, _ := newTestDisplay(t)
	now := time.Duration(0)
	for _, want := range []maze.Direction{maze.East, maze.South, maze.West, maze.North} {
		d.TurnRight(now)
		if d.State().Player.Direction != want {
			t.Errorf("direction %v, want %v", d.State().Player.Direction, want)
		}
		for d.Status() != StatusNone {
			now += 16 * ms
			d.Update(now)
			if now > 10*time.Second {
				t.Fatal("turn does not finish")
			}
		}
	}
}

func TestDisplayMove(t *testing.T) {
	d, bumps := newTestDisplay(t)
	start := 2000 * ms

	lean := *d.State()
	lean.Camera.Z = 0
	leanImg := render(lean)

	d.MoveForward(start)
	if !sameImage(d.Visible(), leanImg) {
		t.Error("lean frame is not shown")
	}
	if d.State().Camera.Z != 0.5 {
		t.Errorf("camera at %g after the move, want 0.5", d.State().Camera.Z)
	}
	if got, want := d.State().Player.Location, (maze.Cell{X: 2, Y: 5}); got != want {
		t.Errorf("location %v, want %v", got, want)
	}
	if *bumps != 0 {
		t.Error("free move reported as blocked")
	}

	d.Update(start + 500*ms)
	if !sameImage(d.Visible(), leanImg) {
		t.Error("new view shown too early")
	}
	d.Update(start + 1000*ms)
	if d.Status() != StatusNone {
		t.Fatalf("status %v, want none", d.Status())
	}
	if !sameImage(d.Visible(), render(*d.State())) {
		t.Error("view after the move differs from the rendered view")
	}

	// back to the start
	d.MoveBackward(start + 2000*ms)
	d.Update(start + 3000*ms)
	if d.State().Player.Location != maze.DefaultStart {
		t.Errorf("location %v after moving back", d.State().Player.Location)
	}
	if d.State().Player.Direction != maze.North {
		t.Error("moving back changed the direction")
	}
}

func TestDisplayBump(t *testing.T) {
	d, bumps := newTestDisplay(t)
	d.State().Player.Direction = maze.East // (3, 6) is a wall

	d.MoveForward(100 * ms)
	if d.State().Player.Location != maze.DefaultStart {
		t.Errorf("walked into a wall, now at %v", d.State().Player.Location)
	}
	if *bumps != 1 {
		t.Errorf("%d bumps, want 1", *bumps)
	}
	if d.Status() != StatusWalking {
		t.Errorf("status %v, want walking", d.Status())
	}
	d.Update(1100 * ms)

	// (2, 7) behind is a wall as well
	d.State().Player.Direction = maze.North
	d.MoveBackward(2000 * ms)
	if *bumps != 2 || d.State().Player.Location != maze.DefaultStart {
		t.Errorf("%d bumps at %v, want 2 at start", *bumps, d.State().Player.Location)
	}
}

func TestDisplayZoom(t *testing.T) {
	d, _ := newTestDisplay(t)
	d.Zoom(1)
	if d.Status() != StatusNeedsUpdate {
		t.Fatalf("status %v, want needs update", d.Status())
	}
	d.Update(5 * ms)
	want := *d.State()
	if want.Camera.Z != 1 {
		t.Fatalf("camera at %g, want 1", want.Camera.Z)
	}
	if !sameImage(d.Visible(), render(want)) {
		t.Error("zoomed frame differs from the rendered view")
	}
}

func TestDisplayInstantTurn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TurnDuration = 0
	for _, left := range []bool{true, false} {
		st := cfg.NewState(maze.Default(), maze.DefaultStart)
		d := NewDisplay(cfg, NewRenderer(cfg), st)
		d.Update(0)

		if left {
			d.TurnLeft(10 * ms)
		} else {
			d.TurnRight(10 * ms)
		}
		d.Update(10 * ms)
		if d.Status() != StatusNeedsUpdate {
			t.Fatalf("left=%t: status %v after one tick, want needs update", left, d.Status())
		}
		d.Update(20 * ms)
		if d.Status() != StatusNone {
			t.Fatalf("left=%t: status %v, want none", left, d.Status())
		}
		if !sameImage(d.Visible(), render(*d.State())) {
			t.Errorf("left=%t: final frame differs from the rendered view", left)
		}
	}
}
