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

// Command corridor lets you walk through a maze in a window.
//
// The arrow keys turn and move the player. Z moves the camera to the
// back of the cell, X returns it to the resting position given by -z.
// Tab logs the scale factors of the depth layers.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"

	"seehuhn.de/go/corridor"
	"seehuhn.de/go/corridor/flood"
	"seehuhn.de/go/corridor/hud"
	"seehuhn.de/go/corridor/maze"
	"seehuhn.de/go/corridor/surface"
)

const sampleRate = 44100

func main() {
	var (
		scale  = flag.Int("scale", 4, "Window size as a multiple of the screen size.")
		filler = flag.String("filler", "scanline", fillerUsage())
		mazeFn = flag.String("maze", "", "Maze file; the built-in maze is used if empty.")
		z      = flag.Float64("z", 0.5, "Resting camera position within a cell, between 0 and 1.")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *scale, *filler, *mazeFn, *z); err != nil {
		logger.Error("corridor failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, scale int, fillerName, mazeFn string, z float64) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	if z < 0 || z > 1 {
		return fmt.Errorf("camera position %g outside [0, 1]", z)
	}

	f, err := flood.ByName(fillerName)
	if err != nil {
		return err
	}

	g := maze.Default()
	start := maze.DefaultStart
	if mazeFn != "" {
		g, err = maze.Load(mazeFn)
		if err != nil {
			return err
		}
		start, err = firstPath(g)
		if err != nil {
			return fmt.Errorf("%s: %w", mazeFn, err)
		}
	}

	cfg := corridor.DefaultConfig()
	cfg.CameraZ = z
	r := corridor.NewRenderer(cfg)
	r.Filler = f

	game := newGame(cfg, r, cfg.NewState(g, start), logger)
	logger.Info("starting",
		"filler", fillerName,
		"maze", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"start", fmt.Sprintf("(%d,%d)", start.X, start.Y))

	ebiten.SetWindowTitle("corridor")
	ebiten.SetWindowSize(cfg.Screen.Width*scale, cfg.Screen.Height*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(game)
}

func fillerUsage() string {
	return "Flood fill algorithm: " + strings.Join(flood.Names, "|") + "."
}

// firstPath returns the first passable cell in reading order.
func firstPath(g *maze.Grid) (maze.Cell, error) {
	for y := range g.Height() {
		for x := range g.Width() {
			c := maze.Cell{X: x, Y: y}
			if g.Passable(c) {
				return c, nil
			}
		}
	}
	return maze.Cell{}, fmt.Errorf("maze has no path cells")
}

type game struct {
	cfg    corridor.Config
	r      *corridor.Renderer
	d      *corridor.Display
	logger *slog.Logger

	start time.Time
	bump  *audio.Player

	rgba  *image.RGBA
	frame *ebiten.Image
	band  image.Rectangle
}

func newGame(cfg corridor.Config, r *corridor.Renderer, st *corridor.State, logger *slog.Logger) *game {
	w, h := cfg.Screen.Width, cfg.Screen.Height

	// the status line goes below the viewport, or on top if there is
	// no room
	band := image.Rect(0, cfg.Viewport().Bottom().Y+1, w, h)
	if band.Dy() < 13 {
		band = image.Rect(0, 0, w, 13)
	}

	g := &game{
		cfg:    cfg,
		r:      r,
		d:      corridor.NewDisplay(cfg, r, st),
		logger: logger,
		start:  time.Now(),
		rgba:   image.NewRGBA(image.Rect(0, 0, w, h)),
		frame:  ebiten.NewImage(w, h),
		band:   band,
	}

	ctx := audio.NewContext(sampleRate)
	g.bump = ctx.NewPlayerFromBytes(bumpSound(sampleRate))
	g.bump.SetVolume(0.5)
	g.d.OnBlocked = g.playBump

	return g
}

func (g *game) playBump() {
	if g.bump.IsPlaying() {
		return
	}
	if err := g.bump.Rewind(); err != nil {
		g.logger.Warn("cannot rewind sound", "error", err)
		return
	}
	g.bump.Play()
}

func (g *game) Update() error {
	now := time.Since(g.start)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.d.TurnLeft(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.d.TurnRight(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.d.MoveForward(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.d.MoveBackward(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.d.Zoom(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.d.Zoom(g.cfg.CameraZ)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.logScaleFactors()
	}

	g.d.Update(now)
	return nil
}

func (g *game) logScaleFactors() {
	view := g.d.State().Camera.View
	sf := g.r.Layers(view).ScaleFactors()
	parts := make([]string, len(sf))
	for i, s := range sf {
		parts[i] = fmt.Sprintf("%d=%g", i, math.Round(s*1e4)/1e4)
	}
	g.logger.Info("scale factors", "layers", len(sf), "factors", strings.Join(parts, " "))
}

func (g *game) Draw(screen *ebiten.Image) {
	bg := image.NewUniform(surface.White.Value())
	draw.Draw(g.rgba, g.rgba.Bounds(), bg, image.Point{}, draw.Src)

	pal := g.d.Visible().Paletted()
	draw.Draw(g.rgba, pal.Bounds(), pal, image.Point{}, draw.Over)

	draw.Draw(g.rgba, g.band, image.NewUniform(surface.Black.Value()), image.Point{}, draw.Src)
	hud.Draw(g.rgba, g.band, hud.Label(g.d.State().Player), surface.White.Value())

	g.frame.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
