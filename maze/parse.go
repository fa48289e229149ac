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

package maze

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/corridor/surface"
)

var (
	ErrEmpty  = errors.New("maze has no rows")
	ErrRagged = errors.New("rows have different lengths")
	ErrColor  = errors.New("invalid cell color")
)

// defaultMaze is the built-in 10×8 maze.
const defaultMaze = `
1 1 1 1 1 1 1 1 1 1
1 f f 1 f f f f 1 1
1 1 f f f 1 1 f f 1
1 1 f 1 f 1 1 1 f 1
1 f e f f c f f f 1
1 1 f 1 1 f 1 1 f 1
1 f 7 1 1 f f f f 1
1 1 1 1 1 1 1 1 1 1
`

// Default returns the built-in maze. The player starts at (2, 6).
func Default() *Grid {
	g, err := Parse(defaultMaze)
	if err != nil {
		panic(err)
	}
	return g
}

// DefaultStart is the start cell in the built-in maze.
var DefaultStart = Cell{X: 2, Y: 6}

// Parse reads a maze given as rows of whitespace separated hexadecimal
// palette indices, one row per line. Blank lines are ignored.
func Parse(text string) (*Grid, error) {
	var colors []surface.Color
	width, height := 0, 0
	for i, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if height == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("line %d: %d cells instead of %d: %w",
				i+1, len(fields), width, ErrRagged)
		}
		for _, f := range fields {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil || v >= surface.NumColors {
				return nil, fmt.Errorf("line %d: %q: %w", i+1, f, ErrColor)
			}
			colors = append(colors, surface.Color(v))
		}
		height++
	}
	if height == 0 {
		return nil, ErrEmpty
	}
	return New(width, height, colors), nil
}

// Load reads a maze file in the format accepted by [Parse].
func Load(fname string) (*Grid, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return g, nil
}

// String formats g in the format accepted by [Parse].
func (g *Grid) String() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatUint(uint64(g.cells[y*g.width+x]), 16))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
