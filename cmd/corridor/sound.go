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

package main

import (
	"encoding/binary"
	"math"
)

const (
	bumpLength    = 0.6   // seconds
	bumpHigh      = 440.0 // Hz
	bumpLow       = 110.0 // Hz
	bumpWobbles   = 4
	bumpAmplitude = 0.3
)

// bumpSound returns the sound played when the player walks into a wall:
// a square wave sliding down in pitch, with a few wobbles on the way.
// The result is 16 bit little-endian stereo PCM at the given rate.
func bumpSound(rate int) []byte {
	n := int(bumpLength * float64(rate))
	buf := make([]byte, 4*n)

	phase := 0.0
	for i := range n {
		t := float64(i) / float64(n)

		freq := bumpHigh * math.Pow(bumpLow/bumpHigh, t)
		freq *= 1 + 0.15*math.Sin(2*math.Pi*bumpWobbles*t)
		phase += freq / float64(rate)
		phase -= math.Floor(phase)

		v := bumpAmplitude * (1 - t)
		if phase >= 0.5 {
			v = -v
		}
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], s)
		binary.LittleEndian.PutUint16(buf[4*i+2:], s)
	}
	return buf
}
