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

// DoubleBuffer holds two equally sized images. One of them is presented,
// the other one is drawn into off-screen. Swap exchanges their roles.
//
// A DoubleBuffer is not safe for concurrent use.
type DoubleBuffer struct {
	images [2]*Image
	front  int
}

// NewDoubleBuffer allocates two width×height images.
func NewDoubleBuffer(width, height int) *DoubleBuffer {
	return &DoubleBuffer{
		images: [2]*Image{New(width, height), New(width, height)},
	}
}

// Front returns the presented image.
func (b *DoubleBuffer) Front() *Image { return b.images[b.front] }

// Back returns the off-screen image.
func (b *DoubleBuffer) Back() *Image { return b.images[1-b.front] }

// Swap presents the off-screen image.
func (b *DoubleBuffer) Swap() { b.front = 1 - b.front }
