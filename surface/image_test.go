package surface

import "testing"

func TestPixelOutside(t *testing.T) {
	img := New(4, 3)
	img.Fill(Black)

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}, {-5, -5}}
	for _, p := range outside {
		if c := img.Pixel(p[0], p[1]); c != Outside {
			t.Errorf("Pixel(%d, %d) = %v, want outside", p[0], p[1], c)
		}
		img.SetPixel(p[0], p[1], Red) // must not panic
	}
	for c := range Color(NumColors) {
		if c == Outside {
			t.Fatalf("palette color %d collides with Outside", c)
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	cases := []struct {
		x0, y0, x1, y1 int
		n              int // expected number of pixels
	}{
		{0, 0, 9, 0, 10},
		{9, 0, 0, 0, 10},
		{3, 0, 3, 7, 8},
		{3, 7, 3, 0, 8},
		{0, 0, 7, 7, 8},
		{7, 0, 0, 7, 8},
		{0, 0, 9, 3, 10},
		{2, 9, 0, 0, 10},
		{5, 5, 5, 5, 1},
	}
	for _, tc := range cases {
		img := New(10, 10)
		img.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, White)
		if img.Pixel(tc.x0, tc.y0) != White || img.Pixel(tc.x1, tc.y1) != White {
			t.Errorf("line %v: endpoints not drawn", tc)
		}
		if got := count(img, White); got != tc.n {
			t.Errorf("line %v: %d pixels, want %d", tc, got, tc.n)
		}
	}
}

func TestDrawLineClipped(t *testing.T) {
	img := New(10, 10)
	img.DrawLine(-20, 5, 30, 5, White)
	if got := count(img, White); got != 10 {
		t.Errorf("clipped line has %d pixels, want 10", got)
	}
}

func TestDrawRect(t *testing.T) {
	img := New(10, 10)
	img.DrawRect(2, 3, 5, 4, White)
	if got := count(img, White); got != 2*5+2*2 {
		t.Errorf("outline has %d pixels, want %d", got, 2*5+2*2)
	}
	if img.Pixel(3, 4) != Transparent {
		t.Error("interior was drawn")
	}

	img = New(10, 10)
	img.DrawRect(2, 3, 0, 4, White)
	img.DrawRect(2, 3, 4, -1, White)
	if got := count(img, White); got != 0 {
		t.Errorf("empty rectangles drew %d pixels", got)
	}
}

func TestFillRect(t *testing.T) {
	img := New(10, 10)
	img.FillRect(-3, 8, 5, 10, Wine)
	if got := count(img, Wine); got != 2*2 {
		t.Errorf("clipped fill has %d pixels, want 4", got)
	}
}

func TestDoubleBuffer(t *testing.T) {
	b := NewDoubleBuffer(2, 2)
	front, back := b.Front(), b.Back()
	if front == back {
		t.Fatal("front and back share an image")
	}
	back.Fill(Red)
	b.Swap()
	if b.Front() != back || b.Front().Pixel(0, 0) != Red {
		t.Error("swap did not present the drawn image")
	}
	if b.Back() != front {
		t.Error("swap did not recycle the old front image")
	}
}

func count(img *Image, c Color) int {
	n := 0
	for y := range img.Height() {
		for x := range img.Width() {
			if img.Pixel(x, y) == c {
				n++
			}
		}
	}
	return n
}
