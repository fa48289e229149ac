package corridor

import (
	"testing"

	"seehuhn.de/go/corridor/surface"
)

func TestDrawWireframe(t *testing.T) {
	cam := testCamera(1)
	box := Box(Rect{Point{60, 40}, Point{100, 80}}, 1, 2)
	if len(box.Vertices) != 8 || len(box.Edges) != 12 {
		t.Fatalf("box has %d vertices and %d edges", len(box.Vertices), len(box.Edges))
	}

	img := surface.New(160, 120)
	DrawWireframe(img, cam, box, surface.White)

	// front face at z = 1 is drawn unscaled
	for x := 60; x <= 100; x++ {
		if img.Pixel(x, 40) != surface.White || img.Pixel(x, 80) != surface.White {
			t.Fatalf("front face edge missing at column %d", x)
		}
	}
	// back face at z = 2 is half the size
	for x := 70; x <= 90; x++ {
		if img.Pixel(x, 50) != surface.White {
			t.Fatalf("back face edge missing at column %d", x)
		}
	}
	if img.Pixel(80, 60) != surface.Transparent {
		t.Error("center of the box was drawn")
	}
}

func TestWireframeBadEdge(t *testing.T) {
	wf := &Wireframe{
		Vertices: []Point3d{{10, 10, 1}, {20, 10, 1}},
		Edges:    []Edge{{0, 1}, {0, 2}, {-1, 1}},
	}
	img := surface.New(160, 120)
	DrawWireframe(img, testCamera(1), wf, surface.Red)
	if n := countColor(img, surface.Red); n != 11 {
		t.Errorf("%d pixels drawn, want 11", n)
	}
}

func TestWireframeRotate(t *testing.T) {
	box := Box(Rect{Point{60, 40}, Point{100, 80}}, 1, 2)
	rot := box.Rotate(90, AxisZ, DefaultScreen)
	if &rot.Vertices[0] == &box.Vertices[0] {
		t.Fatal("vertices are shared")
	}
	for i, v := range box.Vertices {
		want := v.Rotate(90, AxisZ, DefaultScreen)
		if !near3(rot.Vertices[i], want) {
			t.Errorf("vertex %d: %v, want %v", i, rot.Vertices[i], want)
		}
	}
}
