package corridor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/corridor/flood"
	"seehuhn.de/go/corridor/maze"
	"seehuhn.de/go/corridor/surface"
	"seehuhn.de/go/corridor/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadPaletted(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run go generate")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual, _, err := RenderExample(tc, nil)
				if err != nil {
					t.Fatal(err)
				}

				if err := compareImages(name, ref, actual.Paletted()); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestFillersAgree renders every test case with both fill algorithms.
func TestFillersAgree(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				a, _, err := RenderExample(tc, &flood.Scanline{})
				if err != nil {
					t.Fatal(err)
				}
				b, _, err := RenderExample(tc, flood.WallFollower{})
				if err != nil {
					t.Fatal(err)
				}
				if err := compareImages(name+"_wallfollower", a.Paletted(), b.Paletted()); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func defaultScene(t testing.TB) (*Renderer, *State, *surface.Image) {
	t.Helper()
	cfg := DefaultConfig()
	st := cfg.NewState(maze.Default(), maze.DefaultStart)
	return NewRenderer(cfg), st, surface.New(cfg.Screen.Width, cfg.Screen.Height)
}

func TestDefaultFrame(t *testing.T) {
	r, st, img := defaultScene(t)
	fr := r.Draw(img, st)

	if fr.Depths != 6 {
		t.Errorf("%d depths drawn, want 6", fr.Depths)
	}
	want := []Point{
		{11, 7}, {148, 7},
		{33, 20}, {126, 20},
		{50, 30}, {109, 30},
		{62, 36}, {97, 36},
		{70, 41}, {89, 41},
	}
	if !slices.Equal(fr.Seeds, want) {
		t.Errorf("seeds = %v, want %v", fr.Seeds, want)
	}
	if len(fr.Trace.Front) != 7 || fr.Trace.Front[2] != maze.FloorHole {
		t.Errorf("unexpected trace %v", fr.Trace.Front)
	}
}

func TestWallAhead(t *testing.T) {
	r, st, img := defaultScene(t)
	st.Player.Direction = maze.East

	// outlines only
	r.WallFill = surface.Transparent
	fr := r.Draw(img, st)
	if fr.Depths != 1 {
		t.Fatalf("%d depths drawn, want 1", fr.Depths)
	}
	back, _ := r.Layers(st.Camera.View).At(6)
	if back != (Rect{Point{12, 6}, Point{147, 83}}) {
		t.Fatalf("back plane is %v", back)
	}
	for y := back.Top.Y + 1; y < back.Bottom.Y; y++ {
		for x := back.Top.X + 1; x < back.Bottom.X; x++ {
			if c := img.Pixel(x, y); c != surface.Black {
				t.Fatalf("pixel (%d, %d) inside the front wall is %v", x, y, c)
			}
		}
	}
	for x := back.Top.X; x <= back.Bottom.X; x++ {
		if img.Pixel(x, back.Top.Y) != surface.White || img.Pixel(x, back.Bottom.Y) != surface.White {
			t.Fatalf("front wall outline missing at column %d", x)
		}
	}

	// filled
	r.WallFill = surface.Wine
	fr = r.Draw(img, st)
	wantSeeds := []Point{{13, 7}, {11, 7}, {148, 7}}
	if !slices.Equal(fr.Seeds, wantSeeds) {
		t.Errorf("seeds = %v, want %v", fr.Seeds, wantSeeds)
	}
	counts := map[surface.Color]int{}
	for _, c := range img.Paletted().Pix {
		counts[surface.Color(c)]++
	}
	wantCounts := map[surface.Color]int{
		surface.Black:       1834,
		surface.White:       470,
		surface.Wine:        12096,
		surface.Transparent: 4800,
	}
	if !maps.Equal(counts, wantCounts) {
		t.Errorf("color counts %v, want %v", counts, wantCounts)
	}
}

func TestOpenCorridor(t *testing.T) {
	tc := testcases.TestCase{
		Maze:   "1 0 1\n1 0 1\n1 0 1\n1 0 1\n1 0 1\n1 0 1\n1 0 1\n1 0 1\n",
		Start:  maze.Cell{X: 1, Y: 7},
		Facing: maze.North,
		Z:      0.5,
	}
	g, err := tc.Grid()
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	st := cfg.NewState(g, tc.Start)
	r := NewRenderer(cfg)
	img := surface.New(160, 120)
	fr := r.Draw(img, st)
	if fr.Depths != 7 {
		t.Errorf("%d depths drawn, want 7", fr.Depths)
	}
}

func TestCrop(t *testing.T) {
	views := []testcases.View{
		{X0: 20, Y0: 10, X1: 139, Y1: 79, Depth: 6, Stretch: true, Width: 160, Height: 120},
		{X0: 20, Y0: 10, X1: 139, Y1: 79, Depth: 6, Stretch: false, Width: 160, Height: 120},
		{X0: 100, Y0: 100, X1: 5, Y1: 3, Depth: 4, Stretch: true, Width: 160, Height: 120},
		{X0: 0, Y0: 0, X1: 79, Y1: 119, Depth: 6, Stretch: true, Width: 160, Height: 120},
	}
	for i, v := range views {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			tc := testcases.TestCase{
				Start:  maze.Cell{X: 8, Y: 4},
				Facing: maze.West,
				Z:      0.5,
				View:   v,
			}
			img, st, err := RenderExample(tc, nil)
			if err != nil {
				t.Fatal(err)
			}
			view := st.Camera.View
			inside := 0
			for y := range img.Height() {
				for x := range img.Width() {
					c := img.Pixel(x, y)
					if !view.Contains(Point{x, y}) {
						if c != surface.Transparent {
							t.Fatalf("pixel (%d, %d) outside the viewport is %v", x, y, c)
						}
					} else if c != surface.Transparent {
						inside++
					}
				}
			}
			r := view.Rect()
			if inside != r.Dx()*r.Dy() {
				t.Errorf("%d visible pixels, want %d", inside, r.Dx()*r.Dy())
			}
		})
	}
}

func TestDrawTurn(t *testing.T) {
	r, st, img := defaultScene(t)
	r.DrawTurn(img, st, 40.7)

	back, _ := r.Layers(st.Camera.View).At(6)
	for y := range img.Height() {
		for x := range img.Width() {
			var want surface.Color
			switch {
			case y > 89:
				want = surface.Transparent
			case y == back.Top.Y || y == back.Bottom.Y:
				want = surface.White
			case x == 40 && y > back.Top.Y && y < back.Bottom.Y:
				want = surface.White
			default:
				want = surface.Black
			}
			if got := img.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLayerCache(t *testing.T) {
	r, st, img := defaultScene(t)
	r.Draw(img, st)
	t1 := r.Layers(st.Camera.View)
	r.Draw(img, st)
	if r.Layers(st.Camera.View) != t1 {
		t.Error("layer table rebuilt for an unchanged viewport")
	}

	st.Camera.View = NewViewport(Point{10, 10}, Point{149, 79}, 6, true, DefaultScreen)
	r.Draw(img, st)
	t2 := r.Layers(st.Camera.View)
	if t2 == t1 {
		t.Error("layer table not rebuilt for a new viewport")
	}
	if t2.View() != st.Camera.View {
		t.Error("layer table belongs to the wrong viewport")
	}
}

func loadPaletted(path string) (*image.Paletted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	res := image.NewPaletted(image.Rect(0, 0, bounds.Dx(), bounds.Dy()), surface.Palette)
	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			c := img.At(x+bounds.Min.X, y+bounds.Min.Y)
			res.SetColorIndex(x, y, uint8(surface.Palette.Index(c)))
		}
	}
	return res, nil
}

func compareImages(name string, expected, actual *image.Paletted) error {
	if expected.Rect.Size() != actual.Rect.Size() {
		return fmt.Errorf("size %v, want %v", actual.Rect.Size(), expected.Rect.Size())
	}

	diffCount := 0
	for i := range expected.Pix {
		if expected.Pix[i] != actual.Pix[i] {
			diffCount++
		}
	}
	if diffCount > 0 {
		writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d pixels differ", diffCount)
	}
	return nil
}

// writeDiffImage stores the actual image, with differing pixels
// highlighted, in the debug directory.
func writeDiffImage(name string, expected, actual *image.Paletted) {
	os.MkdirAll("debug", 0755)

	w, h := actual.Rect.Dx(), actual.Rect.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*actual.Stride + x
			c := surface.Color(actual.Pix[i]).Value()
			if expected.Pix[y*expected.Stride+x] != actual.Pix[i] {
				c = color.RGBA{R: 255, G: 0, B: 255, A: 255} // differences in magenta
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
