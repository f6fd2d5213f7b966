package pixelfilter

import "testing"

func TestDilation(t *testing.T) {
	src := newUniformBuffer(t, 3, 3, Black)
	src.set(1, 1, RGB{10, 20, 30})
	dst := applyTest(t, Dilation{}, src)

	want := [3][3]uint8{
		{0, 60, 0},
		{60, 60, 60},
		{0, 60, 0},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := dst.At(x, y); got != gray(want[y][x]) {
				t.Errorf("At(%d, %d) = %v, want %d", x, y, got, want[y][x])
			}
		}
	}
}

func TestDilationSaturates(t *testing.T) {
	src := newUniformBuffer(t, 2, 2, RGB{200, 200, 200})
	for i, p := range applyTest(t, Dilation{}, src).Pixels() {
		if p != (RGB{255, 255, 255}) {
			t.Errorf("pixel %d = %v, want white", i, p)
		}
	}
}

func TestErosionUsesDiagonalNeighbors(t *testing.T) {
	src := newUniformBuffer(t, 3, 3, RGB{200, 200, 200})
	src.set(0, 0, RGB{10, 20, 30})
	dst := applyTest(t, Erosion{}, src)

	if got := dst.At(1, 1); got != (RGB{10, 20, 30}) {
		t.Errorf("center = %v, want {10 20 30}", got)
	}
	// (1, 0) and (0, 1) are orthogonal to the dark corner, which is inside the element.
	for _, p := range [][2]int{{1, 0}, {0, 1}, {0, 0}, {2, 2}} {
		if got := dst.At(p[0], p[1]); got != (RGB{200, 200, 200}) {
			t.Errorf("At(%d, %d) = %v, want {200 200 200}", p[0], p[1], got)
		}
	}
}

func TestMorphologySkipsOutsidePixels(t *testing.T) {
	src := newTestBuffer(t, 1, 1, RGB{10, 20, 30})

	if got := applyTest(t, Dilation{}, src).At(0, 0); got != (RGB{60, 60, 60}) {
		t.Errorf("dilation = %v, want {60 60 60}", got)
	}
	// A single pixel has no diagonal neighbor inside the image.
	if got := applyTest(t, Erosion{}, src).At(0, 0); got != (RGB{10, 20, 30}) {
		t.Errorf("erosion = %v, want {10 20 30}", got)
	}
}
