package pixelfilter

import (
	"context"
	"testing"
)

func applyTest(t *testing.T, f Filter, src *Buffer) *Buffer {
	t.Helper()
	dst, err := Apply(context.Background(), f, src)
	if err != nil {
		t.Fatalf("Apply(%s) error = %v", filterName(f), err)
	}
	return dst
}

func assertPixels(t *testing.T, got *Buffer, want ...RGB) {
	t.Helper()
	pix := got.Pixels()
	if len(pix) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(pix), len(want))
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, pix[i], want[i])
		}
	}
}

func TestInvertScenario(t *testing.T) {
	black, white := RGB{0, 0, 0}, RGB{255, 255, 255}
	src := newTestBuffer(t, 2, 2, black, white, black, white)

	assertPixels(t, applyTest(t, Invert{}, src), white, black, white, black)
}

func TestInvertIsInvolutive(t *testing.T) {
	src := randomBuffer(42, 13, 7)
	twice := applyTest(t, Invert{}, applyTest(t, Invert{}, src))

	if !twice.Equal(src) {
		t.Error("invert(invert(I)) != I")
	}
}

func TestBrightness(t *testing.T) {
	src := newTestBuffer(t, 2, 1, RGB{250, 10, 0}, RGB{100, 235, 236})

	assertPixels(t, applyTest(t, Brightness{K: DefaultBrightness}, src),
		RGB{255, 30, 20}, RGB{120, 255, 255})
}

func TestGrayscaleScenario(t *testing.T) {
	red := RGB{255, 0, 0}
	src := newTestBuffer(t, 1, 3, red, red, red)

	gray := RGB{76, 76, 76}
	assertPixels(t, applyTest(t, Grayscale{}, src), gray, gray, gray)
}

func TestLuma(t *testing.T) {
	tests := []struct {
		in   RGB
		want uint8
	}{
		{RGB{0, 0, 0}, 0},
		{RGB{255, 255, 255}, 255},
		{RGB{0, 255, 0}, 150},
		{RGB{0, 0, 255}, 29},
		{RGB{100, 100, 100}, 100},
	}
	for _, tt := range tests {
		if got := Luma(tt.in); got != tt.want {
			t.Errorf("Luma(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRightShiftScenario(t *testing.T) {
	a, b, c, d := RGB{10, 0, 0}, RGB{0, 20, 0}, RGB{0, 0, 30}, RGB{40, 40, 40}
	src := newTestBuffer(t, 4, 1, a, b, c, d)

	assertPixels(t, applyTest(t, RightShift{K: 2}, src), Black, Black, a, b)
}

func TestRightShiftWiderThanImage(t *testing.T) {
	src := newUniformBuffer(t, 3, 2, RGB{1, 2, 3})
	dst := applyTest(t, RightShift{K: DefaultShift}, src)

	for _, p := range dst.Pixels() {
		if p != Black {
			t.Fatalf("pixel = %v, want black", p)
		}
	}
}

func TestSepia(t *testing.T) {
	src := newTestBuffer(t, 2, 1, RGB{100, 100, 100}, RGB{250, 250, 250})

	assertPixels(t, applyTest(t, Sepia{K: DefaultSepiaDepth}, src),
		RGB{120, 105, 90}, RGB{255, 255, 240})
}
