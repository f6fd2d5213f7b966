package pixelfilter

import "math"

var (
	sobelX = mustKernel([][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	})

	sobelY = mustKernel([][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	})

	scharrX = mustKernel([][]float64{
		{-3, 0, 3},
		{-10, 0, 10},
		{-3, 0, 3},
	})

	scharrY = mustKernel([][]float64{
		{-3, -10, -3},
		{0, 0, 0},
		{3, 10, 3},
	})
)

// Gradient computes the gradient magnitude sqrt(Gx²+Gy²) of every channel
// independently, using a pair of derivative kernels.
type Gradient struct {
	X, Y *Kernel
	name string
}

// Sobel returns the Sobel edge detector.
func Sobel() *Gradient {
	return &Gradient{X: sobelX, Y: sobelY, name: "sobel"}
}

// Scharr returns the Scharr edge detector, a rotationally more accurate
// variant of Sobel.
func Scharr() *Gradient {
	return &Gradient{X: scharrX, Y: scharrY, name: "scharr"}
}

func (f *Gradient) Name() string { return f.name }

func (f *Gradient) ColorAt(src *Buffer, x, y int) RGB {
	xr, xg, xb := f.X.apply(src, x, y)
	yr, yg, yb := f.Y.apply(src, x, y)
	return RGB{
		ClampChannel(math.Hypot(xr, yr)),
		ClampChannel(math.Hypot(xg, yg)),
		ClampChannel(math.Hypot(xb, yb)),
	}
}
